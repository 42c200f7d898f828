package controller

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/decodeat/recommendation-service/internal/command"
	"github.com/decodeat/recommendation-service/internal/domain"
)

type ProductDelete struct {
	Remover command.Command[command.RemoveProductRequest, command.Empty]
}

func (c ProductDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	productID, err := strconv.ParseInt(vars["product_id"], 10, 64)
	if err != nil || productID <= 0 {
		writeBadRequest(w, r, fmt.Errorf("invalid product_id [%s]", vars["product_id"]))
		return
	}

	_, err = c.Remover.Execute(r.Context(), command.RemoveProductRequest{ProductID: productID})
	if err != nil {
		ctx := r.Context()
		domain.LoggerFromContext(ctx).ErrorContext(ctx, "unable to remove product", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
