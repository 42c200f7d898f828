package controller

import (
	"context"
)

// commandFunc adapts a function to the command interface for tests.
type commandFunc[Req, Res any] func(ctx context.Context, req Req) (Res, error)

func (f commandFunc[Req, Res]) Execute(ctx context.Context, req Req) (Res, error) {
	return f(ctx, req)
}
