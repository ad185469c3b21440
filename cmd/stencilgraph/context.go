package main

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/stencilgraph/stencilgraph/internal/cliutil"
)

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return cliutil.Discard()
}
