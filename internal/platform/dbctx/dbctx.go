package dbctx

import (
	"context"

	"gorm.io/gorm"
)

// Context bundles a request context with an optional GORM transaction.
type Context struct {
	Ctx context.Context
	Tx  *gorm.DB
}

// WithTx returns a copy of dbc bound to tx.
func (dbc Context) WithTx(tx *gorm.DB) Context {
	return Context{Ctx: dbc.Ctx, Tx: tx}
}

// WithCtx returns a copy of dbc bound to ctx, keeping the transaction.
func (dbc Context) WithCtx(ctx context.Context) Context {
	return Context{Ctx: ctx, Tx: dbc.Tx}
}

// Context returns the request context, falling back to Background.
func (dbc Context) Context() context.Context {
	if dbc.Ctx == nil {
		return context.Background()
	}
	return dbc.Ctx
}
