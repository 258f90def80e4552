package uowmock

import (
	"context"
	"errors"

	"rentdesk-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn func(ctx context.Context, fn func(r uow.Repos) error) error
}

func New() *UoW { return &UoW{} }

// Passthrough makes WithinTx simply invoke the callback with the supplied
// repos — the common case when a test does not care about tx semantics.
func Passthrough(r uow.Repos) *UoW {
	return &UoW{WithinTxFn: func(ctx context.Context, fn func(r uow.Repos) error) error {
		return fn(r)
	}}
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}
