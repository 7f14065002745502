package memory

import "context"

// TxManager is a pass-through transaction manager. The map-backed
// repositories mutate under their own locks, so the function simply runs.
type TxManager struct{}

func NewTxManager() *TxManager {
	return &TxManager{}
}

func (TxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
