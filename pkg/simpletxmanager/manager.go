package simpletxmanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/avkostin/studio-booking/pkg/dbmetrics"
	"github.com/avkostin/studio-booking/pkg/txmanager"
)

const maxRetries = 3

// TransactionManager выполняет функции в сериализуемых транзакциях
// поверх обычного *sql.DB (без метрик)
type TransactionManager struct {
	db *sql.DB
}

// NewTransactionManager создает transaction manager
func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable выполняет fn внутри транзакции SERIALIZABLE
// с повтором при serialization failure
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		lastErr = m.runOnce(ctx, fn)
		if lastErr == nil {
			return nil
		}
		if !txmanager.IsSerializationFailure(lastErr) {
			return lastErr
		}
	}

	return fmt.Errorf("simpletxmanager: serializable transaction failed after %d retries: %w", maxRetries, lastErr)
}

func (m *TransactionManager) runOnce(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("simpletxmanager: begin transaction: %w", err)
	}

	txCtx := dbmetrics.WithExecutor(ctx, tx)

	if err := fn(txCtx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("simpletxmanager: commit transaction: %w", err)
	}

	return nil
}
