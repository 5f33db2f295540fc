package dbmetrics

import (
	"context"
	"database/sql"
)

// DBExecutor interfaz mínima para ejecutar consultas.
// La implementan *sql.DB, *sql.Tx y los wrappers con métricas de este paquete.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor ejecutor dentro de una transacción activa
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

type executorCtxKey struct{}

// WithExecutor guarda un ejecutor transaccional en el contexto.
// Los repositorios lo recuperan con GetExecutor para participar en la transacción.
func WithExecutor(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, executorCtxKey{}, tx)
}

// GetExecutor devuelve el ejecutor transaccional del contexto, o fallback si no hay transacción
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(executorCtxKey{}).(TxExecutor); ok {
		return tx
	}
	return fallback
}

// IsInTransaction indica si el contexto lleva una transacción activa
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(executorCtxKey{}).(TxExecutor)
	return ok
}
