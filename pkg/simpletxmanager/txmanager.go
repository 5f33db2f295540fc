package simpletxmanager

import (
	"context"
	"database/sql"

	"github.com/vibracionalta/VA-AgendaService/pkg/dbmetrics"
	"github.com/vibracionalta/VA-AgendaService/pkg/txmanager"
)

// sqlDBAdapter adapta *sql.DB al contrato TxBeginner del txmanager
type sqlDBAdapter struct {
	db *sql.DB
}

func (a *sqlDBAdapter) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	return a.db.BeginTx(ctx, opts)
}

// NewTransactionManager crea un transaction manager sobre *sql.DB sin métricas.
// Se usa cuando las métricas están deshabilitadas en la configuración.
func NewTransactionManager(db *sql.DB) *txmanager.TransactionManager {
	return txmanager.NewTransactionManager(&sqlDBAdapter{db: db})
}
