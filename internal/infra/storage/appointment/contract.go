package appointment

import (
	"context"
	"database/sql"

	"github.com/vibracionalta/VA-AgendaService/pkg/dbmetrics"
)

// Reutilizamos las interfaces de dbmetrics para trabajar con la base de datos
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner interfaz para abrir transacciones.
// La implementan *sql.DB (vía adapter) y *dbmetrics.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
