package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// AnalyticsRepository consultas de solo lectura para el panel principal.
type AnalyticsRepository interface {
	CountAnimalsByStatus(ctx context.Context, status string) (int, error)
	CountClients(ctx context.Context) (int, error)
	CountInvoices(ctx context.Context, status string, month, year int) (int, error)
	// SumInvoiceTotals suma invoices.total de las facturas en ese estado y periodo.
	SumInvoiceTotals(ctx context.Context, status string, month, year int) (decimal.Decimal, error)
}
