package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el panel.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// CountAnimalsByStatus número de animales en el estado dado.
func (r *AnalyticsRepo) CountAnimalsByStatus(ctx context.Context, status string) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM animals WHERE status = $1`, status).Scan(&n); err != nil {
		return 0, fmt.Errorf("analytics.CountAnimalsByStatus: %w", err)
	}
	return n, nil
}

// CountClients número total de clientes.
func (r *AnalyticsRepo) CountClients(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM clients`).Scan(&n); err != nil {
		return 0, fmt.Errorf("analytics.CountClients: %w", err)
	}
	return n, nil
}

// CountInvoices facturas en el estado y periodo dados.
func (r *AnalyticsRepo) CountInvoices(ctx context.Context, status string, month, year int) (int, error) {
	const query = `
	SELECT COUNT(*) FROM invoices
	WHERE status = $1 AND period_month = $2 AND period_year = $3`
	var n int
	if err := r.pool.QueryRow(ctx, query, status, month, year).Scan(&n); err != nil {
		return 0, fmt.Errorf("analytics.CountInvoices: %w", err)
	}
	return n, nil
}

// SumInvoiceTotals suma la columna NUMERIC total; el codec pgxdecimal la lee como decimal.Decimal.
func (r *AnalyticsRepo) SumInvoiceTotals(ctx context.Context, status string, month, year int) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(SUM(total), 0) FROM invoices
	WHERE status = $1 AND period_month = $2 AND period_year = $3`
	var sum decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, status, month, year).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("analytics.SumInvoiceTotals: %w", err)
	}
	return sum, nil
}
