package dto

import "github.com/shopspring/decimal"

// DashboardResponse respuesta de GET /api/dashboard.
type DashboardResponse struct {
	ActiveAnimals    int             `json:"active_animals"`
	TotalClients     int             `json:"total_clients"`
	PendingDrafts    int             `json:"pending_drafts"`    // borradores del periodo
	DraftsTotal      decimal.Decimal `json:"drafts_total"`      // suma de totales de esos borradores
	IssuedTotal      decimal.Decimal `json:"issued_total"`      // facturado (ISSUED) en el periodo
	ProjectedRevenue decimal.Decimal `json:"projected_revenue"` // activos × tarifa de previsión × días del mes

	// Metadatos del período
	PeriodMonth int    `json:"period_month"`
	PeriodYear  int    `json:"period_year"`
	DateLabel   string `json:"date_label"` // ej: "Febrero 2026"
}
