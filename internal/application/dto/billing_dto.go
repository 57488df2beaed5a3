package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/entity"
)

// GenerateDraftsRequest body para POST /api/invoices/drafts.
type GenerateDraftsRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// DraftFailure cliente cuyo borrador no se pudo generar.
type DraftFailure struct {
	ClientID   string `json:"client_id"`
	ClientName string `json:"client_name"`
	Error      string `json:"error"`
}

// GenerateDraftsResponse resultado de la generación mensual.
// Skipped contiene los IDs de clientes sin días facturables en el periodo.
type GenerateDraftsResponse struct {
	Created []InvoiceResponse `json:"created"`
	Skipped []string          `json:"skipped"`
	Failed  []DraftFailure    `json:"failed"`
}

// EditDiscountRequest body para PUT /api/invoices/:id/discount.
type EditDiscountRequest struct {
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	DiscountReason string          `json:"discount_reason"`
}

// InvoiceListQuery filtros de GET /api/invoices.
type InvoiceListQuery struct {
	ClientID string `query:"client_id"`
	Status   string `query:"status"`
	Month    int    `query:"month"`
	Year     int    `query:"year"`
}

// InvoiceResponse factura con snapshot y totales tal como se persisten.
type InvoiceResponse struct {
	ID             string                `json:"id"`
	ClientID       string                `json:"client_id"`
	PeriodMonth    int                   `json:"period_month"`
	PeriodYear     int                   `json:"period_year"`
	Status         string                `json:"status"`
	InvoiceNumber  *string               `json:"invoice_number"`
	FrozenSnapshot entity.FrozenSnapshot `json:"frozen_snapshot"`
	Totals         entity.Totals         `json:"totals"`
	IssuedAt       *time.Time            `json:"issued_at,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

// IssueInvoiceResponse respuesta de POST /api/invoices/:id/issue.
// DocumentURL apunta a la descarga del PDF; vacío si el documento no pudo generarse.
type IssueInvoiceResponse struct {
	Invoice     InvoiceResponse `json:"invoice"`
	Filename    string          `json:"filename,omitempty"`
	DocumentURL string          `json:"document_url,omitempty"`
}

// NewInvoiceResponse mapea la entidad a la respuesta.
func NewInvoiceResponse(inv *entity.Invoice) InvoiceResponse {
	out := InvoiceResponse{
		ID:             inv.ID,
		ClientID:       inv.ClientID,
		PeriodMonth:    inv.PeriodMonth,
		PeriodYear:     inv.PeriodYear,
		Status:         inv.Status,
		FrozenSnapshot: inv.FrozenSnapshot,
		Totals:         inv.Totals,
		IssuedAt:       inv.IssuedAt,
		CreatedAt:      inv.CreatedAt,
		UpdatedAt:      inv.UpdatedAt,
	}
	if inv.InvoiceNumber != "" {
		n := inv.InvoiceNumber
		out.InvoiceNumber = &n
	}
	if out.FrozenSnapshot.LineItems == nil {
		out.FrozenSnapshot.LineItems = []entity.LineItem{}
	}
	return out
}

// NewInvoiceResponses mapea una lista.
func NewInvoiceResponses(list []*entity.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, NewInvoiceResponse(inv))
	}
	return out
}
