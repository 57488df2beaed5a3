package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de la factura. ISSUED es terminal.
const (
	InvoiceStatusDraft  = "DRAFT"
	InvoiceStatusIssued = "ISSUED"
)

// LineItem línea de factura dentro del snapshot congelado.
// La etiqueta se persiste bajo la clave "crotal" (crotal o descripción consolidada).
type LineItem struct {
	Label     string          `json:"crotal"`
	Days      int             `json:"days"`
	DailyRate decimal.Decimal `json:"daily_rate"`
	Quantity  int             `json:"quantity"`
	RowTotal  decimal.Decimal `json:"row_total"`
}

// FrozenSnapshot datos capturados al generar el borrador (invoices.frozen_snapshot).
type FrozenSnapshot struct {
	ClientName     string          `json:"client_name"`
	ClientNIF      string          `json:"client_nif"`
	ClientAddress  string          `json:"client_address"`
	LineItems      []LineItem      `json:"line_items"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	DiscountReason string          `json:"discount_reason"`
}

// Totals importes de la factura (invoices.totals).
// BaseAfterDiscount solo existe tras editar el descuento.
type Totals struct {
	Base              decimal.Decimal  `json:"base"`
	DiscountAmount    decimal.Decimal  `json:"discount_amount"`
	BaseAfterDiscount *decimal.Decimal `json:"base_after_discount,omitempty"`
	IVARate           decimal.Decimal  `json:"iva_rate"`
	IVAAmount         decimal.Decimal  `json:"iva_amount"`
	RetentionRate     decimal.Decimal  `json:"retention_rate"`
	RetentionAmount   decimal.Decimal  `json:"retention_amount"`
	Total             decimal.Decimal  `json:"total"`
}

// Invoice factura mensual de un cliente.
type Invoice struct {
	ID             string
	ClientID       string
	PeriodMonth    int
	PeriodYear     int
	Status         string
	InvoiceNumber  string // vacío mientras es DRAFT
	FrozenSnapshot FrozenSnapshot
	Totals         Totals
	IssuedAt       *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
