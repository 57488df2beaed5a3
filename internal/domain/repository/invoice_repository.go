package repository

import (
	"context"

	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/entity"
)

// InvoiceFilter filtros del listado de facturas; cero = sin filtro.
type InvoiceFilter struct {
	ClientID    string
	Status      string
	PeriodMonth int
	PeriodYear  int
}

// InvoiceRepository define el puerto de persistencia para Invoice.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	// GetByIDForUpdate igual que GetByID pero bloquea la fila hasta el fin de la transacción.
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Invoice, error)
	List(ctx context.Context, filter InvoiceFilter) ([]*entity.Invoice, error)
	// UpdateDraft persiste frozen_snapshot y totals solo si la factura sigue en DRAFT.
	// Devuelve domain.ErrInvalidState si ya no lo está.
	UpdateDraft(ctx context.Context, invoice *entity.Invoice) error
	// MarkIssued asigna número y estado ISSUED a un DRAFT en una sola sentencia.
	// Devuelve domain.ErrInvalidState si ya no era DRAFT y domain.ErrNumberConflict
	// si el número viola la restricción de unicidad.
	MarkIssued(ctx context.Context, invoice *entity.Invoice) error
	// ListNumbersWithPrefix devuelve los invoice_number que empiezan por prefix.
	ListNumbersWithPrefix(ctx context.Context, prefix string) ([]string, error)
	// LockNumberPrefix serializa la numeración de un mismo número base dentro de la transacción.
	LockNumberPrefix(ctx context.Context, prefix string) error
}
