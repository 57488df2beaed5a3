package billing

import (
	"context"

	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/entity"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/repository"
)

// InvoiceTxRunner ejecuta fn dentro de una transacción con el repositorio de facturas atado a ella.
// Si fn devuelve error se hace rollback.
type InvoiceTxRunner interface {
	RunInvoice(ctx context.Context, fn func(invoiceRepo repository.InvoiceRepository) error) error
}

// InvoiceDocumentGenerator genera la representación PDF de una factura.
// Para borradores el documento muestra "BORRADOR" en lugar del número.
type InvoiceDocumentGenerator interface {
	GenerateInvoicePDF(ctx context.Context, inv *entity.Invoice, issuer entity.IssuerSettings) ([]byte, error)
}

// IssuerProvider datos del emisor vigentes (guardados o por defecto).
type IssuerProvider interface {
	Issuer(ctx context.Context) (entity.IssuerSettings, error)
}
