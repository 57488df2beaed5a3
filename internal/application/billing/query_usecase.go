package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/ganaderia-aureo/pupilaje-api/internal/application/dto"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/entity"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/repository"
)

// QueryUseCase consultas de facturas y descarga del PDF.
type QueryUseCase struct {
	invoiceRepo repository.InvoiceRepository
	generator   InvoiceDocumentGenerator
	issuer      IssuerProvider
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(invoiceRepo repository.InvoiceRepository, generator InvoiceDocumentGenerator, issuer IssuerProvider) *QueryUseCase {
	return &QueryUseCase{invoiceRepo: invoiceRepo, generator: generator, issuer: issuer}
}

// Get devuelve una factura por ID.
func (uc *QueryUseCase) Get(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.NewInvoiceResponse(inv)
	return &out, nil
}

// List lista facturas filtradas. Estado y periodo inválidos → domain.ErrInvalidInput.
func (uc *QueryUseCase) List(ctx context.Context, q dto.InvoiceListQuery) ([]dto.InvoiceResponse, error) {
	status := strings.ToUpper(strings.TrimSpace(q.Status))
	if status != "" && status != entity.InvoiceStatusDraft && status != entity.InvoiceStatusIssued {
		return nil, fmt.Errorf("%w: estado %q desconocido", domain.ErrInvalidInput, q.Status)
	}
	if q.Month < 0 || q.Month > 12 {
		return nil, fmt.Errorf("%w: mes %d fuera de rango", domain.ErrInvalidInput, q.Month)
	}
	list, err := uc.invoiceRepo.List(ctx, repository.InvoiceFilter{
		ClientID:    strings.TrimSpace(q.ClientID),
		Status:      status,
		PeriodMonth: q.Month,
		PeriodYear:  q.Year,
	})
	if err != nil {
		return nil, err
	}
	return dto.NewInvoiceResponses(list), nil
}

// PDF genera el documento de la factura. Los borradores se renderizan como vista previa.
func (uc *QueryUseCase) PDF(ctx context.Context, id string) ([]byte, string, error) {
	inv, err := uc.load(ctx, id)
	if err != nil {
		return nil, "", err
	}
	issuer, err := uc.issuer.Issuer(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener emisor: %w", err)
	}
	doc, err := uc.generator.GenerateInvoicePDF(ctx, inv, issuer)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return doc, InvoiceFilename(inv), nil
}

func (uc *QueryUseCase) load(ctx context.Context, id string) (*entity.Invoice, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener factura: %w", err)
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return inv, nil
}
