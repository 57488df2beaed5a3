package billing

import (
	"context"
	"fmt"

	"github.com/ganaderia-aureo/pupilaje-api/internal/application/dto"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain"
	engine "github.com/ganaderia-aureo/pupilaje-api/internal/domain/billing"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/repository"
)

// DiscountUseCase edita el descuento de un borrador.
type DiscountUseCase struct {
	invoiceRepo repository.InvoiceRepository
}

// NewDiscountUseCase construye el caso de uso.
func NewDiscountUseCase(invoiceRepo repository.InvoiceRepository) *DiscountUseCase {
	return &DiscountUseCase{invoiceRepo: invoiceRepo}
}

// EditDraftDiscount aplica el descuento y persiste los totales recalculados.
// Facturas emitidas → domain.ErrInvalidState.
func (uc *DiscountUseCase) EditDraftDiscount(ctx context.Context, invoiceID string, in dto.EditDiscountRequest) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("discount: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if err := engine.ApplyDiscount(inv, in.DiscountAmount, in.DiscountReason); err != nil {
		return nil, err
	}
	if err := uc.invoiceRepo.UpdateDraft(ctx, inv); err != nil {
		return nil, err
	}
	out := dto.NewInvoiceResponse(inv)
	return &out, nil
}
