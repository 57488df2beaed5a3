package billing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ganaderia-aureo/pupilaje-api/internal/domain"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/entity"
)

// ApplyDiscount recalcula los totales de un borrador a partir de la base original y las tasas
// guardadas en la propia factura. Aplicar el mismo descuento dos veces da el mismo resultado.
func ApplyDiscount(inv *entity.Invoice, amount decimal.Decimal, reason string) error {
	if inv == nil {
		return fmt.Errorf("%w: factura nula", domain.ErrInvalidInput)
	}
	if !NewInvoiceFSM(inv).CanEdit() {
		return fmt.Errorf("%w: la factura %s está en estado %s", domain.ErrInvalidState, inv.ID, inv.Status)
	}
	base := inv.Totals.Base
	if amount.IsNegative() {
		return fmt.Errorf("%w: descuento negativo", domain.ErrInvalidInput)
	}
	if amount.GreaterThan(base) {
		return fmt.Errorf("%w: descuento %s mayor que la base %s", domain.ErrInvalidInput, amount, base)
	}

	afterDiscount := base.Sub(amount)
	iva, retention, total := taxes(afterDiscount, inv.Totals.IVARate, inv.Totals.RetentionRate)
	reason = strings.TrimSpace(reason)

	inv.Totals = entity.Totals{
		Base:              base,
		DiscountAmount:    amount,
		BaseAfterDiscount: &afterDiscount,
		IVARate:           inv.Totals.IVARate,
		IVAAmount:         iva,
		RetentionRate:     inv.Totals.RetentionRate,
		RetentionAmount:   retention,
		Total:             total,
	}
	inv.FrozenSnapshot.DiscountAmount = amount
	inv.FrozenSnapshot.DiscountReason = reason
	return nil
}
