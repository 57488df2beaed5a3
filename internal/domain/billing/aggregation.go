package billing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ganaderia-aureo/pupilaje-api/internal/domain"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/entity"
)

// ConsolidationThreshold por encima de este número de líneas se agrupan en una sola.
const ConsolidationThreshold = 10

var hundred = decimal.NewFromInt(100)

// LineItems prorratea cada animal del cliente y devuelve las líneas con días > 0.
// Los animales HISTORIC o de otro cliente se ignoran.
func LineItems(clientID string, animals []*entity.Animal, p Period, rules entity.ContractRules) []entity.LineItem {
	items := make([]entity.LineItem, 0, len(animals))
	for _, a := range animals {
		if a == nil || a.Status == entity.AnimalStatusHistoric || a.ClientID != clientID {
			continue
		}
		days, ok := BillableDays(a.EntryDate, a.ExitDate, p, rules)
		if !ok || days <= 0 {
			continue
		}
		items = append(items, entity.LineItem{
			Label:     a.Crotal,
			Days:      days,
			DailyRate: rules.DailyRate,
			Quantity:  1,
			RowTotal:  decimal.NewFromInt(int64(days)).Mul(rules.DailyRate),
		})
	}
	return items
}

// Consolidate sustituye más de ConsolidationThreshold líneas por una línea resumen
// "<N> ANIMALES" cuyo importe es la suma exacta de las originales.
func Consolidate(items []entity.LineItem) []entity.LineItem {
	if len(items) <= ConsolidationThreshold {
		return items
	}
	sum := sumRowTotals(items)
	return []entity.LineItem{{
		Label:     fmt.Sprintf("%d ANIMALES", len(items)),
		Days:      1,
		DailyRate: sum,
		Quantity:  1,
		RowTotal:  sum,
	}}
}

// ComputeTotals calcula base, IVA, retención y total sin descuento.
func ComputeTotals(items []entity.LineItem, rules entity.ContractRules) entity.Totals {
	base := sumRowTotals(items)
	iva, retention, total := taxes(base, rules.IVARate, rules.RetentionRate)
	return entity.Totals{
		Base:            base,
		DiscountAmount:  decimal.Zero,
		IVARate:         rules.IVARate,
		IVAAmount:       iva,
		RetentionRate:   rules.RetentionRate,
		RetentionAmount: retention,
		Total:           total,
	}
}

// BuildDraft construye el borrador del periodo para un cliente.
// Devuelve (nil, nil) si ningún animal tiene días facturables.
// No asigna ID ni fechas de auditoría: eso corresponde al caso de uso.
func BuildDraft(client *entity.Client, animals []*entity.Animal, p Period) (*entity.Invoice, error) {
	if client == nil || client.ID == "" {
		return nil, fmt.Errorf("%w: cliente requerido", domain.ErrInvalidInput)
	}
	rules := client.ContractRules
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("%w: cliente %s: %v", domain.ErrInvalidContractRules, client.ID, err)
	}

	items := LineItems(client.ID, animals, p, rules)
	if len(items) == 0 {
		return nil, nil
	}
	items = Consolidate(items)

	return &entity.Invoice{
		ClientID:    client.ID,
		PeriodMonth: p.Month,
		PeriodYear:  p.Year,
		Status:      entity.InvoiceStatusDraft,
		FrozenSnapshot: entity.FrozenSnapshot{
			ClientName:     client.FiscalName,
			ClientNIF:      client.NIF,
			ClientAddress:  client.Address,
			LineItems:      items,
			DiscountAmount: decimal.Zero,
			DiscountReason: "",
		},
		Totals: ComputeTotals(items, rules),
	}, nil
}

func sumRowTotals(items []entity.LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.RowTotal)
	}
	return sum
}

// taxes devuelve IVA, retención y total sobre una base imponible.
func taxes(base, ivaRate, retentionRate decimal.Decimal) (iva, retention, total decimal.Decimal) {
	iva = base.Mul(ivaRate).Div(hundred)
	retention = base.Mul(retentionRate).Div(hundred)
	total = base.Add(iva).Sub(retention)
	return iva, retention, total
}
