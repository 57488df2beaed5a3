package billing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ganaderia-aureo/pupilaje-api/internal/domain"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/billing"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/entity"
)

func draft66(t *testing.T) *entity.Invoice {
	t.Helper()
	rules := entity.DefaultContractRules()
	rules.DailyRate = dec("3")
	inv, err := billing.BuildDraft(testClient(rules), []*entity.Animal{animal("ES001", date(2026, 1, 10), nil)}, january2026())
	require.NoError(t, err)
	require.NotNil(t, inv)
	return inv
}

func TestApplyDiscount_RecalculaSobreLaBaseDescontada(t *testing.T) {
	inv := draft66(t)
	require.NoError(t, billing.ApplyDiscount(inv, dec("6"), "  cliente fiel "))

	assertDecimal(t, "66", inv.Totals.Base)
	assertDecimal(t, "6", inv.Totals.DiscountAmount)
	require.NotNil(t, inv.Totals.BaseAfterDiscount)
	assertDecimal(t, "60", *inv.Totals.BaseAfterDiscount)
	assertDecimal(t, "6", inv.Totals.IVAAmount)
	assertDecimal(t, "1.2", inv.Totals.RetentionAmount)
	assertDecimal(t, "64.8", inv.Totals.Total)
	assertDecimal(t, "6", inv.FrozenSnapshot.DiscountAmount)
	assert.Equal(t, "cliente fiel", inv.FrozenSnapshot.DiscountReason)
}

func TestApplyDiscount_EsIdempotente(t *testing.T) {
	inv := draft66(t)
	require.NoError(t, billing.ApplyDiscount(inv, dec("10.5"), "x"))
	first := inv.Totals
	require.NoError(t, billing.ApplyDiscount(inv, dec("10.5"), "x"))

	assertDecimal(t, first.Total.String(), inv.Totals.Total)
	assertDecimal(t, first.IVAAmount.String(), inv.Totals.IVAAmount)
	assertDecimal(t, first.RetentionAmount.String(), inv.Totals.RetentionAmount)
	assertDecimal(t, "66", inv.Totals.Base)
}

func TestApplyDiscount_CeroDevuelveLosTotalesOriginales(t *testing.T) {
	inv := draft66(t)
	require.NoError(t, billing.ApplyDiscount(inv, dec("12"), ""))
	require.NoError(t, billing.ApplyDiscount(inv, dec("0"), ""))
	assertDecimal(t, "71.28", inv.Totals.Total)
}

func TestApplyDiscount_Validaciones(t *testing.T) {
	inv := draft66(t)
	assert.ErrorIs(t, billing.ApplyDiscount(inv, dec("-1"), ""), domain.ErrInvalidInput)
	assert.ErrorIs(t, billing.ApplyDiscount(inv, dec("66.01"), ""), domain.ErrInvalidInput)
	assert.ErrorIs(t, billing.ApplyDiscount(nil, dec("1"), ""), domain.ErrInvalidInput)
	assertDecimal(t, "71.28", inv.Totals.Total)
}

func TestApplyDiscount_FacturaEmitidaNoSeModifica(t *testing.T) {
	inv := draft66(t)
	require.NoError(t, billing.NewInvoiceFSM(inv).Issue(context.Background(), "CC-01-2026"))

	err := billing.ApplyDiscount(inv, dec("5"), "tarde")
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assertDecimal(t, "71.28", inv.Totals.Total)
	assert.Empty(t, inv.FrozenSnapshot.DiscountReason)
}
