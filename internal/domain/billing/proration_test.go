package billing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/billing"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/entity"
)

func TestBillableDays_SinSalidaHastaFinDeMes(t *testing.T) {
	rules := rulesWith("3", true, false)
	days, ok := billing.BillableDays(date(2026, 1, 10), nil, january2026(), rules)
	assert.True(t, ok)
	assert.Equal(t, 22, days)
}

func TestBillableDays_EstanciaDentroDelMesCobrandoAmbosDias(t *testing.T) {
	rules := rulesWith("2.5", true, true)
	entry, exit := date(2026, 1, 5), datePtr(2026, 1, 20)

	days, ok := billing.BillableDays(entry, exit, january2026(), rules)
	assert.True(t, ok)
	assert.Equal(t, 16, days, "(salida − entrada) + 1")
}

func TestBillableDays_ReglasPorDefectoNoCobranDiaDeSalida(t *testing.T) {
	rules := entity.DefaultContractRules()
	days, ok := billing.BillableDays(date(2026, 1, 5), datePtr(2026, 1, 20), january2026(), rules)
	assert.True(t, ok)
	assert.Equal(t, 15, days)
}

func TestBillableDays_SinCobrarEntradaRestaUnDia(t *testing.T) {
	entry := date(2026, 1, 12)
	with, _ := billing.BillableDays(entry, nil, january2026(), rulesWith("2.5", true, false))
	without, _ := billing.BillableDays(entry, nil, january2026(), rulesWith("2.5", false, false))
	assert.Equal(t, with-1, without)
}

func TestBillableDays_SinCobrarSalidaRestaUnDia(t *testing.T) {
	entry, exit := date(2025, 12, 1), datePtr(2026, 1, 18)
	with, _ := billing.BillableDays(entry, exit, january2026(), rulesWith("2.5", true, true))
	without, _ := billing.BillableDays(entry, exit, january2026(), rulesWith("2.5", true, false))
	assert.Equal(t, 18, with)
	assert.Equal(t, with-1, without)
}

func TestBillableDays_EntradaAnteriorAlMesNoSeAjusta(t *testing.T) {
	days, ok := billing.BillableDays(date(2025, 11, 3), nil, january2026(), rulesWith("2.5", false, false))
	assert.True(t, ok)
	assert.Equal(t, 31, days, "la entrada no cae en el periodo: mes completo")
}

func TestBillableDays_SalidaPosteriorAlMesNoSeAjusta(t *testing.T) {
	days, ok := billing.BillableDays(date(2026, 1, 1), datePtr(2026, 2, 10), january2026(), rulesWith("2.5", true, false))
	assert.True(t, ok)
	assert.Equal(t, 31, days)
}

func TestBillableDays_EntradaTrasFinDeMesNoAplica(t *testing.T) {
	days, ok := billing.BillableDays(date(2026, 2, 1), nil, january2026(), entity.DefaultContractRules())
	assert.False(t, ok)
	assert.Zero(t, days)
}

func TestBillableDays_SalidaAntesDelInicioNoAplica(t *testing.T) {
	days, ok := billing.BillableDays(date(2025, 10, 1), datePtr(2025, 12, 31), january2026(), entity.DefaultContractRules())
	assert.False(t, ok)
	assert.Zero(t, days)
}

func TestBillableDays_MismoDiaSinCobrarNingunoQuedaEnCero(t *testing.T) {
	days, ok := billing.BillableDays(date(2026, 1, 15), datePtr(2026, 1, 15), january2026(), rulesWith("2.5", false, false))
	assert.True(t, ok, "el animal sí estuvo en el periodo")
	assert.Equal(t, 0, days)
}

func TestBillableDays_MismoDiaCobrandoEntrada(t *testing.T) {
	days, ok := billing.BillableDays(date(2026, 1, 15), datePtr(2026, 1, 15), january2026(), rulesWith("2.5", true, false))
	assert.True(t, ok)
	assert.Equal(t, 0, days, "el día de salida no cobrado anula el único día")

	days, _ = billing.BillableDays(date(2026, 1, 15), datePtr(2026, 1, 15), january2026(), rulesWith("2.5", true, true))
	assert.Equal(t, 1, days)
}

func TestBillableDays_IgnoraLaHoraDelDia(t *testing.T) {
	entry := time.Date(2026, 1, 10, 23, 45, 0, 0, time.UTC)
	exit := time.Date(2026, 1, 11, 0, 5, 0, 0, time.UTC)
	days, ok := billing.BillableDays(entry, &exit, january2026(), rulesWith("2.5", true, true))
	assert.True(t, ok)
	assert.Equal(t, 2, days)
}

func TestBillableDays_FebreroBisiesto(t *testing.T) {
	p := billing.Period{Month: 2, Year: 2024}
	days, ok := billing.BillableDays(date(2024, 1, 1), nil, p, entity.DefaultContractRules())
	assert.True(t, ok)
	assert.Equal(t, 29, days)
}

func TestPeriod(t *testing.T) {
	p, err := billing.NewPeriod(2, 2026)
	assert.NoError(t, err)
	assert.Equal(t, date(2026, 2, 1), p.Start())
	assert.Equal(t, date(2026, 2, 28), p.End())
	assert.Equal(t, 28, p.Days())
	assert.Equal(t, "02/2026", p.String())
	assert.True(t, p.Contains(time.Date(2026, 2, 28, 22, 0, 0, 0, time.UTC)))
	assert.False(t, p.Contains(date(2026, 3, 1)))

	_, err = billing.NewPeriod(13, 2026)
	assert.Error(t, err)
	_, err = billing.NewPeriod(0, 2026)
	assert.Error(t, err)
}
