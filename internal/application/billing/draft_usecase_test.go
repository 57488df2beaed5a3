package billing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ganaderia-aureo/pupilaje-api/internal/application/billing"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/entity"
	"github.com/ganaderia-aureo/pupilaje-api/pkg/logger"
)

func TestGenerateDrafts_CreaOmiteYContinuaTrasFallos(t *testing.T) {
	broken := newClient("c3", "Reglas Rotas", "RR")
	broken.ContractRules.IVARate = decimal.NewFromInt(-1)

	clients := &fakeClientRepo{clients: []*entity.Client{
		newClient("c1", "Ganadería Norte", "GN"),
		newClient("c2", "Sin Animales", "SA"),
		broken,
		newClient("c4", "Falla Storage", "FS"),
		newClient("c5", "Ovejas Sur", "OS"),
	}}
	animals := &fakeAnimalRepo{
		failFor: "c4",
		animals: []*entity.Animal{
			{ID: "a1", Crotal: "ES001", ClientID: "c1", EntryDate: date(2026, 1, 10), Status: entity.AnimalStatusActive},
			{ID: "a2", Crotal: "ES002", ClientID: "c3", EntryDate: date(2025, 12, 1), Status: entity.AnimalStatusActive},
			{ID: "a3", Crotal: "ES003", ClientID: "c5", EntryDate: date(2025, 12, 1), Status: entity.AnimalStatusActive},
			{ID: "a4", Crotal: "ES004", ClientID: "c2", EntryDate: date(2025, 1, 1), Status: entity.AnimalStatusHistoric},
		},
	}
	invoices := newFakeInvoiceRepo()
	uc := billing.NewDraftUseCase(clients, animals, invoices, logger.Nop())

	out, err := uc.GenerateDrafts(context.Background(), 1, 2026)
	require.NoError(t, err)

	require.Len(t, out.Created, 2)
	assert.Equal(t, "c1", out.Created[0].ClientID)
	assert.Equal(t, "c5", out.Created[1].ClientID)
	assert.Equal(t, []string{"c2"}, out.Skipped)
	require.Len(t, out.Failed, 2)
	assert.Equal(t, "c3", out.Failed[0].ClientID)
	assert.Equal(t, "c4", out.Failed[1].ClientID)

	first := invoices.stored(out.Created[0].ID)
	require.NotNil(t, first)
	assert.Equal(t, entity.InvoiceStatusDraft, first.Status)
	assert.Empty(t, first.InvoiceNumber)
	assert.Nil(t, out.Created[0].InvoiceNumber)
	assert.False(t, first.CreatedAt.IsZero())
	// ES001: entrada el 10, cobra día de entrada, sin salida → 22 días × 3 €.
	assert.True(t, dec("66").Equal(first.Totals.Base))
	assert.True(t, dec("71.28").Equal(first.Totals.Total))
}

func TestGenerateDrafts_PeriodoInvalido(t *testing.T) {
	uc := billing.NewDraftUseCase(&fakeClientRepo{}, &fakeAnimalRepo{}, newFakeInvoiceRepo(), logger.Nop())
	_, err := uc.GenerateDrafts(context.Background(), 13, 2026)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestGenerateDrafts_ErrorAlListarClientes(t *testing.T) {
	uc := billing.NewDraftUseCase(&fakeClientRepo{listErr: errors.New("db caída")}, &fakeAnimalRepo{}, newFakeInvoiceRepo(), logger.Nop())
	_, err := uc.GenerateDrafts(context.Background(), 1, 2026)
	assert.Error(t, err)
}
