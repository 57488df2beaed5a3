package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ganaderia-aureo/pupilaje-api/internal/application/dto"
	"github.com/ganaderia-aureo/pupilaje-api/internal/application/usecase"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/entity"
)

func newAnimalUseCase() (*usecase.AnimalUseCase, *memAnimalRepo, *recordingExporter, *recordingExporter) {
	clients := newMemClientRepo(&entity.Client{ID: "c1", FiscalName: "Ganadería Norte"})
	animals := newMemAnimalRepo()
	xlsx, pdf := &recordingExporter{}, &recordingExporter{}
	return usecase.NewAnimalUseCase(animals, clients, xlsx, pdf), animals, xlsx, pdf
}

func TestAnimalUseCase_CreateTransicionReproductiva(t *testing.T) {
	uc, repo, _, _ := newAnimalUseCase()

	out, err := uc.Create(context.Background(), dto.AnimalRequest{
		Crotal:    " ES0001 ",
		ClientID:  "c1",
		EntryDate: "2026-01-10",
		ReproData: entity.ReproData{Insem1Date: "2026-01-15", Insem1Bull: "Toro 7"},
	})
	require.NoError(t, err)
	assert.Equal(t, "ES0001", out.Crotal)
	assert.Equal(t, entity.AnimalStatusActive, out.Status)
	assert.Equal(t, entity.ReproStatusInseminated, out.ReproStatus)
	assert.Len(t, repo.byID, 1)
}

func TestAnimalUseCase_Validaciones(t *testing.T) {
	uc, _, _, _ := newAnimalUseCase()
	ctx := context.Background()

	tests := []struct {
		name string
		in   dto.AnimalRequest
	}{
		{"sin crotal", dto.AnimalRequest{ClientID: "c1", EntryDate: "2026-01-10"}},
		{"sin cliente", dto.AnimalRequest{Crotal: "ES1", EntryDate: "2026-01-10"}},
		{"sin entrada", dto.AnimalRequest{Crotal: "ES1", ClientID: "c1"}},
		{"salida antes de entrada", dto.AnimalRequest{Crotal: "ES1", ClientID: "c1", EntryDate: "2026-01-10", ExitDate: "2026-01-09"}},
		{"cliente inexistente", dto.AnimalRequest{Crotal: "ES1", ClientID: "c9", EntryDate: "2026-01-10"}},
		{"estado desconocido", dto.AnimalRequest{Crotal: "ES1", ClientID: "c1", EntryDate: "2026-01-10", Status: "LOST"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Create(ctx, tt.in)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput), "err = %v", err)
		})
	}
}

func TestAnimalUseCase_UpdateYDelete(t *testing.T) {
	uc, _, _, _ := newAnimalUseCase()
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.AnimalRequest{Crotal: "ES1", ClientID: "c1", EntryDate: "2026-01-10"})
	require.NoError(t, err)

	updated, err := uc.Update(ctx, created.ID, dto.AnimalRequest{
		Crotal: "ES1", ClientID: "c1", EntryDate: "2026-01-10", ExitDate: "2026-02-01", Status: "SOLD",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.AnimalStatusSold, updated.Status)
	require.NotNil(t, updated.ExitDate)
	assert.Equal(t, "2026-02-01", *updated.ExitDate)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	_, err = uc.Update(ctx, "nope", dto.AnimalRequest{Crotal: "ES1", ClientID: "c1", EntryDate: "2026-01-10"})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	require.NoError(t, uc.Delete(ctx, created.ID))
	_, err = uc.GetByID(ctx, created.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestAnimalUseCase_ListNormalizaFiltros(t *testing.T) {
	uc, repo, _, _ := newAnimalUseCase()

	_, err := uc.List(context.Background(), dto.AnimalListQuery{Status: "active", EntryFrom: "2026-01-01"})
	require.NoError(t, err)
	assert.Equal(t, entity.AnimalStatusActive, repo.lastFilter.Status)
	require.NotNil(t, repo.lastFilter.EntryFrom)

	_, err = uc.List(context.Background(), dto.AnimalListQuery{EntryTo: "ayer"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestAnimalUseCase_Export(t *testing.T) {
	uc, _, xlsx, pdf := newAnimalUseCase()
	ctx := context.Background()
	_, err := uc.Create(ctx, dto.AnimalRequest{Crotal: "ES1", ClientID: "c1", EntryDate: "2026-01-10"})
	require.NoError(t, err)

	file, err := uc.Export(ctx, dto.AnimalListQuery{})
	require.NoError(t, err)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", file.ContentType)
	assert.Contains(t, file.Filename, ".xlsx")
	require.Len(t, xlsx.rows, 1)
	assert.Equal(t, "Ganadería Norte", xlsx.rows[0].ClientName)

	file, err = uc.Export(ctx, dto.AnimalListQuery{Format: "PDF"})
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.Len(t, pdf.rows, 1)

	_, err = uc.Export(ctx, dto.AnimalListQuery{Format: "csv"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
