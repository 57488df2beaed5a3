package usecase

import (
	"context"

	"github.com/ganaderia-aureo/pupilaje-api/internal/application/dto"
)

// RosterExporter serializa el listado de animales a un formato descargable.
type RosterExporter interface {
	ExportRoster(ctx context.Context, rows []dto.AnimalRosterRow) ([]byte, error)
}
