package repository

import (
	"context"

	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/entity"
)

// SettingsRepository define el puerto de persistencia de la configuración del emisor.
type SettingsRepository interface {
	// GetIssuer devuelve nil, nil si aún no se ha guardado.
	GetIssuer(ctx context.Context) (*entity.IssuerSettings, error)
	SaveIssuer(ctx context.Context, settings *entity.IssuerSettings) error
}
