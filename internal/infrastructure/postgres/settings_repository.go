package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/entity"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// app_settings tiene una única fila.
const issuerSettingsID = 1

// SettingsRepo implementación de SettingsRepository.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// GetIssuer lee los datos del emisor; nil, nil si la fila no existe.
func (r *SettingsRepo) GetIssuer(ctx context.Context) (*entity.IssuerSettings, error) {
	query := `
		SELECT fiscal_name, nif, address, phone, email, updated_at
		FROM app_settings WHERE id = $1`
	var s entity.IssuerSettings
	err := r.q.QueryRow(ctx, query, issuerSettingsID).Scan(
		&s.FiscalName, &s.NIF, &s.Address, &s.Phone, &s.Email, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get issuer settings: %w", err)
	}
	return &s, nil
}

// SaveIssuer inserta o actualiza la fila única.
func (r *SettingsRepo) SaveIssuer(ctx context.Context, settings *entity.IssuerSettings) error {
	query := `
		INSERT INTO app_settings (id, fiscal_name, nif, address, phone, email, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		ON CONFLICT (id) DO UPDATE
		SET fiscal_name = EXCLUDED.fiscal_name,
		    nif         = EXCLUDED.nif,
		    address     = EXCLUDED.address,
		    phone       = EXCLUDED.phone,
		    email       = EXCLUDED.email,
		    updated_at  = now()
		RETURNING updated_at`
	err := r.q.QueryRow(ctx, query, issuerSettingsID,
		settings.FiscalName, settings.NIF, settings.Address, settings.Phone, settings.Email,
	).Scan(&settings.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save issuer settings: %w", err)
	}
	return nil
}
