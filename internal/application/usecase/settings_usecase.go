package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/ganaderia-aureo/pupilaje-api/internal/application/dto"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/entity"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/repository"
)

// SettingsUseCase datos del emisor. Sin fila guardada se usan los valores de configuración.
type SettingsUseCase struct {
	repo     repository.SettingsRepository
	defaults entity.IssuerSettings
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository, defaults entity.IssuerSettings) *SettingsUseCase {
	return &SettingsUseCase{repo: repo, defaults: defaults}
}

// Issuer devuelve los datos vigentes del emisor.
func (uc *SettingsUseCase) Issuer(ctx context.Context) (entity.IssuerSettings, error) {
	s, err := uc.repo.GetIssuer(ctx)
	if err != nil {
		return entity.IssuerSettings{}, err
	}
	if s == nil {
		return uc.defaults, nil
	}
	return *s, nil
}

// GetIssuer como Issuer, en formato de respuesta.
func (uc *SettingsUseCase) GetIssuer(ctx context.Context) (*dto.IssuerSettingsDTO, error) {
	s, err := uc.Issuer(ctx)
	if err != nil {
		return nil, err
	}
	out := dto.NewIssuerSettingsDTO(s)
	return &out, nil
}

// SaveIssuer guarda los datos del emisor. fiscal_name y nif son obligatorios.
func (uc *SettingsUseCase) SaveIssuer(ctx context.Context, in dto.IssuerSettingsDTO) (*dto.IssuerSettingsDTO, error) {
	s := &entity.IssuerSettings{
		FiscalName: strings.TrimSpace(in.FiscalName),
		NIF:        strings.ToUpper(strings.TrimSpace(in.NIF)),
		Address:    strings.TrimSpace(in.Address),
		Phone:      strings.TrimSpace(in.Phone),
		Email:      strings.TrimSpace(in.Email),
	}
	if s.FiscalName == "" || s.NIF == "" {
		return nil, fmt.Errorf("%w: fiscal_name y nif son obligatorios", domain.ErrInvalidInput)
	}
	if err := uc.repo.SaveIssuer(ctx, s); err != nil {
		return nil, err
	}
	out := dto.NewIssuerSettingsDTO(*s)
	return &out, nil
}
