package dto

import "github.com/ganaderia-aureo/pupilaje-api/internal/domain/entity"

// IssuerSettingsDTO datos del emisor (GET/PUT /api/settings/issuer).
type IssuerSettingsDTO struct {
	FiscalName string `json:"fiscal_name"`
	NIF        string `json:"nif"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
}

// NewIssuerSettingsDTO mapea la entidad.
func NewIssuerSettingsDTO(s entity.IssuerSettings) IssuerSettingsDTO {
	return IssuerSettingsDTO{
		FiscalName: s.FiscalName,
		NIF:        s.NIF,
		Address:    s.Address,
		Phone:      s.Phone,
		Email:      s.Email,
	}
}
