package dto

import (
	"encoding/json"
	"time"

	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/entity"
)

// ClientRequest body para POST/PUT /api/clients.
// ContractRules ausente = reglas por defecto; claves ausentes dentro también toman el defecto.
type ClientRequest struct {
	FiscalName    string          `json:"fiscal_name"`
	NIF           string          `json:"nif"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	Initials      string          `json:"initials"`
	ContractRules json.RawMessage `json:"contract_rules,omitempty" swaggertype:"object"`
}

// ClientResponse cliente en respuestas.
type ClientResponse struct {
	ID            string               `json:"id"`
	FiscalName    string               `json:"fiscal_name"`
	NIF           string               `json:"nif"`
	Email         string               `json:"email"`
	Phone         string               `json:"phone"`
	Address       string               `json:"address"`
	Initials      string               `json:"initials"`
	ContractRules entity.ContractRules `json:"contract_rules"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// InitialsResponse respuesta de GET /api/clients/initials.
type InitialsResponse struct {
	Initials string `json:"initials"`
}

// NewClientResponse mapea la entidad a la respuesta.
func NewClientResponse(c *entity.Client) ClientResponse {
	return ClientResponse{
		ID:            c.ID,
		FiscalName:    c.FiscalName,
		NIF:           c.NIF,
		Email:         c.Email,
		Phone:         c.Phone,
		Address:       c.Address,
		Initials:      c.Initials,
		ContractRules: c.ContractRules,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
