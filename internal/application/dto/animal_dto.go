package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/ganaderia-aureo/pupilaje-api/internal/domain"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/entity"
)

// AnimalRequest body para POST/PUT /api/animals. Fechas en formato YYYY-MM-DD.
type AnimalRequest struct {
	Crotal       string           `json:"crotal"`
	ClientID     string           `json:"client_id"`
	BirthDate    string           `json:"birth_date,omitempty"`
	EntryDate    string           `json:"entry_date"`
	ExitDate     string           `json:"exit_date,omitempty"`
	Status       string           `json:"status,omitempty"`
	ReproStatus  string           `json:"repro_status,omitempty"`
	ReproData    entity.ReproData `json:"repro_data"`
	Observations string           `json:"observations,omitempty"`
}

// AnimalListQuery filtros de GET /api/animals y /api/animals/export.
type AnimalListQuery struct {
	ClientID    string `query:"client_id"`
	Status      string `query:"status"`
	ReproStatus string `query:"repro_status"`
	Crotal      string `query:"crotal"`
	EntryFrom   string `query:"entry_from"`
	EntryTo     string `query:"entry_to"`
	Format      string `query:"format"` // solo export: xlsx | pdf
}

// AnimalResponse animal en respuestas.
type AnimalResponse struct {
	ID           string           `json:"id"`
	Crotal       string           `json:"crotal"`
	ClientID     string           `json:"client_id"`
	BirthDate    *string          `json:"birth_date"`
	EntryDate    string           `json:"entry_date"`
	ExitDate     *string          `json:"exit_date"`
	Status       string           `json:"status"`
	ReproStatus  string           `json:"repro_status"`
	ReproData    entity.ReproData `json:"repro_data"`
	Observations string           `json:"observations"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// ToEntity convierte el request; las fechas inválidas devuelven domain.ErrInvalidInput.
func (r AnimalRequest) ToEntity() (*entity.Animal, error) {
	a := &entity.Animal{
		Crotal:       r.Crotal,
		ClientID:     strings.TrimSpace(r.ClientID),
		Status:       strings.ToUpper(strings.TrimSpace(r.Status)),
		ReproStatus:  strings.ToUpper(strings.TrimSpace(r.ReproStatus)),
		ReproData:    r.ReproData,
		Observations: r.Observations,
	}
	var err error
	if a.BirthDate, err = ParseOptionalDate("birth_date", r.BirthDate); err != nil {
		return nil, err
	}
	if a.ExitDate, err = ParseOptionalDate("exit_date", r.ExitDate); err != nil {
		return nil, err
	}
	entry, err := ParseOptionalDate("entry_date", r.EntryDate)
	if err != nil {
		return nil, err
	}
	if entry != nil {
		a.EntryDate = *entry
	}
	return a, nil
}

// ParseOptionalDate "" → nil; formato distinto de YYYY-MM-DD → ErrInvalidInput.
func ParseOptionalDate(field, s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q no es una fecha YYYY-MM-DD", domain.ErrInvalidInput, field, s)
	}
	return &t, nil
}

// NewAnimalResponse mapea la entidad a la respuesta.
func NewAnimalResponse(a *entity.Animal) AnimalResponse {
	return AnimalResponse{
		ID:           a.ID,
		Crotal:       a.Crotal,
		ClientID:     a.ClientID,
		BirthDate:    formatOptionalDate(a.BirthDate),
		EntryDate:    a.EntryDate.Format(DateLayout),
		ExitDate:     formatOptionalDate(a.ExitDate),
		Status:       a.Status,
		ReproStatus:  a.ReproStatus,
		ReproData:    a.ReproData,
		Observations: a.Observations,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}

// AnimalRosterRow fila del listado exportable (XLSX/PDF) con el nombre del cliente resuelto.
type AnimalRosterRow struct {
	Crotal       string
	ClientName   string
	BirthDate    *time.Time
	EntryDate    time.Time
	ExitDate     *time.Time
	Status       string
	ReproStatus  string
	Insem1Date   string
	Insem1Bull   string
	Observations string
}

// RosterFile documento exportado.
type RosterFile struct {
	Content     []byte
	Filename    string
	ContentType string
}
