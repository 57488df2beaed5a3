// Package herd reglas de dominio del registro de animales.
package herd

import (
	"fmt"
	"strings"

	"github.com/ganaderia-aureo/pupilaje-api/internal/domain"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/entity"
)

// Validate comprueba campos obligatorios, estados y coherencia de fechas.
func Validate(a *entity.Animal) error {
	if a == nil {
		return fmt.Errorf("%w: animal nulo", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(a.Crotal) == "" {
		return fmt.Errorf("%w: crotal requerido", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(a.ClientID) == "" {
		return fmt.Errorf("%w: client_id requerido", domain.ErrInvalidInput)
	}
	if a.EntryDate.IsZero() {
		return fmt.Errorf("%w: entry_date requerido", domain.ErrInvalidInput)
	}
	if a.ExitDate != nil && a.ExitDate.Before(a.EntryDate) {
		return fmt.Errorf("%w: exit_date anterior a entry_date", domain.ErrInvalidInput)
	}
	if !entity.ValidAnimalStatus(a.Status) {
		return fmt.Errorf("%w: estado %q desconocido", domain.ErrInvalidInput, a.Status)
	}
	if !entity.ValidReproStatus(a.ReproStatus) {
		return fmt.Errorf("%w: estado reproductivo %q desconocido", domain.ErrInvalidInput, a.ReproStatus)
	}
	return nil
}

// Normalize rellena valores por defecto y aplica la transición reproductiva automática:
// un animal EMPTY con fecha de primera inseminación pasa a INSEMINATED.
func Normalize(a *entity.Animal) {
	a.Crotal = strings.TrimSpace(a.Crotal)
	if a.Status == "" {
		a.Status = entity.AnimalStatusActive
	}
	if a.ReproStatus == "" {
		a.ReproStatus = entity.ReproStatusEmpty
	}
	if a.ReproStatus == entity.ReproStatusEmpty && strings.TrimSpace(a.ReproData.Insem1Date) != "" {
		a.ReproStatus = entity.ReproStatusInseminated
	}
}
