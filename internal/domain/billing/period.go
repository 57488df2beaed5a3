// Package billing contiene el motor de facturación de pupilaje: prorrateo de días por animal,
// agregación en líneas de factura, descuentos, ciclo de vida y numeración.
// Todas las funciones son puras respecto a un periodo explícito; ninguna lee el reloj.
package billing

import (
	"fmt"
	"time"

	"github.com/ganaderia-aureo/pupilaje-api/internal/domain"
)

// Period mes natural de facturación.
type Period struct {
	Month int // 1-12
	Year  int
}

// NewPeriod valida mes y año.
func NewPeriod(month, year int) (Period, error) {
	if month < 1 || month > 12 {
		return Period{}, fmt.Errorf("%w: mes %d fuera de rango", domain.ErrInvalidInput, month)
	}
	if year < 1900 || year > 9999 {
		return Period{}, fmt.Errorf("%w: año %d fuera de rango", domain.ErrInvalidInput, year)
	}
	return Period{Month: month, Year: year}, nil
}

// Start primer día del periodo (00:00 UTC).
func (p Period) Start() time.Time {
	return time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
}

// End último día del periodo (00:00 UTC); las comparaciones son por fecha de calendario.
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, -1)
}

// Days número de días naturales del periodo.
func (p Period) Days() int {
	return p.End().Day()
}

// Contains indica si la fecha (solo calendario) cae dentro del periodo.
func (p Period) Contains(t time.Time) bool {
	d := DateOnly(t)
	return !d.Before(p.Start()) && !d.After(p.End())
}

func (p Period) String() string {
	return fmt.Sprintf("%02d/%d", p.Month, p.Year)
}

// DateOnly descarta la hora y la zona: conserva año, mes y día tal como se leen en t.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from) / (24 * time.Hour))
}
