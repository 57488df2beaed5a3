package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/billing"
)

func TestBaseNumber(t *testing.T) {
	assert.Equal(t, "CC-01-2026", billing.BaseNumber("CC", january2026()))
	assert.Equal(t, "GAN-11-2025", billing.BaseNumber("GAN", billing.Period{Month: 11, Year: 2025}))
}

func TestNextNumber(t *testing.T) {
	base := "CC-01-2026"
	tests := []struct {
		name     string
		existing []string
		want     string
	}{
		{"primera factura", nil, "CC-01-2026"},
		{"segunda factura", []string{"CC-01-2026"}, "CC-01-2026-1"},
		{"hueco en la secuencia", []string{"CC-01-2026", "CC-01-2026-1", "CC-01-2026-3"}, "CC-01-2026-2"},
		{"ignora otros prefijos", []string{"CB-01-2026", "CC-02-2026"}, "CC-01-2026"},
		{"solo sufijos existentes", []string{"CC-01-2026-1"}, "CC-01-2026-2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, billing.NextNumber(base, tt.existing))
		})
	}
}
