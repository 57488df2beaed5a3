package entity

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// El JSONB histórico guarda importes y tasas como números, no como strings.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// ContractRules reglas de facturación pactadas con un cliente (clients.contract_rules).
type ContractRules struct {
	DailyRate      decimal.Decimal `json:"daily_rate"`     // €/animal/día
	IVARate        decimal.Decimal `json:"iva_rate"`       // porcentaje
	RetentionRate  decimal.Decimal `json:"retention_rate"` // porcentaje
	ChargeEntryDay bool            `json:"charge_entry_day"`
	ChargeExitDay  bool            `json:"charge_exit_day"`
}

// DefaultContractRules devuelve un valor nuevo con las reglas por defecto en cada llamada.
func DefaultContractRules() ContractRules {
	return ContractRules{
		DailyRate:      decimal.RequireFromString("2.5"),
		IVARate:        decimal.NewFromInt(10),
		RetentionRate:  decimal.NewFromInt(2),
		ChargeEntryDay: true,
		ChargeExitDay:  false,
	}
}

// Validate comprueba que ninguna tasa sea negativa.
func (r ContractRules) Validate() error {
	if r.DailyRate.IsNegative() {
		return fmt.Errorf("daily_rate negativo: %s", r.DailyRate)
	}
	if r.IVARate.IsNegative() {
		return fmt.Errorf("iva_rate negativo: %s", r.IVARate)
	}
	if r.RetentionRate.IsNegative() {
		return fmt.Errorf("retention_rate negativo: %s", r.RetentionRate)
	}
	return nil
}

// UnmarshalJSON completa con valores por defecto las claves ausentes (filas antiguas o parciales).
func (r *ContractRules) UnmarshalJSON(b []byte) error {
	var in struct {
		DailyRate      *decimal.Decimal `json:"daily_rate"`
		IVARate        *decimal.Decimal `json:"iva_rate"`
		RetentionRate  *decimal.Decimal `json:"retention_rate"`
		ChargeEntryDay *bool            `json:"charge_entry_day"`
		ChargeExitDay  *bool            `json:"charge_exit_day"`
	}
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	out := DefaultContractRules()
	if in.DailyRate != nil {
		out.DailyRate = *in.DailyRate
	}
	if in.IVARate != nil {
		out.IVARate = *in.IVARate
	}
	if in.RetentionRate != nil {
		out.RetentionRate = *in.RetentionRate
	}
	if in.ChargeEntryDay != nil {
		out.ChargeEntryDay = *in.ChargeEntryDay
	}
	if in.ChargeExitDay != nil {
		out.ChargeExitDay = *in.ChargeExitDay
	}
	*r = out
	return nil
}

// Client representa un cliente de pupilaje (propietario de los animales).
type Client struct {
	ID            string
	FiscalName    string
	NIF           string
	Email         string
	Phone         string
	Address       string
	Initials      string // 3 caracteres máx., base de la numeración de facturas
	ContractRules ContractRules
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
