// Package format formatea importes y fechas para documentos y exportaciones (es-ES).
// Solo presentación: nunca se usa en cálculos.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Spanish)

var shortMonths = [...]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"}

var longMonths = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// Currency "1.234.567,89 €" con dos decimales.
func Currency(d decimal.Decimal) string {
	return printer.Sprintf("%.2f €", d.Round(2).InexactFloat64())
}

// Number importe sin símbolo, dos decimales.
func Number(d decimal.Decimal) string {
	return printer.Sprintf("%.2f", d.Round(2).InexactFloat64())
}

// Percent "10 %" / "2,5 %".
func Percent(d decimal.Decimal) string {
	if d.IsInteger() {
		return fmt.Sprintf("%d %%", d.IntPart())
	}
	return strings.Replace(d.String(), ".", ",", 1) + " %"
}

// Date "14 ene 2026". Tabla propia de meses abreviados: el año no lleva separador de miles.
func Date(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), shortMonths[t.Month()-1], t.Year())
}

// DatePtr como Date; nil → "-".
func DatePtr(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return Date(*t)
}

// MonthYear "Enero 2026".
func MonthYear(month, year int) string {
	if month < 1 || month > 12 {
		return fmt.Sprintf("%02d/%d", month, year)
	}
	return fmt.Sprintf("%s %d", longMonths[month-1], year)
}
