package billing

import (
	"time"

	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/entity"
)

// BillableDays calcula los días facturables de un animal en el periodo.
// applicable es false cuando el animal entró después del fin de mes o salió antes del inicio;
// en ese caso no participa en la factura. Un resultado de 0 días con applicable=true tampoco
// genera línea (entrada y salida el mismo día sin cobrar ninguno de los dos).
func BillableDays(entry time.Time, exit *time.Time, p Period, rules entity.ContractRules) (days int, applicable bool) {
	monthStart, monthEnd := p.Start(), p.End()
	entryDay := DateOnly(entry)

	var exitDay time.Time
	hasExit := exit != nil
	if hasExit {
		exitDay = DateOnly(*exit)
	}

	if entryDay.After(monthEnd) {
		return 0, false
	}
	if hasExit && exitDay.Before(monthStart) {
		return 0, false
	}

	effectiveStart := entryDay
	if monthStart.After(effectiveStart) {
		effectiveStart = monthStart
	}
	effectiveEnd := monthEnd
	if hasExit && exitDay.Before(monthEnd) {
		effectiveEnd = exitDay
	}

	days = daysBetween(effectiveStart, effectiveEnd) + 1

	if p.Contains(entryDay) && !rules.ChargeEntryDay {
		days--
	}
	if hasExit && p.Contains(exitDay) && !rules.ChargeExitDay {
		days--
	}
	if days < 0 {
		days = 0
	}
	return days, true
}
