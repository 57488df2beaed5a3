package billing

import (
	"fmt"
	"strings"
)

// BaseNumber "<INICIALES>-<MM>-<AAAA>".
func BaseNumber(initials string, p Period) string {
	return fmt.Sprintf("%s-%02d-%d", initials, p.Month, p.Year)
}

// NextNumber elige el número a asignar dado el conjunto de números existentes que empiezan por base.
// Sin coincidencias devuelve base; si no, el primer base-k libre con k = 1, 2, …
func NextNumber(base string, existing []string) string {
	taken := make(map[string]struct{}, len(existing))
	for _, n := range existing {
		if strings.HasPrefix(n, base) {
			taken[n] = struct{}{}
		}
	}
	if len(taken) == 0 {
		return base
	}
	for k := 1; ; k++ {
		candidate := fmt.Sprintf("%s-%d", base, k)
		if _, ok := taken[candidate]; !ok {
			return candidate
		}
	}
}
