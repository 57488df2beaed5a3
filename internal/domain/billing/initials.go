package billing

import "strings"

// MaxInitials longitud máxima de las iniciales de cliente.
const MaxInitials = 3

// GenerateInitials sugiere iniciales a partir del nombre fiscal:
// una palabra → sus 3 primeras letras; varias → primera letra de las dos primeras.
func GenerateInitials(fiscalName string) string {
	words := strings.Fields(strings.ToUpper(fiscalName))
	switch len(words) {
	case 0:
		return ""
	case 1:
		return truncateRunes(words[0], MaxInitials)
	default:
		return truncateRunes(words[0], 1) + truncateRunes(words[1], 1)
	}
}

// NormalizeInitials aplica a la entrada del usuario mayúsculas y máximo 3 caracteres.
func NormalizeInitials(s string) string {
	return truncateRunes(strings.ToUpper(strings.TrimSpace(s)), MaxInitials)
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		r = r[:n]
	}
	return string(r)
}
