package postgres

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern arma el patrón LIKE/ILIKE "contiene" escapando los comodines del usuario.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
