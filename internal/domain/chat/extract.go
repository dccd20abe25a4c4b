package chat

import (
	"strings"

	"github.com/lookia/lookia/internal/domain/look"
)

var (
	occasionKeywords    = []string{"trabalho", "encontro", "passeio", "festa", "evento", "esporte", "viagem", "casa"}
	styleKeywords       = []string{"casual", "formal", "elegante", "descontraído", "moderno", "clássico"}
	restrictionTriggers = []string{"não quero", "não gosto"}
)

// Extract derives profile updates from a message by keyword membership.
// When several keywords of a category match, the last one in list order wins.
func Extract(message string) look.Profile {
	lower := strings.ToLower(message)
	var updates look.Profile

	for _, kw := range occasionKeywords {
		if strings.Contains(lower, kw) {
			updates.Ocasiao = kw
		}
	}
	for _, kw := range styleKeywords {
		if strings.Contains(lower, kw) {
			updates.EstiloDesejado = kw
		}
	}
	if restriction := extractRestriction(lower); restriction != "" {
		updates.Restricoes = restriction
	}
	return updates
}

// extractRestriction returns the text between the first trigger phrase and the
// next trigger, if any.
func extractRestriction(lower string) string {
	start, width := firstTrigger(lower)
	if start < 0 {
		return ""
	}
	rest := lower[start+width:]
	if next, _ := firstTrigger(rest); next >= 0 {
		rest = rest[:next]
	}
	return strings.TrimSpace(rest)
}

func firstTrigger(s string) (int, int) {
	idx, width := -1, 0
	for _, trigger := range restrictionTriggers {
		if i := strings.Index(s, trigger); i >= 0 && (idx < 0 || i < idx) {
			idx, width = i, len(trigger)
		}
	}
	return idx, width
}
