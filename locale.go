package fixeddecimal

import (
	"strings"

	"golang.org/x/text/language"
)

// localeChain returns the locale followed by its fallback parents, most
// specific first, e.g. "de-CH" -> ["de-CH", "de"].
func localeChain(locale string) []string {
	if locale == "" {
		return nil
	}

	chain := []string{locale}
	seen := map[string]struct{}{locale: {}}

	if tag, err := language.Parse(locale); err == nil {
		canonical := tag.String()
		if _, ok := seen[canonical]; !ok {
			chain = append(chain, canonical)
			seen[canonical] = struct{}{}
		}
		for parent := tag.Parent(); parent != language.Und; parent = parent.Parent() {
			value := parent.String()
			if value == "" || value == "und" {
				break
			}
			if _, ok := seen[value]; ok {
				break
			}
			chain = append(chain, value)
			seen[value] = struct{}{}
		}
		return chain
	}

	// Unparseable tags still get a crude structural fallback.
	for trimmed := locale; ; {
		idx := strings.LastIndex(trimmed, "-")
		if idx <= 0 {
			break
		}
		trimmed = trimmed[:idx]
		if _, ok := seen[trimmed]; ok {
			break
		}
		chain = append(chain, trimmed)
		seen[trimmed] = struct{}{}
	}
	return chain
}
