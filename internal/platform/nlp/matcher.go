package nlp

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// pattern is one compiled surface form. Latin-script forms carry a
// case-insensitive word-boundary regexp so that e.g. "cut" cannot fire
// inside "acute". Arabic-script forms match by substring containment,
// because dialectal Arabic complaint text is not reliably word-tokenized.
type pattern struct {
	surface string
	re      *regexp.Regexp
}

func compilePattern(surface string) (pattern, error) {
	if strings.TrimSpace(surface) == "" {
		return pattern{}, fmt.Errorf("empty pattern")
	}
	if containsArabic(surface) {
		return pattern{surface: surface}, nil
	}
	re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(surface) + `\b`)
	if err != nil {
		return pattern{}, fmt.Errorf("compile pattern %q: %w", surface, err)
	}
	return pattern{surface: surface, re: re}, nil
}

func compilePatterns(surfaces []string) ([]pattern, error) {
	patterns := make([]pattern, 0, len(surfaces))
	for _, s := range surfaces {
		p, err := compilePattern(s)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, p)
	}
	return patterns, nil
}

// matches reports whether the pattern occurs in the text. The caller passes
// the already-lowercased text so one complaint is lowered once per scan.
func (p pattern) matches(lowered string) bool {
	if p.re != nil {
		return p.re.MatchString(lowered)
	}
	return strings.Contains(lowered, p.surface)
}

func containsArabic(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Arabic, r) {
			return true
		}
	}
	return false
}
