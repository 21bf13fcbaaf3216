package nlp

import (
	"fmt"
	"strings"
)

// ConceptSet is the membership-only result of symptom extraction.
type ConceptSet map[Concept]bool

// Has reports whether the concept was matched.
func (s ConceptSet) Has(c Concept) bool { return s[c] }

// Processor scans complaint text against a compiled lexicon and danger
// vocabulary. All patterns are compiled once at construction; the value is
// immutable afterwards and safe for concurrent use without synchronization.
type Processor struct {
	concepts map[Concept][]pattern
	danger   []pattern
}

// NewProcessor compiles the given lexicon and danger vocabulary. A malformed
// pattern is a construction-time error so a broken table can never reach an
// evaluation.
func NewProcessor(lex Lexicon, danger []string) (*Processor, error) {
	concepts := make(map[Concept][]pattern, len(lex))
	for concept, surfaces := range lex {
		if len(surfaces) == 0 {
			return nil, fmt.Errorf("concept %q has no patterns", concept)
		}
		compiled, err := compilePatterns(surfaces)
		if err != nil {
			return nil, fmt.Errorf("concept %q: %w", concept, err)
		}
		concepts[concept] = compiled
	}
	compiled, err := compilePatterns(danger)
	if err != nil {
		return nil, fmt.Errorf("danger vocabulary: %w", err)
	}
	return &Processor{concepts: concepts, danger: compiled}, nil
}

// NewDefaultProcessor compiles the built-in bilingual lexicon.
func NewDefaultProcessor() (*Processor, error) {
	return NewProcessor(DefaultLexicon(), DefaultDangerVocabulary())
}

// ExtractSymptoms returns the set of concepts whose surface forms occur in
// the text. The first matching pattern settles a concept; a concept is
// reported at most once regardless of how often it appears. Negation is not
// applied (see NegationTerms).
func (p *Processor) ExtractSymptoms(text string) ConceptSet {
	detected := make(ConceptSet)
	if text == "" {
		return detected
	}
	lowered := strings.ToLower(text)
	for concept, patterns := range p.concepts {
		for _, pat := range patterns {
			if pat.matches(lowered) {
				detected[concept] = true
				break
			}
		}
	}
	return detected
}

// DetectDangerKeywords returns the matched life-threat phrases in vocabulary
// order, each at most once. Any non-empty result mandates the most severe
// triage level regardless of vitals.
func (p *Processor) DetectDangerKeywords(text string) []string {
	if text == "" {
		return nil
	}
	lowered := strings.ToLower(text)
	var matches []string
	seen := make(map[string]bool)
	for _, pat := range p.danger {
		if seen[pat.surface] {
			continue
		}
		if pat.matches(lowered) {
			seen[pat.surface] = true
			matches = append(matches, pat.surface)
		}
	}
	return matches
}
