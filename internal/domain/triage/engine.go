package triage

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/safetriage/safetriage/internal/platform/nlp"
)

// FallbackMarker is appended to the reasoning when the engine runs as the
// fallback for a failed AI-assisted evaluation.
const FallbackMarker = "Fallback to Standard Protocol"

// severePainThreshold is the 0-10 pain score that is emergent on its own.
const severePainThreshold = 7

// maxKeywordsShown caps how many matched danger phrases appear in a single
// reasoning line.
const maxKeywordsShown = 3

// highRiskConcepts force an emergent classification when matched, in the
// order their reasons are reported.
var highRiskConcepts = []struct {
	concept nlp.Concept
	label   string
}{
	{nlp.ConceptChestPain, "chest pain"},
	{nlp.ConceptStroke, "stroke symptoms"},
	{nlp.ConceptPsych, "psychiatric emergency"},
	{nlp.ConceptSOB, "shortness of breath"},
	{nlp.ConceptCardiac, "cardiac complaint"},
	{nlp.ConceptDiabetic, "diabetic emergency"},
	{nlp.ConceptPregnancy, "pregnancy-related complaint"},
}

// Engine is the ESI classification pipeline. It holds only immutable,
// compiled tables, so one Engine may serve any number of concurrent
// evaluations without synchronization.
type Engine struct {
	nlp *nlp.Processor
	log zerolog.Logger
}

// NewEngine builds an engine over a compiled lexicon processor.
func NewEngine(p *nlp.Processor) *Engine {
	return &Engine{nlp: p, log: zerolog.Nop()}
}

// SetLogger attaches an optional logger for per-evaluation debug events.
// Logging never influences the evaluation result.
func (e *Engine) SetLogger(l zerolog.Logger) {
	e.log = l
}

// Evaluate classifies one patient record. It is total over any well-formed
// record and always returns exactly one result: three stages run in strict
// precedence order, and once a stage fires, no later stage can downgrade it.
func (e *Engine) Evaluate(p PatientRecord) TriageResult {
	symptoms := e.nlp.ExtractSymptoms(p.ChiefComplaintText)
	dangerKeywords := e.nlp.DetectDangerKeywords(p.ChiefComplaintText)

	var reasoning, redFlags []string

	// Stage 1: resuscitation. Critical vitals and life-threat keywords are
	// checked independently so the result carries every reason from both.
	resuscitate := false
	if critical, reasons := CriticalVitals(p.Age, p.Vitals); critical {
		resuscitate = true
		reasoning = append(reasoning, reasons...)
		redFlags = append(redFlags, reasons...)
	}
	if len(dangerKeywords) > 0 {
		resuscitate = true
		shown := dangerKeywords
		if len(shown) > maxKeywordsShown {
			shown = shown[:maxKeywordsShown]
		}
		joined := strings.Join(shown, ", ")
		reasoning = append(reasoning, "critical keywords: "+joined)
		redFlags = append(redFlags, "life threat indicated: "+joined)
	}
	if resuscitate {
		return e.finish(p, Resuscitation, reasoning, redFlags)
	}

	// Stage 2: emergent. Each trigger is evaluated on its own so the
	// reasoning lists everything that fired, not just the first hit.
	emergent := false
	if p.Vitals.PainScore != nil && *p.Vitals.PainScore >= severePainThreshold {
		emergent = true
		reasoning = append(reasoning, fmt.Sprintf("severe pain: %d/10", *p.Vitals.PainScore))
	}
	if p.Vitals.GCS != nil && *p.Vitals.GCS >= 9 && *p.Vitals.GCS < 15 {
		emergent = true
		reasoning = append(reasoning, fmt.Sprintf("altered mental status: GCS %d", *p.Vitals.GCS))
	}
	if danger, reasons := DangerZoneVitals(p.Age, p.Vitals); danger {
		emergent = true
		reasoning = append(reasoning, reasons...)
		redFlags = append(redFlags, "abnormal vital signs")
	}
	var highRisk []string
	for _, hr := range highRiskConcepts {
		if symptoms.Has(hr.concept) {
			highRisk = append(highRisk, hr.label)
		}
	}
	if len(highRisk) > 0 {
		emergent = true
		reasoning = append(reasoning, "high-risk presentation: "+strings.Join(highRisk, ", "))
	}
	if emergent {
		return e.finish(p, Emergent, reasoning, redFlags)
	}

	// Stage 3: levels 3-5 on anticipated resource count alone.
	resources := EstimateResources(symptoms, p.Vitals)
	switch {
	case resources >= 2:
		reasoning = append(reasoning, fmt.Sprintf("approximately %d resources anticipated", resources))
		return e.finish(p, Urgent, reasoning, redFlags)
	case resources == 1:
		reasoning = append(reasoning, "a single resource anticipated")
		return e.finish(p, LessUrgent, reasoning, redFlags)
	default:
		reasoning = append(reasoning, "no acute resources anticipated")
		return e.finish(p, NonUrgent, reasoning, redFlags)
	}
}

// EvaluateFallback runs the standard protocol on behalf of a failed
// AI-assisted evaluation. The result is identical to Evaluate except that
// the reasoning records the fallback.
func (e *Engine) EvaluateFallback(p PatientRecord) TriageResult {
	result := e.Evaluate(p)
	result.Reasoning = append(result.Reasoning, FallbackMarker)
	return result
}

func (e *Engine) finish(p PatientRecord, level TriageLevel, reasoning, redFlags []string) TriageResult {
	meta := MetadataFor(level)
	result := TriageResult{
		Level:             level,
		ColorCode:         meta.ColorCode,
		LabelEN:           meta.LabelEN,
		LabelAR:           meta.LabelAR,
		Description:       meta.Description,
		RecommendedAction: meta.RecommendedAction,
		TimeToPhysician:   meta.TimeToPhysician,
		RedFlags:          redFlags,
		Reasoning:         reasoning,
		Confidence:        "High",
	}
	e.log.Debug().
		Int("level", int(level)).
		Float64("age", p.Age).
		Str("band", string(BandFor(p.Age))).
		Strs("reasoning", reasoning).
		Msg("triage evaluated")
	return result
}
