package triage

import "github.com/safetriage/safetriage/internal/platform/nlp"

// resourceWeights is the anticipated intervention count per matched concept
// (labs, imaging, IV medication, consults). Concepts that already force an
// emergent classification on their own carry no weight here: the estimator
// only runs once levels 1 and 2 have been ruled out.
var resourceWeights = map[nlp.Concept]int{
	nlp.ConceptAbdominal:  2, // labs + possible imaging
	nlp.ConceptChestPain:  2, // ECG + troponin
	nlp.ConceptCardiac:    2, // ECG + labs
	nlp.ConceptSOB:        2, // chest x-ray + blood gas
	nlp.ConceptTrauma:     2, // x-ray + possible labs
	nlp.ConceptStroke:     2, // CT + labs
	nlp.ConceptFever:      1, // labs
	nlp.ConceptLaceration: 1, // suture supplies
	nlp.ConceptAllergy:    1, // IV/IM medication
	nlp.ConceptUTI:        1, // urinalysis + possible culture
	nlp.ConceptBurn:       1, // wound care
	nlp.ConceptBiteSting:  1, // possible antivenom/antibiotics
}

// feverTemp is the measured temperature, in °C, that counts as one lab
// workup even when the complaint text never mentions fever.
const feverTemp = 38.0

// EstimateResources sums the anticipated resource count for the matched
// concepts, with a temperature fallback so an unmentioned fever still
// contributes. Additive with no cap; adding a concept never lowers the count.
func EstimateResources(symptoms nlp.ConceptSet, v Vitals) int {
	total := 0
	for concept := range symptoms {
		total += resourceWeights[concept]
	}
	if v.Temp != nil && *v.Temp >= feverTemp && !symptoms.Has(nlp.ConceptFever) {
		total += resourceWeights[nlp.ConceptFever]
	}
	return total
}
