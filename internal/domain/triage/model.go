package triage

// Gender of the patient as recorded at intake.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// TriageLevel is the ESI acuity level; 1 is the most severe.
type TriageLevel int

const (
	Resuscitation TriageLevel = 1
	Emergent      TriageLevel = 2
	Urgent        TriageLevel = 3
	LessUrgent    TriageLevel = 4
	NonUrgent     TriageLevel = 5
)

// Vitals is one set of triage measurements. A nil field means the vital was
// not measured; every threshold check skips absent fields rather than
// assuming a default.
type Vitals struct {
	HR        *int     `json:"hr,omitempty"`         // heart rate, bpm
	RR        *int     `json:"rr,omitempty"`         // respiratory rate, breaths/min
	SpO2      *float64 `json:"spo2,omitempty"`       // oxygen saturation, %
	Temp      *float64 `json:"temp,omitempty"`       // temperature, °C
	SBP       *int     `json:"sbp,omitempty"`        // systolic blood pressure, mmHg
	DBP       *int     `json:"dbp,omitempty"`        // diastolic blood pressure, mmHg
	GCS       *int     `json:"gcs,omitempty"`        // Glasgow Coma Scale, 3-15
	PainScore *int     `json:"pain_score,omitempty"` // pain scale, 0-10
}

// PatientRecord is the validated intake snapshot the engine evaluates. Age is
// in years; fractional values encode infants (0.25 = 3 months). The history
// flags are informational only and are not consulted by any rule.
type PatientRecord struct {
	Age                float64 `json:"age"`
	Gender             Gender  `json:"gender"`
	ChiefComplaintText string  `json:"chief_complaint_text"`
	Vitals             Vitals  `json:"vitals"`
	HistoryCardiac     bool    `json:"history_cardiac"`
	HistoryStroke      bool    `json:"history_stroke"`
	ImmunoCompromised  bool    `json:"immuno_compromised"`
}

// TriageResult is the complete classification output for one evaluation.
type TriageResult struct {
	Level             TriageLevel `json:"level"`
	ColorCode         string      `json:"color_code"`
	LabelEN           string      `json:"label_en"`
	LabelAR           string      `json:"label_ar"`
	Description       string      `json:"description"`
	RecommendedAction string      `json:"recommended_action"`
	TimeToPhysician   string      `json:"time_to_physician"`
	RedFlags          []string    `json:"red_flags"`
	Reasoning         []string    `json:"reasoning"`
	Confidence        string      `json:"confidence"`
}

// RequiresAlert reports whether the level warrants immediate notification of
// the care team. Alerting callers gate on this alone.
func (r *TriageResult) RequiresAlert() bool {
	return r.Level <= Emergent
}
