package triage

// The vital-sign thresholds live here as data so they can be audited and
// revised without touching the decision logic. The values follow the ESI v5
// reference bands in use in Egyptian emergency departments; pediatric rows
// are PALS-consistent.

// AgeBand identifies one row of the threshold tables.
type AgeBand string

const (
	BandInfant  AgeBand = "infant"  // < 1 year
	BandToddler AgeBand = "toddler" // 1 to < 5 years
	BandChild   AgeBand = "child"   // 5 to < 14 years
	BandAdult   AgeBand = "adult"   // >= 14 years
)

// BandFor maps an age in years onto its threshold band.
func BandFor(age float64) AgeBand {
	switch {
	case age < 1:
		return BandInfant
	case age < 5:
		return BandToddler
	case age < 14:
		return BandChild
	default:
		return BandAdult
	}
}

// VitalRange bounds one vital sign. A nil bound is open on that side.
type VitalRange struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// Limits collects the ranges checked for one age band. A nil range means the
// vital is not evaluated for that band. All ranges flag readings outside
// [Min, Max], except the danger-zone SpO2 range, which is the zone itself:
// saturations inside it are flagged (below it is already a critical breach).
type Limits struct {
	HR   *VitalRange `json:"hr,omitempty"`
	RR   *VitalRange `json:"rr,omitempty"`
	SpO2 *VitalRange `json:"spo2,omitempty"`
	SBP  *VitalRange `json:"sbp,omitempty"`
	Temp *VitalRange `json:"temp,omitempty"`
	GCS  *VitalRange `json:"gcs,omitempty"`
}

func bounded(min, max float64) *VitalRange { return &VitalRange{Min: &min, Max: &max} }
func atLeast(min float64) *VitalRange      { return &VitalRange{Min: &min} }

// criticalLimits are the immediately life-threatening breaches (level 1).
var criticalLimits = map[AgeBand]Limits{
	BandInfant: {
		HR:   bounded(60, 200),
		RR:   bounded(10, 60),
		SpO2: atLeast(90),
		SBP:  bounded(80, 220),
		Temp: bounded(35, 41),
		GCS:  atLeast(9),
	},
	BandToddler: {
		HR:   bounded(60, 180),
		RR:   bounded(10, 50),
		SpO2: atLeast(90),
		SBP:  bounded(80, 220),
		Temp: bounded(35, 41),
		GCS:  atLeast(9),
	},
	BandChild: {
		HR:   bounded(60, 170),
		RR:   bounded(10, 40),
		SpO2: atLeast(90),
		SBP:  bounded(80, 220),
		Temp: bounded(35, 41),
		GCS:  atLeast(9),
	},
	BandAdult: {
		HR:   bounded(40, 150),
		RR:   bounded(8, 36),
		SpO2: atLeast(90),
		SBP:  bounded(80, 220),
		Temp: bounded(35, 41),
		GCS:  atLeast(9),
	},
}

// dangerLimits are abnormal-but-not-critical readings (level 2). GCS is
// absent here: altered consciousness is its own emergent trigger in the
// classifier, not a danger-zone vital.
var dangerLimits = map[AgeBand]Limits{
	BandInfant: {
		HR:   bounded(90, 160),
		RR:   bounded(25, 50),
		SpO2: bounded(90, 93),
		Temp: bounded(36, 39),
	},
	BandToddler: {
		HR:   bounded(80, 140),
		RR:   bounded(20, 40),
		SpO2: bounded(90, 93),
		Temp: bounded(36, 39),
	},
	BandChild: {
		HR:   bounded(70, 120),
		RR:   bounded(16, 30),
		SpO2: bounded(90, 93),
		Temp: bounded(36, 39),
	},
	BandAdult: {
		HR:   bounded(50, 100),
		RR:   bounded(10, 24),
		SpO2: bounded(90, 94),
		SBP:  bounded(90, 180),
		Temp: bounded(36, 39),
	},
}

// ThresholdTable exposes both tables for audit output.
func ThresholdTable() map[string]map[AgeBand]Limits {
	return map[string]map[AgeBand]Limits{
		"critical":    criticalLimits,
		"danger_zone": dangerLimits,
	}
}
