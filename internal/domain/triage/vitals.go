package triage

import "fmt"

// CriticalVitals checks every available vital against the critical table for
// the patient's age band. It is exhaustive: all breaches are accumulated into
// the reasons, never just the first, so the clinician sees the full picture.
// Absent vitals are skipped, never treated as breaches or as normal.
func CriticalVitals(age float64, v Vitals) (bool, []string) {
	lim := criticalLimits[BandFor(age)]
	var reasons []string

	if v.RR != nil && lim.RR != nil {
		switch {
		case lim.RR.Min != nil && float64(*v.RR) < *lim.RR.Min:
			reasons = append(reasons, fmt.Sprintf("respiratory failure risk: %d breaths/min (below %g)", *v.RR, *lim.RR.Min))
		case lim.RR.Max != nil && float64(*v.RR) > *lim.RR.Max:
			reasons = append(reasons, fmt.Sprintf("severe respiratory distress: %d breaths/min (above %g)", *v.RR, *lim.RR.Max))
		}
	}
	if v.HR != nil && lim.HR != nil {
		switch {
		case lim.HR.Min != nil && float64(*v.HR) < *lim.HR.Min:
			reasons = append(reasons, fmt.Sprintf("severe bradycardia: %d bpm (below %g)", *v.HR, *lim.HR.Min))
		case lim.HR.Max != nil && float64(*v.HR) > *lim.HR.Max:
			reasons = append(reasons, fmt.Sprintf("severe tachycardia: %d bpm (above %g)", *v.HR, *lim.HR.Max))
		}
	}
	if v.SpO2 != nil && lim.SpO2 != nil && lim.SpO2.Min != nil && *v.SpO2 < *lim.SpO2.Min {
		reasons = append(reasons, fmt.Sprintf("severe hypoxia: SpO2 %.0f%% (below %g%%)", *v.SpO2, *lim.SpO2.Min))
	}
	if v.GCS != nil && lim.GCS != nil && lim.GCS.Min != nil && float64(*v.GCS) < *lim.GCS.Min {
		reasons = append(reasons, fmt.Sprintf("comatose: GCS %d (below %g)", *v.GCS, *lim.GCS.Min))
	}
	if v.SBP != nil && lim.SBP != nil {
		switch {
		case lim.SBP.Min != nil && float64(*v.SBP) < *lim.SBP.Min:
			reasons = append(reasons, fmt.Sprintf("shock: systolic BP %d mmHg (below %g)", *v.SBP, *lim.SBP.Min))
		case lim.SBP.Max != nil && float64(*v.SBP) > *lim.SBP.Max:
			reasons = append(reasons, fmt.Sprintf("hypertensive crisis: systolic BP %d mmHg (above %g)", *v.SBP, *lim.SBP.Max))
		}
	}
	if v.Temp != nil && lim.Temp != nil {
		switch {
		case lim.Temp.Min != nil && *v.Temp < *lim.Temp.Min:
			reasons = append(reasons, fmt.Sprintf("severe hypothermia: %.1f°C (below %g)", *v.Temp, *lim.Temp.Min))
		case lim.Temp.Max != nil && *v.Temp > *lim.Temp.Max:
			reasons = append(reasons, fmt.Sprintf("extreme hyperthermia: %.1f°C (above %g)", *v.Temp, *lim.Temp.Max))
		}
	}

	return len(reasons) > 0, reasons
}

// DangerZoneVitals checks every available vital against the danger-zone table
// for the patient's age band: abnormal readings that need urgent attention
// but are not immediately life-threatening. Same exhaustive-accumulation and
// skip-when-absent discipline as CriticalVitals. A positive result maps to
// the emergent level only, never to resuscitation.
func DangerZoneVitals(age float64, v Vitals) (bool, []string) {
	lim := dangerLimits[BandFor(age)]
	var reasons []string

	if v.HR != nil && lim.HR != nil {
		switch {
		case lim.HR.Max != nil && float64(*v.HR) > *lim.HR.Max:
			reasons = append(reasons, fmt.Sprintf("tachycardia: %d bpm", *v.HR))
		case lim.HR.Min != nil && float64(*v.HR) < *lim.HR.Min:
			reasons = append(reasons, fmt.Sprintf("bradycardia: %d bpm", *v.HR))
		}
	}
	if v.RR != nil && lim.RR != nil {
		switch {
		case lim.RR.Max != nil && float64(*v.RR) > *lim.RR.Max:
			reasons = append(reasons, fmt.Sprintf("tachypnea: %d breaths/min", *v.RR))
		case lim.RR.Min != nil && float64(*v.RR) < *lim.RR.Min:
			reasons = append(reasons, fmt.Sprintf("slow breathing: %d breaths/min", *v.RR))
		}
	}
	// SpO2 danger range is containment: the zone between the critical floor
	// and normal saturation.
	if v.SpO2 != nil && lim.SpO2 != nil && lim.SpO2.Min != nil && lim.SpO2.Max != nil &&
		*v.SpO2 >= *lim.SpO2.Min && *v.SpO2 <= *lim.SpO2.Max {
		reasons = append(reasons, fmt.Sprintf("borderline hypoxia: SpO2 %.0f%%", *v.SpO2))
	}
	if v.SBP != nil && lim.SBP != nil {
		switch {
		case lim.SBP.Max != nil && float64(*v.SBP) > *lim.SBP.Max:
			reasons = append(reasons, fmt.Sprintf("hypertension: systolic BP %d mmHg", *v.SBP))
		case lim.SBP.Min != nil && float64(*v.SBP) < *lim.SBP.Min:
			reasons = append(reasons, fmt.Sprintf("hypotension: systolic BP %d mmHg", *v.SBP))
		}
	}
	if v.Temp != nil && lim.Temp != nil {
		switch {
		case lim.Temp.Max != nil && *v.Temp > *lim.Temp.Max:
			reasons = append(reasons, fmt.Sprintf("high fever: %.1f°C", *v.Temp))
		case lim.Temp.Min != nil && *v.Temp < *lim.Temp.Min:
			reasons = append(reasons, fmt.Sprintf("hypothermia: %.1f°C", *v.Temp))
		}
	}

	return len(reasons) > 0, reasons
}
