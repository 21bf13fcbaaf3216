package nlp

// Concept identifies a clinical finding extracted from complaint text.
type Concept string

const (
	ConceptChestPain  Concept = "chest_pain"
	ConceptSOB        Concept = "sob"
	ConceptTrauma     Concept = "trauma"
	ConceptAbdominal  Concept = "abdominal"
	ConceptNeuro      Concept = "neuro"
	ConceptStroke     Concept = "stroke"
	ConceptFever      Concept = "fever"
	ConceptPsych      Concept = "psych"
	ConceptAllergy    Concept = "allergy"
	ConceptCardiac    Concept = "cardiac"
	ConceptDiabetic   Concept = "diabetic"
	ConceptPregnancy  Concept = "pregnancy"
	ConceptLaceration Concept = "laceration"
	ConceptUTI        Concept = "uti"
	ConceptBurn       Concept = "burn"
	ConceptBiteSting  Concept = "bite_sting"
)

// Lexicon maps each concept to its localized surface forms: English, formal
// Arabic, and Egyptian colloquial Arabic. Latin-script entries match on word
// boundaries; Arabic-script entries match by substring containment.
type Lexicon map[Concept][]string

// DefaultLexicon returns the vocabulary used by emergency-department intake.
// The lists are hand-curated against real complaint phrasings; bare
// high-collision words (e.g. "pressure", which appears in "blood pressure
// medication") are deliberately absent.
func DefaultLexicon() Lexicon {
	return Lexicon{
		ConceptChestPain: {
			"chest pain", "pain in chest", "chest tightness", "tightness in chest",
			"chest pressure", "pressure in chest", "angina",
			"ألم صدر", "ألم في الصدر", "وجع في صدري", "صدري بيوجعني",
			"نغزة", "طبقة على صدري", "ذبحة", "حرقان في الصدر",
		},
		ConceptSOB: {
			"short of breath", "shortness of breath", "cant breathe", "can't breathe",
			"difficulty breathing", "dyspnea", "gasping",
			"ضيق تنفس", "آخد نفسي", "اخد نفسي", "كرشة نفس", "مخنوق", "نهجان",
		},
		ConceptTrauma: {
			"fall", "fell", "hit", "accident", "crash", "collision", "fracture", "broken",
			"سقوط", "وقعت", "خبطت", "حادث", "كسر", "نزيف", "تعويرة",
		},
		ConceptAbdominal: {
			"stomach pain", "abdominal pain", "stomach ache", "belly ache", "bellyache",
			"vomiting", "diarrhea",
			"وجع بطن", "بطني", "مغص", "قيء", "ترجيع", "إسهال", "ألم في معدتي", "معدتي",
		},
		ConceptNeuro: {
			"dizzy", "dizziness", "faint", "fainted", "passed out", "numbness",
			"severe headache", "weakness",
			"دوخة", "إغماء", "تنميل", "صداع شديد",
		},
		ConceptStroke: {
			"stroke", "face drooping", "facial droop", "slurred speech",
			"جلطة", "وشه مايل", "مش قادر يتكلم", "فالج",
		},
		ConceptFever: {
			"fever", "high temperature", "febrile", "chills", "shivering",
			"حرارة", "سخونية", "رعشة", "حمى",
		},
		ConceptPsych: {
			"suicidal", "suicide", "kill myself", "hopeless", "voices", "hallucination",
			"aggressive",
			"انتحار", "هاقتل نفسي", "عايز اموت", "عايز يموت", "هلاوس", "عدواني",
		},
		ConceptAllergy: {
			"allergy", "allergic", "rash", "hives", "swelling", "peanut",
			"حساسية", "طفح", "تورم", "نحل",
		},
		ConceptCardiac: {
			"palpitations", "heart racing", "irregular heartbeat",
			"قلبي بيدق", "خفقان",
		},
		ConceptDiabetic: {
			"diabetic", "diabetes", "blood sugar", "hypoglycemia", "hyperglycemia",
			"سكري", "السكر واطي", "السكر عالي", "انخفاض السكر",
		},
		ConceptPregnancy: {
			"pregnant", "pregnancy", "in labor", "contractions",
			"حامل", "ولادة", "طلق",
		},
		ConceptLaceration: {
			"cut", "laceration", "stitches", "wound",
			"جرح", "اتقطعت", "غرز",
		},
		ConceptUTI: {
			"burning urination", "urinary", "uti", "dysuria",
			"حرقان في البول", "البول",
		},
		ConceptBurn: {
			"burn", "burned", "burnt", "scald",
			"حروق", "اتحرق", "محروق",
		},
		ConceptBiteSting: {
			"bite", "bitten", "sting", "stung", "snake",
			"قرصة", "عضة", "لدغة", "تعبان",
		},
	}
}

// DefaultDangerVocabulary returns the fixed set of unambiguous life-threat
// phrases. Any match is an unconditional resuscitation-level trigger, so
// entries must be phrases that cannot plausibly describe a stable patient.
func DefaultDangerVocabulary() []string {
	return []string{
		"unconscious", "unresponsive", "not breathing", "no pulse", "cardiac arrest",
		"gunshot", "stab", "stabbed", "choking", "seizure", "convulsing",
		"severe bleeding", "massive bleeding", "bleeding heavily", "overdose",
		"anaphylaxis", "heat stroke", "heatstroke", "sunstroke", "drowning", "drowned",
		"blue lips", "turning blue",
		"فاقد الوعي", "مغمى عليه", "غير مستجيب", "مش بيتنفس", "توقف القلب",
		"رصاص", "طعن", "سكين", "شرقان", "تشنج", "جرعة زيادة",
		"نزيف شديد", "بتنزف جامد", "الدم مش واقف",
		"ضربة شمس", "ضربته الشمس", "غرقان", "بيغرق", "حساسية مفرطة",
	}
}

// NegationTerms is the negation vocabulary for both languages. It is defined
// for completeness but deliberately not consulted during matching: a matched
// phrase always counts as a positive finding, because a wrong negation guess
// that discards a real symptom is worse than over-triage.
func NegationTerms() []string {
	return []string{
		"no ", "not ", "denies ", "without ",
		"لا ", "بدون ", "مافيش ", "مفيش ",
	}
}
