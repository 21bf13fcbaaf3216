package triage

// LevelMetadata is the static, localized presentation block for one triage
// level. It is pure data: colors, bilingual labels, and the department's
// routing guidance, keyed by level so localization changes never touch the
// decision logic.
type LevelMetadata struct {
	ColorCode         string `json:"color_code"`
	LabelEN           string `json:"label_en"`
	LabelAR           string `json:"label_ar"`
	Description       string `json:"description"`
	RecommendedAction string `json:"recommended_action"`
	TimeToPhysician   string `json:"time_to_physician"`
}

var levelTable = map[TriageLevel]LevelMetadata{
	Resuscitation: {
		ColorCode:         "#ef4444",
		LabelEN:           "Resuscitation (Level 1)",
		LabelAR:           "إنعاش (مستوى ١)",
		Description:       "يتطلب تدخل فوري لإنقاذ الحياة",
		RecommendedAction: "تفعيل فريق الإنعاش فوراً",
		TimeToPhysician:   "فوري",
	},
	Emergent: {
		ColorCode:         "#f97316",
		LabelEN:           "Emergent (Level 2)",
		LabelAR:           "طوارئ (مستوى ٢)",
		Description:       "خطورة عالية، احتمال تدهور سريع",
		RecommendedAction: "غرفة العناية المركزة، مراقبة مستمرة",
		TimeToPhysician:   "< 15 دقيقة",
	},
	Urgent: {
		ColorCode:         "#eab308",
		LabelEN:           "Urgent (Level 3)",
		LabelAR:           "عاجل (مستوى ٣)",
		Description:       "مستقر، يحتاج موارد متعددة",
		RecommendedAction: "غرفة فحص، طلب تحاليل/أشعة",
		TimeToPhysician:   "< 60 دقيقة",
	},
	LessUrgent: {
		ColorCode:         "#22c55e",
		LabelEN:           "Less Urgent (Level 4)",
		LabelAR:           "أقل إلحاحاً (مستوى ٤)",
		Description:       "مستقر، يحتاج مورد واحد",
		RecommendedAction: "العيادة السريعة",
		TimeToPhysician:   "يمكن الانتظار",
	},
	NonUrgent: {
		ColorCode:         "#3b82f6",
		LabelEN:           "Non-Urgent (Level 5)",
		LabelAR:           "غير عاجل (مستوى ٥)",
		Description:       "لا يحتاج موارد",
		RecommendedAction: "إعادة الروشتة أو الطمأنينة",
		TimeToPhysician:   "يمكن الانتظار / تحويل للعيادة",
	},
}

// MetadataFor returns the presentation metadata for a level.
func MetadataFor(level TriageLevel) LevelMetadata {
	return levelTable[level]
}
