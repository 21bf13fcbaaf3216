package triage

import (
	"testing"

	"github.com/safetriage/safetriage/internal/platform/nlp"
)

// triageScenarios is the department's acceptance suite: common ER
// presentations, in English and Egyptian Arabic, with the level each one
// must classify to.
var triageScenarios = []struct {
	name   string
	record PatientRecord
	want   TriageLevel
}{
	// Resuscitation: life-threat keywords.
	{"unconscious patient", PatientRecord{Age: 55, Gender: GenderMale,
		ChiefComplaintText: "unconscious, found on floor"}, Resuscitation},
	{"unresponsive patient", PatientRecord{Age: 40, Gender: GenderFemale,
		ChiefComplaintText: "unresponsive, not waking up"}, Resuscitation},
	{"cardiac arrest", PatientRecord{Age: 60, Gender: GenderMale,
		ChiefComplaintText: "cardiac arrest, no pulse"}, Resuscitation},
	{"not breathing", PatientRecord{Age: 30, Gender: GenderMale,
		ChiefComplaintText: "not breathing, blue lips"}, Resuscitation},
	{"active seizure", PatientRecord{Age: 25, Gender: GenderFemale,
		ChiefComplaintText: "seizure, convulsing now"}, Resuscitation},
	{"gunshot wound", PatientRecord{Age: 28, Gender: GenderMale,
		ChiefComplaintText: "gunshot to abdomen"}, Resuscitation},
	{"stab wound", PatientRecord{Age: 32, Gender: GenderMale,
		ChiefComplaintText: "stab wound to chest"}, Resuscitation},
	{"choking child", PatientRecord{Age: 4, Gender: GenderMale,
		ChiefComplaintText: "choking on food, can't breathe"}, Resuscitation},
	{"overdose", PatientRecord{Age: 22, Gender: GenderFemale,
		ChiefComplaintText: "overdose, took whole bottle of pills"}, Resuscitation},
	{"anaphylaxis", PatientRecord{Age: 30, Gender: GenderMale,
		ChiefComplaintText: "anaphylaxis, throat swelling, ate peanuts"}, Resuscitation},

	// Resuscitation: critical vital signs.
	{"severe bradycardia", PatientRecord{Age: 70, Gender: GenderMale,
		ChiefComplaintText: "feeling weak",
		Vitals:             Vitals{HR: iptr(35), RR: iptr(16), SpO2: fptr(95)}}, Resuscitation},
	{"respiratory failure", PatientRecord{Age: 50, Gender: GenderFemale,
		ChiefComplaintText: "very sleepy after taking pills",
		Vitals:             Vitals{HR: iptr(60), RR: iptr(4), SpO2: fptr(88)}}, Resuscitation},
	{"severe hypoxia", PatientRecord{Age: 65, Gender: GenderMale,
		ChiefComplaintText: "can't breathe",
		Vitals:             Vitals{HR: iptr(110), RR: iptr(28), SpO2: fptr(85)}}, Resuscitation},
	{"severe tachycardia", PatientRecord{Age: 45, Gender: GenderMale,
		ChiefComplaintText: "heart racing, dizzy",
		Vitals:             Vitals{HR: iptr(180), RR: iptr(22), SpO2: fptr(94)}}, Resuscitation},
	{"hemorrhagic shock", PatientRecord{Age: 35, Gender: GenderFemale,
		ChiefComplaintText: "bleeding heavily",
		Vitals:             Vitals{HR: iptr(130), SBP: iptr(70), DBP: iptr(40)}}, Resuscitation},

	// Resuscitation: Arabic life-threat phrasings.
	{"arabic loss of consciousness", PatientRecord{Age: 50, Gender: GenderMale,
		ChiefComplaintText: "فاقد الوعي مش بيرد"}, Resuscitation},
	{"arabic fainted in the street", PatientRecord{Age: 45, Gender: GenderMale,
		ChiefComplaintText: "مغمى عليه في الشارع"}, Resuscitation},
	{"arabic not breathing", PatientRecord{Age: 60, Gender: GenderFemale,
		ChiefComplaintText: "نفسه واقف مش بيتنفس"}, Resuscitation},
	{"arabic convulsing", PatientRecord{Age: 30, Gender: GenderMale,
		ChiefComplaintText: "بيتشنج على الأرض"}, Resuscitation},
	{"arabic stabbing", PatientRecord{Age: 25, Gender: GenderMale,
		ChiefComplaintText: "اتطعن بسكينة في بطنه"}, Resuscitation},
	{"arabic overdose", PatientRecord{Age: 20, Gender: GenderFemale,
		ChiefComplaintText: "بلعت حبوب كتير جرعة زيادة"}, Resuscitation},
	{"arabic choking toddler", PatientRecord{Age: 3, Gender: GenderMale,
		ChiefComplaintText: "الاكل وقف في زوره شرقان"}, Resuscitation},
	{"arabic heat stroke", PatientRecord{Age: 40, Gender: GenderMale,
		ChiefComplaintText: "ضربته الشمس وهو شغال"}, Resuscitation},
	{"arabic severe bleeding", PatientRecord{Age: 35, Gender: GenderFemale,
		ChiefComplaintText: "بتنزف جامد الدم مش واقف"}, Resuscitation},

	// Emergent: high-risk presentations and severe pain.
	{"adult chest pain", PatientRecord{Age: 55, Gender: GenderMale,
		ChiefComplaintText: "severe chest pain radiating to arm",
		Vitals:             Vitals{HR: iptr(90), RR: iptr(18), SpO2: fptr(96), PainScore: iptr(8)}}, Emergent},
	{"stroke symptoms", PatientRecord{Age: 70, Gender: GenderFemale,
		ChiefComplaintText: "face drooping, can't move left arm, slurred speech",
		Vitals:             Vitals{HR: iptr(88), RR: iptr(16), SpO2: fptr(97)}}, Emergent},
	{"dyspnea with stable saturation", PatientRecord{Age: 45, Gender: GenderMale,
		ChiefComplaintText: "short of breath, getting worse",
		Vitals:             Vitals{HR: iptr(100), RR: iptr(24), SpO2: fptr(93)}}, Emergent},
	{"severe abdominal pain", PatientRecord{Age: 60, Gender: GenderFemale,
		ChiefComplaintText: "severe stomach pain, worst of my life",
		Vitals:             Vitals{HR: iptr(95), RR: iptr(20), PainScore: iptr(9)}}, Emergent},
	{"suicidal ideation", PatientRecord{Age: 25, Gender: GenderMale,
		ChiefComplaintText: "suicidal, wants to kill myself"}, Emergent},
	{"severe back pain", PatientRecord{Age: 40, Gender: GenderFemale,
		ChiefComplaintText: "severe back pain",
		Vitals:             Vitals{PainScore: iptr(8)}}, Emergent},
	{"altered mental status", PatientRecord{Age: 75, Gender: GenderMale,
		ChiefComplaintText: "confused, not making sense",
		Vitals:             Vitals{GCS: iptr(12)}}, Emergent},
	{"infant marked tachycardia", PatientRecord{Age: 0.2, Gender: GenderFemale,
		ChiefComplaintText: "crying and feeding poorly",
		Vitals:             Vitals{HR: iptr(190)}}, Emergent},

	// Emergent: Arabic high-risk phrasings.
	{"arabic chest pain", PatientRecord{Age: 60, Gender: GenderMale,
		ChiefComplaintText: "صدري بيوجعني جامد حاسس بضغط",
		Vitals:             Vitals{PainScore: iptr(8)}}, Emergent},
	{"arabic shortness of breath", PatientRecord{Age: 40, Gender: GenderFemale,
		ChiefComplaintText: "مش عارفة آخد نفسي مخنوقة"}, Emergent},
	{"arabic stroke", PatientRecord{Age: 65, Gender: GenderMale,
		ChiefComplaintText: "وشه مايل ومش قادر يتكلم"}, Emergent},
	{"arabic suicidal", PatientRecord{Age: 22, Gender: GenderMale,
		ChiefComplaintText: "عايز اموت مش عايز اعيش"}, Emergent},
	{"arabic pregnant and bleeding", PatientRecord{Age: 28, Gender: GenderFemale,
		ChiefComplaintText: "انا حامل وبنزف"}, Emergent},
	{"arabic hypoglycemia", PatientRecord{Age: 55, Gender: GenderMale,
		ChiefComplaintText: "السكر واطي وبيرعش"}, Emergent},
	{"arabic palpitations", PatientRecord{Age: 45, Gender: GenderFemale,
		ChiefComplaintText: "قلبي بيدق جامد وحاسة بدوخة"}, Emergent},

	// Urgent: two or more anticipated resources.
	{"abdominal pain with fever", PatientRecord{Age: 35, Gender: GenderFemale,
		ChiefComplaintText: "stomach pain and fever for 2 days",
		Vitals:             Vitals{HR: iptr(85), RR: iptr(16), Temp: fptr(38.5), PainScore: iptr(5)}}, Urgent},
	{"minor trauma with pain", PatientRecord{Age: 28, Gender: GenderMale,
		ChiefComplaintText: "fell off bike, ankle swollen",
		Vitals:             Vitals{PainScore: iptr(5)}}, Urgent},
	{"arabic abdominal cramps", PatientRecord{Age: 30, Gender: GenderFemale,
		ChiefComplaintText: "بطني بتوجعني ومغص شديد"}, Urgent},
	{"arabic fall with swollen arm", PatientRecord{Age: 40, Gender: GenderMale,
		ChiefComplaintText: "وقعت من السلم وايدي وارمة"}, Urgent},

	// Less urgent: a single anticipated resource.
	{"simple laceration", PatientRecord{Age: 30, Gender: GenderMale,
		ChiefComplaintText: "cut on hand, needs stitches"}, LessUrgent},
	{"mild fever", PatientRecord{Age: 25, Gender: GenderFemale,
		ChiefComplaintText: "fever and sore throat",
		Vitals:             Vitals{Temp: fptr(38.2)}}, LessUrgent},
	{"arabic cut needing sutures", PatientRecord{Age: 35, Gender: GenderMale,
		ChiefComplaintText: "ايدي اتقطعت محتاج غرز"}, LessUrgent},
	{"arabic mild fever", PatientRecord{Age: 20, Gender: GenderFemale,
		ChiefComplaintText: "عندي سخونية وزوري بيوجعني"}, LessUrgent},

	// Non-urgent: no acute resources.
	{"prescription refill", PatientRecord{Age: 45, Gender: GenderMale,
		ChiefComplaintText: "need refill of blood pressure medication"}, NonUrgent},
	{"runny nose", PatientRecord{Age: 30, Gender: GenderFemale,
		ChiefComplaintText: "runny nose for 3 days"}, NonUrgent},
	{"arabic prescription renewal", PatientRecord{Age: 50, Gender: GenderMale,
		ChiefComplaintText: "عايز اجدد روشتة الضغط"}, NonUrgent},
	{"arabic mild cold", PatientRecord{Age: 25, Gender: GenderFemale,
		ChiefComplaintText: "عندي برد خفيف ورشح"}, NonUrgent},
}

func TestEvaluate_Scenarios(t *testing.T) {
	p, err := nlp.NewDefaultProcessor()
	if err != nil {
		t.Fatalf("NewDefaultProcessor: %v", err)
	}
	engine := NewEngine(p)

	for _, sc := range triageScenarios {
		sc := sc
		t.Run(sc.name, func(t *testing.T) {
			result := engine.Evaluate(sc.record)
			if result.Level != sc.want {
				t.Errorf("complaint %q: level = %d, want %d\nreasoning: %v",
					sc.record.ChiefComplaintText, result.Level, sc.want, result.Reasoning)
			}
			if len(result.Reasoning) == 0 {
				t.Error("every evaluation must explain itself")
			}
		})
	}
}
