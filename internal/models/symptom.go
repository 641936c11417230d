package models

// BuiltinSymptoms lists the known symptom tags in declaration order. The
// order is meaningful: frequency ranking breaks count ties by it.
func BuiltinSymptoms() []string {
	return []string{
		"cramps",
		"headache",
		"mood swings",
		"bloating",
		"fatigue",
		"breast tenderness",
		"acne",
		"back pain",
		"nausea",
		"spotting",
		"irritability",
		"insomnia",
		"food cravings",
		"diarrhea",
		"constipation",
	}
}

func SymptomOrderMap() map[string]int {
	order := make(map[string]int)
	for index, name := range BuiltinSymptoms() {
		order[name] = index
	}
	return order
}

func IsKnownSymptom(name string) bool {
	_, ok := SymptomOrderMap()[name]
	return ok
}
