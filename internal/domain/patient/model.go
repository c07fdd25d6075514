package patient

// Patient is a registered patient record. Records are replaced whole on
// update; individual fields are never edited in place.
type Patient struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Age                int                `json:"age"`
	MedicalHistory     []string           `json:"medical_history"`
	CurrentMedications []string           `json:"current_medications"`
	VitalSigns         map[string]float64 `json:"vital_signs"`
	RiskFactors        []string           `json:"risk_factors"`
}
