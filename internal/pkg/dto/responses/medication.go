package responses

type MedicationRecord struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Dosage        string         `json:"dosage"`
	DosageDetails []DosageDetail `json:"dosageDetails"`
	Status        string         `json:"status"`
	AuthoredOn    string         `json:"authoredOn"`
	Prescriber    string         `json:"prescriber"`
	Reason        string         `json:"reason"`
	Refills       int            `json:"refills"`
	Quantity      string         `json:"quantity"`
	DaysSupply    string         `json:"daysSupply"`
	Intent        string         `json:"intent"`
	Category      string         `json:"category"`
}

// DosageDetail is the structured form of a single dosageInstruction entry.
type DosageDetail struct {
	Timing string `json:"timing"`
	Route  string `json:"route"`
	Dose   string `json:"dose"`
}

type MedicationListResponse struct {
	Medications []MedicationRecord `json:"medications"`
	Error       string             `json:"error,omitempty"`
}
