package responses

// PatientRecord is the flattened demographics view handed to the UI.
// Every field is pre-defaulted; the view never sees an empty string.
type PatientRecord struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Gender        string `json:"gender"`
	BirthDate     string `json:"birthDate"`
	Identifier    string `json:"identifier"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	MaritalStatus string `json:"maritalStatus"`
	Language      string `json:"language"`
}
