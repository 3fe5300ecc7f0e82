package fhir_dto

type Patient struct {
	ResourceType  string                 `json:"resourceType,omitempty"`
	ID            string                 `json:"id,omitempty"`
	Active        bool                   `json:"active,omitempty"`
	Identifier    []Identifier           `json:"identifier,omitempty"`
	Name          []HumanName            `json:"name,omitempty"`
	Telecom       []ContactPoint         `json:"telecom,omitempty"`
	Gender        string                 `json:"gender,omitempty"`
	BirthDate     string                 `json:"birthDate,omitempty"`
	Address       []Address              `json:"address,omitempty"`
	MaritalStatus *CodeableConcept       `json:"maritalStatus,omitempty"`
	Communication []PatientCommunication `json:"communication,omitempty"`
}

type PatientCommunication struct {
	Language  CodeableConcept `json:"language"`
	Preferred bool            `json:"preferred,omitempty"`
}
