package fhir_dto

type MedicationRequest struct {
	ResourceType              string             `json:"resourceType,omitempty"`
	ID                        string             `json:"id,omitempty"`
	Status                    string             `json:"status,omitempty"`
	Intent                    string             `json:"intent,omitempty"`
	Category                  []CodeableConcept  `json:"category,omitempty"`
	MedicationCodeableConcept *CodeableConcept   `json:"medicationCodeableConcept,omitempty"`
	MedicationReference       *Reference         `json:"medicationReference,omitempty"`
	Subject                   *Reference         `json:"subject,omitempty"`
	AuthoredOn                string             `json:"authoredOn,omitempty"`
	Requester                 *Reference         `json:"requester,omitempty"`
	ReasonCode                []CodeableConcept  `json:"reasonCode,omitempty"`
	DosageInstruction         []Dosage           `json:"dosageInstruction,omitempty"`
	DispenseRequest           *DispenseRequest   `json:"dispenseRequest,omitempty"`
}

type Dosage struct {
	Text        string           `json:"text,omitempty"`
	Timing      *Timing          `json:"timing,omitempty"`
	Route       *CodeableConcept `json:"route,omitempty"`
	DoseAndRate []DoseAndRate    `json:"doseAndRate,omitempty"`
}

type Timing struct {
	Code   *CodeableConcept `json:"code,omitempty"`
	Repeat *TimingRepeat    `json:"repeat,omitempty"`
}

type TimingRepeat struct {
	Frequency  int      `json:"frequency,omitempty"`
	Period     *float64 `json:"period,omitempty"`
	PeriodUnit string   `json:"periodUnit,omitempty"`
}

type DoseAndRate struct {
	Type         *CodeableConcept `json:"type,omitempty"`
	DoseQuantity *Quantity        `json:"doseQuantity,omitempty"`
}

type DispenseRequest struct {
	NumberOfRepeatsAllowed int       `json:"numberOfRepeatsAllowed,omitempty"`
	Quantity               *Quantity `json:"quantity,omitempty"`
	ExpectedSupplyDuration *Quantity `json:"expectedSupplyDuration,omitempty"`
}
