package mapper

import (
	"portal-service/internal/pkg/dto/responses"
	"portal-service/internal/pkg/fhir_dto"
)

// ToPatientRecord flattens a Patient resource into the demographics record
// the UI renders. Extraction is total: an empty resource yields a record
// full of sentinel defaults.
func ToPatientRecord(patient *fhir_dto.Patient) *responses.PatientRecord {
	if patient == nil {
		patient = &fhir_dto.Patient{}
	}

	birthDate := patient.BirthDate
	if birthDate == "" {
		birthDate = DefaultUnknown
	}

	return &responses.PatientRecord{
		ID:            patient.ID,
		Name:          formatHumanName(patient.Name),
		Gender:        titleCase(patient.Gender, DefaultUnknown),
		BirthDate:     birthDate,
		Identifier:    preferredIdentifier(patient.Identifier, patient.ID),
		Address:       formatAddress(patient.Address),
		Phone:         telecomValue(patient.Telecom, "phone"),
		Email:         telecomValue(patient.Telecom, "email"),
		MaritalStatus: conceptText(patient.MaritalStatus, DefaultUnknown),
		Language:      preferredLanguage(patient.Communication),
	}
}