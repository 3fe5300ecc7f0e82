package mapper

import (
	"encoding/json"

	"portal-service/internal/pkg/dto/responses"
	"portal-service/internal/pkg/fhir_dto"
)

// ToLabRecords flattens every laboratory Observation in a search bundle.
func ToLabRecords(bundle *fhir_dto.Bundle) []responses.LabRecord {
	records := make([]responses.LabRecord, 0, len(bundle.Entry))
	for _, entry := range bundle.Entry {
		var resource fhir_dto.Observation
		if err := json.Unmarshal(entry.Resource, &resource); err != nil {
			continue
		}
		records = append(records, toLabRecord(&resource))
	}
	return records
}

func toLabRecord(resource *fhir_dto.Observation) responses.LabRecord {
	return responses.LabRecord{
		ID:                 resource.ID,
		Name:               conceptText(&resource.Code, DefaultUnknownTest),
		Code:               conceptCode(&resource.Code),
		Value:              observationValue(resource),
		ReferenceRange:     formatReferenceRange(resource.ReferenceRange),
		Status:             titleCase(resource.Status, DefaultUnknown),
		Date:               observationDate(resource),
		Interpretation:     interpretationText(resource.Interpretation, DefaultNormal),
		InterpretationCode: interpretationCode(resource.Interpretation),
		Performer:          firstReferenceDisplay(resource.Performer, DefaultNA),
		Specimen:           specimenDisplay(resource.Specimen),
		Notes:              annotationText(resource.Note),
		Category:           firstCategory(resource.Category, "Laboratory"),
	}
}

// observationValue maps the Observation value[x] choice into the tagged
// union. Booleans render as Yes/No; a missing value degrades to N/A.
func observationValue(resource *fhir_dto.Observation) responses.ObservationValue {
	switch {
	case resource.ValueQuantity != nil:
		value, unit := formatQuantity(resource.ValueQuantity)
		if value == "" {
			value = DefaultNA
		}
		return responses.ObservationValue{
			Kind:     responses.ValueKindQuantity,
			Display:  value,
			Unit:     unit,
			Quantity: resource.ValueQuantity.Value,
		}
	case resource.ValueString != nil:
		return responses.ObservationValue{
			Kind:    responses.ValueKindString,
			Display: *resource.ValueString,
		}
	case resource.ValueCodeableConcept != nil:
		return responses.ObservationValue{
			Kind:    responses.ValueKindCoded,
			Display: conceptText(resource.ValueCodeableConcept, DefaultNA),
		}
	case resource.ValueBoolean != nil:
		display := "No"
		if *resource.ValueBoolean {
			display = "Yes"
		}
		return responses.ObservationValue{
			Kind:    responses.ValueKindBoolean,
			Display: display,
		}
	default:
		return responses.ObservationValue{
			Kind:    responses.ValueKindNone,
			Display: DefaultNA,
		}
	}
}

func observationDate(resource *fhir_dto.Observation) string {
	if resource.EffectiveDateTime != "" {
		return resource.EffectiveDateTime
	}
	if resource.Issued != "" {
		return resource.Issued
	}
	return DefaultUnknownDate
}

func specimenDisplay(specimen *fhir_dto.Reference) string {
	if specimen == nil || specimen.Display == "" {
		return DefaultNA
	}
	return specimen.Display
}
