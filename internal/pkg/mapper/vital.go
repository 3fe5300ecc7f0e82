package mapper

import (
	"encoding/json"
	"strings"

	"portal-service/internal/pkg/dto/responses"
	"portal-service/internal/pkg/fhir_dto"
)

// ToVitalRecords flattens every vital-signs Observation in a search bundle.
func ToVitalRecords(bundle *fhir_dto.Bundle) []responses.VitalRecord {
	records := make([]responses.VitalRecord, 0, len(bundle.Entry))
	for _, entry := range bundle.Entry {
		var resource fhir_dto.Observation
		if err := json.Unmarshal(entry.Resource, &resource); err != nil {
			continue
		}
		records = append(records, toVitalRecord(&resource))
	}
	return records
}

func toVitalRecord(resource *fhir_dto.Observation) responses.VitalRecord {
	value, components := vitalValue(resource)

	return responses.VitalRecord{
		ID:             resource.ID,
		Name:           conceptText(&resource.Code, DefaultUnknownVital),
		Code:           conceptCode(&resource.Code),
		LoincCode:      loincCode(resource.Code),
		Value:          value,
		Components:     components,
		Date:           observationDate(resource),
		Status:         titleCase(resource.Status, DefaultUnknown),
		Interpretation: interpretationText(resource.Interpretation, ""),
		Performer:      firstReferenceDisplay(resource.Performer, ""),
		BodySite:       conceptText(resource.BodySite, ""),
		Method:         conceptText(resource.Method, ""),
		Category:       firstCategory(resource.Category, "Vital Signs"),
	}
}

// vitalValue handles the multi-component form (blood pressure and friends)
// on top of the plain value[x] choice: each component contributes a
// name/value/unit and the composite display joins the values with "/".
func vitalValue(resource *fhir_dto.Observation) (responses.ObservationValue, []responses.VitalComponent) {
	if resource.ValueQuantity == nil && len(resource.Component) > 0 {
		components := make([]responses.VitalComponent, 0, len(resource.Component))
		var displays []string
		unit := ""

		for _, component := range resource.Component {
			value, componentUnit := componentValue(&component)
			if value == "" {
				continue
			}
			components = append(components, responses.VitalComponent{
				Name:  conceptText(&component.Code, ""),
				Value: value,
				Unit:  componentUnit,
			})
			displays = append(displays, value)
			if unit == "" {
				unit = componentUnit
			}
		}

		display := DefaultNA
		if len(displays) > 0 {
			display = strings.Join(displays, "/")
		}
		return responses.ObservationValue{
			Kind:    responses.ValueKindComponents,
			Display: display,
			Unit:    unit,
		}, components
	}

	return observationValue(resource), nil
}

func componentValue(component *fhir_dto.ObservationComponent) (string, string) {
	if component.ValueQuantity != nil {
		return formatQuantity(component.ValueQuantity)
	}
	if component.ValueString != nil {
		return *component.ValueString, ""
	}
	if component.ValueCodeableConcept != nil {
		return conceptText(component.ValueCodeableConcept, ""), ""
	}
	return "", ""
}
