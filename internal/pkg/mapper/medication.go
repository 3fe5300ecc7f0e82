package mapper

import (
	"encoding/json"
	"fmt"
	"strings"

	"portal-service/internal/pkg/dto/responses"
	"portal-service/internal/pkg/fhir_dto"
)

// ToMedicationRecords flattens every MedicationRequest in a search bundle.
// Entries that fail to decode are skipped; the result is always well formed.
func ToMedicationRecords(bundle *fhir_dto.Bundle) []responses.MedicationRecord {
	records := make([]responses.MedicationRecord, 0, len(bundle.Entry))
	for _, entry := range bundle.Entry {
		var resource fhir_dto.MedicationRequest
		if err := json.Unmarshal(entry.Resource, &resource); err != nil {
			continue
		}
		records = append(records, toMedicationRecord(&resource))
	}
	return records
}

func toMedicationRecord(resource *fhir_dto.MedicationRequest) responses.MedicationRecord {
	authoredOn := resource.AuthoredOn
	if authoredOn == "" {
		authoredOn = DefaultUnknownDate
	}

	prescriber := DefaultUnknown
	if resource.Requester != nil && resource.Requester.Display != "" {
		prescriber = resource.Requester.Display
	}

	reason := DefaultNA
	if len(resource.ReasonCode) > 0 {
		reason = conceptText(&resource.ReasonCode[0], DefaultNA)
	}

	refills := 0
	quantity := DefaultNA
	daysSupply := DefaultNA
	if dispense := resource.DispenseRequest; dispense != nil {
		refills = dispense.NumberOfRepeatsAllowed
		if value, unit := formatQuantity(dispense.Quantity); value != "" {
			quantity = strings.TrimSpace(value + " " + unit)
		}
		if value, unit := formatQuantity(dispense.ExpectedSupplyDuration); value != "" {
			daysSupply = strings.TrimSpace(value + " " + unit)
		}
	}

	return responses.MedicationRecord{
		ID:            resource.ID,
		Name:          medicationName(resource),
		Dosage:        dosageSummary(resource.DosageInstruction),
		DosageDetails: dosageDetails(resource.DosageInstruction),
		Status:        titleCase(resource.Status, DefaultUnknown),
		AuthoredOn:    authoredOn,
		Prescriber:    prescriber,
		Reason:        reason,
		Refills:       refills,
		Quantity:      quantity,
		DaysSupply:    daysSupply,
		Intent:        titleCase(resource.Intent, DefaultUnknown),
		Category:      firstCategory(resource.Category, DefaultNA),
	}
}

// medicationName resolves the display name through the codeable concept's
// text, its first coding, then the medication reference.
func medicationName(resource *fhir_dto.MedicationRequest) string {
	if concept := resource.MedicationCodeableConcept; concept != nil {
		if name := conceptText(concept, ""); name != "" {
			return name
		}
	}
	if resource.MedicationReference != nil && resource.MedicationReference.Display != "" {
		return resource.MedicationReference.Display
	}
	return DefaultUnknownMedication
}

func dosageSummary(instructions []fhir_dto.Dosage) string {
	if len(instructions) == 0 || instructions[0].Text == "" {
		return DefaultNoDosage
	}
	return instructions[0].Text
}

func dosageDetails(instructions []fhir_dto.Dosage) []responses.DosageDetail {
	details := make([]responses.DosageDetail, 0, len(instructions))
	for _, instruction := range instructions {
		details = append(details, responses.DosageDetail{
			Timing: dosageTiming(instruction.Timing),
			Route:  conceptText(instruction.Route, ""),
			Dose:   dosageDose(instruction.DoseAndRate),
		})
	}
	return details
}

// dosageTiming prefers the timing code's text and otherwise synthesizes a
// "{frequency}x per {period}{periodUnit}" summary from the repeat block.
func dosageTiming(timing *fhir_dto.Timing) string {
	if timing == nil {
		return ""
	}
	if text := conceptText(timing.Code, ""); text != "" {
		return text
	}
	repeat := timing.Repeat
	if repeat == nil || repeat.Frequency == 0 || repeat.Period == nil {
		return ""
	}
	return fmt.Sprintf("%dx per %s%s", repeat.Frequency, formatFloat(*repeat.Period), repeat.PeriodUnit)
}

func dosageDose(doseAndRate []fhir_dto.DoseAndRate) string {
	for _, dose := range doseAndRate {
		if value, unit := formatQuantity(dose.DoseQuantity); value != "" {
			return strings.TrimSpace(value + " " + unit)
		}
	}
	return ""
}
