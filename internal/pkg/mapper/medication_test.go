package mapper

import (
	"encoding/json"
	"testing"

	"portal-service/internal/pkg/fhir_dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bundleOf(t *testing.T, resources ...string) *fhir_dto.Bundle {
	t.Helper()
	bundle := &fhir_dto.Bundle{ResourceType: "Bundle", Total: len(resources)}
	for _, resource := range resources {
		bundle.Entry = append(bundle.Entry, fhir_dto.Entry{Resource: json.RawMessage(resource)})
	}
	return bundle
}

func TestToMedicationRecords(t *testing.T) {
	t.Run("Full Prescription", func(t *testing.T) {
		records := ToMedicationRecords(bundleOf(t, `{
			"resourceType": "MedicationRequest",
			"id": "med-1",
			"status": "active",
			"intent": "order",
			"authoredOn": "2024-01-15",
			"medicationCodeableConcept": {"text": "Lisinopril 10 MG Oral Tablet"},
			"requester": {"display": "Dr. Alice Nguyen"},
			"reasonCode": [{"text": "Hypertension"}],
			"category": [{"text": "Community"}],
			"dosageInstruction": [{
				"text": "Take 1 tablet by mouth once daily",
				"timing": {"repeat": {"frequency": 1, "period": 1, "periodUnit": "d"}},
				"route": {"text": "Oral"},
				"doseAndRate": [{"doseQuantity": {"value": 10, "unit": "mg"}}]
			}],
			"dispenseRequest": {
				"numberOfRepeatsAllowed": 3,
				"quantity": {"value": 30, "unit": "tablet"},
				"expectedSupplyDuration": {"value": 30, "unit": "days"}
			}
		}`))
		require.Len(t, records, 1)

		record := records[0]
		assert.Equal(t, "med-1", record.ID)
		assert.Equal(t, "Lisinopril 10 MG Oral Tablet", record.Name)
		assert.Equal(t, "Take 1 tablet by mouth once daily", record.Dosage)
		assert.Equal(t, "Active", record.Status)
		assert.Equal(t, "Order", record.Intent)
		assert.Equal(t, "2024-01-15", record.AuthoredOn)
		assert.Equal(t, "Dr. Alice Nguyen", record.Prescriber)
		assert.Equal(t, "Hypertension", record.Reason)
		assert.Equal(t, 3, record.Refills)
		assert.Equal(t, "30 tablet", record.Quantity)
		assert.Equal(t, "30 days", record.DaysSupply)
		assert.Equal(t, "Community", record.Category)

		require.Len(t, record.DosageDetails, 1)
		assert.Equal(t, "1x per 1d", record.DosageDetails[0].Timing)
		assert.Equal(t, "Oral", record.DosageDetails[0].Route)
		assert.Equal(t, "10 mg", record.DosageDetails[0].Dose)
	})

	t.Run("Empty Resource Yields Sentinel Defaults", func(t *testing.T) {
		records := ToMedicationRecords(bundleOf(t, `{"resourceType": "MedicationRequest"}`))
		require.Len(t, records, 1)

		record := records[0]
		assert.Equal(t, DefaultUnknownMedication, record.Name)
		assert.Equal(t, DefaultNoDosage, record.Dosage)
		assert.Equal(t, DefaultUnknown, record.Status)
		assert.Equal(t, DefaultUnknownDate, record.AuthoredOn)
		assert.Equal(t, DefaultUnknown, record.Prescriber)
		assert.Equal(t, DefaultNA, record.Reason)
		assert.Equal(t, 0, record.Refills)
		assert.Equal(t, DefaultNA, record.Quantity)
		assert.Equal(t, DefaultNA, record.DaysSupply)
	})

	t.Run("Name Falls Back To Medication Reference", func(t *testing.T) {
		records := ToMedicationRecords(bundleOf(t, `{
			"resourceType": "MedicationRequest",
			"medicationReference": {"display": "Atorvastatin 20 MG"}
		}`))
		require.Len(t, records, 1)
		assert.Equal(t, "Atorvastatin 20 MG", records[0].Name)
	})

	t.Run("Hyphenated Status Title-Cases Per Word", func(t *testing.T) {
		records := ToMedicationRecords(bundleOf(t, `{"resourceType": "MedicationRequest", "status": "on-hold"}`))
		require.Len(t, records, 1)
		assert.Equal(t, "On-Hold", records[0].Status)
	})

	t.Run("Undecodable Entries Are Skipped", func(t *testing.T) {
		records := ToMedicationRecords(bundleOf(t,
			`not json at all`,
			`{"resourceType": "MedicationRequest", "id": "med-2"}`,
		))
		require.Len(t, records, 1)
		assert.Equal(t, "med-2", records[0].ID)
	})

	t.Run("Empty Bundle Yields Empty Non-Nil Slice", func(t *testing.T) {
		records := ToMedicationRecords(&fhir_dto.Bundle{})
		assert.NotNil(t, records)
		assert.Empty(t, records)
	})
}
