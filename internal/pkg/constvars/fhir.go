package constvars

const (
	ResourcePatient           = "Patient"
	ResourceMedicationRequest = "MedicationRequest"
	ResourceObservation       = "Observation"
)

const (
	ObservationCategoryLaboratory = "laboratory"
	ObservationCategoryVitalSigns = "vital-signs"
)

const (
	FhirQueryParamPatient  = "patient"
	FhirQueryParamCategory = "category"
	FhirQueryParamCount    = "_count"
	FhirQueryParamOffset   = "_offset"
	FhirQueryParamSort     = "_sort"

	FhirSortNewestFirst = "-date"
)

const (
	FhirIdentifierTypeMR  = "MR"
	FhirIdentifierTypeMRN = "MRN"

	FhirCodingSystemLOINC = "loinc"
)
