package constvars

const (
	GetPatientSuccessMessage      = "Successfully retrieved patient demographics"
	GetMedicationsSuccessMessage  = "Successfully retrieved medications"
	GetLabResultsSuccessMessage   = "Successfully retrieved lab results"
	GetVitalSignsSuccessMessage   = "Successfully retrieved vital signs"
	LogoutSuccessMessage          = "Logged out successfully"
)
