package responses

// ObservationValue is the tagged union an Observation value flattens into.
// Kind is one of the ValueKind constants; Display is always populated.
type ObservationValue struct {
	Kind     string   `json:"kind"`
	Display  string   `json:"display"`
	Unit     string   `json:"unit,omitempty"`
	Quantity *float64 `json:"quantity,omitempty"`
}

const (
	ValueKindQuantity   = "quantity"
	ValueKindString     = "string"
	ValueKindCoded      = "coded"
	ValueKindBoolean    = "boolean"
	ValueKindComponents = "components"
	ValueKindNone       = "none"
)

type LabRecord struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	Code               string           `json:"code"`
	Value              ObservationValue `json:"value"`
	ReferenceRange     string           `json:"referenceRange"`
	Status             string           `json:"status"`
	Date               string           `json:"date"`
	Interpretation     string           `json:"interpretation"`
	InterpretationCode string           `json:"interpretationCode"`
	Performer          string           `json:"performer"`
	Specimen           string           `json:"specimen"`
	Notes              string           `json:"notes"`
	Category           string           `json:"category"`
}

type LabListResponse struct {
	Labs  []LabRecord `json:"labs"`
	Error string      `json:"error,omitempty"`
}

type VitalRecord struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Code           string           `json:"code"`
	LoincCode      string           `json:"loincCode"`
	Value          ObservationValue `json:"value"`
	Components     []VitalComponent `json:"components"`
	Date           string           `json:"date"`
	Status         string           `json:"status"`
	Interpretation string           `json:"interpretation"`
	Performer      string           `json:"performer"`
	BodySite       string           `json:"bodySite"`
	Method         string           `json:"method"`
	Category       string           `json:"category"`
}

type VitalComponent struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Unit  string `json:"unit"`
}

type VitalListResponse struct {
	Vitals []VitalRecord `json:"vitals"`
	Error  string        `json:"error,omitempty"`
}
