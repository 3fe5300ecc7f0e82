package mapper

import (
	"strconv"
	"strings"
	"unicode"

	"portal-service/internal/pkg/constvars"
	"portal-service/internal/pkg/fhir_dto"
)

// Sentinel defaults. Missing or malformed FHIR fields degrade to these;
// extraction never fails.
const (
	DefaultUnknown           = "Unknown"
	DefaultNA                = "N/A"
	DefaultNoAddress         = "No address on file"
	DefaultLanguage          = "English"
	DefaultUnknownMedication = "Unknown Medication"
	DefaultNoDosage          = "No dosage information"
	DefaultUnknownTest       = "Unknown Test"
	DefaultUnknownVital      = "Unknown Vital"
	DefaultUnknownDate       = "Unknown date"
	DefaultNormal            = "Normal"
)

// formatHumanName joins the given-name parts of the first name entry with
// spaces and appends the family name.
func formatHumanName(names []fhir_dto.HumanName) string {
	if len(names) == 0 {
		return DefaultUnknown
	}
	name := names[0]
	full := strings.TrimSpace(strings.Join(name.Given, " ") + " " + name.Family)
	if full == "" {
		return DefaultUnknown
	}
	return full
}

// preferredIdentifier picks an MR/MRN-typed identifier first, then one whose
// system mentions epic, then the first entry, then the resource's own id.
func preferredIdentifier(identifiers []fhir_dto.Identifier, resourceID string) string {
	for _, identifier := range identifiers {
		if identifier.Type == nil {
			continue
		}
		for _, coding := range identifier.Type.Coding {
			if coding.Code == constvars.FhirIdentifierTypeMR || coding.Code == constvars.FhirIdentifierTypeMRN {
				if identifier.Value != "" {
					return identifier.Value
				}
			}
		}
	}
	for _, identifier := range identifiers {
		if strings.Contains(strings.ToLower(identifier.System), "epic") && identifier.Value != "" {
			return identifier.Value
		}
	}
	if len(identifiers) > 0 && identifiers[0].Value != "" {
		return identifiers[0].Value
	}
	if resourceID != "" {
		return resourceID
	}
	return DefaultNA
}

func formatAddress(addresses []fhir_dto.Address) string {
	if len(addresses) == 0 {
		return DefaultNoAddress
	}
	address := addresses[0]

	var segments []string
	for _, line := range address.Line {
		if line != "" {
			segments = append(segments, line)
		}
	}

	locality := address.City
	if address.State != "" {
		if locality != "" {
			locality += ", " + address.State
		} else {
			locality = address.State
		}
	}
	if address.PostalCode != "" {
		if locality != "" {
			locality += " " + address.PostalCode
		} else {
			locality = address.PostalCode
		}
	}
	if locality != "" {
		segments = append(segments, locality)
	}
	if address.Country != "" {
		segments = append(segments, address.Country)
	}

	if len(segments) == 0 {
		return DefaultNoAddress
	}
	return strings.Join(segments, ", ")
}

func telecomValue(telecoms []fhir_dto.ContactPoint, system string) string {
	for _, telecom := range telecoms {
		if telecom.System == system {
			if telecom.Value == "" {
				return DefaultNA
			}
			return telecom.Value
		}
	}
	return DefaultNA
}

func preferredLanguage(communications []fhir_dto.PatientCommunication) string {
	for _, communication := range communications {
		if !communication.Preferred {
			continue
		}
		if text := conceptText(&communication.Language, ""); text != "" {
			return text
		}
		return DefaultLanguage
	}
	return DefaultLanguage
}

// conceptText returns the concept's text, else its first coding's display,
// else the fallback.
func conceptText(concept *fhir_dto.CodeableConcept, fallback string) string {
	if concept == nil {
		return fallback
	}
	if concept.Text != "" {
		return concept.Text
	}
	for _, coding := range concept.Coding {
		if coding.Display != "" {
			return coding.Display
		}
	}
	return fallback
}

func conceptCode(concept *fhir_dto.CodeableConcept) string {
	if concept == nil || len(concept.Coding) == 0 {
		return ""
	}
	return concept.Coding[0].Code
}

func loincCode(concept fhir_dto.CodeableConcept) string {
	for _, coding := range concept.Coding {
		if strings.Contains(strings.ToLower(coding.System), constvars.FhirCodingSystemLOINC) {
			return coding.Code
		}
	}
	return ""
}

// titleCase title-cases a raw FHIR code value word by word ("on-hold"
// becomes "On-Hold"), falling back when the value is empty.
func titleCase(value, fallback string) string {
	if value == "" {
		return fallback
	}
	var sb strings.Builder
	startOfWord := true
	for _, r := range value {
		if unicode.IsLetter(r) {
			if startOfWord {
				sb.WriteRune(unicode.ToUpper(r))
			} else {
				sb.WriteRune(unicode.ToLower(r))
			}
			startOfWord = false
		} else {
			sb.WriteRune(r)
			startOfWord = true
		}
	}
	return sb.String()
}

func interpretationText(interpretations []fhir_dto.CodeableConcept, fallback string) string {
	if len(interpretations) == 0 {
		return fallback
	}
	return conceptText(&interpretations[0], fallback)
}

func interpretationCode(interpretations []fhir_dto.CodeableConcept) string {
	if len(interpretations) == 0 {
		return ""
	}
	return conceptCode(&interpretations[0])
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// formatQuantity renders a Quantity's numeric value and unit.
func formatQuantity(quantity *fhir_dto.Quantity) (string, string) {
	if quantity == nil {
		return "", ""
	}
	value := ""
	if quantity.Value != nil {
		value = formatFloat(*quantity.Value)
	}
	return value, quantity.Unit
}

// formatReferenceRange renders the first reference range entry. A
// resource-supplied text wins over the synthesized low/high form.
func formatReferenceRange(ranges []fhir_dto.ObservationReferenceRange) string {
	if len(ranges) == 0 {
		return DefaultNA
	}
	rr := ranges[0]
	if rr.Text != "" {
		return rr.Text
	}

	low, _ := formatQuantity(rr.Low)
	high, _ := formatQuantity(rr.High)
	switch {
	case low != "" && high != "":
		return low + " - " + high
	case low != "":
		return ">= " + low
	case high != "":
		return "<= " + high
	default:
		return DefaultNA
	}
}

func firstReferenceDisplay(references []fhir_dto.Reference, fallback string) string {
	for _, reference := range references {
		if reference.Display != "" {
			return reference.Display
		}
	}
	return fallback
}

func annotationText(notes []fhir_dto.Annotation) string {
	var texts []string
	for _, note := range notes {
		if note.Text != "" {
			texts = append(texts, note.Text)
		}
	}
	return strings.Join(texts, "; ")
}

func firstCategory(categories []fhir_dto.CodeableConcept, fallback string) string {
	if len(categories) == 0 {
		return fallback
	}
	return conceptText(&categories[0], fallback)
}
