package schema

import (
	"regexp"
	"strconv"
	"strings"

	"careform-service/internal/pkg/constvars"
	"careform-service/internal/pkg/models"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// Schema is the single source of truth for structural and format validity of
// a PatientRecord. Rules are declared once at construction; every field is
// addressable by its dotted path, with collection items indexed like
// medicalInfo.currentMedications[2].dosage.
type Schema struct {
	validate *validator.Validate
	fields   map[string]Rule
}

// ValueKind is the wire type a rule validates against. Incoming values are
// coerced to the rule's kind before validation; a value that cannot be
// coerced is reported with the rule's message instead of being handed to the
// validator, which panics on unexpected Go types.
type ValueKind int

const (
	KindString ValueKind = iota
	KindNumber
)

type Rule struct {
	Tag     string
	Kind    ValueKind
	Message string
}

var (
	indexedPathPattern = regexp.MustCompile(`\[\d+\]`)

	dateYMDPattern = regexp.MustCompile(constvars.RegexDateYMD)
	phone10Pattern = regexp.MustCompile(constvars.RegexPhone10)
	zipCodePattern = regexp.MustCompile(constvars.RegexZipCode)
)

func New() *Schema {
	validate := validator.New()
	validate.RegisterValidation("date_ymd", validateDateYMD)
	validate.RegisterValidation("phone10", validatePhone10)
	validate.RegisterValidation("zip_code", validateZipCode)
	validate.RegisterValidation("blood_type", validateBloodType)
	validate.RegisterValidation("record_status", validateRecordStatus)
	validate.RegisterValidation("document_type", validateDocumentType)

	return &Schema{
		validate: validate,
		fields:   buildFieldRegistry(),
	}
}

// Rule returns the declared rule for a field path. Indexed collection paths
// are canonicalized, so any item index resolves to the same rule.
func (s *Schema) Rule(path string) (Rule, bool) {
	rule, ok := s.fields[CanonicalPath(path)]
	return rule, ok
}

// ValidateValue checks one value against the rule declared for path. The
// returned message is empty when the value is valid. Paths without a declared
// rule are accepted; the form may carry fields the schema does not constrain.
// Values arrive as decoded JSON, so their Go type is untrusted: a value of
// the wrong kind for the rule fails with the rule's message.
func (s *Schema) ValidateValue(path string, value interface{}) string {
	rule, ok := s.Rule(path)
	if !ok {
		return ""
	}
	coerced, ok := coerceValue(rule.Kind, value)
	if !ok {
		return rule.Message
	}
	if err := s.validate.Var(coerced, rule.Tag); err != nil {
		return rule.Message
	}
	return ""
}

// coerceValue maps an untyped JSON value onto the rule's kind. Numeric rules
// accept JSON numbers and numeric strings, so "-5" typed into an amount
// input fails the same gte check as -5. String rules accept strings and
// treat null as empty, which the required tag then rejects.
func coerceValue(kind ValueKind, value interface{}) (interface{}, bool) {
	switch kind {
	case KindNumber:
		switch v := value.(type) {
		case float64:
			return v, true
		case float32:
			return float64(v), true
		case int:
			return float64(v), true
		case int64:
			return float64(v), true
		case json.Number:
			parsed, err := v.Float64()
			if err != nil {
				return nil, false
			}
			return parsed, true
		case string:
			parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return nil, false
			}
			return parsed, true
		}
		return nil, false
	default:
		switch v := value.(type) {
		case string:
			return v, true
		case nil:
			return "", true
		}
		return nil, false
	}
}

// Validate checks a whole candidate record and returns an error map keyed by
// exact field path. A valid record yields an empty map.
func (s *Schema) Validate(record *models.PatientRecord) map[string]string {
	errs := make(map[string]string)
	if record == nil {
		return errs
	}
	for _, field := range collectFields(record) {
		if message := s.ValidateValue(field.path, field.value); message != "" {
			errs[field.path] = message
		}
	}
	return errs
}

// ValidateSection validates only the fields under the given path prefix
// (e.g. "address" or "medicalInfo.currentMedications[0]"), so a single form
// section can surface its errors independently.
func (s *Schema) ValidateSection(prefix string, record *models.PatientRecord) map[string]string {
	errs := make(map[string]string)
	if record == nil {
		return errs
	}
	for _, field := range collectFields(record) {
		if !hasPathPrefix(field.path, prefix) {
			continue
		}
		if message := s.ValidateValue(field.path, field.value); message != "" {
			errs[field.path] = message
		}
	}
	return errs
}

// CanonicalPath strips item indices from a field path, mapping
// medicalInfo.currentMedications[2].dosage onto the declared
// medicalInfo.currentMedications[].dosage rule.
func CanonicalPath(path string) string {
	return indexedPathPattern.ReplaceAllString(path, "[]")
}

func hasPathPrefix(path, prefix string) bool {
	if prefix == "" {
		return true
	}
	if len(path) < len(prefix) || path[:len(prefix)] != prefix {
		return false
	}
	return len(path) == len(prefix) || path[len(prefix)] == '.' || path[len(prefix)] == '['
}

func validateDateYMD(fl validator.FieldLevel) bool {
	return dateYMDPattern.MatchString(fl.Field().String())
}

func validatePhone10(fl validator.FieldLevel) bool {
	return phone10Pattern.MatchString(fl.Field().String())
}

func validateZipCode(fl validator.FieldLevel) bool {
	return zipCodePattern.MatchString(fl.Field().String())
}

func validateBloodType(fl validator.FieldLevel) bool {
	return containsString(models.BloodTypes, fl.Field().String())
}

func validateRecordStatus(fl validator.FieldLevel) bool {
	return containsString(models.PatientStatuses, fl.Field().String())
}

func validateDocumentType(fl validator.FieldLevel) bool {
	return containsString(models.DocumentTypes, fl.Field().String())
}

func containsString(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
