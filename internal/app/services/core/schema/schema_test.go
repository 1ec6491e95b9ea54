package schema

import (
	"testing"

	"careform-service/internal/pkg/models"

	"github.com/stretchr/testify/assert"
)

func validRecord() models.PatientRecord {
	return models.PatientRecord{
		FirstName:   "John",
		LastName:    "Doe",
		DateOfBirth: "1980-04-12",
		Email:       "john.doe@example.com",
		Phone:       "5551234567",
		Address: models.Address{
			Street:  "123 Main St",
			City:    "Anytown",
			State:   "CA",
			ZipCode: "90210",
			Country: "USA",
		},
		EmergencyContact: models.EmergencyContact{
			Name:         "Jane Doe",
			Relationship: "Spouse",
			Phone:        "5557654321",
		},
		MedicalInfo: models.MedicalInfo{
			Allergies:          []string{"Peanuts"},
			CurrentMedications: []models.Medication{},
			Conditions:         []string{},
			BloodType:          "O+",
			LastVisit:          "2024-06-01",
			Status:             models.PatientStatusActive,
		},
		Insurance: models.InsuranceInfo{
			Provider:      "BlueCross",
			PolicyNumber:  "BC12345",
			EffectiveDate: "2020-01-01",
			Copay:         20,
			Deductible:    500,
		},
		Documents: []models.Document{},
	}
}

func TestSchemaValidate(t *testing.T) {
	recordSchema := New()

	t.Run("Valid Record", func(t *testing.T) {
		record := validRecord()
		errs := recordSchema.Validate(&record)
		assert.Empty(t, errs, "a fully populated record should produce no errors")
	})

	t.Run("Missing Required Field", func(t *testing.T) {
		record := validRecord()
		record.FirstName = ""
		errs := recordSchema.Validate(&record)
		assert.Equal(t, "First name is required", errs["firstName"])
		assert.Len(t, errs, 1)
	})

	t.Run("Invalid Nested Field", func(t *testing.T) {
		record := validRecord()
		record.Address.ZipCode = "9021"
		errs := recordSchema.Validate(&record)
		assert.Equal(t, "Invalid ZIP code format (e.g., 12345 or 12345-6789)", errs["address.zipCode"])
	})

	t.Run("Extended Zip Accepted", func(t *testing.T) {
		record := validRecord()
		record.Address.ZipCode = "90210-1234"
		errs := recordSchema.Validate(&record)
		assert.Empty(t, errs)
	})

	t.Run("Invalid Phone", func(t *testing.T) {
		record := validRecord()
		record.Phone = "555-123-4567"
		errs := recordSchema.Validate(&record)
		assert.Equal(t, "Invalid phone number format (10 digits)", errs["phone"])
	})

	t.Run("Invalid Email", func(t *testing.T) {
		record := validRecord()
		record.Email = "not-an-email"
		errs := recordSchema.Validate(&record)
		assert.Equal(t, "Invalid email format", errs["email"])
	})

	t.Run("Invalid Date Format", func(t *testing.T) {
		record := validRecord()
		record.DateOfBirth = "12/04/1980"
		errs := recordSchema.Validate(&record)
		assert.Equal(t, "Date of Birth is required (YYYY-MM-DD)", errs["dateOfBirth"])
	})

	t.Run("Negative Copay", func(t *testing.T) {
		record := validRecord()
		record.Insurance.Copay = -5
		errs := recordSchema.Validate(&record)
		assert.Equal(t, "Copay must be non-negative", errs["insurance.copay"])
	})

	t.Run("Zero Copay Accepted", func(t *testing.T) {
		record := validRecord()
		record.Insurance.Copay = 0
		errs := recordSchema.Validate(&record)
		assert.Empty(t, errs)
	})

	t.Run("Indexed Medication Path", func(t *testing.T) {
		record := validRecord()
		record.MedicalInfo.CurrentMedications = []models.Medication{
			{Name: "Lisinopril", Dosage: "10mg", Frequency: "daily", PrescribedBy: "Dr. Smith", StartDate: "2024-01-01"},
			{Name: "", Dosage: "500mg", Frequency: "twice daily", PrescribedBy: "Dr. Smith", StartDate: "2024-01-01"},
		}
		errs := recordSchema.Validate(&record)
		assert.Equal(t, "Medication name is required", errs["medicalInfo.currentMedications[1].name"])
		assert.NotContains(t, errs, "medicalInfo.currentMedications[0].name")
	})

	t.Run("Optional Medication End Date", func(t *testing.T) {
		record := validRecord()
		record.MedicalInfo.CurrentMedications = []models.Medication{
			{Name: "Metformin", Dosage: "500mg", Frequency: "daily", PrescribedBy: "Dr. Smith", StartDate: "2024-01-01", EndDate: ""},
		}
		errs := recordSchema.Validate(&record)
		assert.Empty(t, errs, "an empty end date is allowed")
	})

	t.Run("Invalid Document Type", func(t *testing.T) {
		record := validRecord()
		record.Documents = []models.Document{
			{Type: "receipt", Name: "scan.pdf", UploadDate: "2024-06-01", FileSize: 1024, MimeType: "application/pdf"},
		}
		errs := recordSchema.Validate(&record)
		assert.Equal(t, "Invalid document type", errs["documents[0].type"])
	})

	t.Run("Invalid Blood Type", func(t *testing.T) {
		record := validRecord()
		record.MedicalInfo.BloodType = "C+"
		errs := recordSchema.Validate(&record)
		assert.Equal(t, "Invalid blood type", errs["medicalInfo.bloodType"])
	})

	t.Run("Nil Record", func(t *testing.T) {
		errs := New().Validate(nil)
		assert.Empty(t, errs)
	})
}

func TestSchemaValidateValue(t *testing.T) {
	recordSchema := New()

	t.Run("Valid Value", func(t *testing.T) {
		assert.Empty(t, recordSchema.ValidateValue("email", "jane@example.com"))
	})

	t.Run("Invalid Value", func(t *testing.T) {
		assert.Equal(t, "Invalid email format", recordSchema.ValidateValue("email", "jane@"))
	})

	t.Run("Indexed Path Resolves Canonical Rule", func(t *testing.T) {
		message := recordSchema.ValidateValue("medicalInfo.currentMedications[3].dosage", "")
		assert.Equal(t, "Dosage is required", message)
	})

	t.Run("Unknown Path Accepted", func(t *testing.T) {
		assert.Empty(t, recordSchema.ValidateValue("unknown.path", "anything"))
	})

	t.Run("Numeric Rule Rejects Wrong Type Without Panicking", func(t *testing.T) {
		assert.NotPanics(t, func() {
			message := recordSchema.ValidateValue("insurance.copay", true)
			assert.Equal(t, "Copay must be non-negative", message)
		})
	})

	t.Run("Numeric Rule Agrees Across Wire Types", func(t *testing.T) {
		// decoded JSON may deliver an amount as a number or as text
		assert.Equal(t, "Copay must be non-negative", recordSchema.ValidateValue("insurance.copay", float64(-5)))
		assert.Equal(t, "Copay must be non-negative", recordSchema.ValidateValue("insurance.copay", "-5"))
		assert.Empty(t, recordSchema.ValidateValue("insurance.copay", float64(20)))
		assert.Empty(t, recordSchema.ValidateValue("insurance.copay", "20"))
		assert.Empty(t, recordSchema.ValidateValue("insurance.copay", "0"))
	})

	t.Run("Numeric Rule Rejects Non Numeric Text", func(t *testing.T) {
		assert.Equal(t, "Copay must be non-negative", recordSchema.ValidateValue("insurance.copay", "lots"))
	})

	t.Run("String Rule Rejects Wrong Type", func(t *testing.T) {
		assert.NotPanics(t, func() {
			assert.Equal(t, "First name is required", recordSchema.ValidateValue("firstName", 42))
			assert.Equal(t, "Invalid email format", recordSchema.ValidateValue("email", true))
		})
	})

	t.Run("Null Treated As Empty String", func(t *testing.T) {
		assert.Equal(t, "First name is required", recordSchema.ValidateValue("firstName", nil))
		assert.Empty(t, recordSchema.ValidateValue("emergencyContact.email", nil))
	})
}

func TestSchemaValidateSection(t *testing.T) {
	recordSchema := New()

	t.Run("Only Section Errors Reported", func(t *testing.T) {
		record := validRecord()
		record.FirstName = ""
		record.Address.City = ""
		errs := recordSchema.ValidateSection("address", &record)
		assert.Equal(t, "City is required", errs["address.city"])
		assert.NotContains(t, errs, "firstName")
	})

	t.Run("Single Collection Item Section", func(t *testing.T) {
		record := validRecord()
		record.MedicalInfo.CurrentMedications = []models.Medication{
			{Name: "", Dosage: "", Frequency: "daily", PrescribedBy: "Dr. Smith", StartDate: "2024-01-01"},
			{Name: "", Dosage: "10mg", Frequency: "daily", PrescribedBy: "Dr. Smith", StartDate: "2024-01-01"},
		}
		errs := recordSchema.ValidateSection("medicalInfo.currentMedications[0]", &record)
		assert.Len(t, errs, 2)
		assert.Contains(t, errs, "medicalInfo.currentMedications[0].name")
		assert.Contains(t, errs, "medicalInfo.currentMedications[0].dosage")
		assert.NotContains(t, errs, "medicalInfo.currentMedications[1].name")
	})

	t.Run("Prefix Does Not Match Sibling Field", func(t *testing.T) {
		record := validRecord()
		record.Email = "broken"
		errs := recordSchema.ValidateSection("emergencyContact", &record)
		assert.Empty(t, errs, "emergencyContact prefix must not pick up the top-level email")
	})

	t.Run("Empty Prefix Validates Everything", func(t *testing.T) {
		record := validRecord()
		record.LastName = ""
		errs := recordSchema.ValidateSection("", &record)
		assert.Contains(t, errs, "lastName")
	})
}

func TestCanonicalPath(t *testing.T) {
	assert.Equal(t, "documents[].name", CanonicalPath("documents[12].name"))
	assert.Equal(t, "firstName", CanonicalPath("firstName"))
	assert.Equal(
		t,
		"medicalInfo.currentMedications[].endDate",
		CanonicalPath("medicalInfo.currentMedications[0].endDate"),
	)
}
