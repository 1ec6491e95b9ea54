package schema

import (
	"fmt"

	"careform-service/internal/pkg/models"
)

// buildFieldRegistry declares every constrained field of a PatientRecord.
// Messages match the ones the dashboard shows next to the offending input.
func buildFieldRegistry() map[string]Rule {
	return map[string]Rule{
		"firstName":   {Tag: "required", Message: "First name is required"},
		"lastName":    {Tag: "required", Message: "Last name is required"},
		"dateOfBirth": {Tag: "required,date_ymd", Message: "Date of Birth is required (YYYY-MM-DD)"},
		"email":       {Tag: "required,email", Message: "Invalid email format"},
		"phone":       {Tag: "required,phone10", Message: "Invalid phone number format (10 digits)"},

		"address.street":  {Tag: "required", Message: "Street is required"},
		"address.city":    {Tag: "required", Message: "City is required"},
		"address.state":   {Tag: "required", Message: "State is required"},
		"address.zipCode": {Tag: "required,zip_code", Message: "Invalid ZIP code format (e.g., 12345 or 12345-6789)"},
		"address.country": {Tag: "required", Message: "Country is required"},

		"emergencyContact.name":         {Tag: "required", Message: "Emergency contact name is required"},
		"emergencyContact.relationship": {Tag: "required", Message: "Relationship is required"},
		"emergencyContact.phone":        {Tag: "required,phone10", Message: "Invalid phone number format (10 digits)"},
		"emergencyContact.email":        {Tag: "omitempty,email", Message: "Invalid email format"},

		"medicalInfo.bloodType": {Tag: "required,blood_type", Message: "Invalid blood type"},
		"medicalInfo.lastVisit": {Tag: "required,date_ymd", Message: "Last Visit date is required (YYYY-MM-DD)"},
		"medicalInfo.status":    {Tag: "required,record_status", Message: "Invalid status"},

		"medicalInfo.currentMedications[].name":         {Tag: "required", Message: "Medication name is required"},
		"medicalInfo.currentMedications[].dosage":       {Tag: "required", Message: "Dosage is required"},
		"medicalInfo.currentMedications[].frequency":    {Tag: "required", Message: "Frequency is required"},
		"medicalInfo.currentMedications[].prescribedBy": {Tag: "required", Message: "Prescriber is required"},
		"medicalInfo.currentMedications[].startDate":    {Tag: "required,date_ymd", Message: "Invalid date format (YYYY-MM-DD)"},
		"medicalInfo.currentMedications[].endDate":      {Tag: "omitempty,date_ymd", Message: "Invalid date format (YYYY-MM-DD)"},

		"insurance.provider":       {Tag: "required", Message: "Insurance provider is required"},
		"insurance.policyNumber":   {Tag: "required", Message: "Policy number is required"},
		"insurance.effectiveDate":  {Tag: "required,date_ymd", Message: "Invalid date format (YYYY-MM-DD)"},
		"insurance.expirationDate": {Tag: "omitempty,date_ymd", Message: "Invalid date format (YYYY-MM-DD)"},
		"insurance.copay":          {Tag: "gte=0", Kind: KindNumber, Message: "Copay must be non-negative"},
		"insurance.deductible":     {Tag: "gte=0", Kind: KindNumber, Message: "Deductible must be non-negative"},

		"documents[].type":       {Tag: "required,document_type", Message: "Invalid document type"},
		"documents[].name":       {Tag: "required", Message: "Document name is required"},
		"documents[].uploadDate": {Tag: "required,date_ymd", Message: "Invalid date format (YYYY-MM-DD)"},
		"documents[].fileSize":   {Tag: "gte=0", Kind: KindNumber, Message: "File size must be non-negative"},
		"documents[].mimeType":   {Tag: "required", Message: "Mime type is required"},
		"documents[].url":        {Tag: "omitempty,url", Message: "Invalid URL"},
	}
}

type fieldValue struct {
	path  string
	value interface{}
}

// collectFields flattens a record into (path, value) pairs for every
// constrained field, including one pair per collection item field.
func collectFields(record *models.PatientRecord) []fieldValue {
	fields := []fieldValue{
		{"firstName", record.FirstName},
		{"lastName", record.LastName},
		{"dateOfBirth", record.DateOfBirth},
		{"email", record.Email},
		{"phone", record.Phone},

		{"address.street", record.Address.Street},
		{"address.city", record.Address.City},
		{"address.state", record.Address.State},
		{"address.zipCode", record.Address.ZipCode},
		{"address.country", record.Address.Country},

		{"emergencyContact.name", record.EmergencyContact.Name},
		{"emergencyContact.relationship", record.EmergencyContact.Relationship},
		{"emergencyContact.phone", record.EmergencyContact.Phone},
		{"emergencyContact.email", record.EmergencyContact.Email},

		{"medicalInfo.bloodType", record.MedicalInfo.BloodType},
		{"medicalInfo.lastVisit", record.MedicalInfo.LastVisit},
		{"medicalInfo.status", record.MedicalInfo.Status},

		{"insurance.provider", record.Insurance.Provider},
		{"insurance.policyNumber", record.Insurance.PolicyNumber},
		{"insurance.effectiveDate", record.Insurance.EffectiveDate},
		{"insurance.expirationDate", record.Insurance.ExpirationDate},
		{"insurance.copay", record.Insurance.Copay},
		{"insurance.deductible", record.Insurance.Deductible},
	}

	for i, medication := range record.MedicalInfo.CurrentMedications {
		prefix := fmt.Sprintf("medicalInfo.currentMedications[%d]", i)
		fields = append(fields,
			fieldValue{prefix + ".name", medication.Name},
			fieldValue{prefix + ".dosage", medication.Dosage},
			fieldValue{prefix + ".frequency", medication.Frequency},
			fieldValue{prefix + ".prescribedBy", medication.PrescribedBy},
			fieldValue{prefix + ".startDate", medication.StartDate},
			fieldValue{prefix + ".endDate", medication.EndDate},
		)
	}

	for i, document := range record.Documents {
		prefix := fmt.Sprintf("documents[%d]", i)
		fields = append(fields,
			fieldValue{prefix + ".type", document.Type},
			fieldValue{prefix + ".name", document.Name},
			fieldValue{prefix + ".uploadDate", document.UploadDate},
			fieldValue{prefix + ".fileSize", document.FileSize},
			fieldValue{prefix + ".mimeType", document.MimeType},
			fieldValue{prefix + ".url", document.URL},
		)
	}

	return fields
}
