package forms

import (
	"careform-service/internal/pkg/models"
	"careform-service/internal/pkg/utils"
)

// AppendMedication adds a blank medication row with a fresh identity token,
// today's start date and isActive set. No other item is touched or
// revalidated.
func (f *Form) AppendMedication() models.Medication {
	medication := models.Medication{
		LocalID:   utils.GenerateLocalID(),
		StartDate: utils.TodayYMD(),
		IsActive:  true,
	}
	f.Record.MedicalInfo.CurrentMedications = append(f.Record.MedicalInfo.CurrentMedications, medication)
	return medication
}

// RemoveMedication removes the item at index. Out-of-range indices are a
// no-op; remaining items keep their identity tokens.
func (f *Form) RemoveMedication(index int) {
	medications := f.Record.MedicalInfo.CurrentMedications
	if index < 0 || index >= len(medications) {
		return
	}
	f.Record.MedicalInfo.CurrentMedications = append(medications[:index], medications[index+1:]...)
}

// AppendDocument adds a blank document row defaulting to a medical record
// uploaded today.
func (f *Form) AppendDocument() models.Document {
	document := models.Document{
		LocalID:    utils.GenerateLocalID(),
		Type:       models.DocumentTypeMedicalRecord,
		UploadDate: utils.TodayYMD(),
	}
	f.Record.Documents = append(f.Record.Documents, document)
	return document
}

// RemoveDocument removes the item at index, tolerating out-of-range indices.
func (f *Form) RemoveDocument(index int) {
	documents := f.Record.Documents
	if index < 0 || index >= len(documents) {
		return
	}
	f.Record.Documents = append(documents[:index], documents[index+1:]...)
}
