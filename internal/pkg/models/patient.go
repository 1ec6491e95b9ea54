package models

// PatientRecord is the aggregate edited by the dashboard form. Field names on
// the wire mirror the dashboard API payloads.
type PatientRecord struct {
	ID               string           `json:"id,omitempty" bson:"id,omitempty"`
	FirstName        string           `json:"firstName" bson:"firstName"`
	LastName         string           `json:"lastName" bson:"lastName"`
	DateOfBirth      string           `json:"dateOfBirth" bson:"dateOfBirth"`
	Email            string           `json:"email" bson:"email"`
	Phone            string           `json:"phone" bson:"phone"`
	Address          Address          `json:"address" bson:"address"`
	EmergencyContact EmergencyContact `json:"emergencyContact" bson:"emergencyContact"`
	MedicalInfo      MedicalInfo      `json:"medicalInfo" bson:"medicalInfo"`
	Insurance        InsuranceInfo    `json:"insurance" bson:"insurance"`
	Documents        []Document       `json:"documents" bson:"documents"`
	CreatedAt        string           `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt        string           `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

type Address struct {
	Street  string `json:"street" bson:"street"`
	City    string `json:"city" bson:"city"`
	State   string `json:"state" bson:"state"`
	ZipCode string `json:"zipCode" bson:"zipCode"`
	Country string `json:"country" bson:"country"`
}

type EmergencyContact struct {
	Name         string `json:"name" bson:"name"`
	Relationship string `json:"relationship" bson:"relationship"`
	Phone        string `json:"phone" bson:"phone"`
	Email        string `json:"email,omitempty" bson:"email,omitempty"`
}

type MedicalInfo struct {
	Allergies          []string     `json:"allergies" bson:"allergies"`
	CurrentMedications []Medication `json:"currentMedications" bson:"currentMedications"`
	Conditions         []string     `json:"conditions" bson:"conditions"`
	BloodType          string       `json:"bloodType" bson:"bloodType"`
	LastVisit          string       `json:"lastVisit" bson:"lastVisit"`
	Status             string       `json:"status" bson:"status"`
}

// Medication is a collection item. LocalID is the client-side identity token
// that keeps an item addressable across removals; it is never sent upstream.
type Medication struct {
	ID           string `json:"id,omitempty" bson:"id,omitempty"`
	LocalID      string `json:"localId,omitempty" bson:"localId,omitempty"`
	Name         string `json:"name" bson:"name"`
	Dosage       string `json:"dosage" bson:"dosage"`
	Frequency    string `json:"frequency" bson:"frequency"`
	PrescribedBy string `json:"prescribedBy" bson:"prescribedBy"`
	StartDate    string `json:"startDate" bson:"startDate"`
	EndDate      string `json:"endDate,omitempty" bson:"endDate,omitempty"`
	IsActive     bool   `json:"isActive" bson:"isActive"`
}

type InsuranceInfo struct {
	Provider       string  `json:"provider" bson:"provider"`
	PolicyNumber   string  `json:"policyNumber" bson:"policyNumber"`
	GroupNumber    string  `json:"groupNumber,omitempty" bson:"groupNumber,omitempty"`
	EffectiveDate  string  `json:"effectiveDate" bson:"effectiveDate"`
	ExpirationDate string  `json:"expirationDate,omitempty" bson:"expirationDate,omitempty"`
	Copay          float64 `json:"copay" bson:"copay"`
	Deductible     float64 `json:"deductible" bson:"deductible"`
}

type Document struct {
	ID         string  `json:"id,omitempty" bson:"id,omitempty"`
	LocalID    string  `json:"localId,omitempty" bson:"localId,omitempty"`
	Type       string  `json:"type" bson:"type"`
	Name       string  `json:"name" bson:"name"`
	UploadDate string  `json:"uploadDate" bson:"uploadDate"`
	URL        string  `json:"url,omitempty" bson:"url,omitempty"`
	FileSize   float64 `json:"fileSize" bson:"fileSize"`
	MimeType   string  `json:"mimeType" bson:"mimeType"`
}

const (
	PatientStatusActive   = "active"
	PatientStatusInactive = "inactive"
	PatientStatusCritical = "critical"
)

const (
	DocumentTypeMedicalRecord = "medical_record"
	DocumentTypeInsuranceCard = "insurance_card"
	DocumentTypePhotoID       = "photo_id"
	DocumentTypeTestResult    = "test_result"
	DocumentTypeOther         = "other"
)

var BloodTypes = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

var PatientStatuses = []string{
	PatientStatusActive,
	PatientStatusInactive,
	PatientStatusCritical,
}

var DocumentTypes = []string{
	DocumentTypeMedicalRecord,
	DocumentTypeInsuranceCard,
	DocumentTypePhotoID,
	DocumentTypeTestResult,
	DocumentTypeOther,
}
