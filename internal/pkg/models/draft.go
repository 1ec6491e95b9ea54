package models

import "time"

// PatientDraft is the persisted edit-in-progress for one identity key. The
// schema version tags the record shape the draft was written against; drafts
// from an older shape are ignored on load instead of being re-validated.
type PatientDraft struct {
	Key           string        `json:"key" bson:"key"`
	SchemaVersion int           `json:"schemaVersion" bson:"schemaVersion"`
	Record        PatientRecord `json:"record" bson:"record"`
	SavedAt       time.Time     `json:"savedAt" bson:"savedAt"`
}
