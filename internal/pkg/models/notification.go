package models

// Notification is the payload handed to the dashboard's toast collaborator.
// DurationMs is ignored when Persistent is set.
type Notification struct {
	Message    string `json:"message"`
	Severity   string `json:"severity"`
	DurationMs int    `json:"duration_ms,omitempty"`
	Persistent bool   `json:"persistent,omitempty"`
}

const (
	NotificationSeveritySuccess = "success"
	NotificationSeverityError   = "error"
	NotificationSeverityInfo    = "info"
	NotificationSeverityWarning = "warning"
)
