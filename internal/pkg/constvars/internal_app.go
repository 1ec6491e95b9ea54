package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	ResourcePatients = "patients"
	ResourceDrafts   = "drafts"
)

const (
	// DraftKeyNewPatient is the sentinel draft key for a record that has no
	// backend identity yet.
	DraftKeyNewPatient = "new_patient"

	// DraftSchemaVersion tags persisted drafts with the record shape they
	// were written against.
	DraftSchemaVersion = 1
)

const (
	MongoCollectionFormDrafts = "form_drafts"
)

const (
	RedisKeyPatientList      = "careform:patients:all"
	RedisKeyPatientFormat    = "careform:patients:%s"
	RedisKeySubmitLockFormat = "careform:submit-lock:%s"
)

const (
	DateLayoutYMD = "2006-01-02"
)

const (
	NotificationAutoDismissMs = 4000
	NotificationWarningMs     = 6000
)
