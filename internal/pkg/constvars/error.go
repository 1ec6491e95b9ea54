package constvars

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientRecordValidationFailed        = "some fields are invalid, please review the form"
	ErrClientSubmissionInFlight            = "a save for this record is already in progress"
	ErrClientPatientNotFound               = "patient record not found"
	ErrClientUpstreamUnavailable           = "the patient record store is not responding"
	ErrClientNotAuthorized                 = "you can't access this feature"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON    = "cannot parse JSON"
	ErrDevCannotMarshalJSON  = "cannot marshal JSON"
	ErrDevValidationFailed   = "validation failed"
	ErrDevCreateHTTPRequest  = "failed to create HTTP request"
	ErrDevSendHTTPRequest    = "failed to send HTTP request"
	ErrDevSubmissionInFlight = "submission lock already held for this identity"

	// Mongo messages
	ErrDevDBFailedToFindDocument   = "failed to find document"
	ErrDevDBFailedToUpsertDocument = "failed to upsert document"
	ErrDevDBFailedToDeleteDocument = "failed to delete document"

	// Redis messages
	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisSetData    = "failed to set data to redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"
	ErrDevRedisUnlock     = "failed to release redis lock"

	// RabbitMQ messages
	ErrDevRabbitMQPublish = "failed to publish message to queue: %s"

	// Upstream record store messages
	ErrDevUpstreamUnauthorized   = "upstream record store rejected credentials"
	ErrDevUpstreamForbidden      = "upstream record store denied access"
	ErrDevUpstreamClientError    = "upstream record store rejected the request: %s"
	ErrDevUpstreamServerError    = "upstream record store failed: %s"
	ErrDevUpstreamNoResponse     = "no response from upstream record store"
	ErrDevUpstreamDecodeResponse = "failed to decode upstream response for %s"
	ErrDevUpstreamRecordNotFound = "upstream record %s not found"

	// URL param messages
	ErrDevURLParamValidationFailed = "url parameter %s failed validation"
)
