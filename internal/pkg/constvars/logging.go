package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"

	LoggingDraftKeyKey    = "draft_key"
	LoggingPatientIDKey   = "patient_id"
	LoggingRedisKey       = "redis_key"
	LoggingSearchTermKey  = "search_term"
	LoggingLockValueKey   = "lock_value"
	LoggingQueueKey       = "queue"
	LoggingFieldCountKey  = "field_count"
	LoggingRecordCountKey = "record_count"
)
