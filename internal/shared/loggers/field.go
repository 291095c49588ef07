package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldAnalysisID    = "analysis_id"
	FieldPartitionId   = "partition_id"
	FieldClientKey     = "client_key"
	FieldLineNumber    = "line_number"
	FieldRecordCount   = "record_count"
	FieldSessionCount  = "session_count"
	FieldSessionPeriod = "session_period"
)
