package models

import "time"

// LogRecord is one decoded log line. Fields keeps every value in schema order;
// the core only reads Timestamp, ClientKey and Request.
type LogRecord struct {
	LineNumber int
	Timestamp  time.Time
	ClientKey  string
	Request    string
	Fields     []string
	schema     LogSchema
}

func NewLogRecord(lineNumber int, timestamp time.Time, clientKey, request string, fields []string, schema LogSchema) *LogRecord {
	return &LogRecord{
		LineNumber: lineNumber,
		Timestamp:  timestamp,
		ClientKey:  clientKey,
		Request:    request,
		Fields:     fields,
		schema:     schema,
	}
}

// Field returns the raw value of the named field, or "" when the schema has no such field.
func (r *LogRecord) Field(name string) string {
	idx := r.schema.IndexOf(name)
	if idx < 0 || idx >= len(r.Fields) {
		return ""
	}
	return r.Fields[idx]
}

func (r *LogRecord) UserAgent() string {
	return r.Field(FieldUserAgent)
}
