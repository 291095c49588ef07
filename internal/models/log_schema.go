package models

const (
	FieldTimestamp              = "timestamp"
	FieldELB                    = "elb"
	FieldClientPort             = "client:port"
	FieldBackendPort            = "backend:port"
	FieldRequestProcessingTime  = "request_processing_time"
	FieldBackendProcessingTime  = "backend_processing_time"
	FieldResponseProcessingTime = "response_processing_time"
	FieldELBStatusCode          = "elb_status_code"
	FieldBackendStatusCode      = "backend_status_code"
	FieldReceivedBytes          = "received_bytes"
	FieldSentBytes              = "sent_bytes"
	FieldRequest                = "request"
	FieldUserAgent              = "user_agent"
	FieldSSLCipher              = "ssl_cipher"
	FieldSSLProtocol            = "ssl_protocol"
)

// LogSchema is the ordered list of field names of one log line.
type LogSchema []string

// ELBSchema is the classic load balancer access log layout.
//
// Example line:
//
//	2015-07-22T09:00:28.019143Z marketpalce-shop 123.242.248.130:54635 10.0.6.158:80 0.000022 0.026109 0.00002 200 200 0 699 "GET https://paytm.com:443/shop/authresponse?code=f2405b05 HTTP/1.1" "Mozilla/5.0 (Windows NT 6.1) Chrome/43.0.2357.130 Safari/537.36" ECDHE-RSA-AES128-GCM-SHA256 TLSv1.2
var ELBSchema = LogSchema{
	FieldTimestamp,
	FieldELB,
	FieldClientPort,
	FieldBackendPort,
	FieldRequestProcessingTime,
	FieldBackendProcessingTime,
	FieldResponseProcessingTime,
	FieldELBStatusCode,
	FieldBackendStatusCode,
	FieldReceivedBytes,
	FieldSentBytes,
	FieldRequest,
	FieldUserAgent,
	FieldSSLCipher,
	FieldSSLProtocol,
}

// IndexOf returns the position of name in the schema, or -1.
func (s LogSchema) IndexOf(name string) int {
	for i, field := range s {
		if field == name {
			return i
		}
	}
	return -1
}

// Len returns the number of fields.
func (s LogSchema) Len() int {
	return len(s)
}
