package ingestors

import (
	"bytes"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"
)

const (
	sampleRequest   = "GET https://paytm.com:443/shop/authresponse?code=f2405b05 HTTP/1.1"
	sampleUserAgent = "Mozilla/5.0 (Windows NT 6.1) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/43.0.2357.130 Safari/537.36"
)

// elbLine renders one access log line with the given timestamp, client and quoted request.
func elbLine(timestamp, client, quotedRequest string) string {
	return strings.Join([]string{
		timestamp,
		"marketpalce-shop",
		client,
		"10.0.6.158:80",
		"0.000022",
		"0.026109",
		"0.00002",
		"200",
		"200",
		"0",
		"699",
		quotedRequest,
		`"` + sampleUserAgent + `"`,
		"ECDHE-RSA-AES128-GCM-SHA256",
		"TLSv1.2",
	}, " ")
}

func gzipBytes(t *testing.T, content string) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}
