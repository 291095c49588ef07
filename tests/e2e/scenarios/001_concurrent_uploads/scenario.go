package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/klauspost/compress/gzip"
)

// ### Start - fixed configs (no change)
// These values define deterministic log generation and must match the expected report.
const (
	clientCount          = 64
	sessionPeriodSeconds = 1800
)

var (
	baseTime = time.Date(2015, 7, 22, 9, 0, 0, 0, time.UTC)
	// per client: one three-event session (120s, 2 distinct paths) and a trailing single-event session
	clientEvents = []struct {
		offset time.Duration
		path   string
	}{
		{0, "/shop/a"},
		{60 * time.Second, "/shop/b"},
		{120 * time.Second, "/shop/a"},
		{4000 * time.Second, "/shop/c"},
	}
	userAgents = []string{
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		"Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
	}
)

const (
	expectedSessions     = clientCount * 2
	expectedHits         = 2.0
	expectedDuration     = 120.0
	expectedDistinct     = 1.5
	expectedEngagedTotal = 120.0
)

// ### End - fixed configs

type sessionReport struct {
	AnalysisID                    string   `json:"analysisId"`
	RecordCount                   int      `json:"recordCount"`
	ClientCount                   int      `json:"clientCount"`
	SessionCount                  int      `json:"sessionCount"`
	AverageHitsPerSession         *float64 `json:"averageHitsPerSession"`
	AverageSessionDurationSeconds *float64 `json:"averageSessionDurationSeconds"`
	AverageDistinctPerSession     *float64 `json:"averageDistinctPerSession"`
	MostEngagedClients            *struct {
		TotalSeconds float64 `json:"totalSeconds"`
		Clients      []struct {
			ClientKey string `json:"clientKey"`
		} `json:"clients"`
	} `json:"mostEngagedClients"`
}

type upload struct {
	index      int
	isOriginal bool
}

// main runs the e2e scenario: 001_concurrent_uploads
//
// It generates one gzipped access log with a known session layout and uploads it to POST /analyses
// under several idempotency keys in parallel, replaying some keys to exercise conflict handling.
//
// Expected results:
//   - Every original upload returns 200 with the same statistics
//   - Every replayed key returns 409 Conflict
//   - 64 clients, 128 sessions, 2.0 hits and 1.5 distinct requests per session, 120s average duration
//   - All 64 clients tie as most engaged at 120s
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8080" // Base URL of the session analytics API server
	uploads := 16                      // Number of distinct idempotency keys
	replays := 16                      // Number of replayed uploads reusing an earlier key
	parallel := 4                      // Number of concurrent requests
	runID := time.Now().UTC().Format("20060102T150405")

	fmt.Println("Starting e2e scenario: 001_concurrent_uploads")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("UPLOADS: %d\n", uploads)
	fmt.Printf("REPLAYS: %d\n", replays)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Println()

	body, err := generateGzippedLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to generate log: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generated %d records (%d gzipped bytes)\n\n", clientCount*len(clientEvents), len(body))

	// originals first so every replay hits a taken key
	toSend := make([]upload, 0, uploads+replays)
	for i := 0; i < uploads; i++ {
		toSend = append(toSend, upload{index: i, isOriginal: true})
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	var errors []error
	var okRequest, conflictedRequest int64

	send := func(batch []upload) {
		workerChan := make(chan struct{}, parallel)
		for _, u := range batch {
			wg.Add(1)
			workerChan <- struct{}{}

			go func(u upload) {
				defer wg.Done()
				defer func() { <-workerChan }()

				key := fmt.Sprintf("e2e-%s-%04d", runID, u.index)
				status, report, err := sendUpload(baseURL, key, body)
				if err == nil && status == http.StatusOK {
					err = verifyReport(report)
				}
				if err == nil && !u.isOriginal && status != http.StatusConflict {
					err = fmt.Errorf("replay returned status %d, want 409", status)
				}
				if err != nil {
					mu.Lock()
					errors = append(errors, fmt.Errorf("upload %d (original=%v): %w", u.index, u.isOriginal, err))
					mu.Unlock()
					return
				}

				switch status {
				case http.StatusOK:
					atomic.AddInt64(&okRequest, 1)
				case http.StatusConflict:
					atomic.AddInt64(&conflictedRequest, 1)
				}
				fmt.Printf("Upload %d completed (status %d)\n", u.index, status)
			}(u)
		}
		wg.Wait()
	}

	send(toSend)

	replaysToSend := make([]upload, 0, replays)
	for i := 0; i < replays; i++ {
		replaysToSend = append(replaysToSend, upload{index: i % uploads, isOriginal: false})
	}
	send(replaysToSend)

	fmt.Println()
	if len(errors) > 0 {
		for _, err := range errors {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		}
		fmt.Fprintf(os.Stderr, "ERROR: %d uploads failed\n", len(errors))
		os.Exit(1)
	}

	fmt.Println("=== Statistics ===")
	fmt.Printf("OK request: %d\n", atomic.LoadInt64(&okRequest))
	fmt.Printf("Conflicted request: %d\n", atomic.LoadInt64(&conflictedRequest))
	fmt.Println("Scenario completed successfully")
}

func generateGzippedLog() ([]byte, error) {
	var lines []string
	// emit event by event across clients so the file is not grouped by client
	for _, ev := range clientEvents {
		ts := baseTime.Add(ev.offset)
		for c := 0; c < clientCount; c++ {
			lines = append(lines, fmt.Sprintf(
				`%s shop-elb 10.1.%d.%d:%d 10.0.6.158:80 0.000022 0.026109 0.00002 200 200 0 699 "GET https://shop.example.com:443%s HTTP/1.1" "%s" ECDHE-RSA-AES128-GCM-SHA256 TLSv1.2`,
				ts.Add(time.Duration(c)*time.Millisecond).Format("2006-01-02T15:04:05.000000Z"),
				c/16, c%16, 40000+c, ev.path, userAgents[c%len(userAgents)],
			))
		}
	}

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := io.WriteString(zw, strings.Join(lines, "\n")+"\n"); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func verifyReport(r *sessionReport) error {
	checks := []struct {
		name      string
		got, want float64
	}{
		{"clientCount", float64(r.ClientCount), clientCount},
		{"sessionCount", float64(r.SessionCount), expectedSessions},
		{"averageHitsPerSession", deref(r.AverageHitsPerSession), expectedHits},
		{"averageSessionDurationSeconds", deref(r.AverageSessionDurationSeconds), expectedDuration},
		{"averageDistinctPerSession", deref(r.AverageDistinctPerSession), expectedDistinct},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.want) > 1e-6 {
			return fmt.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
	if r.MostEngagedClients == nil {
		return fmt.Errorf("mostEngagedClients missing")
	}
	if len(r.MostEngagedClients.Clients) != clientCount {
		return fmt.Errorf("mostEngagedClients has %d clients, want %d", len(r.MostEngagedClients.Clients), clientCount)
	}
	if math.Abs(r.MostEngagedClients.TotalSeconds-expectedEngagedTotal) > 1e-6 {
		return fmt.Errorf("mostEngagedClients.totalSeconds = %v, want %v", r.MostEngagedClients.TotalSeconds, expectedEngagedTotal)
	}
	return nil
}

func deref(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}

func sendUpload(baseURL, idempotencyKey string, body []byte) (int, *sessionReport, error) {
	req, err := http.NewRequest(http.MethodPost, baseURL+"/analyses", bytes.NewReader(body))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/gzip")
	req.Header.Set("idempotency-key", idempotencyKey)
	req.Header.Set("x-session-period", fmt.Sprint(sessionPeriodSeconds))

	client := &http.Client{
		Timeout: 60 * time.Second,
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	// 409 is expected for replays; other 4xx/5xx are failures
	if resp.StatusCode == http.StatusConflict {
		return resp.StatusCode, nil, nil
	}
	if resp.StatusCode >= 400 {
		return resp.StatusCode, nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	var report sessionReport
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to decode report: %w", err)
	}
	return resp.StatusCode, &report, nil
}
