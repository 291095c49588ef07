package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"session-analytics/internal/models"

	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// writeReport renders report to w in the requested format.
func writeReport(w io.Writer, report *models.SessionReport, format string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	case formatText, "":
		return writeTextReport(w, report)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

func writeTextReport(w io.Writer, report *models.SessionReport) error {
	var b strings.Builder
	line := func(label, format string, args ...any) {
		fmt.Fprintf(&b, "%-30s %s\n", label+":", fmt.Sprintf(format, args...))
	}

	fmt.Fprintf(&b, "Session Report %s\n", report.AnalysisID)
	fmt.Fprintln(&b, strings.Repeat("=", 41))
	line("Session period", "%gs", report.SessionPeriodSeconds)
	line("Records", "%d", report.RecordCount)
	if report.ExcludedBotRecords > 0 {
		line("Bot records excluded", "%d", report.ExcludedBotRecords)
	}
	line("Clients", "%d", report.ClientCount)
	line("Sessions", "%d", report.SessionCount)
	fmt.Fprintln(&b)

	line("Average hits per session", "%s", formatStat(report.AverageHitsPerSession, "", report.Unavailable[models.QueryAverageHitsPerSession]))
	line("Average session duration", "%s", formatStat(report.AverageSessionDurationSeconds, "s", report.Unavailable[models.QueryAverageSessionDuration]))
	line("Average distinct per session", "%s", formatStat(report.AverageDistinctPerSession, "", report.Unavailable[models.QueryAverageDistinctPerSession]))

	engaged := report.MostEngagedClients
	switch {
	case engaged == nil:
		line("Most engaged client", "n/a (%s)", unavailableCode(report.Unavailable[models.QueryMostEngagedClients]))
	case len(engaged.Clients) == 1:
		line("Most engaged client", "%s with %.2fs", describeClient(engaged.Clients[0]), engaged.TotalSeconds)
	default:
		line("Most engaged clients", "%d tied at %.2fs", len(engaged.Clients), engaged.TotalSeconds)
		for _, c := range engaged.Clients {
			fmt.Fprintf(&b, "  - %s\n", describeClient(c))
		}
	}

	if len(report.Unavailable) > 0 {
		queries := make([]string, 0, len(report.Unavailable))
		for q := range report.Unavailable {
			queries = append(queries, q)
		}
		sort.Strings(queries)
		fmt.Fprintf(&b, "\nUnavailable: %s\n", strings.Join(queries, ", "))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func formatStat(v *float64, unit, code string) string {
	if v == nil {
		return fmt.Sprintf("n/a (%s)", unavailableCode(code))
	}
	return fmt.Sprintf("%.4f%s", *v, unit)
}

func unavailableCode(code string) string {
	if code == "" {
		return "no data"
	}
	return code
}

func describeClient(c models.EngagedClient) string {
	var details []string
	if c.UserAgentFamily != "" {
		details = append(details, c.UserAgentFamily)
	}
	if c.Country != "" {
		details = append(details, c.Country)
	}
	if len(details) == 0 {
		return c.ClientKey
	}
	return fmt.Sprintf("%s (%s)", c.ClientKey, strings.Join(details, ", "))
}
