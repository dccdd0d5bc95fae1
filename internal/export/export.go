// Package export renders analytics events and generated code into
// downloadable formats: JSON and CSV for the raw event log, and a markdown
// report for generated HTML snippets.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/kwen-qodo/screenshot-to-code/internal/analytics"
)

// EventsJSON renders events as an indented JSON array, the format the
// front-end download button expects.
func EventsJSON(events []analytics.Event) ([]byte, error) {
	encoded, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode events: %w", err)
	}
	return encoded, nil
}

// EventsCSV renders events as CSV with a header row.
func EventsCSV(events []analytics.Event) ([]byte, error) {
	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)

	if err := writer.Write([]string{"id", "user_id", "event_type", "data", "created_at"}); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, event := range events {
		record := []string{
			strconv.FormatInt(event.ID, 10),
			event.UserID,
			event.EventType,
			event.Data,
			event.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("write csv record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buffer.Bytes(), nil
}

// CodeReport renders generated HTML snippets into a single markdown document,
// one section per snippet. Snippets that fail HTML conversion are embedded as
// fenced code blocks instead of dropping the section.
func CodeReport(title string, snippets []string) string {
	var report bytes.Buffer

	fmt.Fprintf(&report, "# %s\n\n", title)
	fmt.Fprintf(&report, "Generated on %s.\n", time.Now().UTC().Format("2006-01-02"))

	for index, snippet := range snippets {
		fmt.Fprintf(&report, "\n## Variant %d\n\n", index+1)

		markdown, err := htmltomarkdown.ConvertString(snippet)
		if err != nil || markdown == "" {
			fmt.Fprintf(&report, "```html\n%s\n```\n", snippet)
			continue
		}
		report.WriteString(markdown)
		report.WriteString("\n")
	}

	return report.String()
}
