package reporter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/opensubtitles/subrelease/internal/scanner"
)

// Report represents one scan run over subtitle directories
type Report struct {
	Timestamp    time.Time              `json:"timestamp"`
	ScannedPaths []string               `json:"scanned_paths"`
	Results      []scanner.Result       `json:"results"`
	Groups       []scanner.ReleaseGroup `json:"groups"`
	TotalFiles   int                    `json:"total_files"`
	TotalMatched int                    `json:"total_matched"`
}

// New builds a report from scan results
func New(paths []string, results []scanner.Result) Report {
	matched := 0
	for _, r := range results {
		if r.Matched {
			matched++
		}
	}
	return Report{
		Timestamp:    time.Now(),
		ScannedPaths: paths,
		Results:      results,
		Groups:       scanner.GroupByRelease(results),
		TotalFiles:   len(results),
		TotalMatched: matched,
	}
}

// DefaultReportDir returns the default report directory path
func DefaultReportDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "/tmp/subrelease/scan_results"
	}
	return filepath.Join(home, ".local/share/subrelease/scan_results")
}

// Generate writes a timestamped text report into dir and returns its path
func Generate(report Report, dir string) (string, error) {
	if dir == "" {
		dir = DefaultReportDir()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	timestamp := report.Timestamp.Format("20060102_150405")
	filename := filepath.Join(dir, timestamp+".txt")

	if err := os.WriteFile(filename, []byte(buildReportContent(report)), 0644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	return filename, nil
}

// WriteJSON writes the machine-readable sidecar next to the text report
func WriteJSON(report Report, dir string) (string, error) {
	if dir == "" {
		dir = DefaultReportDir()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	timestamp := report.Timestamp.Format("20060102_150405")
	filename := filepath.Join(dir, timestamp+".json")

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	return filename, nil
}

// buildReportContent generates the report text
func buildReportContent(report Report) string {
	var sb strings.Builder

	sb.WriteString("SUBRELEASE SCAN REPORT\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n", report.Timestamp.Format("2006-01-02 15:04:05")))
	sb.WriteString(fmt.Sprintf("Scanned Paths: %s\n", strings.Join(report.ScannedPaths, ", ")))
	sb.WriteString("\n")

	sb.WriteString("SUMMARY\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Subtitle files found: %d\n", report.TotalFiles))
	sb.WriteString(fmt.Sprintf("Release names extracted: %d\n", report.TotalMatched))
	sb.WriteString(fmt.Sprintf("Unrecognized filenames: %d\n", report.TotalFiles-report.TotalMatched))
	sb.WriteString(fmt.Sprintf("Distinct releases: %d\n", len(report.Groups)))
	sb.WriteString("\n")

	if len(report.Groups) > 0 {
		sb.WriteString("RELEASES\n")
		sb.WriteString(strings.Repeat("=", 80) + "\n")
		for _, group := range report.Groups {
			sb.WriteString(fmt.Sprintf("%s (%d files)\n", group.ReleaseName, len(group.Files)))
			for _, file := range group.Files {
				marker := " "
				if !file.Matched {
					marker = "?"
				}
				sb.WriteString(fmt.Sprintf("  %s %s\n", marker, file.Path))
			}
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// Summary renders a short styled summary for the terminal
func Summary(report Report) string {
	var sb strings.Builder

	sb.WriteString(TitleStyle.Render("Scan complete") + "\n")
	sb.WriteString(fmt.Sprintf("  Subtitle files:    %s\n", ValueStyle.Render(fmt.Sprintf("%d", report.TotalFiles))))
	sb.WriteString(fmt.Sprintf("  Release names:     %s\n", SuccessStyle.Render(fmt.Sprintf("%d", report.TotalMatched))))

	unmatched := report.TotalFiles - report.TotalMatched
	style := ValueStyle
	if unmatched > 0 {
		style = WarningStyle
	}
	sb.WriteString(fmt.Sprintf("  Unrecognized:      %s\n", style.Render(fmt.Sprintf("%d", unmatched))))
	sb.WriteString(fmt.Sprintf("  Distinct releases: %s\n", ValueStyle.Render(fmt.Sprintf("%d", len(report.Groups)))))

	return sb.String()
}
