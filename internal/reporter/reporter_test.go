package reporter

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/opensubtitles/subrelease/internal/scanner"
)

func sampleReport() Report {
	results := []scanner.Result{
		{Path: "/lib/Movie.Name.2024.eng.srt", ReleaseName: "Movie.Name.2024", Matched: true},
		{Path: "/lib/Movie.Name.2024.fre.srt", ReleaseName: "Movie.Name.2024", Matched: true},
		{Path: "/lib/ab.srt", ReleaseName: "ab.srt", Matched: false},
	}
	return New([]string{"/lib"}, results)
}

func TestNew(t *testing.T) {
	report := sampleReport()

	if report.TotalFiles != 3 {
		t.Errorf("TotalFiles = %d, want 3", report.TotalFiles)
	}
	if report.TotalMatched != 2 {
		t.Errorf("TotalMatched = %d, want 2", report.TotalMatched)
	}
	if len(report.Groups) != 2 {
		t.Errorf("got %d groups, want 2", len(report.Groups))
	}
	if report.Timestamp.IsZero() {
		t.Error("timestamp not set")
	}
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	report := sampleReport()

	path, err := Generate(report, dir)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("report not readable: %v", err)
	}
	content := string(data)

	for _, want := range []string{
		"SUBRELEASE SCAN REPORT",
		"Subtitle files found: 3",
		"Release names extracted: 2",
		"Unrecognized filenames: 1",
		"Movie.Name.2024 (2 files)",
		"/lib/Movie.Name.2024.fre.srt",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("report missing %q", want)
		}
	}

	// Unmatched files are flagged in the listing
	if !strings.Contains(content, "? /lib/ab.srt") {
		t.Error("unmatched file not flagged with ?")
	}
}

func TestWriteJSON(t *testing.T) {
	dir := t.TempDir()
	report := sampleReport()

	path, err := WriteJSON(report, dir)
	if err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("JSON report not readable: %v", err)
	}

	var decoded Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("JSON report does not decode: %v", err)
	}
	if decoded.TotalFiles != report.TotalFiles || len(decoded.Groups) != len(report.Groups) {
		t.Errorf("decoded report %+v does not match original", decoded)
	}
}

func TestSummary(t *testing.T) {
	out := Summary(sampleReport())

	for _, want := range []string{"Scan complete", "3", "2", "1"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}
