package main

import (
	"testing"

	"github.com/opensubtitles/subrelease/internal/language"
)

func TestExtractName(t *testing.T) {
	table := language.Builtin()

	tests := []struct {
		name            string
		input           string
		releaseNameMode bool
		raw             bool
		expected        string
	}{
		{
			"default mode trims the artifact",
			"Movie.Name.2024.eng.srt", false, false,
			"Movie.Name.2024",
		},
		{
			"raw mode keeps the leading space",
			"Movie.Name.2024.eng.srt", false, true,
			" Movie.Name.2024",
		},
		{
			"release-name mode skips extension removal",
			"Movie.Name.eng", true, false,
			"Movie.Name",
		},
		{
			"failure falls back to the input",
			"ab.eng.srt", false, false,
			"ab.eng.srt",
		},
		{
			"failure falls back to the input in raw mode too",
			"ab.eng.srt", false, true,
			"ab.eng.srt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractName(tt.input, table, tt.releaseNameMode, tt.raw)
			if got != tt.expected {
				t.Errorf("extractName(%q, %v, %v) = %q, want %q",
					tt.input, tt.releaseNameMode, tt.raw, got, tt.expected)
			}
		})
	}
}

func TestCommandRegistration(t *testing.T) {
	expected := []string{"extract", "scan", "languages", "config", "version"}

	registered := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}

	for _, name := range expected {
		if !registered[name] {
			t.Errorf("command %q not registered", name)
		}
	}
}
