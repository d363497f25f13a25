package releasename

import (
	"testing"

	"github.com/opensubtitles/subrelease/internal/language"
)

func TestExtract(t *testing.T) {
	table := language.Builtin()

	tests := []struct {
		name            string
		input           string
		releaseNameMode bool
		expected        string
		ok              bool
	}{
		{
			"Plain three-letter code",
			"Movie.Name.2024.eng.srt", false,
			" Movie.Name.2024", true,
		},
		{
			"Plain two-letter code",
			"Movie.Name.2024.es.srt", false,
			" Movie.Name.2024", true,
		},
		{
			"Hyphen separator",
			"Movie.Name-eng.srt", false,
			" Movie.Name", true,
		},
		{
			"Underscore separator",
			"Movie.Name_eng.srt", false,
			" Movie.Name", true,
		},
		{
			"Disc marker then code",
			"Movie.Name.CD1.eng.srt", false,
			" Movie.Name", true,
		},
		{
			"Disc marker with Roman numeral and space",
			"Movie.Name.CD I.eng.srt", false,
			" Movie.Name", true,
		},
		{
			"SDH marker",
			"Movie.Name.eng.sdh.srt", false,
			" Movie.Name", true,
		},
		{
			"Full chain collapses in one call",
			"Movie.Name.CD1.eng.sdh.srt", false,
			" Movie.Name", true,
		},
		{
			"Full language name",
			"Movie.Name.English.srt", false,
			" Movie.Name", true,
		},
		{
			"Full language name, arbitrary capitalization",
			"Movie.Name.SPANISH.srt", false,
			" Movie.Name", true,
		},
		{
			"Display name differing from canonical name",
			"Movie.Name.Farsi.srt", false,
			" Movie.Name", true,
		},
		{
			"Regional code strips as a unit",
			"Movie.Name.2024.pt-BR.srt", false,
			" Movie.Name.2024", true,
		},
		{
			"Regional code with unvalidated region",
			"Movie.Name.en-XQ.srt", false,
			" Movie.Name", true,
		},
		{
			"Regional code with unknown language half stays",
			"Movie.Name.xx-BR.srt", false,
			" Movie.Name.xx-BR", true,
		},
		{
			"Language name at the start is not stripped",
			"English.Patient.2024.srt", false,
			" English.Patient.2024", true,
		},
		{
			"Code embedded in a word is not stripped",
			"Movie.Nameng.srt", false,
			" Movie.Nameng", true,
		},
		{
			"SDH embedded in a word is not stripped",
			"Movie.Filmsdh.srt", false,
			" Movie.Filmsdh", true,
		},
		{
			"Name embedded in a word is not stripped",
			"Movie.AmEnglish.srt", false,
			" Movie.AmEnglish", true,
		},
		{
			"Disc marker embedded in a word is not stripped",
			"Movie.abcd1.srt", false,
			" Movie.abcd1", true,
		},
		{
			"Uppercase extension",
			"Movie.Name.ENG.SRT", false,
			" Movie.Name", true,
		},
		{
			"Unrecognized extension passes through",
			"Movie.Name.eng.xyz", false,
			" Movie.Name.eng.xyz", true,
		},
		{
			"Only one extension is removed",
			"Movie.Name.srt.srt", false,
			" Movie.Name.srt", true,
		},
		{
			"No tags at all",
			"Movie.Name.2024.1080p.BluRay.x264.srt", false,
			" Movie.Name.2024.1080p.BluRay.x264", true,
		},
		{
			"Release name mode skips extension removal",
			"Movie.Name.eng", true,
			" Movie.Name", true,
		},
		{
			"Result too short fails",
			"ab.eng.srt", false,
			"", false,
		},
		{
			"Whole string is a tag",
			"eng.srt", false,
			"", false,
		},
		{
			"Empty input fails",
			"", false,
			"", false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Extract(tt.input, table, tt.releaseNameMode)
			if ok != tt.ok {
				t.Fatalf("Extract(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if got != tt.expected {
				t.Errorf("Extract(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestExtractIsPure(t *testing.T) {
	table := language.Builtin()
	input := "Movie.Name.2024.pt-BR.srt"

	first, ok1 := Extract(input, table, false)
	second, ok2 := Extract(input, table, false)

	if first != second || ok1 != ok2 {
		t.Errorf("Extract is not referentially transparent: %q/%v vs %q/%v",
			first, ok1, second, ok2)
	}
}

func TestClean(t *testing.T) {
	table := language.Builtin()

	tests := []struct {
		input    string
		expected string
	}{
		{"Movie.Name.2024.eng.srt", "Movie.Name.2024"},
		{"Movie.Name.CD1.eng.srt", "Movie.Name"},
		{"Movie.Name.English.srt", "Movie.Name"},
		{"Movie.Name.2024.pt-BR.srt", "Movie.Name.2024"},
		// Graceful fallback: failures return the input unchanged
		{"ab", "ab"},
		{"ab.eng.srt", "ab.eng.srt"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Clean(tt.input, table); got != tt.expected {
			t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

// Clean never returns the raw leading-space artifact, and re-running it on
// an already-clean release name returns that value unchanged.
func TestCleanIdempotent(t *testing.T) {
	table := language.Builtin()

	inputs := []string{
		"Movie.Name.2024.1080p.BluRay.x264.eng.srt",
		"Movie.Name.CD1.fre.sdh.srt",
		"Some.Show.S01E02.720p.WEB-DL.pt-BR.srt",
	}

	for _, input := range inputs {
		once := Clean(input, table)
		if len(once) > 0 && once[0] == ' ' {
			t.Errorf("Clean(%q) = %q retains the leading artifact", input, once)
		}
		twice := Clean(once, table)
		if once != twice {
			t.Errorf("Clean not idempotent: Clean(%q) = %q, Clean of that = %q",
				input, once, twice)
		}
	}
}

func TestStripExtension(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Movie.Name.srt", "Movie.Name"},
		{"Movie.Name.SRT", "Movie.Name"},
		{"Movie.Name.vtt", "Movie.Name"},
		{"Movie.Name.mkv", "Movie.Name.mkv"}, // not a subtitle extension
		{"Movie.Name", "Movie.Name"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := stripExtension(tt.input); got != tt.expected {
			t.Errorf("stripExtension(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestMatcherPriority(t *testing.T) {
	table := language.Builtin()

	// "sdh" wins over any other interpretation of the tail
	if n := matchTag(" Movie.Name.sdh", table); n != 3 {
		t.Errorf("expected sdh match of 3 bytes, got %d", n)
	}

	// Regional code wins over stripping the region as a plain code
	got, ok := Extract("Movie.Name.pt-BR.srt", table, false)
	if !ok || got != " Movie.Name" {
		t.Errorf("regional strip = %q (ok=%v), want %q", got, ok, " Movie.Name")
	}
}
