// Package releasename recovers the release name from a subtitle filename
// by stripping the trailing tags one subtitle variant adds on top of the
// release: language codes, regional variants, full language names, disc
// markers, hearing-impaired markers and the subtitle extension.
//
// Example: "Movie.Name.2024.1080p.BluRay.x264.pt-BR.srt" identifies the
// same release as "Movie.Name.2024.1080p.BluRay.x264.eng.sdh.srt"; both
// clean to "Movie.Name.2024.1080p.BluRay.x264".
//
// The package is pure string transformation: no I/O, no package state, the
// language table is passed in by the caller.
package releasename

import (
	"regexp"
	"strings"

	"github.com/opensubtitles/subrelease/internal/language"
)

// Subtitle extensions the normalizer removes before stripping tags.
var subtitleExtensions = []string{
	".srt", ".sub", ".ssa", ".ass", ".smi", ".mpl", ".txt", ".vtt", ".idx", ".usf",
}

// Separator characters that delimit tags at the end of a filename. Each
// successful strip also consumes the run of separators preceding the tag.
const separators = ". -_"

// Results at or below this length fail extraction. The working string
// carries a leading space (see Extract), so the threshold of 3 rejects
// two-character leftovers like "ab".
const minLength = 3

// Pre-compiled suffix patterns (same approach as scanning tails with
// anchored regexes elsewhere in the toolchain).
var (
	// CD1, CD 1, CDI, CD I
	discRegex = regexp.MustCompile(`(?i)cd ?[0-9i]$`)
	// pt-BR, en-US; the language half is validated against the table,
	// the region half is discarded along with it either way
	regionalRegex = regexp.MustCompile(`(?i)[a-z]{2}-[a-z]{2}$`)
)

// A matcher inspects the tail of the working string and returns the number
// of bytes occupied by a recognized tag, or 0 when it does not match.
// Matchers never consume the separator run; the stripping loop does that.
type matcher func(s string, table language.Table) int

// Matchers in priority order; the first match wins at each stripping step.
var matchers = []matcher{
	matchSDH,
	matchDisc,
	matchRegionalCode,
	matchPlainCode,
	matchLanguageName,
}

// Extract runs normalization, tag stripping and validation on filename and
// returns the release name. When releaseNameMode is set the input is
// treated as a bare release name and extension removal is skipped.
//
// On success the returned string keeps a single leading space inherited
// from the separator handling below. That artifact is part of the raw
// contract for historical compatibility; use Clean for a trimmed value.
func Extract(filename string, table language.Table, releaseNameMode bool) (string, bool) {
	name := filename
	if !releaseNameMode {
		name = stripExtension(name)
	}

	// The working string carries a leading space so that a tag occupying
	// the whole remainder still sits behind a separator boundary. The
	// space survives into the returned value.
	work := " " + name
	for {
		n := matchTag(work, table)
		if n == 0 {
			break
		}
		work = strings.TrimRight(work[:len(work)-n], separators)
	}

	if len(work) <= minLength {
		return "", false
	}
	return work, true
}

// Clean extracts the release name from a subtitle filename and trims the
// leading artifact of Extract. When no reliable release name can be
// extracted the original filename is returned unchanged, so callers always
// receive a usable string.
func Clean(filename string, table language.Table) string {
	name, ok := Extract(filename, table, false)
	if !ok {
		return filename
	}
	return strings.TrimPrefix(name, " ")
}

// stripExtension removes exactly one trailing subtitle extension,
// case-insensitively. Unrecognized extensions are left alone.
func stripExtension(name string) string {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return name
	}
	ext := strings.ToLower(name[i:])
	for _, se := range subtitleExtensions {
		if ext == se {
			return name[:i]
		}
	}
	return name
}

func matchTag(s string, table language.Table) int {
	for _, m := range matchers {
		if n := m(s, table); n > 0 {
			return n
		}
	}
	return 0
}

// boundaryAt reports whether position i sits at a separator boundary:
// either the start of the string or right after a separator character.
// Tags only strip at boundaries, so a code embedded in the middle of a
// word never matches.
func boundaryAt(s string, i int) bool {
	if i == 0 {
		return true
	}
	return strings.ContainsRune(separators, rune(s[i-1]))
}

// lastToken returns the substring after the final separator.
func lastToken(s string) string {
	i := strings.LastIndexAny(s, separators)
	return s[i+1:]
}

// matchSDH recognizes a trailing hearing-impaired marker.
func matchSDH(s string, _ language.Table) int {
	if len(s) < 3 || !strings.EqualFold(s[len(s)-3:], "sdh") {
		return 0
	}
	if !boundaryAt(s, len(s)-3) {
		return 0
	}
	return 3
}

// matchDisc recognizes a trailing disc/part marker: CD plus a digit or the
// Roman numeral I, with an optional separating space.
func matchDisc(s string, _ language.Table) int {
	loc := discRegex.FindStringIndex(s)
	if loc == nil || !boundaryAt(s, loc[0]) {
		return 0
	}
	return len(s) - loc[0]
}

// matchRegionalCode recognizes a trailing xx-YY token whose language half
// is a known two-letter code. The region half is not validated; it is
// discarded together with the code.
func matchRegionalCode(s string, table language.Table) int {
	loc := regionalRegex.FindStringIndex(s)
	if loc == nil || !boundaryAt(s, loc[0]) {
		return 0
	}
	if !table.HasCode2(s[loc[0] : loc[0]+2]) {
		return 0
	}
	return len(s) - loc[0]
}

// matchPlainCode recognizes a trailing two- or three-letter language code.
func matchPlainCode(s string, table language.Table) int {
	tok := lastToken(s)
	if len(tok) != 2 && len(tok) != 3 {
		return 0
	}
	if !table.HasCode(tok) {
		return 0
	}
	return len(tok)
}

// matchLanguageName recognizes a trailing full language name, canonical or
// display form, in any capitalization.
func matchLanguageName(s string, table language.Table) int {
	for _, name := range table.Names() {
		n := len(name)
		if n == 0 || len(s) < n {
			continue
		}
		if !strings.EqualFold(s[len(s)-n:], name) {
			continue
		}
		if !boundaryAt(s, len(s)-n) {
			continue
		}
		return n
	}
	return 0
}
