// Package language holds the catalog's language table: ISO 639 codes plus
// the names that show up as trailing tags in subtitle filenames. The table
// is plain data owned by the caller; nothing in this package keeps global
// state, so lookups stay referentially transparent.
package language

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Entry describes one catalog language.
type Entry struct {
	Code2       string // ISO 639-1 two-letter code, empty if the language has none
	Code3       string // ISO 639-2 three-letter code
	Name        string // Canonical English name
	DisplayName string // Name as shown in the upload catalog
}

// Table maps a short language key to its entry. Keys are unique; iteration
// order is irrelevant.
type Table map[string]Entry

var (
	fold  = cases.Fold()
	title = cases.Title(language.English)
)

// Builtin returns a fresh table covering the languages the upload catalog
// recognizes. Callers may mutate the returned table freely.
func Builtin() Table {
	return Table{
		"ar": {Code2: "ar", Code3: "ara", Name: "Arabic", DisplayName: "Arabic"},
		"bg": {Code2: "bg", Code3: "bul", Name: "Bulgarian", DisplayName: "Bulgarian"},
		"cs": {Code2: "cs", Code3: "cze", Name: "Czech", DisplayName: "Czech"},
		"da": {Code2: "da", Code3: "dan", Name: "Danish", DisplayName: "Danish"},
		"de": {Code2: "de", Code3: "ger", Name: "German", DisplayName: "German"},
		"el": {Code2: "el", Code3: "ell", Name: "Greek", DisplayName: "Greek"},
		"en": {Code2: "en", Code3: "eng", Name: "English", DisplayName: "English"},
		"es": {Code2: "es", Code3: "spa", Name: "Spanish", DisplayName: "Spanish"},
		"et": {Code2: "et", Code3: "est", Name: "Estonian", DisplayName: "Estonian"},
		"fa": {Code2: "fa", Code3: "per", Name: "Persian", DisplayName: "Farsi"},
		"fi": {Code2: "fi", Code3: "fin", Name: "Finnish", DisplayName: "Finnish"},
		"fr": {Code2: "fr", Code3: "fre", Name: "French", DisplayName: "French"},
		"he": {Code2: "he", Code3: "heb", Name: "Hebrew", DisplayName: "Hebrew"},
		"hi": {Code2: "hi", Code3: "hin", Name: "Hindi", DisplayName: "Hindi"},
		"hr": {Code2: "hr", Code3: "hrv", Name: "Croatian", DisplayName: "Croatian"},
		"hu": {Code2: "hu", Code3: "hun", Name: "Hungarian", DisplayName: "Hungarian"},
		"id": {Code2: "id", Code3: "ind", Name: "Indonesian", DisplayName: "Indonesian"},
		"it": {Code2: "it", Code3: "ita", Name: "Italian", DisplayName: "Italian"},
		"ja": {Code2: "ja", Code3: "jpn", Name: "Japanese", DisplayName: "Japanese"},
		"ko": {Code2: "ko", Code3: "kor", Name: "Korean", DisplayName: "Korean"},
		"lt": {Code2: "lt", Code3: "lit", Name: "Lithuanian", DisplayName: "Lithuanian"},
		"lv": {Code2: "lv", Code3: "lav", Name: "Latvian", DisplayName: "Latvian"},
		"nl": {Code2: "nl", Code3: "dut", Name: "Dutch", DisplayName: "Dutch"},
		"no": {Code2: "no", Code3: "nor", Name: "Norwegian", DisplayName: "Norwegian"},
		"pb": {Code2: "pb", Code3: "pob", Name: "Portuguese (BR)", DisplayName: "Brazilian"},
		"pl": {Code2: "pl", Code3: "pol", Name: "Polish", DisplayName: "Polish"},
		"pt": {Code2: "pt", Code3: "por", Name: "Portuguese", DisplayName: "Portuguese"},
		"ro": {Code2: "ro", Code3: "rum", Name: "Romanian", DisplayName: "Romanian"},
		"ru": {Code2: "ru", Code3: "rus", Name: "Russian", DisplayName: "Russian"},
		"sk": {Code2: "sk", Code3: "slo", Name: "Slovak", DisplayName: "Slovak"},
		"sl": {Code2: "sl", Code3: "slv", Name: "Slovenian", DisplayName: "Slovenian"},
		"sr": {Code2: "sr", Code3: "scc", Name: "Serbian", DisplayName: "Serbian"},
		"sv": {Code2: "sv", Code3: "swe", Name: "Swedish", DisplayName: "Swedish"},
		"th": {Code2: "th", Code3: "tha", Name: "Thai", DisplayName: "Thai"},
		"tr": {Code2: "tr", Code3: "tur", Name: "Turkish", DisplayName: "Turkish"},
		"uk": {Code2: "uk", Code3: "ukr", Name: "Ukrainian", DisplayName: "Ukrainian"},
		"vi": {Code2: "vi", Code3: "vie", Name: "Vietnamese", DisplayName: "Vietnamese"},
		"zh": {Code2: "zh", Code3: "chi", Name: "Chinese", DisplayName: "Chinese"},
	}
}

// Merge adds entries to the table, overwriting existing keys. Names are
// normalized to title case so config-supplied lowercase entries match the
// builtin style.
func (t Table) Merge(entries Table) {
	for key, e := range entries {
		if e.Name != "" {
			e.Name = title.String(e.Name)
		}
		if e.DisplayName != "" {
			e.DisplayName = title.String(e.DisplayName)
		}
		t[strings.ToLower(key)] = e
	}
}

// HasCode2 reports whether code matches some entry's two-letter code
// (caseless).
func (t Table) HasCode2(code string) bool {
	c := fold.String(code)
	for _, e := range t {
		if e.Code2 != "" && fold.String(e.Code2) == c {
			return true
		}
	}
	return false
}

// HasCode reports whether code matches some entry's two- or three-letter
// code (caseless).
func (t Table) HasCode(code string) bool {
	c := fold.String(code)
	for _, e := range t {
		if e.Code2 != "" && fold.String(e.Code2) == c {
			return true
		}
		if e.Code3 != "" && fold.String(e.Code3) == c {
			return true
		}
	}
	return false
}

// Names returns the deduplicated canonical and display names of every
// entry, longest first so suffix matching prefers the most specific name.
func (t Table) Names() []string {
	seen := make(map[string]struct{}, len(t)*2)
	names := make([]string, 0, len(t)*2)
	for _, e := range t {
		for _, n := range []string{e.Name, e.DisplayName} {
			if n == "" {
				continue
			}
			folded := fold.String(n)
			if _, ok := seen[folded]; ok {
				continue
			}
			seen[folded] = struct{}{}
			names = append(names, n)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	return names
}

// Keys returns the table keys in sorted order.
func (t Table) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
