package main

import (
	"strings"

	"github.com/opensubtitles/subrelease/internal/language"
	"github.com/opensubtitles/subrelease/internal/releasename"
)

// extractName applies the core to a single input according to the extract
// command's flags. Falls back to the input when no release name can be
// extracted, so the command always prints one line per argument.
func extractName(filename string, table language.Table, releaseNameMode, raw bool) string {
	name, ok := releasename.Extract(filename, table, releaseNameMode)
	if !ok {
		return filename
	}
	if raw {
		return name
	}
	return strings.TrimPrefix(name, " ")
}
