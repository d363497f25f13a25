// Package scanner discovers subtitle files on disk and runs release-name
// extraction over them. It only reads the filesystem; nothing here renames
// or deletes anything.
package scanner

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/opensubtitles/subrelease/internal/language"
	"github.com/opensubtitles/subrelease/internal/releasename"
)

// Result is the extraction outcome for one subtitle file
type Result struct {
	Path        string `json:"path"`
	ReleaseName string `json:"release_name"`
	Matched     bool   `json:"matched"` // false when extraction fell back to the raw name
}

// ReleaseGroup collects the subtitle files that identify the same release
// (the language/disc variants of one release)
type ReleaseGroup struct {
	ReleaseName string   `json:"release_name"`
	Files       []Result `json:"files"`
}

// Config holds scanner configuration
type Config struct {
	Workers    int      // number of concurrent workers (default: number of CPUs)
	Extensions []string // subtitle extensions to pick up
}

// DefaultConfig returns the default scanner configuration
func DefaultConfig() Config {
	return Config{
		Workers:    runtime.NumCPU(),
		Extensions: []string{".srt", ".sub", ".ssa", ".ass", ".smi", ".mpl", ".txt", ".vtt"},
	}
}

// Scan walks the given directories for subtitle files and extracts a
// release name from each. Files are processed by a worker pool; the walk
// itself stays sequential since it is I/O bound either way.
// Supports context cancellation for graceful shutdown.
func Scan(ctx context.Context, paths []string, table language.Table, config Config) ([]Result, error) {
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if len(config.Extensions) == 0 {
		config.Extensions = DefaultConfig().Extensions
	}

	files, err := collectSubtitleFiles(ctx, paths, config.Extensions)
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(files))

	var wg sync.WaitGroup
	fileChan := make(chan int, len(files))

	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case idx, ok := <-fileChan:
					if !ok {
						return
					}
					results[idx] = extractOne(files[idx], table)
				}
			}
		}()
	}

	for i := range files {
		fileChan <- i
	}
	close(fileChan)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })
	return results, nil
}

// extractOne runs the core on a single file's base name
func extractOne(path string, table language.Table) Result {
	base := filepath.Base(path)
	name, ok := releasename.Extract(base, table, false)
	if !ok {
		return Result{Path: path, ReleaseName: base, Matched: false}
	}
	return Result{Path: path, ReleaseName: strings.TrimPrefix(name, " "), Matched: true}
}

// collectSubtitleFiles gathers all subtitle files under the given roots
func collectSubtitleFiles(ctx context.Context, paths []string, extensions []string) ([]string, error) {
	var files []string
	for _, root := range paths {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if d.IsDir() {
				return nil
			}
			if isSubtitleFile(path, extensions) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

// isSubtitleFile checks the extension against the configured list
// (case insensitive)
func isSubtitleFile(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, se := range extensions {
		if ext == strings.ToLower(se) {
			return true
		}
	}
	return false
}

// GroupByRelease groups results by their extracted release name so the
// variants of one release show up together. Groups are sorted by name,
// files within a group by path.
func GroupByRelease(results []Result) []ReleaseGroup {
	byName := make(map[string][]Result)
	for _, r := range results {
		byName[r.ReleaseName] = append(byName[r.ReleaseName], r)
	}

	groups := make([]ReleaseGroup, 0, len(byName))
	for name, files := range byName {
		sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
		groups = append(groups, ReleaseGroup{ReleaseName: name, Files: files})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].ReleaseName < groups[j].ReleaseName })
	return groups
}
