package fsutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ExpandGlobPatterns expands shell globs, including a single ** for recursive
// matching. Patterns without wildcards are returned as-is when the file
// exists. The result is de-duplicated and sorted.
func ExpandGlobPatterns(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var results []string
	add := func(paths []string) {
		for _, p := range paths {
			p = filepath.Clean(p)
			if !seen[p] {
				seen[p] = true
				results = append(results, p)
			}
		}
	}

	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}

		if strings.Contains(pattern, "**") {
			matches, err := expandRecursivePattern(pattern)
			if err != nil {
				return nil, err
			}
			add(matches)
			continue
		}

		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, err
		}
		if len(matches) == 0 && !strings.ContainsAny(pattern, "*?[") {
			if _, err := os.Stat(pattern); err == nil {
				matches = []string{pattern}
			}
		}
		add(matches)
	}

	sort.Strings(results)
	return results, nil
}

// expandRecursivePattern handles "base/**/suffix". Hidden and underscore
// directories, vendor and testdata are not descended into.
func expandRecursivePattern(pattern string) ([]string, error) {
	parts := strings.Split(pattern, "**")
	if len(parts) != 2 {
		return filepath.Glob(pattern)
	}

	basePath := strings.TrimSuffix(parts[0], "/")
	if basePath == "" {
		basePath = "."
	}
	suffix := strings.TrimPrefix(parts[1], "/")

	var matches []string
	err := filepath.WalkDir(basePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			base := filepath.Base(path)
			if path != basePath && (strings.HasPrefix(base, ".") || strings.HasPrefix(base, "_") || base == "vendor" || base == "testdata") {
				return filepath.SkipDir
			}
			return nil
		}
		if matchSuffix(path, suffix) {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// matchSuffix checks the base name of path against a pattern such as "*.go"
func matchSuffix(path, pattern string) bool {
	if pattern == "" {
		return true
	}
	if strings.HasPrefix(pattern, "*.") && !strings.ContainsAny(pattern[2:], "*?[") {
		return strings.HasSuffix(path, pattern[1:])
	}
	match, _ := filepath.Match(pattern, filepath.Base(path))
	return match
}
