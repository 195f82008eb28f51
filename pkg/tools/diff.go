package tools

import (
	"fmt"
	"strings"
)

// ValidateDiff parses a unified diff and checks every touched path
// against the allow-list (prefix match; empty list allows all). This is
// the runtime half of the diff-only invariant: a patch-applying library
// is deliberately not used because nothing here ever applies a diff.
func ValidateDiff(diff string, allowedPaths []string) DiffValidation {
	v := DiffValidation{AllowListOK: true}

	if strings.TrimSpace(diff) == "" {
		v.Errors = append(v.Errors, "diff is empty")
		return v
	}

	files, lineCount, err := parseUnifiedDiff(diff)
	if err != nil {
		v.Errors = append(v.Errors, err.Error())
		return v
	}
	v.Parseable = true
	v.FilesTouched = files
	v.LineCount = lineCount

	for _, f := range files {
		if !pathAllowed(f, allowedPaths) {
			v.AllowListOK = false
			v.Errors = append(v.Errors, fmt.Sprintf("path %q outside allow-list", f))
		}
	}
	return v
}

// OK reports whether the diff passed every check.
func (v DiffValidation) OK() bool {
	return v.Parseable && v.AllowListOK && len(v.Errors) == 0
}

// parseUnifiedDiff walks the diff line by line. A valid diff has at
// least one ---/+++ header pair followed by at least one @@ hunk; added
// and removed lines are counted.
func parseUnifiedDiff(diff string) ([]string, int, error) {
	var (
		files     []string
		seen      = map[string]bool{}
		lineCount int
		inHunk    bool
		haveOld   bool
		hunks     int
	)

	lines := strings.Split(diff, "\n")
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		switch {
		case strings.HasPrefix(line, "--- "):
			haveOld = true
			inHunk = false
		case strings.HasPrefix(line, "+++ "):
			if !haveOld {
				return nil, 0, fmt.Errorf("line %d: +++ header without preceding ---", i+1)
			}
			haveOld = false
			path := headerPath(line[4:])
			if path == "" {
				// File deletion: fall back to the --- path.
				path = headerPath(strings.TrimPrefix(lines[i-1], "--- "))
			}
			if path != "" && !seen[path] {
				seen[path] = true
				files = append(files, path)
			}
		case strings.HasPrefix(line, "@@"):
			if len(files) == 0 {
				return nil, 0, fmt.Errorf("line %d: hunk before any file header", i+1)
			}
			inHunk = true
			hunks++
		case inHunk && (strings.HasPrefix(line, "+") || strings.HasPrefix(line, "-")):
			lineCount++
		}
	}

	if len(files) == 0 {
		return nil, 0, fmt.Errorf("no file headers found")
	}
	if hunks == 0 {
		return nil, 0, fmt.Errorf("no hunks found")
	}
	return files, lineCount, nil
}

// headerPath extracts the path from a diff header value, stripping the
// conventional a/ b/ prefixes and a trailing timestamp. /dev/null maps
// to the empty string.
func headerPath(raw string) string {
	path := raw
	if idx := strings.IndexByte(path, '\t'); idx >= 0 {
		path = path[:idx]
	}
	path = strings.TrimSpace(path)
	if path == "/dev/null" {
		return ""
	}
	path = strings.TrimPrefix(path, "a/")
	path = strings.TrimPrefix(path, "b/")
	return path
}

func pathAllowed(path string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, prefix := range allowed {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
