package installer

import (
	"strings"
)

// normalizeSegment prepares a PATH segment for comparison: surrounding
// whitespace and quotes are dropped, trailing separators are ignored, and
// comparison is case-insensitive when requested (Windows paths).
func normalizeSegment(segment string, caseInsensitive bool) string {
	segment = strings.TrimSpace(segment)
	segment = strings.Trim(segment, `"`)
	for len(segment) > 1 && (strings.HasSuffix(segment, `\`) || strings.HasSuffix(segment, "/")) {
		segment = segment[:len(segment)-1]
	}
	if caseInsensitive {
		segment = strings.ToLower(segment)
	}
	return segment
}

// ContainsDir reports whether the PATH-style list already includes dir.
// The list is compared segment-wise, so the directory is found even as the
// first or last entry and regardless of a trailing separator.
func ContainsDir(pathList, dir string, listSep rune, caseInsensitive bool) bool {
	want := normalizeSegment(dir, caseInsensitive)
	if want == "" {
		return false
	}

	for _, segment := range strings.Split(pathList, string(listSep)) {
		if normalizeSegment(segment, caseInsensitive) == want {
			return true
		}
	}
	return false
}

// AppendDir returns pathList with dir appended, or pathList unchanged when
// the directory is already present. The append is idempotent: repeated calls
// with the same directory never produce duplicate segments.
func AppendDir(pathList, dir string, listSep rune, caseInsensitive bool) string {
	if ContainsDir(pathList, dir, listSep, caseInsensitive) {
		return pathList
	}
	if strings.TrimSpace(pathList) == "" {
		return dir
	}
	if strings.HasSuffix(pathList, string(listSep)) {
		return pathList + dir
	}
	return pathList + string(listSep) + dir
}
