package zipdiff

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"znkr.io/diff"

	"github.com/Srijan619/ziffy/util"
)

// extractFunc returns the content of one named entry of the archive at path.
type extractFunc func(path, name string) ([]byte, error)

// diffEntry finishes the classification of an entry present in both archives
// with differing digests. A non-nil error means the entry could not be
// compared and must be left out of the result.
func diffEntry(extract extractFunc, path1, path2, name string) (FileDifference, error) {
	content1, err1 := extract(path1, name)
	content2, err2 := extract(path2, name)
	if err := sideErrors(name, err1, err2); err != nil {
		return FileDifference{}, err
	}

	if isBinary(content1) || isBinary(content2) {
		return FileDifference{Filename: name, Status: StatusModifiedBinary}, nil
	}

	err1 = checkText(path1, name, content1)
	err2 = checkText(path2, name, content2)
	if err := sideErrors(name, err1, err2); err != nil {
		return FileDifference{}, err
	}

	return FileDifference{
		Filename:    name,
		Status:      StatusModified,
		ContentDiff: LineDiff(string(content1), string(content2)),
	}, nil
}

// sideErrors merges the failures of the two sides of one entry.
func sideErrors(name string, err1, err2 error) error {
	switch {
	case err1 != nil && err2 != nil:
		return fmt.Errorf("error comparing file '%s': zip1 error: %w, zip2 error: %w", name, err1, err2)
	case err1 != nil:
		return fmt.Errorf("error extracting file '%s': %w", name, err1)
	case err2 != nil:
		return fmt.Errorf("error extracting file '%s': %w", name, err2)
	}
	return nil
}

// isBinary reports whether b contains a NUL byte.
func isBinary(b []byte) bool {
	return bytes.IndexByte(b, 0) >= 0
}

func checkText(path, name string, b []byte) error {
	if utf8.Valid(b) {
		return nil
	}
	return &util.ExtractionError{Path: path, Entry: name, Err: util.ErrInvalidUTF8}
}

// LineDiff aligns the lines of a and b along a longest common subsequence
// and returns the lines outside it: "- " for lines only in a, "+ " for lines
// only in b, in document order. Within a changed block the removals come
// first. The result is never nil.
func LineDiff(a, b string) []string {
	edits := diff.Edits(splitLines(a), splitLines(b), diff.Minimal())

	out := make([]string, 0)
	var added []string
	for _, e := range edits {
		switch e.Op {
		case diff.Match:
			out = append(out, added...)
			added = added[:0]
		case diff.Delete:
			out = append(out, "- "+e.X)
		case diff.Insert:
			added = append(added, "+ "+e.Y)
		}
	}
	return append(out, added...)
}

// splitLines splits s at "\n" and "\r\n" line endings. A final line ending is
// optional and does not start an empty line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	terminated := strings.HasSuffix(s, "\n")
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, line := range lines {
		if i < len(lines)-1 || terminated {
			lines[i] = strings.TrimSuffix(line, "\r")
		}
	}
	return lines
}
