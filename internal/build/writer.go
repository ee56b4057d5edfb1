package build

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// readExisting returns the content of path, or nothing when it does not exist
func readExisting(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return content, nil
}

// writeUnit replaces path with content through a temporary file in the same
// directory, so readers never observe a partial unit
func writeUnit(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("failed to set permissions of %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// contextLines is the number of unchanged lines kept around each change
const contextLines = 2

// LineDiff is a line-oriented diff between two versions of a unit
type LineDiff struct {
	Text     string
	Inserted int
	Deleted  int
}

// Empty reports whether the two versions were identical
func (d LineDiff) Empty() bool {
	return d.Inserted == 0 && d.Deleted == 0
}

// DiffLines computes the line diff from one version to the next. Unchanged runs longer
// than the surrounding context are elided.
func DiffLines(from, to string) LineDiff {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var d LineDiff
	var sb strings.Builder
	for i, diff := range diffs {
		text := splitLines(diff.Text)
		switch diff.Type {
		case diffpatch.DiffInsert:
			d.Inserted += len(text)
			writeLines(&sb, "+", text)
		case diffpatch.DiffDelete:
			d.Deleted += len(text)
			writeLines(&sb, "-", text)
		case diffpatch.DiffEqual:
			first, last := i == 0, i == len(diffs)-1
			head, tail := contextLines, contextLines
			if first {
				head = 0
			}
			if last {
				tail = 0
			}
			if head+tail >= len(text) {
				writeLines(&sb, " ", text)
				continue
			}
			writeLines(&sb, " ", text[:head])
			fmt.Fprintf(&sb, "@@ %d unchanged lines @@\n", len(text)-head-tail)
			writeLines(&sb, " ", text[len(text)-tail:])
		}
	}
	d.Text = sb.String()
	return d
}

func splitLines(text string) []string {
	lines := strings.SplitAfter(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func writeLines(sb *strings.Builder, prefix string, lines []string) {
	for _, line := range lines {
		sb.WriteString(prefix)
		sb.WriteString(strings.TrimSuffix(line, "\n"))
		sb.WriteByte('\n')
	}
}
