package gitignore

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/re-cinq/ignoredit/internal/markers"
)

// NotFound is returned by FindPattern when no line matches.
const NotFound = -1

var (
	// ErrInvalidFile is returned by New when the path is not an existing regular file.
	ErrInvalidFile = errors.New("the ignore file does not exist")

	// ErrOutOfBounds is returned when an insertion line number does not exist.
	ErrOutOfBounds = errors.New("the line number does not exist")

	// ErrWriteFailed is returned when writing to the file failed or wrote nothing.
	ErrWriteFailed = errors.New("failed to write ignore file")

	// ErrMissingEndMarker is returned when a managed block has a start marker but no end marker.
	ErrMissingEndMarker = markers.ErrMissingEnd

	// ErrInvalidBlockName is returned for empty block names or names spanning lines.
	ErrInvalidBlockName = errors.New("invalid block name")
)

// openFile opens the file for writing. Replaced in tests.
var openFile = os.OpenFile

// PatternFile edits a single ignore file in place.
type PatternFile struct {
	filename string
}

// New binds a PatternFile to filename, which must name an existing regular file.
// The path is stored as given.
func New(filename string) (*PatternFile, error) {
	info, err := os.Stat(filename)
	if err != nil || !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFile, filename)
	}
	return &PatternFile{filename: filename}, nil
}

// Filename returns the path the PatternFile was created with.
func (f *PatternFile) Filename() string {
	return f.filename
}

func (f *PatternFile) content() (string, error) {
	data, err := os.ReadFile(f.filename)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", f.filename, err)
	}
	return string(data), nil
}

// lines returns the file's lines, each keeping its terminator.
func (f *PatternFile) lines() ([]string, error) {
	content, err := f.content()
	if err != nil {
		return nil, err
	}
	return splitLines(content), nil
}

func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.SplitAfter(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func trimTerminator(line string) string {
	return strings.TrimRight(line, "\r\n")
}

// FindPattern returns the zero-based index of the first line equal to pattern,
// ignoring the line's terminator, or NotFound.
func (f *PatternFile) FindPattern(pattern string) (int, error) {
	lines, err := f.lines()
	if err != nil {
		return NotFound, err
	}
	for i, line := range lines {
		if trimTerminator(line) == pattern {
			return i, nil
		}
	}
	return NotFound, nil
}

// ContainsPattern reports whether some line equals pattern.
func (f *PatternFile) ContainsPattern(pattern string) (bool, error) {
	i, err := f.FindPattern(pattern)
	if err != nil {
		return false, err
	}
	return i != NotFound, nil
}

// AppendPatterns appends patterns to the end of the file, one per line, starting
// on a new line. No terminator is written after the last pattern.
func (f *PatternFile) AppendPatterns(patterns []string) error {
	content, err := f.content()
	if err != nil {
		return err
	}

	prefix := ""
	if content != "" && !strings.HasSuffix(content, "\n") && !strings.HasSuffix(content, "\r") {
		prefix = "\n"
	}

	if err := f.write(prefix+strings.Join(patterns, "\n"), os.O_WRONLY|os.O_APPEND); err != nil {
		return fmt.Errorf("appending patterns: %w", err)
	}
	return nil
}

// AppendMissingPatterns appends the patterns that are not yet in the file,
// skipping empty patterns and repeats within patterns, and returns the ones it
// added.
func (f *PatternFile) AppendMissingPatterns(patterns []string) ([]string, error) {
	lines, err := f.lines()
	if err != nil {
		return nil, err
	}
	present := make(map[string]bool, len(lines))
	for _, line := range lines {
		present[trimTerminator(line)] = true
	}

	var missing []string
	for _, p := range patterns {
		if p == "" || present[p] {
			continue
		}
		present[p] = true
		missing = append(missing, p)
	}
	if len(missing) == 0 {
		return nil, nil
	}

	if err := f.AppendPatterns(missing); err != nil {
		return nil, err
	}
	return missing, nil
}

// InsertPatternsAtLineNo inserts patterns, one per line, before the existing
// line at lineNo. lineNo must index an existing line.
func (f *PatternFile) InsertPatternsAtLineNo(patterns []string, lineNo int) error {
	lines, err := f.lines()
	if err != nil {
		return err
	}
	if lineNo < 0 || lineNo >= len(lines) {
		return fmt.Errorf("%w: %d (%s has %d lines)", ErrOutOfBounds, lineNo, f.filename, len(lines))
	}

	block := strings.Join(patterns, "\n") + "\n"
	lines = slices.Insert(lines, lineNo, block)

	if err := f.write(strings.Join(lines, ""), os.O_WRONLY|os.O_TRUNC); err != nil {
		return fmt.Errorf("inserting patterns: %w", err)
	}
	return nil
}

// InsertPatternAtLineNo inserts a single pattern before the line at lineNo, or
// after the last line when lineNo equals the line count.
//
// Deprecated: use InsertPatternsAtLineNo, or AppendPatterns to add to the end.
func (f *PatternFile) InsertPatternAtLineNo(pattern string, lineNo int) error {
	lines, err := f.lines()
	if err != nil {
		return err
	}
	if lineNo < 0 || lineNo > len(lines) {
		return fmt.Errorf("%w: %d (%s has %d lines)", ErrOutOfBounds, lineNo, f.filename, len(lines))
	}

	entry := pattern
	if lineNo < len(lines) {
		entry += "\n"
	} else if lineNo > 0 && !strings.HasSuffix(lines[lineNo-1], "\n") {
		lines[lineNo-1] += "\n"
	}
	lines = slices.Insert(lines, lineNo, entry)

	if err := f.write(strings.Join(lines, ""), os.O_WRONLY|os.O_TRUNC); err != nil {
		return fmt.Errorf("inserting pattern: %w", err)
	}
	return nil
}

// SetBlock writes patterns into the managed block called name, replacing the
// block's previous content or appending a new block after a blank line.
func (f *PatternFile) SetBlock(name string, patterns []string) error {
	if err := checkBlockName(name); err != nil {
		return err
	}
	content, err := f.content()
	if err != nil {
		return err
	}

	updated, err := markers.Insert(content, name, markers.Render(name, patterns))
	if err != nil {
		return fmt.Errorf("%s: block %q: %w", f.filename, name, err)
	}

	if err := f.write(updated, os.O_WRONLY|os.O_TRUNC); err != nil {
		return fmt.Errorf("writing block %q: %w", name, err)
	}
	return nil
}

// RemoveBlock removes the managed block called name and reports whether one
// was present. The file is left untouched when there is no such block.
func (f *PatternFile) RemoveBlock(name string) (bool, error) {
	if err := checkBlockName(name); err != nil {
		return false, err
	}
	content, err := f.content()
	if err != nil {
		return false, err
	}

	updated, removed, err := markers.Remove(content, name)
	if err != nil {
		return false, fmt.Errorf("%s: block %q: %w", f.filename, name, err)
	}
	if !removed {
		return false, nil
	}

	if err := f.write(updated, os.O_WRONLY|os.O_TRUNC); err != nil {
		return false, fmt.Errorf("removing block %q: %w", name, err)
	}
	return true, nil
}

func checkBlockName(name string) error {
	if name == "" || strings.ContainsAny(name, "\r\n") {
		return fmt.Errorf("%w: %q", ErrInvalidBlockName, name)
	}
	return nil
}

// write opens the file with flag and writes s. Writing zero bytes of a
// non-empty s is a failure.
func (f *PatternFile) write(s string, flag int) error {
	fh, err := openFile(f.filename, flag, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	n, err := fh.WriteString(s)
	closeErr := fh.Close()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	if closeErr != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, closeErr)
	}
	if n == 0 && s != "" {
		return fmt.Errorf("%w: %s: zero bytes written", ErrWriteFailed, f.filename)
	}
	return nil
}
