package markers

import (
	"errors"
	"strings"
)

// ErrMissingEnd is returned when a block's start marker has no matching end marker.
var ErrMissingEnd = errors.New("found start marker but no end marker")

// Start returns the opening marker line for the named block.
func Start(name string) string {
	return "# >>> " + name + " >>>"
}

// End returns the closing marker line for the named block.
func End(name string) string {
	return "# <<< " + name + " <<<"
}

// Render builds the named block: start marker, one line per entry, end marker.
// The result has no trailing newline.
func Render(name string, lines []string) string {
	var b strings.Builder
	b.WriteString(Start(name))
	b.WriteString("\n")
	for _, l := range lines {
		b.WriteString(l)
		b.WriteString("\n")
	}
	b.WriteString(End(name))
	return b.String()
}

// lineIndex returns the offset of the first line at or after from that is
// exactly marker, ignoring its terminator, or -1.
func lineIndex(content, marker string, from int) int {
	for off := from; off < len(content); {
		next := strings.IndexByte(content[off:], '\n')
		line := content[off:]
		if next != -1 {
			line = content[off : off+next]
		}
		if strings.TrimRight(line, "\r") == marker {
			return off
		}
		if next == -1 {
			break
		}
		off += next + 1
	}
	return -1
}

// bounds returns the offsets of the named block in content: the index of the
// start marker and the index just past the end marker. Markers only count as
// whole lines. found is false when no start marker is present.
func bounds(content, name string) (start, end int, found bool, err error) {
	start = lineIndex(content, Start(name), 0)
	if start == -1 {
		return 0, 0, false, nil
	}
	endLine := lineIndex(content, End(name), start)
	if endLine == -1 {
		return 0, 0, true, ErrMissingEnd
	}
	return start, endLine + len(End(name)), true, nil
}

// Insert inserts or replaces the named block in content.
// If markers exist, the block between them is replaced.
// If content is empty the result is block+"\n".
// Otherwise the block is appended (with a preceding blank line).
func Insert(content, name, block string) (string, error) {
	start, end, found, err := bounds(content, name)
	if err != nil {
		return "", err
	}
	if found {
		return content[:start] + block + content[end:], nil
	}
	if content == "" {
		return block + "\n", nil
	}
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return content + "\n" + block + "\n", nil
}

// Remove removes the named block and its markers from content, along with the
// single blank line Insert put before it. removed is false when no block is present.
func Remove(content, name string) (result string, removed bool, err error) {
	start, end, found, err := bounds(content, name)
	if err != nil {
		return "", false, err
	}
	if !found {
		return content, false, nil
	}

	before := content[:start]
	after := content[end:]
	after = strings.TrimPrefix(after, "\r")
	after = strings.TrimPrefix(after, "\n")
	if strings.HasSuffix(before, "\n\n") {
		before = before[:len(before)-1]
	}
	result = before + after
	if result != "" && !strings.HasSuffix(result, "\n") {
		result += "\n"
	}
	return result, true, nil
}
