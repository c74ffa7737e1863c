package objectstore

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// MarshalCommit serializes a Commit to a deterministic text format:
//
//	parent P
//	second-parent Q      (omitted if absent)
//	timestamp T
//	file NAME HASH       (zero or more, sorted by NAME)
//
//	MESSAGE
//
// Field order and sort order are fixed so that two commits with identical
// content produce byte-identical output, which is what makes the content
// hash of this output stable.
func MarshalCommit(c *Commit) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "parent %s\n", string(c.Parent))
	if c.SecondParent != "" {
		fmt.Fprintf(&buf, "second-parent %s\n", string(c.SecondParent))
	}
	fmt.Fprintf(&buf, "timestamp %d\n", c.Timestamp)

	paths := make([]string, 0, len(c.Files))
	for p := range c.Files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	for _, p := range paths {
		fmt.Fprintf(&buf, "file %s %s\n", p, string(c.Files[p]))
	}

	buf.WriteByte('\n')
	buf.WriteString(c.Message)
	return buf.Bytes()
}

// UnmarshalCommit parses a Commit from its serialized form.
func UnmarshalCommit(data []byte) (*Commit, error) {
	idx := bytes.Index(data, []byte("\n\n"))
	if idx < 0 {
		return nil, fmt.Errorf("unmarshal commit: missing header/message separator")
	}
	header := string(data[:idx])
	message := string(data[idx+2:])

	c := &Commit{Message: message, Files: make(map[string]Hash)}
	for _, line := range strings.Split(header, "\n") {
		key, val, ok := strings.Cut(line, " ")
		if !ok {
			return nil, fmt.Errorf("unmarshal commit: malformed header line %q", line)
		}
		switch key {
		case "parent":
			c.Parent = Hash(val)
		case "second-parent":
			c.SecondParent = Hash(val)
		case "timestamp":
			ts, err := strconv.ParseInt(val, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("unmarshal commit: bad timestamp %q: %w", val, err)
			}
			c.Timestamp = ts
		case "file":
			name, hash, ok := strings.Cut(val, " ")
			if !ok {
				return nil, fmt.Errorf("unmarshal commit: malformed file entry %q", val)
			}
			c.Files[name] = Hash(hash)
		default:
			return nil, fmt.Errorf("unmarshal commit: unknown header key %q", key)
		}
	}
	return c, nil
}
