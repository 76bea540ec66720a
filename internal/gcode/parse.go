// internal/gcode/parse.go
package gcode

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseLine tokenizes one program line into a Block.
// Accepted shape: an M word followed by parameter words, e.g.
//
//	M101 D1 E3 P100 Q2
//
// Word letters are case-insensitive. Comments starting with ';' are stripped.
func ParseLine(line string) (*Block, error) {
	if i := strings.IndexByte(line, ';'); i >= 0 {
		line = line[:i]
	}

	fields := strings.Fields(strings.ToUpper(line))
	if len(fields) == 0 {
		return nil, fmt.Errorf("gcode: empty line")
	}

	b := &Block{}

	for i, f := range fields {
		if len(f) < 2 {
			return nil, fmt.Errorf("gcode: malformed word %q", f)
		}

		letter := f[0]
		val, err := strconv.ParseFloat(f[1:], 64)
		if err != nil {
			return nil, fmt.Errorf("gcode: word %q: %v", f, err)
		}

		if i == 0 {
			if letter != 'M' {
				return nil, fmt.Errorf("gcode: expected M word, got %q", f)
			}
			b.MCode = MCode(val)
			continue
		}

		w := Word{Set: true, Value: val}
		switch letter {
		case 'D':
			b.D = w
		case 'E':
			b.E = w
		case 'P':
			b.P = w
		case 'Q':
			b.Q = w
		case 'R':
			b.R = w
		default:
			return nil, fmt.Errorf("gcode: unsupported word letter %q", f)
		}
	}

	return b, nil
}
