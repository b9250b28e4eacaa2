package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/plus3/handtris/tetris"
)

// Frame holds the events queued before one scheduler step.
type Frame []tetris.Event

// ParseScript reads a replay script. Each non-empty line is one frame whose
// tokens are separated by spaces or commas. "idle N" adds N empty frames and
// "#" starts a comment.
func ParseScript(r io.Reader) ([]Frame, error) {
	var frames []Frame

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		if len(fields) == 0 {
			continue
		}

		if strings.EqualFold(fields[0], "idle") {
			n := 1
			if len(fields) > 2 {
				return nil, fmt.Errorf("line %d: idle takes one count", lineNo)
			}
			if len(fields) == 2 {
				v, err := strconv.Atoi(fields[1])
				if err != nil || v < 0 {
					return nil, fmt.Errorf("line %d: bad idle count %q", lineNo, fields[1])
				}
				n = v
			}
			for range n {
				frames = append(frames, Frame{})
			}
			continue
		}

		frame := make(Frame, 0, len(fields))
		for _, token := range fields {
			e, ok := tetris.ParseEvent(token)
			if !ok {
				return nil, fmt.Errorf("line %d: unknown event %q", lineNo, token)
			}
			frame = append(frame, e)
		}
		frames = append(frames, frame)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return frames, nil
}

// ParseKinds parses a piece sequence such as "IOTSZJL".
func ParseKinds(s string) ([]tetris.Kind, error) {
	var kinds []tetris.Kind
	for _, r := range strings.ToUpper(s) {
		found := false
		for _, k := range tetris.Kinds() {
			if k.String() == string(r) {
				kinds = append(kinds, k)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown piece %q", r)
		}
	}
	return kinds, nil
}
