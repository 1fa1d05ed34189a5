package core

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// \t/path/to/file.go:42 +0x1d   (column optional, offset optional)
	locationLine = regexp.MustCompile(`^\s*(.+?):(\d+)(?::(\d+))?(?:\s+\+0x[0-9a-fA-F]+)?\s*$`)
	// goroutine 1 [running]:
	goroutineHeader = regexp.MustCompile(`^goroutine \d+ \[.*\]:$`)
)

// ParseTrace splits a textual Go traceback into frames, innermost first.
//
// Two shapes are recognized. A function line followed by its location:
//
//	main.doWork(0x2a)
//		/app/src/worker.go:42 +0x1d
//
// and a bare location with no function line before it:
//
//	/app/src/index.go:10:3
//
// "created by" lines are read as function lines. Anything else is ignored,
// so a malformed trace yields fewer (possibly zero) frames, never an error.
func ParseTrace(trace string) []Frame {
	var (
		frames  []Frame
		pending string
	)
	for _, line := range strings.Split(trace, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" || goroutineHeader.MatchString(line) {
			continue
		}
		if f, ok := parseLocation(line); ok {
			f.Function = pending
			frames = append(frames, f)
			pending = ""
			continue
		}
		if line[0] != '\t' && line[0] != ' ' {
			pending = parseFunction(line)
		}
	}
	return frames
}

// parseLocation parses "file:line[:column] [+0xoff]"
func parseLocation(line string) (Frame, bool) {
	m := locationLine.FindStringSubmatch(line)
	if m == nil {
		return Frame{}, false
	}
	lineNo, err := strconv.Atoi(m[2])
	if err != nil {
		return Frame{}, false
	}
	f := Frame{File: strings.TrimSpace(m[1]), Line: lineNo}
	if m[3] != "" {
		if col, err := strconv.Atoi(m[3]); err == nil {
			f.Column = col
		}
	}
	return f, true
}

// parseFunction extracts the function name from a traceback function line
func parseFunction(line string) string {
	line = strings.TrimSpace(line)
	if rest, ok := strings.CutPrefix(line, "created by "); ok {
		if i := strings.Index(rest, " in goroutine "); i != -1 {
			rest = rest[:i]
		}
		return rest
	}
	if strings.HasSuffix(line, ")") {
		if i := strings.LastIndexByte(line, '('); i > 0 {
			line = line[:i]
		}
	}
	return line
}
