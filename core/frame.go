package core

import (
	"strings"
)

// Frame is one level of a captured call stack
type Frame struct {
	// Function is the fully qualified name, e.g. "github.com/acme/app/worker.(*Pool).run"
	Function string
	File     string
	Line     int
	Column   int
}

// ShortFile returns the final path component of the frame's file
func (f Frame) ShortFile() string {
	if i := strings.LastIndexAny(f.File, `/\`); i != -1 {
		return strings.TrimSpace(f.File[i+1:])
	}
	return strings.TrimSpace(f.File)
}

// Package returns the import path of the package the function belongs to.
//
//	github.com/acme/app/worker.(*Pool).run -> github.com/acme/app/worker
//	main.main                                -> main
func (f Frame) Package() string {
	end := packageEnd(f.Function)
	if end == -1 {
		return ""
	}
	return f.Function[:end]
}

// DisplayName returns the function name without its import path and
// package, or "" for anonymous functions.
//
//	github.com/acme/app/worker.(*Pool).run -> (*Pool).run
//	main.main.func1                          -> ""
func (f Frame) DisplayName() string {
	name := f.Function
	if name == "" {
		return ""
	}
	if end := packageEnd(name); end != -1 {
		name = name[end+1:]
	} else {
		name = name[strings.LastIndexByte(name, '/')+1:]
	}
	// method values: (*T).m-fm
	name = strings.TrimSuffix(name, "-fm")
	if isAnonymous(name) {
		return ""
	}
	return name
}

// packageEnd returns the length of the import path at the start of a
// function name, or -1 if there is none. The compiler escapes dots in the
// last path element (yaml%2ev3); unescaped ".vN" elements right after a
// slashed import path, as in "example.com/acme/app.v2.(*Server).handle",
// are read as part of the path.
func packageEnd(name string) int {
	slash := strings.LastIndexByte(name, '/')
	dot := strings.IndexByte(name[slash+1:], '.')
	if dot == -1 {
		return -1
	}
	end := slash + 1 + dot
	if slash == -1 {
		return end
	}
	for {
		rest := name[end+1:]
		next := strings.IndexByte(rest, '.')
		if next == -1 || !isMajorVersion(rest[:next]) {
			return end
		}
		end += 1 + next
	}
}

func isMajorVersion(s string) bool {
	return len(s) > 1 && s[0] == 'v' && isDigits(s[1:])
}

// isAnonymous reports whether a package-stripped function name refers to
// a closure. The compiler names closures outer.func1, outer.func1.2 and
// wraps go/defer statements in outer.gowrap1 / outer.deferwrap1.
func isAnonymous(name string) bool {
	for name != "" {
		last := name
		rest := ""
		if dot := strings.LastIndexByte(name, '.'); dot != -1 {
			last, rest = name[dot+1:], name[:dot]
		}
		switch {
		case isDigits(last):
			// nested closure suffix: func1.2
			name = rest
			continue
		case hasNumberedPrefix(last, "func"),
			hasNumberedPrefix(last, "gowrap"),
			hasNumberedPrefix(last, "deferwrap"):
			return true
		}
		return false
	}
	return false
}

func hasNumberedPrefix(s, prefix string) bool {
	return strings.HasPrefix(s, prefix) && isDigits(s[len(prefix):])
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
