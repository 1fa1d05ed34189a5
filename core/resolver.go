package core

import (
	"errors"
	"go/build"
	"path"
	"reflect"
	"runtime"
	"strings"
)

// maxDepth bounds a single stack capture. Emission paths through the
// logger, slog or a wrapper package stay far below it.
const maxDepth = 64

// modulePrefix is the import path prefix shared by every package of this
// module, derived from the core package so a fork or rename keeps working.
var modulePrefix = path.Dir(reflect.TypeOf(Origin{}).PkgPath()) + "/"

// goroot is where the standard library sources of the running binary live
var goroot = strings.TrimSuffix(build.Default.GOROOT, "/")

// stackTracer is implemented by errors that record the stack at the point
// they were created, e.g. gitlab.com/tozd/go/errors.
type stackTracer interface {
	StackTrace() []uintptr
}

// Resolver finds the call site a log line should be attributed to: the
// first stack frame that belongs neither to the logging facility, nor to
// a dependency, nor to the Go runtime and standard library.
//
// A Resolver is immutable and safe for concurrent use.
type Resolver struct {
	extra []string
}

// NewResolver creates a resolver. Functions whose names start with one of
// the given import path prefixes are treated as part of the facility, which
// lets logging helpers in application code attribute lines to their callers.
func NewResolver(internal ...string) *Resolver {
	r := &Resolver{}
	for _, p := range internal {
		p = strings.TrimSpace(p)
		if p != "" {
			r.extra = append(r.extra, p)
		}
	}
	return r
}

// Internal reports whether a frame is excluded from origin resolution
func (r *Resolver) Internal(f Frame) bool {
	if f.Function == "" && f.File == "" {
		return true
	}
	for _, p := range r.extra {
		if strings.HasPrefix(f.Function, p) {
			return true
		}
	}
	// Tests exercising the facility are its callers, not part of it.
	if strings.HasSuffix(f.File, "_test.go") {
		return false
	}
	if strings.HasPrefix(f.Function, modulePrefix) {
		return true
	}
	return isDependency(f) || isPlatform(f)
}

// isDependency reports whether the frame's source lives in the module
// cache or a vendor tree
func isDependency(f Frame) bool {
	file := strings.ReplaceAll(f.File, `\`, "/")
	if strings.Contains(file, "/pkg/mod/") || strings.Contains(file, "/vendor/") {
		return true
	}
	return isTrimmedModulePath(file)
}

// isTrimmedModulePath reports whether file is a module cache path as
// reported by a -trimpath build: "github.com/acme/jobs@v1.2.0/queue.go".
func isTrimmedModulePath(file string) bool {
	if strings.HasPrefix(file, "/") || hasDriveLetter(file) {
		return false
	}
	first, _, ok := strings.Cut(file, "/")
	if !ok || !strings.Contains(first, ".") {
		return false
	}
	return strings.Contains(file, "@v")
}

// isPlatform reports whether the frame belongs to the Go runtime or the
// standard library
func isPlatform(f Frame) bool {
	if strings.HasPrefix(f.Function, "runtime.") {
		return true
	}
	file := strings.ReplaceAll(f.File, `\`, "/")
	if goroot != "" && strings.HasPrefix(file, goroot+"/src/") {
		return true
	}
	pkg := f.Package()
	if !isStdPackage(pkg) {
		return false
	}
	if !strings.HasPrefix(file, "/") && !hasDriveLetter(file) {
		// built with -trimpath: std files are reported relative to GOROOT/src
		return true
	}
	return strings.Contains(file, "/src/"+pkg+"/")
}

// isStdPackage reports whether an import path looks like a standard
// library package: no dot in the first path element.
func isStdPackage(pkg string) bool {
	if pkg == "" || pkg == "main" {
		return false
	}
	first := pkg
	if i := strings.IndexByte(pkg, '/'); i != -1 {
		first = pkg[:i]
	}
	return !strings.Contains(first, ".")
}

func hasDriveLetter(file string) bool {
	return len(file) > 2 && file[1] == ':' && file[2] == '/'
}

// Resolve returns the origin of the first frame, innermost first, that is
// not internal. Frames are filtered in order; the number of leading
// internal frames is not assumed.
func (r *Resolver) Resolve(frames []Frame) Origin {
	for _, f := range frames {
		if !r.Internal(f) {
			return originOf(f)
		}
	}
	return Origin{}
}

// Capture resolves the origin of the current call. skip is the number of
// additional frames to skip above the caller of Capture; internal frames
// are skipped regardless, so it is only an optimization.
func (r *Resolver) Capture(skip int) Origin {
	var pcs [maxDepth]uintptr
	// 2 = runtime.Callers + Capture
	n := runtime.Callers(skip+2, pcs[:])
	return r.resolvePCs(pcs[:n])
}

// FromPC resolves a single program counter, such as slog.Record.PC. It
// falls back to the current stack when pc is unset or points inside the
// facility.
func (r *Resolver) FromPC(pc uintptr) Origin {
	if pc != 0 {
		f, _ := runtime.CallersFrames([]uintptr{pc}).Next()
		if fr := frameOf(f); !r.Internal(fr) {
			return originOf(fr)
		}
	}
	return r.Capture(1)
}

// FromError resolves where err was created, using the deepest error in its
// Unwrap tree that carries a stack trace. It returns the zero Origin when
// no error in the tree records one.
func (r *Resolver) FromError(err error) (o Origin) {
	defer func() {
		// StackTrace is caller-provided code; it must not take the logger down.
		if recover() != nil {
			o = Origin{}
		}
	}()
	pcs, _ := deepestStack(err, 0)
	if len(pcs) == 0 {
		return Origin{}
	}
	return r.resolvePCs(pcs)
}

// deepestStack returns the stack of the most deeply wrapped error under err
// that records one, together with its depth, or -1 when none does. Errors
// wrapping several causes (errors.Join, multiple %w verbs) are searched
// branch by branch; on equal depth the earlier cause wins.
func deepestStack(err error, depth int) ([]uintptr, int) {
	var (
		pcs []uintptr
		at  = -1
	)
	for e := err; e != nil; depth++ {
		if st, ok := e.(stackTracer); ok {
			if trace := st.StackTrace(); len(trace) > 0 {
				pcs, at = trace, depth
			}
		}
		multi, ok := e.(interface{ Unwrap() []error })
		if !ok {
			e = errors.Unwrap(e)
			continue
		}
		for _, cause := range multi.Unwrap() {
			if p, d := deepestStack(cause, depth+1); d > at {
				pcs, at = p, d
			}
		}
		break
	}
	return pcs, at
}

// FromTrace resolves the origin described by a textual Go traceback, as
// produced by runtime/debug.Stack or an unrecovered panic. For panic
// traces the frames above the runtime's panic frame belong to the
// recovery code and are dropped.
func (r *Resolver) FromTrace(trace string) Origin {
	frames := ParseTrace(trace)
	for i := len(frames) - 1; i >= 0; i-- {
		if fn := frames[i].Function; fn == "panic" || fn == "runtime.gopanic" {
			frames = frames[i+1:]
			break
		}
	}
	return r.Resolve(frames)
}

func (r *Resolver) resolvePCs(pcs []uintptr) Origin {
	if len(pcs) == 0 {
		return Origin{}
	}
	frames := runtime.CallersFrames(pcs)
	for {
		f, more := frames.Next()
		if fr := frameOf(f); !r.Internal(fr) {
			return originOf(fr)
		}
		if !more {
			return Origin{}
		}
	}
}

func frameOf(f runtime.Frame) Frame {
	return Frame{Function: f.Function, File: f.File, Line: f.Line}
}
