// Package consolehandler provides the console output channels: Info and
// Debug lines go to one writer (default: stdout), Warn and Error lines to
// another (default: stderr).
//
// Writes are synchronous and serialized by a single lock shared by both
// outputs, so lines from concurrent goroutines never interleave. Writers
// known to be safe for concurrent use (*os.File, io.Discard) skip the lock.
//
// The level tag is coloured according to ConsoleConfig.Color. ColorAuto
// colours only when both outputs are terminals (detected with go-isatty)
// and the NO_COLOR environment variable is unset. The default writers are
// wrapped with go-colorable so escape sequences also render on Windows
// consoles.
package consolehandler
