// Package formatter defines how log entries are serialized into bytes.
//
// It exposes three interfaces: Formatter, which returns a []byte,
// WriterFormatter, which writes directly to an io.Writer, and
// BufferFormatter, which fills a caller-provided buffer. Handlers check
// for the optional interfaces at construction time and prefer them,
// eliminating the intermediate byte slice allocation on the write path.
//
// TextFormatter produces the bracketed line
//
//	[api - server.go:42 - (*Server).handle()] (Warn) slow request 1.2s
//
// The namespace and its separator are left out when no namespace is set,
// and the origin with its separator when the call site is unknown, so
// "[api] (Info) ..." and "[] (Info) ..." are both valid lines. Level tags
// are pre-computed in a plain and an ANSI-coloured variant.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
