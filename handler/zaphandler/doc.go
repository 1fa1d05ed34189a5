// Package zaphandler forwards log entries into a go.uber.org/zap core,
// for programs that already ship zap's encoders and sinks.
//
// The namespace is written as the zap logger name and the resolved
// origin as the entry caller. For Failure lines the place the error was
// created is added as the "error_origin" field.
//
//	z, _ := zap.NewProduction()
//	log := logger.NewBuilder().
//	    WithHandler(zaphandler.FromLogger(z)).
//	    WithNamespace("api").
//	    Build()
package zaphandler
