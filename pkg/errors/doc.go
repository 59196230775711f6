// Package errors provides structured error types for better observability
// and programmatic error handling across nodefacts.
//
// Fact resolvers never return errors; a failed native query is logged and the
// inherited value is kept. StructuredError is used by the surfaces around the
// resolvers (collection lookups, the CLI and the API server):
//
//	v, err := collection.Lookup("os")
//	if errors.HasCode(err, errors.ErrCodeNotFound) {
//	    // unknown fact name
//	}
//
//	return errors.WrapWithContext(errors.ErrCodeTimeout, "collection canceled",
//	    ctx.Err(), map[string]any{"resolver": name},
//	)
package errors
