// Package errors provides structured, actionable error values for pager.
//
// Every error carries a code (e.g., "E001") registered in a central table
// that supplies its category, message, and a longer explanation. Callers add
// a suggestion or wrap a cause with the fluent With* methods:
//
//	err := errors.New("E100").
//	    WithDetail("pagination.itemsPerPage must be positive").
//	    WithSuggestion("Set itemsPerPage to 1 or more in pager.json")
//
//	errors.PrintError(err)
//
// # Error Categories
//
//   - markup: element construction contract violations
//   - config: pager.json loading and validation
//   - store: fragment export backends
//   - cli: command-line usage
//   - http: request parameter problems
//
// Two errors with the same code compare equal under the standard library's
// errors.Is, so packages can export sentinel values built with New.
package errors
