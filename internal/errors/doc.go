// Package errors provides structured, actionable error messages for routegen.
//
// Every failure the generator can report has a code (e.g. "E100") registered
// with a category, a short message, a longer explanation and a documentation
// link. Callers attach the path involved, a suggestion and the underlying
// cause:
//
//	err := errors.New("E100").
//	    WithPath("./src/pages").
//	    WithSuggestion("Pass the directory that contains your route files")
//
//	errors.FprintError(os.Stderr, err)
//	// Output:
//	// ERROR E100: Invalid route directory
//	//
//	//   ./src/pages
//	//
//	//   The route directory does not exist or is not a directory.
//	//
//	//   Hint: Pass the directory that contains your route files
//
// # Error Kinds
//
// Two kinds abort a generation run:
//   - invalid directory (E100, E102): the root is missing or its convention
//     cannot be inferred
//   - filesystem (E101, E105): a read or write failed part way through
//
// Use IsInvalidDirectory and IsFilesystem to classify an error chain.
//
// # Output Forms
//
// Format renders the multi-line report above, FormatCompact a single line
// for logs and plain terminals, and FormatJSON an object for tools that
// parse command output. GetAllCodes and GetTemplate expose the registry.
package errors
