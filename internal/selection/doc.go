// Package selection parses the operator's answer to a duplicate-group prompt.
//
// An answer is a comma-separated list of integer indices such as "0,2".
// Parsing is all-or-nothing: one bad token rejects the whole line, so a typo
// never deletes a partial set of files.
package selection
