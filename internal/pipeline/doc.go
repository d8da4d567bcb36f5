// Package pipeline runs one interactive clean-up: scan the tree, fold paths
// into case-insensitive groups, then prompt for and delete duplicates.
//
// The pure stages (Scan, Groups, DeleteSelected) take an afero.Fs and return
// values; only Session touches stdin and stdout.
package pipeline
