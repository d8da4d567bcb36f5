// Package fsops performs the destructive filesystem operations of a run.
package fsops

// Deleter abstracts filesystem delete operations so tests can run against an
// in-memory or read-only filesystem. afero.Fs satisfies it.
type Deleter interface {
	Remove(path string) error
}
