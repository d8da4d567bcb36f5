package pipeline

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/backmassage/casedup/internal/config"
	"github.com/backmassage/casedup/internal/display"
	"github.com/backmassage/casedup/internal/fsops"
	"github.com/backmassage/casedup/internal/messages"
	"github.com/backmassage/casedup/internal/selection"
	"github.com/spf13/afero"
)

// ErrIndexOutOfRange is wrapped by every *IndexError.
var ErrIndexOutOfRange = errors.New("index out of range")

// IndexError reports a selected index that does not exist in its group.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range (0-%d)", e.Index, e.Len-1)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// DeleteResult is the outcome for one selected index.
type DeleteResult struct {
	Index int
	Path  string // Empty when the index was out of range.
	Size  int64  // Bytes freed; zero on failure.
	Err   error
}

// Logger is the subset of logging.Logger used by a Session.
type Logger interface {
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(string, ...interface{})
	Audit(string, ...interface{})
}

// DeleteSelected removes paths[i] for every i in sel, in order. Failures are
// recorded per index and never stop the remaining deletions.
func DeleteSelected(r *fsops.Remover, paths []string, sel selection.Selection) []DeleteResult {
	results := make([]DeleteResult, 0, len(sel))
	for _, idx := range sel {
		if !selection.InRange(idx, len(paths)) {
			results = append(results, DeleteResult{
				Index: idx,
				Err:   &IndexError{Index: idx, Len: len(paths)},
			})
			continue
		}
		size, err := r.Remove(paths[idx])
		results = append(results, DeleteResult{Index: idx, Path: paths[idx], Size: size, Err: err})
	}
	return results
}

// Session is one interactive run over a directory tree.
type Session struct {
	fs      afero.Fs
	cfg     *config.Config
	log     Logger
	msgs    *messages.Catalog
	in      *bufio.Reader
	out     io.Writer
	remover *fsops.Remover
}

// NewSession wires a session. Prompts and results go to out; answers are
// read line by line from in.
func NewSession(fsys afero.Fs, cfg *config.Config, log Logger, msgs *messages.Catalog, in io.Reader, out io.Writer) *Session {
	return &Session{
		fs:      fsys,
		cfg:     cfg,
		log:     log,
		msgs:    msgs,
		in:      bufio.NewReader(in),
		out:     out,
		remover: fsops.NewRemover(fsys),
	}
}

// Run scans the root, then prompts once per duplicate group in discovery
// order. It returns when every group was answered, input ended, or ctx was
// cancelled between groups. The casedup command installs no signal handler,
// so cancellation only comes from callers that embed a Session.
func (s *Session) Run(ctx context.Context) (RunStats, error) {
	var stats RunStats

	groups, walkErrs, err := Scan(s.fs, s.cfg.Root, s.cfg.KeyMode, func(path string, err error) {
		s.log.Warn("Skipping %s: %v", path, err)
	})
	stats.WalkErrors = walkErrs
	if err != nil {
		return stats, fmt.Errorf("scan %s: %w", s.cfg.Root, err)
	}

	dups := groups.Duplicates()
	stats.Files = groups.Files()
	stats.Groups = groups.Len()
	stats.Duplicates = len(dups)
	s.log.Debug("Scanned %d files into %d groups, %d with duplicates", stats.Files, stats.Groups, stats.Duplicates)

	if len(dups) == 0 {
		display.PrintNote(s.out, "%s", s.msgs.NoDuplicates)
		return stats, nil
	}

	for i, g := range dups {
		if ctx.Err() != nil {
			s.log.Warn("Interrupted, stopping before the next group")
			stats.Unanswered = len(dups) - i
			break
		}
		if !s.processGroup(g, &stats) {
			stats.Unanswered = len(dups) - i
			display.PrintNote(s.out, s.msgs.InputClosed, stats.Unanswered)
			break
		}
	}

	display.PrintNote(s.out, s.msgs.Summary,
		stats.Duplicates, stats.Deleted, stats.Failed, display.FormatBytes(stats.BytesFreed))
	return stats, nil
}

// processGroup prints g, reads one answer and applies it. It returns false
// when no answer could be read.
func (s *Session) processGroup(g *PathGroup, stats *RunStats) bool {
	display.PrintGroup(s.out, s.msgs.GroupHeader, s.msgs.Entry, g.Paths)
	display.PrintPrompt(s.out, s.msgs.Prompt)

	line, err := s.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		fmt.Fprintln(s.out)
		if !errors.Is(err, io.EOF) {
			s.log.Error("Read input: %v", err)
		}
		return false
	}

	sel, err := selection.Parse(line)
	switch {
	case errors.Is(err, selection.ErrEmpty):
		stats.Skipped++
		display.PrintNote(s.out, "%s", s.msgs.Skipped)
		s.log.Debug("Skipped group %q", g.Key)
		return true
	case err != nil:
		stats.InvalidInput++
		display.PrintError(s.out, s.msgs.Error, err)
		s.log.Debug("Rejected input %q for group %q: %v", line, g.Key, err)
		return true
	}

	for _, res := range DeleteSelected(s.remover, g.Paths, sel) {
		if res.Err != nil {
			stats.Failed++
			display.PrintError(s.out, s.msgs.Error, res.Err)
			s.log.Audit("Delete failed: index=%d: %v", res.Index, res.Err)
			continue
		}
		stats.Deleted++
		stats.BytesFreed += res.Size
		display.PrintSuccess(s.out, s.msgs.Deleted, res.Path)
		s.log.Audit("Deleted %s (%d bytes)", res.Path, res.Size)
	}
	return true
}
