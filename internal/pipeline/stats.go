package pipeline

// RunStats tracks aggregate counters across one session.
type RunStats struct {
	Files        int   // Paths discovered.
	Groups       int   // Distinct normalized keys.
	Duplicates   int   // Groups with two or more paths.
	Skipped      int   // Groups answered with an empty line.
	Deleted      int   // Files removed.
	Failed       int   // Indices that could not be deleted (range or I/O).
	InvalidInput int   // Lines rejected by the parser.
	WalkErrors   int   // Traversal errors skipped during the scan.
	Unanswered   int   // Groups never prompted because input ended.
	BytesFreed   int64 // Sum of the sizes of removed files.
}

// Answered returns how many duplicate groups received a line of input.
func (s *RunStats) Answered() int {
	return s.Duplicates - s.Unanswered
}
