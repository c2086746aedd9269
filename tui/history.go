// Package tui is the Bubble Tea front end: a scrolling output viewport, a
// status bar, and a command line with arrow-key input recall.
package tui

// inputLog keeps recently entered commands for arrow-key recall. pos is the
// recall position: len(lines) means live input, smaller values walk back
// through older entries.
type inputLog struct {
	lines []string
	limit int
	pos   int
}

func newInputLog(limit int) *inputLog {
	return &inputLog{limit: limit}
}

// record appends a command, evicting the oldest entry past the limit.
// An immediate repeat is not recorded. Recording lands recall back on
// live input.
func (l *inputLog) record(cmd string) {
	if n := len(l.lines); n == 0 || l.lines[n-1] != cmd {
		l.lines = append(l.lines, cmd)
		if len(l.lines) > l.limit {
			l.lines = l.lines[1:]
		}
	}
	l.pos = len(l.lines)
}

// older steps back one entry, sticking on the oldest. False means the log
// is empty.
func (l *inputLog) older() (string, bool) {
	if len(l.lines) == 0 {
		return "", false
	}
	if l.pos > 0 {
		l.pos--
	}
	return l.lines[l.pos], true
}

// newer steps forward one entry. False means recall walked past the newest
// entry and the command line is live again.
func (l *inputLog) newer() (string, bool) {
	if l.pos >= len(l.lines) {
		return "", false
	}
	l.pos++
	if l.pos == len(l.lines) {
		return "", false
	}
	return l.lines[l.pos], true
}

// reset abandons recall and returns to live input.
func (l *inputLog) reset() {
	l.pos = len(l.lines)
}
