package main

import "fmt"

// LogMode selects which per-file events are printed during a run.
type LogMode int

const (
	LogSilent  LogMode = iota // Only the summary is printed
	LogAll                    // Every counted and bad file
	LogCounted                // Only successfully counted files
	LogBad                    // Only files that could not be counted
)

// String returns the config-file spelling of the mode.
func (m LogMode) String() string {
	switch m {
	case LogAll:
		return "all"
	case LogCounted:
		return "counted"
	case LogBad:
		return "bad"
	default:
		return "silent"
	}
}

// parseLogMode maps a config/env value (e.g. "counted") to a LogMode.
func parseLogMode(s string) (LogMode, error) {
	switch s {
	case "", "silent":
		return LogSilent, nil
	case "all":
		return LogAll, nil
	case "counted":
		return LogCounted, nil
	case "bad":
		return LogBad, nil
	default:
		return LogSilent, fmt.Errorf("unknown log mode %q: use silent, all, counted or bad", s)
	}
}

// logModeFromArg maps a log flag given as the first command-line argument
// to its LogMode. ok is false for any other value.
func logModeFromArg(arg string) (mode LogMode, ok bool) {
	switch arg {
	case "--log-all":
		return LogAll, true
	case "--log-counted":
		return LogCounted, true
	case "--log-bad":
		return LogBad, true
	default:
		return LogSilent, false
	}
}

// logsCounted reports whether successfully counted files get a log line.
func (m LogMode) logsCounted() bool {
	return m == LogAll || m == LogCounted
}

// logsBad reports whether files that failed to count get a log line.
func (m LogMode) logsBad() bool {
	return m == LogAll || m == LogBad
}

// Stats holds the running totals of a single traversal.
type Stats struct {
	TotalFiles  int
	TotalLines  int
	TotalChars  int
	TotalTokens int
	BadFiles    int
}

// FileOutcome is the result of counting one file. It is folded into Stats
// right away and never kept.
type FileOutcome struct {
	Path   string
	Lines  int
	Chars  int
	Tokens int
	Err    error // Non-nil when the file could not be read or decoded
}

// Counted reports whether the file was read and decoded successfully.
func (o FileOutcome) Counted() bool {
	return o.Err == nil
}

// Options holds the settings fixed for the whole run.
type Options struct {
	Root       string
	LogMode    LogMode
	CountChars bool
	Tokenizer  Tokenizer // nil disables token counting
	Ignore     IgnoreSet
}
