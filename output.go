package main

import (
	"fmt"
	"io"
)

const badFilesNote = "BAD FILES are files that could not be counted, e.g (images, audio, etc..).\n"

// Reporter writes per-file log lines and the final summary. Every event is
// written as soon as it happens; a failed write is returned to the caller
// and ends the run.
type Reporter struct {
	w          io.Writer
	mode       LogMode
	countChars bool
	countTok   bool
}

// NewReporter creates a Reporter writing to w.
func NewReporter(w io.Writer, opts Options) *Reporter {
	return &Reporter{
		w:          w,
		mode:       opts.LogMode,
		countChars: opts.CountChars,
		countTok:   opts.Tokenizer != nil,
	}
}

// FileCounted logs a counted file along with the running line total.
func (r *Reporter) FileCounted(outcome FileOutcome, totalLines int) error {
	if !r.mode.logsCounted() {
		return nil
	}

	line := fmt.Sprintf("lines of code in %s = %d", outcome.Path, outcome.Lines)
	if r.countChars {
		line += fmt.Sprintf(", %d chars", outcome.Chars)
	}
	if r.countTok {
		line += fmt.Sprintf(", %d tokens", outcome.Tokens)
	}
	_, err := fmt.Fprintf(r.w, "%s, total lines = %d\n", line, totalLines)
	return err
}

// FileBad logs a file that could not be read or decoded.
func (r *Reporter) FileBad(outcome FileOutcome) error {
	if !r.mode.logsBad() {
		return nil
	}
	_, err := fmt.Fprintf(r.w, "Could not count this file: %s\n", outcome.Path)
	return err
}

// Summary prints the run totals.
func (r *Reporter) Summary(stats Stats) error {
	if r.countChars {
		if _, err := fmt.Fprintf(r.w, "Counted a total of %d characters\n", stats.TotalChars); err != nil {
			return err
		}
	}
	if r.countTok {
		if _, err := fmt.Fprintf(r.w, "Counted a total of %d tokens\n", stats.TotalTokens); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(r.w, "Across %d files, Counted a total of %d lines, encountered %d BAD FILES\n\n%s",
		stats.TotalFiles, stats.TotalLines, stats.BadFiles, badFilesNote)
	return err
}
