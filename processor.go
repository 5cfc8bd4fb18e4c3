package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// walker carries the run settings and the running totals through a single
// depth-first traversal. It is used from one goroutine only.
type walker struct {
	fs    afero.Fs
	opts  Options
	rep   *Reporter
	stats Stats
}

// walkDirectory counts every non-ignored regular file below opts.Root.
// Failing to list a directory or stat an entry aborts the walk and is
// returned; files that cannot be read or decoded are only counted as bad.
func walkDirectory(fsys afero.Fs, opts Options, rep *Reporter) (Stats, error) {
	w := &walker{fs: fsys, opts: opts, rep: rep}

	err := afero.Walk(fsys, opts.Root, w.visit)
	if err != nil {
		return w.stats, err
	}
	return w.stats, nil
}

func (w *walker) visit(path string, info os.FileInfo, err error) error {
	path = w.displayPath(path)
	if err != nil {
		return fmt.Errorf("error walking %s: %w", path, err)
	}

	switch {
	case info.IsDir():
		// Substring match on the whole path; this also applies to the root.
		if w.opts.Ignore.SkipFolder(path) {
			return filepath.SkipDir
		}
		return nil
	case info.Mode().IsRegular():
		if w.opts.Ignore.SkipFile(path) {
			return nil
		}
		return w.countOne(path)
	default:
		// Symlinks, sockets, devices and the like are neither counted nor followed.
		return nil
	}
}

// displayPath puts back the "./" that filepath.Join strips from entries
// below the "." root. Ignore markers are matched against this form too.
func (w *walker) displayPath(path string) string {
	if w.opts.Root != "." || path == "." {
		return path
	}
	return "." + string(filepath.Separator) + path
}

// countOne folds a single file into the totals and logs it.
func (w *walker) countOne(path string) error {
	w.stats.TotalFiles++

	outcome := countFile(w.fs, path, w.opts.CountChars, w.opts.Tokenizer)
	if !outcome.Counted() {
		w.stats.BadFiles++
		if err := w.rep.FileBad(outcome); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	}

	w.stats.TotalLines += outcome.Lines
	if w.opts.CountChars {
		w.stats.TotalChars += outcome.Chars
	}
	w.stats.TotalTokens += outcome.Tokens

	if err := w.rep.FileCounted(outcome, w.stats.TotalLines); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
