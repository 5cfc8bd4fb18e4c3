package main

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/spf13/afero"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// ErrNotText is returned for files whose content is not valid UTF-8 text.
var ErrNotText = errors.New("not valid UTF-8 text")

// countFile reads path in full and counts its lines, and its characters and
// tokens when requested. Read and decode failures are reported in the
// outcome's Err; the caller treats both the same way.
func countFile(fsys afero.Fs, path string, countChars bool, tk Tokenizer) FileOutcome {
	outcome := FileOutcome{Path: path}

	content, err := afero.ReadFile(fsys, path)
	if err != nil {
		outcome.Err = fmt.Errorf("reading %s: %w", path, err)
		return outcome
	}
	if err := validateText(content); err != nil {
		outcome.Err = fmt.Errorf("decoding %s: %w", path, err)
		return outcome
	}

	outcome.Lines = countLines(content)
	if countChars {
		outcome.Chars = utf8.RuneCount(content)
	}
	if tk != nil && len(content) > 0 {
		outcome.Tokens = tk.CountTokens(string(content))
	}
	return outcome
}

// validateText fails on the first byte sequence that is not valid UTF-8,
// including a sequence truncated by the end of the file.
func validateText(content []byte) error {
	if _, _, err := transform.Bytes(encoding.UTF8Validator, content); err != nil {
		return fmt.Errorf("%w: %v", ErrNotText, err)
	}
	return nil
}

// countLines counts newline-delimited lines. A final line without a
// terminator still counts; a terminator at the very end does not start a
// new empty line. "\r\n" ends a line the same way "\n" does.
func countLines(content []byte) int {
	if len(content) == 0 {
		return 0
	}
	n := bytes.Count(content, []byte{'\n'})
	if content[len(content)-1] != '\n' {
		n++
	}
	return n
}
