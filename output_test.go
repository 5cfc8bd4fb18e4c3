package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporterFileCounted(t *testing.T) {
	outcome := FileOutcome{Path: "./src/main.go", Lines: 12, Chars: 240, Tokens: 50}

	tests := []struct {
		name string
		opts Options
		want string
	}{
		{"silent", Options{LogMode: LogSilent}, ""},
		{"bad only", Options{LogMode: LogBad}, ""},
		{"all", Options{LogMode: LogAll}, "lines of code in ./src/main.go = 12, total lines = 40\n"},
		{"counted", Options{LogMode: LogCounted}, "lines of code in ./src/main.go = 12, total lines = 40\n"},
		{"chars", Options{LogMode: LogAll, CountChars: true}, "lines of code in ./src/main.go = 12, 240 chars, total lines = 40\n"},
		{"chars and tokens", Options{LogMode: LogCounted, CountChars: true, Tokenizer: wordTokenizer{}},
			"lines of code in ./src/main.go = 12, 240 chars, 50 tokens, total lines = 40\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, NewReporter(&out, tt.opts).FileCounted(outcome, 40))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestReporterFileBad(t *testing.T) {
	outcome := FileOutcome{Path: "./logo.png", Err: ErrNotText}

	for mode, want := range map[LogMode]string{
		LogSilent:  "",
		LogCounted: "",
		LogBad:     "Could not count this file: ./logo.png\n",
		LogAll:     "Could not count this file: ./logo.png\n",
	} {
		t.Run(mode.String(), func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, NewReporter(&out, Options{LogMode: mode}).FileBad(outcome))
			assert.Equal(t, want, out.String())
		})
	}
}

func TestReporterSummary(t *testing.T) {
	stats := Stats{TotalFiles: 7, TotalLines: 120, TotalChars: 3400, TotalTokens: 900, BadFiles: 2}

	t.Run("lines only", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, NewReporter(&out, Options{}).Summary(stats))

		assert.Equal(t, "Across 7 files, Counted a total of 120 lines, encountered 2 BAD FILES\n\n"+
			"BAD FILES are files that could not be counted, e.g (images, audio, etc..).\n", out.String())
	})

	t.Run("chars and tokens", func(t *testing.T) {
		var out bytes.Buffer
		opts := Options{CountChars: true, Tokenizer: wordTokenizer{}}
		require.NoError(t, NewReporter(&out, opts).Summary(stats))

		assert.Equal(t, "Counted a total of 3400 characters\n"+
			"Counted a total of 900 tokens\n"+
			"Across 7 files, Counted a total of 120 lines, encountered 2 BAD FILES\n\n"+
			"BAD FILES are files that could not be counted, e.g (images, audio, etc..).\n", out.String())
	})

	t.Run("write error", func(t *testing.T) {
		err := NewReporter(errWriter{}, Options{CountChars: true}).Summary(stats)
		assert.Error(t, err)
	})
}
