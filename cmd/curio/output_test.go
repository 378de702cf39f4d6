package main

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		maxLen int
		want   string
	}{
		{
			name:   "short string unchanged",
			in:     "Blue ink pen",
			maxLen: 60,
			want:   "Blue ink pen",
		},
		{
			name:   "exact length unchanged",
			in:     "abcde",
			maxLen: 5,
			want:   "abcde",
		},
		{
			name:   "long string truncated",
			in:     "abcdefghij",
			maxLen: 8,
			want:   "abcde...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncateString(tt.in, tt.maxLen); got != tt.want {
				t.Errorf("truncateString(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestTruncateString_MultiByte(t *testing.T) {
	in := strings.Repeat("é", 70)
	got := truncateString(in, SearchDescriptionMaxLen)

	if !utf8.ValidString(got) {
		t.Errorf("truncated string is not valid UTF-8: %q", got)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("truncated string missing ellipsis: %q", got)
	}
	if n := utf8.RuneCountInString(got); n != SearchDescriptionMaxLen {
		t.Errorf("rune count = %d, want %d", n, SearchDescriptionMaxLen)
	}
}
