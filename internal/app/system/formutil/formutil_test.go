package formutil

import (
	"reflect"
	"testing"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"simple", "one\ntwo\nthree", []string{"one", "two", "three"}},
		{"blank lines skipped", "one\n\n  \ntwo", []string{"one", "two"}},
		{"whitespace trimmed", "  one  \n\ttwo\t", []string{"one", "two"}},
		{"windows newlines", "one\r\ntwo", []string{"one", "two"}},
		{"empty", "", nil},
		{"only whitespace", "  \n \n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lines(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Lines(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCommaList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"simple", "go, react, mongodb", []string{"go", "react", "mongodb"}},
		{"empty items skipped", "go,,react,", []string{"go", "react"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CommaList(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CommaList(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestJoinLines(t *testing.T) {
	if got := JoinLines([]string{"a", "b"}); got != "a\nb" {
		t.Errorf("JoinLines = %q, want %q", got, "a\nb")
	}
}

func TestSetError(t *testing.T) {
	var b Base
	b.SetError("Title is required.")
	if b.Error != "Title is required." {
		t.Errorf("Error = %q", b.Error)
	}
}
