package grapheme

import (
	"reflect"
	"testing"
)

func TestWordWrap(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWidth int
		want     []string
	}{
		{"empty", "", 10, nil},
		{"fits one line", "hello world", 11, []string{"hello world"}},
		{"breaks at word", "hello world", 10, []string{"hello", "world"}},
		{"greedy packing", "a bb ccc dddd", 6, []string{"a bb", "ccc", "dddd"}},
		{"long word force break", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"cjk break at cluster", "你好世界", 5, []string{"你好", "世界"}},
		{"hard newline", "one\ntwo", 10, []string{"one", "two"}},
		{"blank line preserved", "one\n\ntwo", 10, []string{"one", "", "two"}},
		{"whitespace only", "   ", 5, []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WordWrap(tt.text, tt.maxWidth)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestWordWrapWidthProperty(t *testing.T) {
	samples := []string{
		"the quick brown fox jumps over the lazy dog",
		"你好世界 hello 你好",
		"supercalifragilisticexpialidocious",
		"short 👨‍👩‍👧‍👦 emoji words",
	}
	for _, s := range samples {
		for width := 1; width <= 12; width++ {
			for _, line := range WordWrap(s, width) {
				w := DisplayWidth(line)
				if w > width {
					// The only permitted overflow is a single cluster wider
					// than the whole line
					if Count(line) == 1 {
						continue
					}
					t.Errorf("Expected line %q width <= %d, got %d", line, width, w)
				}
			}
		}
	}
}

func TestWordWrapUnbreakableCluster(t *testing.T) {
	// A wide cluster with maxWidth 1 must land on its own line unmodified
	lines := WordWrap("a你b", 1)
	want := []string{"a", "你", "b"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("Expected %q, got %q", want, lines)
	}
}

func TestWordWrapPure(t *testing.T) {
	text := "hello wide 你好 world"
	first := WordWrap(text, 7)
	second := WordWrap(text, 7)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected identical output across calls, got %q then %q", first, second)
	}
}
