package grapheme

import "testing"

func TestTruncateToWidth(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWidth int
		ellipsis string
		want     string
	}{
		{"fits unchanged", "Hello", 10, "...", "Hello"},
		{"exact fit", "Hello", 5, "...", "Hello"},
		{"basic", "Hello, World!", 8, "...", "Hello..."},
		{"cjk boundary", "你好世界", 5, "…", "你好…"},
		{"never splits wide cluster", "你好世界", 4, "…", "你…"},
		{"zwj kept whole", "👨‍👩‍👧‍👦xyz", 4, "…", "👨‍👩‍👧‍👦x…"},
		{"width smaller than ellipsis", "Hello", 2, "...", ".."},
		{"zero width", "Hello", 0, "...", ""},
		{"empty text", "", 5, "...", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateToWidth(tt.text, tt.maxWidth, tt.ellipsis)
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
			if w := DisplayWidth(got); w > tt.maxWidth {
				t.Errorf("Expected result width <= %d, got %d", tt.maxWidth, w)
			}
		})
	}
}

func TestTruncateWidthProperty(t *testing.T) {
	samples := []string{"Hello, World!", "你好世界你好", "👨‍👩‍👧‍👦👍😀", "ééé text"}
	for _, s := range samples {
		for width := 0; width <= 12; width++ {
			got := TruncateToWidth(s, width, "...")
			if w := DisplayWidth(got); w > width {
				t.Errorf("Expected TruncateToWidth(%q, %d) width <= %d, got %d (%q)", s, width, width, w, got)
			}
		}
	}
}
