package filter

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSummarize(t *testing.T) {
	t.Run("short text unchanged", func(t *testing.T) {
		got := Summarize("A short announcement.")
		if got != "A short announcement." {
			t.Errorf("Summarize = %q, want input unchanged", got)
		}
	})

	t.Run("exactly at the limit is not truncated", func(t *testing.T) {
		in := strings.Repeat("a", 300)
		got := Summarize(in)
		if got != in {
			t.Errorf("len(got) = %d, want 300 with no ellipsis", len(got))
		}
	})

	t.Run("over the limit is cut to 300 plus ellipsis", func(t *testing.T) {
		got := Summarize(strings.Repeat("a", 301))
		if utf8.RuneCountInString(got) != 303 {
			t.Errorf("rune count = %d, want 303", utf8.RuneCountInString(got))
		}
		if !strings.HasSuffix(got, "...") {
			t.Errorf("got %q, want trailing ellipsis", got[len(got)-10:])
		}
		if got[:300] != strings.Repeat("a", 300) {
			t.Error("first 300 characters should be preserved verbatim")
		}
	})

	t.Run("double application of short text is stable", func(t *testing.T) {
		in := "Already short."
		if got := Summarize(Summarize(in)); got != in {
			t.Errorf("Summarize(Summarize(%q)) = %q, want unchanged", in, got)
		}
	})

	t.Run("strips markup", func(t *testing.T) {
		got := Summarize("<p>Copilot <b>ships</b> today.</p>")
		if got != "Copilot ships today." {
			t.Errorf("Summarize = %q, want %q", got, "Copilot ships today.")
		}
	})

	t.Run("collapses whitespace", func(t *testing.T) {
		got := Summarize("<div>one\n\n  two\t three</div>")
		if got != "one two three" {
			t.Errorf("Summarize = %q, want %q", got, "one two three")
		}
	})

	t.Run("separates adjacent elements with a space", func(t *testing.T) {
		got := Summarize("<p>first</p><p>second</p>")
		if got != "first second" {
			t.Errorf("Summarize = %q, want %q", got, "first second")
		}
	})

	t.Run("decodes entities", func(t *testing.T) {
		got := Summarize("Q&amp;A session")
		if got != "Q&A session" {
			t.Errorf("Summarize = %q, want %q", got, "Q&A session")
		}
	})

	t.Run("counts runes not bytes", func(t *testing.T) {
		in := strings.Repeat("ü", 301)
		got := Summarize(in)
		if utf8.RuneCountInString(got) != 303 {
			t.Errorf("rune count = %d, want 303", utf8.RuneCountInString(got))
		}
	})

	t.Run("malformed markup degrades to text", func(t *testing.T) {
		got := Summarize("<p>unclosed <b>tag")
		if got != "unclosed tag" {
			t.Errorf("Summarize = %q, want %q", got, "unclosed tag")
		}
	})
}
