package format

import (
	"strings"
	"testing"
)

func TestLinkSafeURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "https://board.example/viewtopic?t=5", "https://board.example/viewtopic?t=5"},
		{"spaces", "https://board.example/my page", "https://board.example/my%20page"},
		{"parens", "https://board.example/a(b)c", "https://board.example/a%28b%29c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LinkSafeURL(tt.in); got != tt.want {
				t.Errorf("LinkSafeURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLinkSafeText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"brackets", "read [this] now", "read (this) now"},
		{"entities", "Tom &amp; Jerry &quot;live&quot;", `Tom & Jerry "live"`},
		{"both", "[a&lt;b]", "(a<b)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LinkSafeText(tt.in); got != tt.want {
				t.Errorf("LinkSafeText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripFormatting(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bbcode", "[b]bold[/b] and [i]italic[/i]", "bold and italic"},
		{"uid tags", "[b:3f2a]hi[/b:3f2a]", "hi"},
		{"entities", "fish &amp; chips", "fish & chips"},
		{"plain", "nothing to do", "nothing to do"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripFormatting(tt.in); got != tt.want {
				t.Errorf("StripFormatting(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripFormattingHTML(t *testing.T) {
	got := StripFormatting(`hello <b>world</b>`)
	if !strings.Contains(got, "hello") || !strings.Contains(got, "world") {
		t.Errorf("StripFormatting dropped content: %q", got)
	}
	if strings.ContainsAny(got, "<>") {
		t.Errorf("StripFormatting left markup: %q", got)
	}
}

func TestMakeLink(t *testing.T) {
	got := MakeLink("https://board.example/a b", "see [here]")
	want := "[see (here)](https://board.example/a%20b)"
	if got != want {
		t.Errorf("MakeLink = %q, want %q", got, want)
	}
}

func TestBuildPreview(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		length int
		want   string
	}{
		{"disabled", "anything", 0, ""},
		{"short", "short body", 20, "Preview: short body"},
		{"truncated", "Hello world, this is a long post body", 20, "Preview: Hello world, this i…"},
		{"strips markup", "[b]bold statement[/b]", 50, "Preview: bold statement"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildPreview(tt.raw, tt.length, "Preview: "); got != tt.want {
				t.Errorf("BuildPreview = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("abcdef", 6); got != "abcdef" {
		t.Errorf("Truncate exact length = %q", got)
	}
	if got := Truncate("abcdefg", 6); got != "abcde…" {
		t.Errorf("Truncate = %q, want %q", got, "abcde…")
	}
	// multi-byte runes count as one
	if got := Truncate("ééééé", 5); got != "ééééé" {
		t.Errorf("Truncate runes = %q", got)
	}
}

func TestLinks(t *testing.T) {
	l := NewLinks("https://board.example/")
	if got := l.ForumLink(7); got != "https://board.example/viewforum?f=7" {
		t.Errorf("ForumLink = %q", got)
	}
	if got := l.TopicLink(42); got != "https://board.example/viewtopic?t=42" {
		t.Errorf("TopicLink = %q", got)
	}
	if got := l.PostLink(42, 99); got != "https://board.example/viewtopic?t=42&p=99#p99" {
		t.Errorf("PostLink = %q", got)
	}
	if got := l.UserLink(3); got != "https://board.example/memberlist?mode=viewprofile&u=3" {
		t.Errorf("UserLink = %q", got)
	}
}
