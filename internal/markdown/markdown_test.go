package markdown

import "testing"

func TestToHTMLIdempotent(t *testing.T) {
	inputs := []string{
		"<h1>Hi</h1><p>Body text.</p>",
		"<p>Just a paragraph</p>",
		"some text with <strong>bold</strong> inline",
	}
	for _, in := range inputs {
		if got := ToHTML(in); got != in {
			t.Errorf("ToHTML(%q) = %q, want unchanged", in, got)
		}
		// applying twice must also be stable
		if got := ToHTML(ToHTML(in)); got != ToHTML(in) {
			t.Errorf("ToHTML not idempotent for %q", in)
		}
	}
}

func TestToHTMLHeaders(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"# Hi\n\nBody text.", "<h1>Hi</h1><p>Body text.</p>"},
		{"## Section", "<h2>Section</h2>"},
		{"### Sub", "<h3>Sub</h3>"},
	}
	for _, tt := range tests {
		if got := ToHTML(tt.input); got != tt.want {
			t.Errorf("ToHTML(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestToHTMLInline(t *testing.T) {
	got := ToHTML("This is **bold** and *italic* text.")
	want := "<p>This is <strong>bold</strong> and <em>italic</em> text.</p>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestToHTMLLists(t *testing.T) {
	got := ToHTML("- one\n- two\n- three")
	want := "<ul><li>one</li><li>two</li><li>three</li></ul>"
	if got != want {
		t.Errorf("unordered list: got %q, want %q", got, want)
	}

	got = ToHTML("1. first\n2. second")
	want = "<ol><li>first</li><li>second</li></ol>"
	if got != want {
		t.Errorf("ordered list: got %q, want %q", got, want)
	}
}

func TestToHTMLParagraphs(t *testing.T) {
	got := ToHTML("First block.\n\nSecond block.")
	want := "<p>First block.</p><p>Second block.</p>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestToHTMLWrapsBareText(t *testing.T) {
	got := ToHTML("just one line")
	want := "<p>just one line</p>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
