package markup

import (
	"strings"
	"testing"
)

func TestRenderHTML(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bold",
			input: "a **word** here",
			want:  "a <strong>word</strong> here",
		},
		{
			name:  "italic",
			input: "a *word* here",
			want:  "a <em>word</em> here",
		},
		{
			name:  "link",
			input: "see [docs](https://example.com/a?b=1)",
			want:  `see <a href="https://example.com/a?b=1" target="_blank" rel="noopener noreferrer">docs</a>`,
		},
		{
			name:  "all three combined",
			input: "**bold** and *italic* and [link](http://x)",
			want:  `<strong>bold</strong> and <em>italic</em> and <a href="http://x" target="_blank" rel="noopener noreferrer">link</a>`,
		},
		{
			name:  "html is escaped",
			input: `<script>alert("hi")</script>`,
			want:  "&lt;script&gt;alert(&#34;hi&#34;)&lt;/script&gt;",
		},
		{
			name:  "html inside markers is escaped",
			input: "**<b>bold</b>**",
			want:  "<strong>&lt;b&gt;bold&lt;/b&gt;</strong>",
		},
		{
			name:  "attribute breakout in url is escaped",
			input: `[x](" onclick="steal())`,
			want:  `<a href="&#34; onclick=&#34;steal(" target="_blank" rel="noopener noreferrer">x</a>)`,
		},
		{
			name:  "unterminated bold is literal",
			input: "**dangling",
			want:  "**dangling",
		},
		{
			name:  "unterminated italic is literal",
			input: "*dangling",
			want:  "*dangling",
		},
		{
			name:  "empty bold is literal",
			input: "****",
			want:  "****",
		},
		{
			name:  "bracket without parens is literal",
			input: "array[0] stays",
			want:  "array[0] stays",
		},
		{
			name:  "heading syntax is not markup",
			input: "# not a heading",
			want:  "# not a heading",
		},
		{
			name:  "list syntax is not markup",
			input: "- item one\n- item two",
			want:  "- item one\n- item two",
		},
		{
			name:  "code fence is not markup",
			input: "```code```",
			want:  "```code```",
		},
		{
			name:  "adjacent asterisks pair as bold not italic",
			input: "**x** *y*",
			want:  "<strong>x</strong> <em>y</em>",
		},
		{
			name:  "multibyte text passes through",
			input: "**améliorée** déjà",
			want:  "<strong>améliorée</strong> déjà",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := RenderHTML(tc.input)
			if got != tc.want {
				t.Errorf("RenderHTML(%q)\n got %q\nwant %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestRenderHTML_OnlyAllowedTags(t *testing.T) {
	inputs := []string{
		"**bold** and *italic* and [link](http://x)",
		"<img src=x onerror=alert(1)>",
		"[<iframe>](javascript:alert(1))",
		"plain text with ** stray * markers [",
	}
	for _, input := range inputs {
		got := RenderHTML(input)
		stripped := got
		for _, allowed := range []string{"<strong>", "</strong>", "<em>", "</em>", "</a>"} {
			stripped = strings.ReplaceAll(stripped, allowed, "")
		}
		for {
			start := strings.Index(stripped, `<a href="`)
			if start < 0 {
				break
			}
			end := strings.Index(stripped[start:], ">")
			if end < 0 {
				t.Fatalf("unclosed anchor tag in %q", got)
			}
			stripped = stripped[:start] + stripped[start+end+1:]
		}
		if strings.ContainsAny(stripped, "<>") {
			t.Errorf("RenderHTML(%q) leaked raw angle brackets: %q", input, got)
		}
	}
}

func TestRenderPlain(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "markers stripped",
			input: "**bold** and *italic*",
			want:  "bold and italic",
		},
		{
			name:  "link keeps its target",
			input: "see [docs](https://example.com)",
			want:  "see docs (https://example.com)",
		},
		{
			name:  "unterminated marker survives",
			input: "*dangling",
			want:  "*dangling",
		},
		{
			name:  "plain text untouched",
			input: "nothing special here",
			want:  "nothing special here",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := RenderPlain(tc.input)
			if got != tc.want {
				t.Errorf("RenderPlain(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestRenderPlain_Idempotent(t *testing.T) {
	inputs := []string{
		"**bold** and *italic* and [link](http://x)",
		"no markup at all",
		"**status** changed from *open* to *closed*",
	}
	for _, input := range inputs {
		once := RenderPlain(input)
		twice := RenderPlain(once)
		if once != twice {
			t.Errorf("stripping %q is not idempotent: %q != %q", input, once, twice)
		}
	}
}
