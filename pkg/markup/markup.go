// Package markup renders the restricted note-markup subset: **bold**,
// *italic* and [text](url). Everything else is opaque text. The grammar is
// closed on purpose; recognized constructs bound the HTML that can ever be
// emitted.
package markup

import (
	"html"
	"strings"
)

// RenderHTML converts content to sanitized HTML. Only <strong>, <em> and
// <a> are ever produced; all other input is escaped. Anchors open in a new
// browsing context without an opener reference.
func RenderHTML(content string) string {
	var sb strings.Builder
	render(content, &sb, htmlEmitter{})
	return sb.String()
}

// RenderPlain strips the markers: bold/italic yield the inner text, a link
// yields "text (url)". Stripping is idempotent. Used by the export path.
func RenderPlain(content string) string {
	var sb strings.Builder
	render(content, &sb, plainEmitter{})
	return sb.String()
}

type emitter interface {
	Bold(sb *strings.Builder, inner string)
	Italic(sb *strings.Builder, inner string)
	Link(sb *strings.Builder, text, url string)
	Text(sb *strings.Builder, raw string)
}

// render is a single forward pass. At each position the three patterns are
// tried in order (bold before italic so ** is never consumed as two italic
// markers); on no match one byte is emitted verbatim. Multi-byte runes pass
// through untouched because the markers are all ASCII.
func render(s string, sb *strings.Builder, e emitter) {
	i := 0
	for i < len(s) {
		if strings.HasPrefix(s[i:], "**") {
			if end := strings.Index(s[i+2:], "**"); end > 0 {
				e.Bold(sb, s[i+2:i+2+end])
				i += end + 4
				continue
			}
		}
		if s[i] == '*' {
			if end := strings.IndexByte(s[i+1:], '*'); end > 0 {
				e.Italic(sb, s[i+1:i+1+end])
				i += end + 2
				continue
			}
		}
		if s[i] == '[' {
			if text, url, consumed, ok := matchLink(s[i:]); ok {
				e.Link(sb, text, url)
				i += consumed
				continue
			}
		}
		e.Text(sb, s[i:i+1])
		i++
	}
}

// matchLink recognizes [text](url) at the start of s. The url is an opaque
// address string; scheme policy belongs to callers.
func matchLink(s string) (text, url string, consumed int, ok bool) {
	closeBracket := strings.IndexByte(s, ']')
	if closeBracket < 1 {
		return "", "", 0, false
	}
	rest := s[closeBracket+1:]
	if len(rest) < 2 || rest[0] != '(' {
		return "", "", 0, false
	}
	closeParen := strings.IndexByte(rest, ')')
	if closeParen < 0 {
		return "", "", 0, false
	}
	text = s[1:closeBracket]
	url = rest[1:closeParen]
	consumed = closeBracket + 1 + closeParen + 1
	return text, url, consumed, true
}

type htmlEmitter struct{}

func (htmlEmitter) Bold(sb *strings.Builder, inner string) {
	sb.WriteString("<strong>")
	sb.WriteString(html.EscapeString(inner))
	sb.WriteString("</strong>")
}

func (htmlEmitter) Italic(sb *strings.Builder, inner string) {
	sb.WriteString("<em>")
	sb.WriteString(html.EscapeString(inner))
	sb.WriteString("</em>")
}

func (htmlEmitter) Link(sb *strings.Builder, text, url string) {
	sb.WriteString(`<a href="`)
	sb.WriteString(html.EscapeString(url))
	sb.WriteString(`" target="_blank" rel="noopener noreferrer">`)
	sb.WriteString(html.EscapeString(text))
	sb.WriteString("</a>")
}

func (htmlEmitter) Text(sb *strings.Builder, raw string) {
	sb.WriteString(html.EscapeString(raw))
}

type plainEmitter struct{}

func (plainEmitter) Bold(sb *strings.Builder, inner string) {
	sb.WriteString(inner)
}

func (plainEmitter) Italic(sb *strings.Builder, inner string) {
	sb.WriteString(inner)
}

func (plainEmitter) Link(sb *strings.Builder, text, url string) {
	sb.WriteString(text)
	sb.WriteString(" (")
	sb.WriteString(url)
	sb.WriteString(")")
}

func (plainEmitter) Text(sb *strings.Builder, raw string) {
	sb.WriteString(raw)
}
