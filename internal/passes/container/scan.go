// Package container locates the text content of labeled span containers
// such as <span class="pill">...</span> inside raw HTML.
//
// The scan uses the golang.org/x/net/html tokenizer and reports byte offsets
// into the original text, so callers can splice replacements without
// re-serialising (and so altering) the surrounding markup.
package container

import (
	"strings"

	"golang.org/x/net/html"
)

// Span is the inner text of one labeled container.
type Span struct {
	// Start and End are byte offsets of the inner text in the document.
	Start int
	End   int

	// Text is the raw inner text, entities left undecoded.
	Text string
}

type state int

const (
	idle state = iota
	opened
	filled
)

// Scan returns every <span> whose class attribute equals label and whose
// only content is a single non-empty text node, in document order.
func Scan(text, label string) []Span {
	var (
		spans  []Span
		cur    Span
		st     = idle
		offset = 0
	)

	z := html.NewTokenizer(strings.NewReader(text))
	for {
		tt := z.Next()
		start := offset
		offset += len(z.Raw())

		switch tt {
		case html.ErrorToken:
			return spans

		case html.StartTagToken:
			st = idle
			name, hasAttr := z.TagName()
			if string(name) == "span" && hasAttr && hasClass(z, label) {
				st = opened
			}

		case html.TextToken:
			if st == opened && offset > start {
				cur = Span{Start: start, End: offset, Text: text[start:offset]}
				st = filled
			} else {
				st = idle
			}

		case html.EndTagToken:
			if st == filled {
				if name, _ := z.TagName(); string(name) == "span" {
					spans = append(spans, cur)
				}
			}
			st = idle

		default:
			st = idle
		}
	}
}

// hasClass reports whether the current tag's class attribute equals label.
func hasClass(z *html.Tokenizer, label string) bool {
	for {
		key, val, more := z.TagAttr()
		if string(key) == "class" {
			return string(val) == label
		}
		if !more {
			return false
		}
	}
}

// Rewrite calls replace for every labeled span and splices the returned
// text over the span's inner text when replace reports true. It returns the
// new text and the number of replacements.
func Rewrite(text, label string, replace func(inner string) (string, bool)) (string, int) {
	spans := Scan(text, label)
	if len(spans) == 0 {
		return text, 0
	}

	var b strings.Builder
	last, n := 0, 0
	for _, s := range spans {
		out, ok := replace(s.Text)
		if !ok {
			continue
		}
		if n == 0 {
			b.Grow(len(text))
		}
		b.WriteString(text[last:s.Start])
		b.WriteString(out)
		last = s.End
		n++
	}

	if n == 0 {
		return text, 0
	}
	b.WriteString(text[last:])
	return b.String(), n
}
