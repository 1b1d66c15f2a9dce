package markup

import (
	"html/template"
	"io"
	"strings"

	"github.com/vango-dev/pager/internal/errors"
)

// ErrEmptyContent is returned by New when content is empty.
// Match it with errors.Is.
var ErrEmptyContent = errors.New("E001")

// tokenSep separates tokens inside one attribute value.
const tokenSep = " "

type attrEntry struct {
	key   Attribute
	value string
}

// Element is one HTML element. It is not safe for concurrent use; each
// Element belongs to the code that built it.
type Element struct {
	tag     Tag
	attrs   []attrEntry
	content string
}

// New returns an element that renders as <tag>content</tag>.
// Empty content is rejected; use NewVoid for elements without content.
func New(tag Tag, content string) (*Element, error) {
	if content == "" {
		return nil, errors.New("E001").WithField(tag.String())
	}
	return &Element{tag: tag, content: content}, nil
}

// MustNew is like New but panics if content is empty.
func MustNew(tag Tag, content string) *Element {
	e, err := New(tag, content)
	if err != nil {
		panic(err)
	}
	return e
}

// NewVoid returns an element without content, rendered as <tag/>.
func NewVoid(tag Tag) *Element {
	return &Element{tag: tag}
}

// Tag returns the element's tag.
func (e *Element) Tag() Tag {
	return e.tag
}

// Content returns the element's content, empty for void elements.
func (e *Element) Content() string {
	return e.content
}

// Len returns the number of attributes set.
func (e *Element) Len() int {
	return len(e.attrs)
}

// Attr returns the value of attr and whether it is set.
func (e *Element) Attr(attr Attribute) (string, bool) {
	if i := e.index(attr); i >= 0 {
		return e.attrs[i].value, true
	}
	return "", false
}

// Tokens returns the space-separated tokens of attr in order.
func (e *Element) Tokens(attr Attribute) []string {
	v, _ := e.Attr(attr)
	return strings.Fields(v)
}

// HasToken reports whether token is one of attr's tokens.
func (e *Element) HasToken(attr Attribute, token string) bool {
	for _, t := range e.Tokens(attr) {
		if t == token {
			return true
		}
	}
	return false
}

// AddAttr adds value to attr's token list. Tokens already present are
// skipped, so adding the same value twice is the same as adding it once.
// An empty value is a no-op. A new attribute goes after the existing ones.
func (e *Element) AddAttr(attr Attribute, value string) *Element {
	add := strings.Fields(value)
	if len(add) == 0 {
		return e
	}
	i := e.index(attr)
	if i < 0 {
		e.attrs = append(e.attrs, attrEntry{key: attr, value: strings.Join(dedupe(add), tokenSep)})
		return e
	}
	tokens := strings.Fields(e.attrs[i].value)
	for _, v := range add {
		if !contains(tokens, v) {
			tokens = append(tokens, v)
		}
	}
	e.attrs[i].value = strings.Join(tokens, tokenSep)
	return e
}

// SetAttr replaces attr's value, keeping its position if already set.
// An empty value removes the attribute.
func (e *Element) SetAttr(attr Attribute, value string) *Element {
	tokens := dedupe(strings.Fields(value))
	if len(tokens) == 0 {
		return e.RemoveAttr(attr)
	}
	if i := e.index(attr); i >= 0 {
		e.attrs[i].value = strings.Join(tokens, tokenSep)
		return e
	}
	e.attrs = append(e.attrs, attrEntry{key: attr, value: strings.Join(tokens, tokenSep)})
	return e
}

// RemoveAttr deletes attr and all its tokens.
func (e *Element) RemoveAttr(attr Attribute) *Element {
	if i := e.index(attr); i >= 0 {
		e.attrs = append(e.attrs[:i], e.attrs[i+1:]...)
	}
	return e
}

// RemoveAttrValue removes the first occurrence of value from attr's tokens.
// When no token is left the attribute itself is removed. A value that is
// not present leaves attr unchanged.
func (e *Element) RemoveAttrValue(attr Attribute, value string) *Element {
	i := e.index(attr)
	if i < 0 || strings.TrimSpace(e.attrs[i].value) == "" {
		return e
	}
	tokens := strings.Fields(e.attrs[i].value)
	for _, v := range strings.Fields(value) {
		tokens = removeFirst(tokens, v)
	}
	if len(tokens) == 0 {
		return e.RemoveAttr(attr)
	}
	e.attrs[i].value = strings.Join(tokens, tokenSep)
	return e
}

// AddClass is shorthand for AddAttr(AttrClass, class).
func (e *Element) AddClass(class string) *Element {
	return e.AddAttr(AttrClass, class)
}

// RemoveClass is shorthand for RemoveAttrValue(AttrClass, class).
func (e *Element) RemoveClass(class string) *Element {
	return e.RemoveAttrValue(AttrClass, class)
}

// String renders the element.
func (e *Element) String() string {
	var b strings.Builder
	e.render(&b)
	return b.String()
}

// HTML renders the element for use in html/template. The output is not
// escaped, see the package documentation.
func (e *Element) HTML() template.HTML {
	return template.HTML(e.String())
}

// WriteTo writes the rendered element to w.
func (e *Element) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, e.String())
	return int64(n), err
}

func (e *Element) render(b *strings.Builder) {
	name := e.tag.String()
	b.WriteByte('<')
	b.WriteString(name)
	for _, a := range e.attrs {
		b.WriteByte(' ')
		b.WriteString(a.key.String())
		b.WriteString(`="`)
		b.WriteString(a.value)
		b.WriteByte('"')
	}
	if e.content == "" {
		b.WriteString("/>")
		return
	}
	b.WriteByte('>')
	b.WriteString(e.content)
	b.WriteString("</")
	b.WriteString(name)
	b.WriteByte('>')
}

func (e *Element) index(attr Attribute) int {
	for i, a := range e.attrs {
		if a.key == attr {
			return i
		}
	}
	return -1
}

func contains(tokens []string, v string) bool {
	for _, t := range tokens {
		if t == v {
			return true
		}
	}
	return false
}

func dedupe(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if !contains(out, t) {
			out = append(out, t)
		}
	}
	return out
}

func removeFirst(tokens []string, v string) []string {
	for i, t := range tokens {
		if t == v {
			return append(tokens[:i], tokens[i+1:]...)
		}
	}
	return tokens
}
