package paginate

import (
	"html/template"
	"io"
	"strings"

	"github.com/vango-dev/pager/pkg/markup"
)

// Render returns the control's markup: every Item rendered in order and
// concatenated without separators.
func (c *Config) Render() string {
	return RenderItems(c.Items())
}

// RenderItems concatenates the markup of items, for callers that already
// hold the sequence returned by Items.
func RenderItems(items []Item) string {
	var b strings.Builder
	for _, it := range items {
		b.WriteString(it.Element().String())
	}
	return b.String()
}

// WriteTo writes the rendered control to w.
func (c *Config) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, c.Render())
	return int64(n), err
}

// HTML returns Render as template.HTML. Texts are not escaped.
func (c *Config) HTML() template.HTML {
	return template.HTML(c.Render())
}

// Element converts the item to markup. The current page and ellipses become
// spans; every other item is an anchor.
func (it Item) Element() *markup.Element {
	var el *markup.Element
	if it.Current || it.Kind == KindEllipsis {
		el = element(markup.TagSpan, it.Text)
	} else {
		el = element(markup.TagA, it.Text).AddAttr(markup.AttrHref, it.Href)
	}
	for _, class := range it.Classes {
		el.AddClass(class)
	}
	return el
}

// element degrades to a void element when text is empty.
func element(tag markup.Tag, text string) *markup.Element {
	if text == "" {
		return markup.NewVoid(tag)
	}
	return markup.MustNew(tag, text)
}
