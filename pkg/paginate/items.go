package paginate

import (
	"fmt"
	"strconv"
)

// Kind classifies an Item.
type Kind uint8

const (
	KindPage Kind = iota
	KindPrev
	KindNext
	KindEllipsis
)

var kindNames = [...]string{
	KindPage:     "page",
	KindPrev:     "prev",
	KindNext:     "next",
	KindEllipsis: "ellipsis",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// MarshalText encodes the kind as its name.
func (k Kind) MarshalText() ([]byte, error) {
	if int(k) >= len(kindNames) {
		return nil, fmt.Errorf("paginate: invalid kind %d", k)
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText decodes a kind name.
func (k *Kind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if name == string(text) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("paginate: unknown kind %q", text)
}

// Item is one entry of the rendered control.
type Item struct {
	Kind Kind `json:"kind"`

	// Index is the clamped target page, or -1 for ellipses.
	Index int `json:"index"`

	Text string `json:"text"`

	// Href is empty for the current page and for ellipses.
	Href string `json:"href,omitempty"`

	// Current marks the item pointing at the current page.
	Current bool `json:"current,omitempty"`

	// Classes are the decoration classes in the order they are applied.
	Classes []string `json:"classes,omitempty"`
}

// Label selects the text and decoration of a page item: Plain shows the
// page number, Override replaces the text and adds a class.
type Label struct {
	override bool
	text     string
	class    string
}

// Plain labels an item with its one-based page number.
var Plain = Label{}

// Override labels an item with text and adds class to its decoration.
func Override(text, class string) Label {
	return Label{override: true, text: text, class: class}
}

// Items returns the control as a linear sequence: Prev, leading edge pages,
// ellipsis, window pages, ellipsis, trailing edge pages, Next. Each part is
// present only when its conditions hold.
func (c *Config) Items() []Item {
	np := c.NumPages()
	win := c.Interval()
	items := make([]Item, 0, win.Len()+2*min(max(c.EdgeEntries, 0), np)+4)

	if c.PrevText != "" && (c.CurrentPage > 0 || c.PrevAlwaysShown) {
		items = append(items, c.item(KindPrev, c.CurrentPage-1, np, Override(c.PrevText, c.Classes.prev())))
	}

	if win.Start > 0 && c.EdgeEntries > 0 {
		end := min(c.EdgeEntries, win.Start)
		for i := 0; i < end; i++ {
			items = append(items, c.item(KindPage, i, np, Plain))
		}
		if c.EdgeEntries < win.Start && c.EllipsisText != "" {
			items = append(items, c.ellipsis())
		}
	}

	for i := win.Start; i < win.End; i++ {
		items = append(items, c.item(KindPage, i, np, Plain))
	}

	if win.End < np && c.EdgeEntries > 0 {
		if np-c.EdgeEntries > win.End && c.EllipsisText != "" {
			items = append(items, c.ellipsis())
		}
		for i := max(np-c.EdgeEntries, win.End); i < np; i++ {
			items = append(items, c.item(KindPage, i, np, Plain))
		}
	}

	if c.NextText != "" && (c.CurrentPage < np-1 || c.NextAlwaysShown) {
		items = append(items, c.item(KindNext, c.CurrentPage+1, np, Override(c.NextText, c.Classes.next())))
	}

	return items
}

// item builds a single page entry. page is clamped into [0, np-1] first.
func (c *Config) item(kind Kind, page, np int, label Label) Item {
	page = clamp(page, np)
	it := Item{Kind: kind, Index: page, Text: strconv.Itoa(page + 1)}
	if label.override {
		it.Text = label.text
	}
	if page == c.CurrentPage {
		it.Current = true
		it.Classes = append(it.Classes, c.Classes.current())
	} else {
		it.Href = c.Link(page)
	}
	if label.override && label.class != "" && !hasClass(it.Classes, label.class) {
		it.Classes = append(it.Classes, label.class)
	}
	return it
}

func (c *Config) ellipsis() Item {
	it := Item{Kind: KindEllipsis, Index: -1, Text: c.EllipsisText}
	if c.Classes.Ellipsis != "" {
		it.Classes = []string{c.Classes.Ellipsis}
	}
	return it
}

func hasClass(classes []string, class string) bool {
	for _, c := range classes {
		if c == class {
			return true
		}
	}
	return false
}
