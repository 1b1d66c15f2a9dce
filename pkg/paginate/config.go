package paginate

import (
	"math"
	"strconv"
	"strings"
)

// IDPlaceholder is replaced by the zero-based page index in LinkTemplate.
const IDPlaceholder = "__id__"

// Defaults used by DefaultConfig.
const (
	DefaultItemsPerPage      = 10
	DefaultDisplayWindowSize = 10
	DefaultLinkTemplate      = "#"
	DefaultPrevText          = "Prev"
	DefaultNextText          = "Next"
	DefaultEllipsisText      = "..."
)

// Upper bounds for values taken from untrusted input. Items does work
// proportional to DisplayWindowSize and EdgeEntries, so both are capped.
const (
	MaxDisplayWindowSize = 1000
	MaxEdgeEntries       = 1000
	MaxPages             = 1_000_000
)

// Default decoration classes.
const (
	DefaultCurrentClass = "current"
	DefaultPrevClass    = "prev"
	DefaultNextClass    = "next"
)

// Classes names the decoration classes added to items. Empty Current, Prev
// and Next fall back to the defaults above. Ellipsis has no default, so
// ellipsis spans carry no class unless one is set.
type Classes struct {
	Current  string `json:"current,omitempty"`
	Prev     string `json:"prev,omitempty"`
	Next     string `json:"next,omitempty"`
	Ellipsis string `json:"ellipsis,omitempty"`
}

func (c Classes) current() string { return orDefault(c.Current, DefaultCurrentClass) }
func (c Classes) prev() string    { return orDefault(c.Prev, DefaultPrevClass) }
func (c Classes) next() string    { return orDefault(c.Next, DefaultNextClass) }

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// Config holds the pagination parameters. Start from DefaultConfig; the zero
// value has no link template and no Prev/Next text.
type Config struct {
	// ItemsPerPage is the page size. Values below 1 collapse the control
	// to a single page.
	ItemsPerPage int `json:"itemsPerPage"`

	// DisplayWindowSize is how many numbered pages to show around the
	// current page.
	DisplayWindowSize int `json:"displayWindowSize"`

	// CurrentPage is the zero-based index of the current page.
	CurrentPage int `json:"currentPage"`

	// EdgeEntries is how many pages stay pinned at each end regardless of
	// where the window is.
	EdgeEntries int `json:"edgeEntries"`

	// LinkTemplate is the href of page links; IDPlaceholder is replaced by
	// the page index.
	LinkTemplate string `json:"linkTemplate"`

	PrevText     string `json:"prevText"`
	NextText     string `json:"nextText"`
	EllipsisText string `json:"ellipsisText"`

	// PrevAlwaysShown keeps the Prev control on the first page.
	PrevAlwaysShown bool `json:"prevAlwaysShown"`

	// NextAlwaysShown keeps the Next control on the last page.
	NextAlwaysShown bool `json:"nextAlwaysShown"`

	// TotalItems is the number of items being paginated. Values below 1
	// count as 1.
	TotalItems int `json:"totalItems"`

	Classes Classes `json:"classes,omitempty"`
}

// DefaultConfig returns a Config with the default settings.
func DefaultConfig() Config {
	return Config{
		ItemsPerPage:      DefaultItemsPerPage,
		DisplayWindowSize: DefaultDisplayWindowSize,
		LinkTemplate:      DefaultLinkTemplate,
		PrevText:          DefaultPrevText,
		NextText:          DefaultNextText,
		EllipsisText:      DefaultEllipsisText,
		PrevAlwaysShown:   true,
		NextAlwaysShown:   true,
		TotalItems:        1,
	}
}

// SetTotalItems sets TotalItems from an optional count. Nil and negative
// counts become 1.
func (c *Config) SetTotalItems(n *int) {
	if n == nil || *n < 0 {
		c.TotalItems = 1
		return
	}
	c.TotalItems = *n
}

func (c *Config) totalItems() int {
	if c.TotalItems < 1 {
		return 1
	}
	return c.TotalItems
}

// NumPages returns ceil(TotalItems / ItemsPerPage), at least 1.
func (c *Config) NumPages() int {
	if c.ItemsPerPage < 1 {
		return 1
	}
	return (c.totalItems()-1)/c.ItemsPerPage + 1
}

// HalfWindow returns ceil(DisplayWindowSize / 2).
func (c *Config) HalfWindow() int {
	return int(math.Ceil(float64(c.DisplayWindowSize) / 2))
}

// Window is a half-open range [Start, End) of page indices.
type Window struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of pages in the window, 0 if it is empty.
func (w Window) Len() int {
	if w.End < w.Start {
		return 0
	}
	return w.End - w.Start
}

// Contains reports whether page lies in the window.
func (w Window) Contains(page int) bool {
	return page >= w.Start && page < w.End
}

// Interval returns the window of pages shown around CurrentPage.
func (c *Config) Interval() Window {
	np := c.NumPages()
	half := c.HalfWindow()
	if c.CurrentPage > half {
		return Window{
			Start: max(min(c.CurrentPage-half, np-c.DisplayWindowSize), 0),
			End:   min(c.CurrentPage+half, np),
		}
	}
	return Window{
		Start: 0,
		End:   min(c.DisplayWindowSize, np),
	}
}

// Link returns LinkTemplate with IDPlaceholder replaced by page.
func (c *Config) Link(page int) string {
	return strings.ReplaceAll(c.LinkTemplate, IDPlaceholder, strconv.Itoa(page))
}

// clamp maps page into [0, np-1].
func clamp(page, np int) int {
	if page < 0 {
		return 0
	}
	if page >= np {
		return np - 1
	}
	return page
}
