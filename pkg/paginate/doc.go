// Package paginate computes and renders numbered pagination controls.
//
// Given a total item count, a page size, the current page and a window size,
// a Config decides which page numbers are shown directly, which are pinned
// at the edges, where ellipses go, and whether Prev/Next controls appear.
// The result is one linear sequence of Items, which Render turns into
// markup through package markup:
//
//	cfg := paginate.DefaultConfig()
//	cfg.TotalItems = 1000
//	cfg.ItemsPerPage = 5
//	cfg.CurrentPage = 10
//	cfg.DisplayWindowSize = 5
//	cfg.EdgeEntries = 1
//	cfg.LinkTemplate = "/posts?page=__id__"
//	html := cfg.Render()
//
// Page indices are zero-based; the text shown for a page is its one-based
// number. The current page renders as a span with the "current" class and
// every other page as an anchor whose href is LinkTemplate with __id__
// replaced by the page index.
//
// # Window
//
// The window is the half-open range [Start, End) of pages always shown
// without edge or ellipsis treatment. With half = ceil(DisplayWindowSize/2):
//
//	if CurrentPage > half:
//	    Start = max(min(CurrentPage-half, NumPages-DisplayWindowSize), 0)
//	    End   = min(CurrentPage+half, NumPages)
//	else:
//	    Start = 0
//	    End   = min(DisplayWindowSize, NumPages)
//
// Near the boundaries the window may be shorter than DisplayWindowSize.
//
// # Concurrency
//
// A Config is plain data owned by its caller. Rendering reads it and keeps no
// state, so concurrent requests should each build their own Config.
package paginate
