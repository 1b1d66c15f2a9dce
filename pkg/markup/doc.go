// Package markup builds single HTML elements as strings.
//
// An Element has a Tag, an ordered table of attributes and optional content.
// Attributes are multi-valued: each value is a space-separated token list in
// which no token repeats, which gives "class" its usual list semantics.
//
//	link, err := markup.New(markup.TagA, "Next")
//	if err != nil {
//	    return err
//	}
//	link.AddAttr(markup.AttrHref, "/posts?page=3").AddClass("next")
//	fmt.Println(link) // <a href="/posts?page=3" class="next">Next</a>
//
// Elements without content render self-closing:
//
//	markup.NewVoid(markup.TagImg).AddAttr(markup.AttrSrc, "logo.png")
//	// <img src="logo.png"/>
//
// Neither content nor attribute values are escaped. Content is an opaque,
// already-rendered string, so callers passing user input must escape it
// first (html.EscapeString or html/template).
//
// Tag and Attribute are closed enumerations. Only catalog members can be
// rendered, and names are compared exactly.
package markup
