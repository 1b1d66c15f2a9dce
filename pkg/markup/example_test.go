package markup_test

import (
	"fmt"

	"github.com/vango-dev/pager/pkg/markup"
)

func ExampleElement_AddAttr() {
	link := markup.MustNew(markup.TagA, "Next").
		AddAttr(markup.AttrHref, "/posts?page=3").
		AddClass("next").
		AddClass("next")
	fmt.Println(link)

	img := markup.NewVoid(markup.TagImg).AddAttr(markup.AttrSrc, "logo.png")
	fmt.Println(img)
	// Output:
	// <a href="/posts?page=3" class="next">Next</a>
	// <img src="logo.png"/>
}
