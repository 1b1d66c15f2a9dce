package markup

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestNewRejectsEmptyContent(t *testing.T) {
	el, err := New(TagSpan, "")
	if err == nil {
		t.Fatal("expected error for empty content")
	}
	if el != nil {
		t.Errorf("element = %v, want nil", el)
	}
	if !errors.Is(err, ErrEmptyContent) {
		t.Errorf("error = %v, want ErrEmptyContent", err)
	}
}

func TestMustNewPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNew should panic on empty content")
		}
	}()
	MustNew(TagA, "")
}

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		el   *Element
		want string
	}{
		{
			name: "content without attributes",
			el:   MustNew(TagSpan, "..."),
			want: `<span>...</span>`,
		},
		{
			name: "content with class",
			el:   MustNew(TagSpan, "3").AddClass("current"),
			want: `<span class="current">3</span>`,
		},
		{
			name: "void element",
			el:   NewVoid(TagImg).AddAttr(AttrSrc, "logo.png"),
			want: `<img src="logo.png"/>`,
		},
		{
			name: "void element without attributes",
			el:   NewVoid(TagBr),
			want: `<br/>`,
		},
		{
			name: "attribute insertion order",
			el: MustNew(TagA, "Next").
				AddAttr(AttrHref, "#").
				AddAttr(AttrClass, "next").
				AddAttr(AttrTitle, "next page"),
			want: `<a href="#" class="next" title="next page">Next</a>`,
		},
		{
			name: "content is not escaped",
			el:   MustNew(TagDiv, "<b>bold</b>"),
			want: `<div><b>bold</b></div>`,
		},
		{
			name: "hyphenated attribute",
			el:   NewVoid(TagMeta).AddAttr(AttrHTTPEquiv, "refresh").AddAttr(AttrContent, "5"),
			want: `<meta http-equiv="refresh" content="5"/>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.el.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFluentAttributeSequence(t *testing.T) {
	el := MustNew(TagA, "link").AddAttr(AttrClass, "cur2rent").AddAttr(AttrClass, "current")
	el.AddAttr(AttrID, "id-1")
	el.RemoveAttr(AttrID)
	el.RemoveAttrValue(AttrClass, "current")
	el.RemoveAttrValue(AttrClass, "cc")
	el.AddAttr(AttrAction, "cccc")

	want := `<a class="cur2rent" action="cccc">link</a>`
	if got := el.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestAddAttrIdempotent(t *testing.T) {
	values := []string{"current", "prev", "a b", "x"}
	for _, attr := range []Attribute{AttrClass, AttrRel, AttrHref} {
		for _, v := range values {
			once := NewVoid(TagA).AddAttr(attr, "base").AddAttr(attr, v)
			twice := NewVoid(TagA).AddAttr(attr, "base").AddAttr(attr, v).AddAttr(attr, v)
			if once.String() != twice.String() {
				t.Errorf("%s %q: once %q, twice %q", attr, v, once, twice)
			}
		}
	}
}

func TestAddAttrEmptyValue(t *testing.T) {
	el := NewVoid(TagInput).AddAttr(AttrValue, "").AddAttr(AttrName, "   ")
	if el.Len() != 0 {
		t.Errorf("Len() = %d, want 0", el.Len())
	}
	if got := el.String(); got != "<input/>" {
		t.Errorf("String() = %q, want %q", got, "<input/>")
	}
}

func TestAddAttrKeepsTokenOrder(t *testing.T) {
	el := NewVoid(TagDiv).AddClass("b").AddClass("a").AddClass("c").AddClass("a")
	got := strings.Join(el.Tokens(AttrClass), ",")
	if got != "b,a,c" {
		t.Errorf("Tokens() = %q, want %q", got, "b,a,c")
	}
}

func TestRemoveAttrValue(t *testing.T) {
	tests := []struct {
		name   string
		start  []string
		remove string
		want   string
		gone   bool
	}{
		{name: "only token", start: []string{"current"}, remove: "current", gone: true},
		{name: "first of several", start: []string{"a", "b", "c"}, remove: "a", want: "b c"},
		{name: "middle", start: []string{"a", "b", "c"}, remove: "b", want: "a c"},
		{name: "missing token", start: []string{"a", "b"}, remove: "z", want: "a b"},
		{name: "single token mismatch", start: []string{"a"}, remove: "b", want: "a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := NewVoid(TagSpan)
			for _, v := range tt.start {
				el.AddClass(v)
			}
			el.RemoveClass(tt.remove)
			got, ok := el.Attr(AttrClass)
			if tt.gone {
				if ok {
					t.Errorf("class = %q, want attribute removed", got)
				}
				return
			}
			if got != tt.want {
				t.Errorf("class = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRemoveAttrValueAbsent(t *testing.T) {
	el := NewVoid(TagSpan).AddAttr(AttrID, "x")
	el.RemoveAttrValue(AttrClass, "foo")
	if got := el.String(); got != `<span id="x"/>` {
		t.Errorf("String() = %q", got)
	}
}

func TestAddRemoveRoundTrip(t *testing.T) {
	starts := [][]string{nil, {"a"}, {"a", "b"}}
	for _, start := range starts {
		el := NewVoid(TagLi)
		for _, v := range start {
			el.AddClass(v)
		}
		before := el.String()
		el.AddClass("extra").RemoveClass("extra")
		if after := el.String(); after != before {
			t.Errorf("start %v: after round trip %q, want %q", start, after, before)
		}
	}
}

func TestRemoveAttrThenAddAppends(t *testing.T) {
	el := NewVoid(TagA).AddAttr(AttrHref, "#").AddAttr(AttrClass, "x")
	el.RemoveAttr(AttrHref).AddAttr(AttrHref, "/p")
	if got := el.String(); got != `<a class="x" href="/p"/>` {
		t.Errorf("String() = %q", got)
	}
}

func TestDeterministicRender(t *testing.T) {
	a := NewVoid(TagA).AddClass("x").AddClass("y").AddAttr(AttrHref, "#")
	b := NewVoid(TagA).AddClass("x").AddClass("z").AddClass("y").RemoveClass("z").AddAttr(AttrHref, "#")
	if a.String() != b.String() {
		t.Errorf("same state rendered differently: %q vs %q", a, b)
	}
}

func TestSetAttr(t *testing.T) {
	el := NewVoid(TagA).AddAttr(AttrHref, "#").AddClass("x")
	el.SetAttr(AttrHref, "/next")
	if got := el.String(); got != `<a href="/next" class="x"/>` {
		t.Errorf("String() = %q", got)
	}
	el.SetAttr(AttrClass, "")
	if _, ok := el.Attr(AttrClass); ok {
		t.Error("SetAttr with empty value should remove the attribute")
	}
}

func TestSelfClosingInvariant(t *testing.T) {
	for tag := tagInvalid + 1; tag < tagCount; tag++ {
		got := NewVoid(tag).AddClass("c").String()
		if !strings.HasSuffix(got, "/>") {
			t.Errorf("%s: %q does not end in />", tag, got)
		}
		if strings.Contains(got, "</") {
			t.Errorf("%s: %q contains a closing tag", tag, got)
		}
	}
}

func TestWriteTo(t *testing.T) {
	el := MustNew(TagP, "hello").AddClass("lead")
	var buf bytes.Buffer
	n, err := el.WriteTo(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != el.String() {
		t.Errorf("WriteTo wrote %q, want %q", buf.String(), el.String())
	}
	if n != int64(len(el.String())) {
		t.Errorf("n = %d, want %d", n, len(el.String()))
	}
	if string(el.HTML()) != el.String() {
		t.Errorf("HTML() = %q", el.HTML())
	}
}

func TestHasToken(t *testing.T) {
	el := NewVoid(TagSpan).AddClass("prev current")
	if !el.HasToken(AttrClass, "current") {
		t.Error("expected current token")
	}
	if el.HasToken(AttrClass, "cur") {
		t.Error("token match must be exact")
	}
}

func TestAddAttrBlankValue(t *testing.T) {
	for _, v := range []string{"", " ", "\t  \n"} {
		el := MustNew(TagA, "x").AddAttr(AttrClass, v)
		if el.Len() != 0 {
			t.Errorf("AddAttr(%q) on a new attribute set %d attributes, want 0", v, el.Len())
		}

		el = MustNew(TagA, "x").AddClass("a").AddAttr(AttrClass, v)
		if got := el.String(); got != `<a class="a">x</a>` {
			t.Errorf("AddAttr(%q) on an existing attribute = %q, want %q", v, got, `<a class="a">x</a>`)
		}
	}
}
