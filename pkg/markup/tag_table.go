package markup

// Tag identifies an element name from the fixed catalog below.
// The zero Tag is not a valid element.
type Tag uint8

const (
	tagInvalid Tag = iota
	TagA
	TagAddress
	TagApplet
	TagArea
	TagB
	TagBase
	TagBasefont
	TagBig
	TagBlockquote
	TagBody
	TagBr
	TagCaption
	TagCenter
	TagCite
	TagCode
	TagDd
	TagDfn
	TagDir
	TagDiv
	TagDl
	TagDt
	TagEm
	TagFont
	TagForm
	TagFrame
	TagFrameset
	TagH1
	TagH2
	TagH3
	TagH4
	TagH5
	TagH6
	TagHead
	TagHr
	TagHtml
	TagI
	TagImg
	TagInput
	TagIsindex
	TagKbd
	TagLi
	TagLink
	TagMap
	TagMenu
	TagMeta
	TagNobr
	TagNoframes
	TagObject
	TagOl
	TagOption
	TagP
	TagParam
	TagPre
	TagSamp
	TagScript
	TagSelect
	TagSmall
	TagSpan
	TagStrike
	TagS
	TagStrong
	TagStyle
	TagSub
	TagSup
	TagTable
	TagTd
	TagTextarea
	TagTh
	TagTitle
	TagTr
	TagTt
	TagU
	TagUl
	TagVar

	tagCount
)

type tagInfo struct {
	name       string
	breaksFlow bool
	block      bool
}

var tagTable = [tagCount]tagInfo{
	TagA:          {name: "a"},
	TagAddress:    {name: "address"},
	TagApplet:     {name: "applet"},
	TagArea:       {name: "area"},
	TagB:          {name: "b"},
	TagBase:       {name: "base"},
	TagBasefont:   {name: "basefont"},
	TagBig:        {name: "big"},
	TagBlockquote: {"blockquote", true, true},
	TagBody:       {"body", true, true},
	TagBr:         {"br", true, false},
	TagCaption:    {name: "caption"},
	TagCenter:     {"center", true, false},
	TagCite:       {name: "cite"},
	TagCode:       {name: "code"},
	TagDd:         {"dd", true, true},
	TagDfn:        {name: "dfn"},
	TagDir:        {"dir", true, true},
	TagDiv:        {"div", true, true},
	TagDl:         {"dl", true, true},
	TagDt:         {"dt", true, true},
	TagEm:         {name: "em"},
	TagFont:       {name: "font"},
	TagForm:       {"form", true, false},
	TagFrame:      {name: "frame"},
	TagFrameset:   {name: "frameset"},
	TagH1:         {"h1", true, true},
	TagH2:         {"h2", true, true},
	TagH3:         {"h3", true, true},
	TagH4:         {"h4", true, true},
	TagH5:         {"h5", true, true},
	TagH6:         {"h6", true, true},
	TagHead:       {"head", true, true},
	TagHr:         {"hr", true, false},
	TagHtml:       {"html", true, false},
	TagI:          {name: "i"},
	TagImg:        {name: "img"},
	TagInput:      {name: "input"},
	TagIsindex:    {"isindex", true, false},
	TagKbd:        {name: "kbd"},
	TagLi:         {"li", true, true},
	TagLink:       {name: "link"},
	TagMap:        {name: "map"},
	TagMenu:       {"menu", true, true},
	TagMeta:       {name: "meta"},
	TagNobr:       {name: "nobr"},
	TagNoframes:   {"noframes", true, true},
	TagObject:     {name: "object"},
	TagOl:         {"ol", true, true},
	TagOption:     {name: "option"},
	TagP:          {"p", true, true},
	TagParam:      {name: "param"},
	TagPre:        {"pre", true, true},
	TagSamp:       {name: "samp"},
	TagScript:     {name: "script"},
	TagSelect:     {name: "select"},
	TagSmall:      {name: "small"},
	TagSpan:       {name: "span"},
	TagStrike:     {name: "strike"},
	TagS:          {name: "s"},
	TagStrong:     {name: "strong"},
	TagStyle:      {name: "style"},
	TagSub:        {name: "sub"},
	TagSup:        {name: "sup"},
	TagTable:      {"table", false, true},
	TagTd:         {"td", true, true},
	TagTextarea:   {name: "textarea"},
	TagTh:         {"th", true, true},
	TagTitle:      {"title", true, true},
	TagTr:         {"tr", false, true},
	TagTt:         {name: "tt"},
	TagU:          {name: "u"},
	TagUl:         {"ul", true, true},
	TagVar:        {name: "var"},
}
