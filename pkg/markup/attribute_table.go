package markup

// Attribute identifies an attribute name from the fixed catalog below.
// The zero Attribute is not a valid attribute.
type Attribute uint8

const (
	attrInvalid Attribute = iota
	AttrSize
	AttrColor
	AttrClear
	AttrBackground
	AttrBgcolor
	AttrText
	AttrLink
	AttrVlink
	AttrAlink
	AttrWidth
	AttrHeight
	AttrAlign
	AttrName
	AttrHref
	AttrRel
	AttrRev
	AttrTitle
	AttrTarget
	AttrShape
	AttrCoords
	AttrIsmap
	AttrNohref
	AttrAlt
	AttrID
	AttrSrc
	AttrHspace
	AttrVspace
	AttrUsemap
	AttrLowsrc
	AttrCodebase
	AttrCode
	AttrArchive
	AttrValue
	AttrValuetype
	AttrType
	AttrClass
	AttrStyle
	AttrLang
	AttrFace
	AttrDir
	AttrDeclare
	AttrClassid
	AttrData
	AttrCodetype
	AttrStandby
	AttrBorder
	AttrShapes
	AttrNoshade
	AttrCompact
	AttrStart
	AttrAction
	AttrMethod
	AttrEnctype
	AttrChecked
	AttrMaxlength
	AttrMultiple
	AttrSelected
	AttrRows
	AttrCols
	AttrDummy
	AttrCellspacing
	AttrCellpadding
	AttrValign
	AttrHalign
	AttrNowrap
	AttrRowspan
	AttrColspan
	AttrPrompt
	AttrHTTPEquiv
	AttrContent
	AttrLanguage
	AttrVersion
	AttrN
	AttrFrameborder
	AttrMarginwidth
	AttrMarginheight
	AttrScrolling
	AttrNoresize
	AttrEndtag
	AttrComment
	AttrMedia

	attrCount
)

var attrNames = [attrCount]string{
	AttrSize:         "size",
	AttrColor:        "color",
	AttrClear:        "clear",
	AttrBackground:   "background",
	AttrBgcolor:      "bgcolor",
	AttrText:         "text",
	AttrLink:         "link",
	AttrVlink:        "vlink",
	AttrAlink:        "alink",
	AttrWidth:        "width",
	AttrHeight:       "height",
	AttrAlign:        "align",
	AttrName:         "name",
	AttrHref:         "href",
	AttrRel:          "rel",
	AttrRev:          "rev",
	AttrTitle:        "title",
	AttrTarget:       "target",
	AttrShape:        "shape",
	AttrCoords:       "coords",
	AttrIsmap:        "ismap",
	AttrNohref:       "nohref",
	AttrAlt:          "alt",
	AttrID:           "id",
	AttrSrc:          "src",
	AttrHspace:       "hspace",
	AttrVspace:       "vspace",
	AttrUsemap:       "usemap",
	AttrLowsrc:       "lowsrc",
	AttrCodebase:     "codebase",
	AttrCode:         "code",
	AttrArchive:      "archive",
	AttrValue:        "value",
	AttrValuetype:    "valuetype",
	AttrType:         "type",
	AttrClass:        "class",
	AttrStyle:        "style",
	AttrLang:         "lang",
	AttrFace:         "face",
	AttrDir:          "dir",
	AttrDeclare:      "declare",
	AttrClassid:      "classid",
	AttrData:         "data",
	AttrCodetype:     "codetype",
	AttrStandby:      "standby",
	AttrBorder:       "border",
	AttrShapes:       "shapes",
	AttrNoshade:      "noshade",
	AttrCompact:      "compact",
	AttrStart:        "start",
	AttrAction:       "action",
	AttrMethod:       "method",
	AttrEnctype:      "enctype",
	AttrChecked:      "checked",
	AttrMaxlength:    "maxlength",
	AttrMultiple:     "multiple",
	AttrSelected:     "selected",
	AttrRows:         "rows",
	AttrCols:         "cols",
	AttrDummy:        "dummy",
	AttrCellspacing:  "cellspacing",
	AttrCellpadding:  "cellpadding",
	AttrValign:       "valign",
	AttrHalign:       "halign",
	AttrNowrap:       "nowrap",
	AttrRowspan:      "rowspan",
	AttrColspan:      "colspan",
	AttrPrompt:       "prompt",
	AttrHTTPEquiv:    "http-equiv",
	AttrContent:      "content",
	AttrLanguage:     "language",
	AttrVersion:      "version",
	AttrN:            "n",
	AttrFrameborder:  "frameborder",
	AttrMarginwidth:  "marginwidth",
	AttrMarginheight: "marginheight",
	AttrScrolling:    "scrolling",
	AttrNoresize:     "noresize",
	AttrEndtag:       "endtag",
	AttrComment:      "comment",
	AttrMedia:        "media",
}
