package markup

// tagsByName and attrsByName index the catalogs for Lookup*.
// Both are built once at init and never written afterwards.
var (
	tagsByName  = make(map[string]Tag, len(tagTable))
	attrsByName = make(map[string]Attribute, len(attrNames))
)

func init() {
	for t := tagInvalid + 1; t < tagCount; t++ {
		tagsByName[tagTable[t].name] = t
	}
	for a := attrInvalid + 1; a < attrCount; a++ {
		attrsByName[attrNames[a]] = a
	}
}

// Valid reports whether t is a member of the tag catalog.
func (t Tag) Valid() bool {
	return t > tagInvalid && t < tagCount
}

// String returns the element name, e.g. "span".
func (t Tag) String() string {
	if !t.Valid() {
		return ""
	}
	return tagTable[t].name
}

// IsBlock reports whether the element is block-level.
func (t Tag) IsBlock() bool {
	return t.Valid() && tagTable[t].block
}

// BreaksFlow reports whether the element interrupts inline flow.
func (t Tag) BreaksFlow() bool {
	return t.Valid() && tagTable[t].breaksFlow
}

// LookupTag returns the Tag named name. Matching is exact: "SPAN" is not "span".
func LookupTag(name string) (Tag, bool) {
	t, ok := tagsByName[name]
	return t, ok
}

// Valid reports whether a is a member of the attribute catalog.
func (a Attribute) Valid() bool {
	return a > attrInvalid && a < attrCount
}

// String returns the attribute name, e.g. "class".
func (a Attribute) String() string {
	if !a.Valid() {
		return ""
	}
	return attrNames[a]
}

// LookupAttribute returns the Attribute named name, matched exactly.
func LookupAttribute(name string) (Attribute, bool) {
	a, ok := attrsByName[name]
	return a, ok
}
