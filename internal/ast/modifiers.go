package ast

// AccessLevel is the visibility a declaration was given (spec §3.4).
type AccessLevel int

const (
	// AccessDefault means no access modifier keyword was written. Neither
	// the parser nor the builder substitutes a default level; symbols
	// record AccessDefault as given.
	AccessDefault AccessLevel = iota
	AccessPublic
	AccessPrivate
	AccessProtected
)

func (a AccessLevel) String() string {
	switch a {
	case AccessPublic:
		return "public"
	case AccessPrivate:
		return "private"
	case AccessProtected:
		return "protected"
	default:
		return "default"
	}
}

// Modifiers is a bitset of the non-access modifier keywords recognized on a
// declaration header (spec §3.4, §4.3.2).
type Modifiers uint16

const (
	ModStatic Modifiers = 1 << iota
	ModVirtual
	ModOverride
	ModAbstract
	ModAsync
	ModExtern
	ModRef
	ModInline
)

func (m Modifiers) Has(f Modifiers) bool { return m&f != 0 }

func (m Modifiers) String() string {
	names := []struct {
		flag Modifiers
		name string
	}{
		{ModStatic, "static"}, {ModVirtual, "virtual"}, {ModOverride, "override"},
		{ModAbstract, "abstract"}, {ModAsync, "async"}, {ModExtern, "extern"},
		{ModRef, "ref"}, {ModInline, "inline"},
	}
	s := ""
	for _, n := range names {
		if m.Has(n.flag) {
			if s != "" {
				s += " "
			}
			s += n.name
		}
	}
	return s
}
