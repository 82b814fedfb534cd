package nlattr

// Map indexes a flat attribute slice by type for random-access lookups. When
// an attribute type repeats (the kernel never does this for the families
// this codec targets, except deliberately-repeated list attributes such as
// bridge VLAN entries, which callers walk with Iterate instead) the first
// occurrence wins.
func Map(attrs []Attr) map[uint16]Attr {
	m := make(map[uint16]Attr, len(attrs))
	for _, a := range attrs {
		if _, ok := m[a.Type]; !ok {
			m[a.Type] = a
		}
	}
	return m
}

// Find returns the first attribute of the given type, if present.
func Find(attrs []Attr, typ uint16) (Attr, bool) {
	for _, a := range attrs {
		if a.Type == typ {
			return a, true
		}
	}
	return Attr{}, false
}

// All returns every attribute of the given type, in order. Used for
// repeated-entry lists like bridge VLAN records.
func All(attrs []Attr, typ uint16) []Attr {
	var out []Attr
	for _, a := range attrs {
		if a.Type == typ {
			out = append(out, a)
		}
	}
	return out
}
