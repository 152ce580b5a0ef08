package optdoc

// Query is a search string folded to ASCII lower case.
// Build it with NewQuery; a plain conversion does not fold.
type Query string

// NewQuery folds s to ASCII lower case. Non-ASCII bytes are kept as is.
func NewQuery(s string) Query {
	b := []byte(s)
	for i, c := range b {
		b[i] = lowerASCII(c)
	}
	return Query(b)
}

// IsPrefixOf reports whether name starts with q, ignoring ASCII case.
func (q Query) IsPrefixOf(name string) bool {
	if len(name) < len(q) {
		return false
	}
	return equalFolded(name[:len(q)], string(q))
}

// IsContainedIn reports whether q occurs anywhere in name, ignoring ASCII case.
func (q Query) IsContainedIn(name string) bool {
	n := len(q)
	for i := 0; i+n <= len(name); i++ {
		if equalFolded(name[i:i+n], string(q)) {
			return true
		}
	}
	return false
}

// equalFolded reports whether s folded to ASCII lower case equals lower.
// Both strings must have the same length.
func equalFolded(s, lower string) bool {
	for i := 0; i < len(s); i++ {
		if lowerASCII(s[i]) != lower[i] {
			return false
		}
	}
	return true
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
