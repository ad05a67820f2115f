package rc

import "sort"

// Params is a read-only view over a category query or the full merged
// settings state. The typed accessors replace per-key attribute access:
// callers ask for the representation they expect and get the zero value when
// the entry is absent or of another kind.
type Params map[string]any

// Has reports whether name is present in the view.
func (p Params) Has(name string) bool {
	_, ok := p[name]
	return ok
}

// Get returns the raw value stored under name.
func (p Params) Get(name string) (any, bool) {
	value, ok := p[name]
	return value, ok
}

// Float returns the numeric value under name, zero when absent or non-numeric.
func (p Params) Float(name string) float64 {
	switch v := p[name].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return 0
	}
}

// Bool returns the boolean value under name, false when absent or non-boolean.
func (p Params) Bool(name string) bool {
	v, _ := p[name].(bool)
	return v
}

// String returns the string value under name, empty when absent or non-string.
func (p Params) String(name string) string {
	v, _ := p[name].(string)
	return v
}

// Keys returns the entry names in sorted order.
func (p Params) Keys() []string {
	keys := make([]string, 0, len(p))
	for key := range p {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of entries in the view.
func (p Params) Len() int {
	return len(p)
}

// Equal reports whether two views hold the same scalar entries. Non-scalar
// values compare by identity of their formatting, so it is intended for the
// flat tables the registry produces.
func (p Params) Equal(other Params) bool {
	if len(p) != len(other) {
		return false
	}
	for key, value := range p {
		got, ok := other[key]
		if !ok || !scalarEqual(value, got) {
			return false
		}
	}
	return true
}

func scalarEqual(a, b any) bool {
	if as, ok := a.([]string); ok {
		bs, ok := b.([]string)
		if !ok || len(as) != len(bs) {
			return false
		}
		for i := range as {
			if as[i] != bs[i] {
				return false
			}
		}
		return true
	}
	if af, ok := a.([]float64); ok {
		bf, ok := b.([]float64)
		if !ok || len(af) != len(bf) {
			return false
		}
		for i := range af {
			if af[i] != bf[i] {
				return false
			}
		}
		return true
	}
	return a == b
}
