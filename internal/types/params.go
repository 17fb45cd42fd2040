package types

// Param is a single key/value parameter.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered list of key/value parameters.
// Insertion order is preserved for rendering; lookups behave like a map
// where the last value set for a key wins. Keys are case-sensitive.
type Params []Param

// Get returns the value associated with the given key and whether the key is present.
// If the key appears multiple times, the last value wins.
func (ps Params) Get(key string) (string, bool) {
	for i := len(ps) - 1; i >= 0; i-- {
		if ps[i].Key == key {
			return ps[i].Value, true
		}
	}
	return "", false
}

// Has checks whether a given key is in the list.
func (ps Params) Has(key string) bool {
	_, ok := ps.Get(key)
	return ok
}

// Set sets the key to value. An existing key keeps its position,
// a new key is appended at the end.
func (ps Params) Set(key, value string) Params {
	for i := range ps {
		if ps[i].Key == key {
			ps[i].Value = value
			return ps
		}
	}
	return append(ps, Param{Key: key, Value: value})
}

// Len returns the number of parameters.
func (ps Params) Len() int { return len(ps) }

// Clone returns a copy of the list.
func (ps Params) Clone() Params {
	if ps == nil {
		return nil
	}
	ps2 := make(Params, len(ps))
	copy(ps2, ps)
	return ps2
}

// Equal compares two parameter lists ignoring insertion order.
// Duplicate keys collapse to their last value, same as Get.
func (ps Params) Equal(other Params) bool {
	m1, m2 := ps.toMap(), other.toMap()
	if len(m1) != len(m2) {
		return false
	}
	for k, v := range m1 {
		if v2, ok := m2[k]; !ok || v != v2 {
			return false
		}
	}
	return true
}

func (ps Params) toMap() map[string]string {
	m := make(map[string]string, len(ps))
	for _, p := range ps {
		m[p.Key] = p.Value
	}
	return m
}
