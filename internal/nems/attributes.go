package nems

// Attributes is an insertion-ordered string→Value map. Emitted attribute
// blocks must be byte-stable for a given construction sequence, so order
// is part of the contract: updating an existing key keeps its position,
// new keys append.
type Attributes struct {
	keys   []string
	values map[string]Value
}

func NewAttributes() *Attributes {
	return &Attributes{values: make(map[string]Value)}
}

func (a *Attributes) Set(key string, value Value) {
	if a.values == nil {
		a.values = make(map[string]Value)
	}
	if _, ok := a.values[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.values[key] = value
}

func (a *Attributes) Get(key string) (Value, bool) {
	v, ok := a.values[key]
	return v, ok
}

func (a *Attributes) Has(key string) bool {
	_, ok := a.values[key]
	return ok
}

func (a *Attributes) Len() int { return len(a.keys) }

// Keys returns attribute names in insertion order.
func (a *Attributes) Keys() []string {
	out := make([]string, len(a.keys))
	copy(out, a.keys)
	return out
}

// Merge folds other into a copy of a. Keys present in both take other's
// value but keep a's position; keys only in other append in other's order.
func (a *Attributes) Merge(other *Attributes) *Attributes {
	merged := a.Clone()
	if other == nil {
		return merged
	}
	for _, key := range other.keys {
		merged.Set(key, other.values[key])
	}
	return merged
}

func (a *Attributes) Clone() *Attributes {
	clone := NewAttributes()
	for _, key := range a.keys {
		clone.Set(key, a.values[key])
	}
	return clone
}
