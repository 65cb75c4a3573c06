package sf

import "strings"

// Parameters is an insertion-ordered Key -> BareItem mapping attached to
// an Item or InnerList. Parameter values are bare items with no
// parameters of their own (RFC 8941 §3.1.2's param-value is bare-item,
// not item), which is also what the teacher's ParamList/Param pair
// already modeled.
type Parameters struct {
	m orderedMap[BareItem]
}

// NewParameters builds a Parameters from an ordered slice of key/value
// pairs, validating every key against the Key grammar at the construction
// boundary (spec §3 invariant 5).
func NewParameters(pairs ...KV) (Parameters, error) {
	var p Parameters
	for _, kv := range pairs {
		if err := validateKey(kv.Key); err != nil {
			return Parameters{}, err
		}
		p.m = p.m.add(kv.Key, kv.Value)
	}
	return p, nil
}

// KV is a key/bare-value pair, used to seed Parameters construction
// without requiring callers to build them one Add call at a time.
type KV struct {
	Key   string
	Value BareItem
}

// Len returns the number of parameters.
func (p Parameters) Len() int {
	return p.m.len()
}

// IsEmpty reports whether there are no parameters.
func (p Parameters) IsEmpty() bool {
	return p.m.len() == 0
}

// Has reports whether key is present.
func (p Parameters) Has(key string) bool {
	_, ok := p.m.get(key)
	return ok
}

// Get retrieves the bare value for key.
func (p Parameters) Get(key string) (BareItem, error) {
	v, ok := p.m.get(key)
	if !ok {
		return nil, newInvalidKeyError(key)
	}
	return v, nil
}

// GetByIndex retrieves the key/value pair at signed index i.
func (p Parameters) GetByIndex(i int) (string, BareItem, error) {
	pr, ok := p.m.getByIndex(i)
	if !ok {
		return "", nil, newInvalidIndexError(i)
	}
	return pr.Key, pr.Value, nil
}

// Keys returns the parameter keys in insertion order.
func (p Parameters) Keys() []string {
	return p.m.keys()
}

// Add sets key to value: if key already exists its position is preserved,
// else the pair is appended.
func (p Parameters) Add(key string, value BareItem) (Parameters, error) {
	if err := validateKey(key); err != nil {
		return Parameters{}, err
	}
	return Parameters{m: p.m.add(key, value)}, nil
}

// Append removes key if present, then inserts it at the tail.
func (p Parameters) Append(key string, value BareItem) (Parameters, error) {
	if err := validateKey(key); err != nil {
		return Parameters{}, err
	}
	return Parameters{m: p.m.appendTail(key, value)}, nil
}

// Prepend removes key if present, then inserts it at the head.
func (p Parameters) Prepend(key string, value BareItem) (Parameters, error) {
	if err := validateKey(key); err != nil {
		return Parameters{}, err
	}
	return Parameters{m: p.m.prepend(key, value)}, nil
}

// Remove removes the given keys, if present.
func (p Parameters) Remove(keys ...string) Parameters {
	return Parameters{m: p.m.remove(keys...)}
}

// Clear returns an empty Parameters.
func (p Parameters) Clear() Parameters {
	return Parameters{}
}

// Merge adds every pair from other into p, in other's order, each via Add
// semantics (existing keys updated in place).
func (p Parameters) Merge(other Parameters) Parameters {
	out := p
	for _, pr := range other.m.pairs {
		out.m = out.m.add(pr.Key, pr.Value)
	}
	return out
}

// Encode serializes the parameters as ";key" or ";key=value" per member,
// concatenated with no separator between members.
func (p Parameters) Encode() string {
	if p.m.len() == 0 {
		return ""
	}
	var sb strings.Builder
	for _, pr := range p.m.pairs {
		sb.WriteByte(';')
		sb.WriteString(pr.Key)
		if b, isBool := pr.Value.(Boolean); isBool && bool(b) {
			continue
		}
		sb.WriteByte('=')
		sb.WriteString(pr.Value.Encode())
	}
	return sb.String()
}

// equal reports whether two Parameters serialize identically.
func (p Parameters) equal(other Parameters) bool {
	return p.Encode() == other.Encode()
}
