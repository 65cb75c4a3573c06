package sf

import "strings"

// Dictionary is an insertion-ordered Key -> Member (Item | InnerList) mapping.
type Dictionary struct {
	m orderedMap[Member]
}

// DictKV is a key/member pair, used to seed Dictionary construction.
type DictKV struct {
	Key   string
	Value Member
}

// NewDictionary builds a Dictionary from an ordered slice of key/value
// pairs, validating every key against the Key grammar.
func NewDictionary(pairs ...DictKV) (Dictionary, error) {
	var d Dictionary
	for _, kv := range pairs {
		if err := validateKey(kv.Key); err != nil {
			return Dictionary{}, err
		}
		d.m = d.m.add(kv.Key, kv.Value)
	}
	return d, nil
}

// Len returns the number of dictionary members.
func (d Dictionary) Len() int {
	return d.m.len()
}

// IsEmpty reports whether the dictionary has no members.
func (d Dictionary) IsEmpty() bool {
	return d.m.len() == 0
}

// Has reports whether key is present.
func (d Dictionary) Has(key string) bool {
	_, ok := d.m.get(key)
	return ok
}

// Get retrieves the member for key.
func (d Dictionary) Get(key string) (Member, error) {
	v, ok := d.m.get(key)
	if !ok {
		return nil, newInvalidKeyError(key)
	}
	return v, nil
}

// GetByIndex retrieves the key/member pair at signed index i.
func (d Dictionary) GetByIndex(i int) (string, Member, error) {
	p, ok := d.m.getByIndex(i)
	if !ok {
		return "", nil, newInvalidIndexError(i)
	}
	return p.Key, p.Value, nil
}

// Keys returns the dictionary's keys in insertion order.
func (d Dictionary) Keys() []string {
	return d.m.keys()
}

// Add sets key to value: if key already exists its position is preserved,
// else the pair is appended.
func (d Dictionary) Add(key string, value Member) (Dictionary, error) {
	if err := validateKey(key); err != nil {
		return Dictionary{}, err
	}
	return Dictionary{m: d.m.add(key, value)}, nil
}

// Append removes key if present, then inserts it at the tail.
func (d Dictionary) Append(key string, value Member) (Dictionary, error) {
	if err := validateKey(key); err != nil {
		return Dictionary{}, err
	}
	return Dictionary{m: d.m.appendTail(key, value)}, nil
}

// Prepend removes key if present, then inserts it at the head.
func (d Dictionary) Prepend(key string, value Member) (Dictionary, error) {
	if err := validateKey(key); err != nil {
		return Dictionary{}, err
	}
	return Dictionary{m: d.m.prepend(key, value)}, nil
}

// Remove removes the given keys, if present.
func (d Dictionary) Remove(keys ...string) Dictionary {
	return Dictionary{m: d.m.remove(keys...)}
}

// Clear returns an empty Dictionary.
func (d Dictionary) Clear() Dictionary {
	return Dictionary{}
}

// Merge adds every pair from other into d, in other's order, each via Add
// semantics (existing keys updated in place).
func (d Dictionary) Merge(other Dictionary) Dictionary {
	out := d
	for _, p := range other.m.pairs {
		out.m = out.m.add(p.Key, p.Value)
	}
	return out
}

// Encode serializes the dictionary, joining "key=value" (or "key"+params
// when value is Boolean true) members with ", ". An empty dictionary
// serializes to the empty string.
func (d Dictionary) Encode() string {
	if d.m.len() == 0 {
		return ""
	}
	parts := make([]string, d.m.len())
	for i, p := range d.m.pairs {
		parts[i] = encodeDictMember(p.Key, p.Value)
	}
	return strings.Join(parts, ", ")
}

func encodeDictMember(key string, value Member) string {
	if it, isItem := value.(Item); isItem {
		if b, isBool := it.bare.(Boolean); isBool && bool(b) {
			return key + it.params.Encode()
		}
	}
	return key + "=" + value.Encode()
}
