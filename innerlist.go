package sf

import "strings"

// InnerList is an ordered sequence of Items plus its own Parameters.
type InnerList struct {
	items  orderedList[Item]
	params Parameters
}

// NewInnerList constructs an InnerList from its items and parameters.
func NewInnerList(items []Item, params Parameters) InnerList {
	cp := make([]Item, len(items))
	copy(cp, items)
	return InnerList{items: orderedList[Item]{items: cp}, params: params}
}

// Len returns the number of items.
func (l InnerList) Len() int {
	return l.items.len()
}

// IsEmpty reports whether the inner list has no items.
func (l InnerList) IsEmpty() bool {
	return l.items.len() == 0
}

// Items returns a copy of the item sequence.
func (l InnerList) Items() []Item {
	return append([]Item(nil), l.items.items...)
}

// Parameters returns the inner list's parameters.
func (l InnerList) Parameters() Parameters {
	return l.params
}

// Get returns the item at signed index i (see spec §4.3 index normalization).
func (l InnerList) Get(i int) (Item, error) {
	v, ok := l.items.get(i)
	if !ok {
		return Item{}, newInvalidIndexError(i)
	}
	return v, nil
}

// Push appends an item at the tail.
func (l InnerList) Push(it Item) InnerList {
	return InnerList{items: l.items.push(it), params: l.params}
}

// Unshift inserts an item at the head.
func (l InnerList) Unshift(it Item) InnerList {
	return InnerList{items: l.items.unshift(it), params: l.params}
}

// Insert inserts it before the normalized index; index == Len() pushes at tail.
func (l InnerList) Insert(i int, it Item) (InnerList, error) {
	items, err := l.items.insert(i, it)
	if err != nil {
		return InnerList{}, err
	}
	return InnerList{items: items, params: l.params}, nil
}

// Replace replaces the item at the normalized index.
func (l InnerList) Replace(i int, it Item) (InnerList, error) {
	items, err := l.items.replace(i, it)
	if err != nil {
		return InnerList{}, err
	}
	return InnerList{items: items, params: l.params}, nil
}

// RemoveByIndex removes the items at the given signed indices.
func (l InnerList) RemoveByIndex(indices ...int) (InnerList, error) {
	items, err := l.items.removeByIndex(indices...)
	if err != nil {
		return InnerList{}, err
	}
	return InnerList{items: items, params: l.params}, nil
}

// Clear removes all items, keeping the parameters.
func (l InnerList) Clear() InnerList {
	return InnerList{items: l.items.clear(), params: l.params}
}

// WithItems returns an InnerList with items replacing the current
// sequence. Per the §4.5 identity short-circuit, if the new sequence
// serializes identically, it returns the receiver unchanged.
func (l InnerList) WithItems(items []Item) InnerList {
	candidate := NewInnerList(items, l.params)
	if candidate.itemsEncode() == l.itemsEncode() {
		return l
	}
	return candidate
}

// WithParameters returns an InnerList with params replacing the current
// parameters. Per the §4.5 identity short-circuit, if params serializes
// identically to the current parameters, it returns the receiver unchanged.
func (l InnerList) WithParameters(params Parameters) InnerList {
	if l.params.equal(params) {
		return l
	}
	return InnerList{items: l.items, params: params}
}

func (l InnerList) itemsEncode() string {
	parts := make([]string, l.items.len())
	for i, it := range l.items.items {
		parts[i] = it.Encode()
	}
	return strings.Join(parts, " ")
}

// Encode serializes the inner list as "(item item ...)" plus its parameters.
func (l InnerList) Encode() string {
	return "(" + l.itemsEncode() + ")" + l.params.Encode()
}

func (InnerList) isMember() {}
