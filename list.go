package sf

import "strings"

// Member is a List element or a Dictionary value: either an Item or an
// InnerList.
type Member interface {
	Encoder
	isMember()
}

// Encoder is implemented by every value that has a canonical textual form.
type Encoder interface {
	Encode() string
}

// List is an ordered sequence of members (Item | InnerList).
type List struct {
	members orderedList[Member]
}

// NewList constructs a List from an ordered slice of members.
func NewList(members ...Member) List {
	cp := make([]Member, len(members))
	copy(cp, members)
	return List{members: orderedList[Member]{items: cp}}
}

// Len returns the number of members.
func (l List) Len() int {
	return l.members.len()
}

// IsEmpty reports whether the list has no members.
func (l List) IsEmpty() bool {
	return l.members.len() == 0
}

// Members returns a copy of the member sequence.
func (l List) Members() []Member {
	return append([]Member(nil), l.members.items...)
}

// Get returns the member at signed index i.
func (l List) Get(i int) (Member, error) {
	v, ok := l.members.get(i)
	if !ok {
		return nil, newInvalidIndexError(i)
	}
	return v, nil
}

// Push appends a member at the tail.
func (l List) Push(m Member) List {
	return List{members: l.members.push(m)}
}

// Unshift inserts a member at the head.
func (l List) Unshift(m Member) List {
	return List{members: l.members.unshift(m)}
}

// Insert inserts m before the normalized index; index == Len() pushes at tail.
func (l List) Insert(i int, m Member) (List, error) {
	members, err := l.members.insert(i, m)
	if err != nil {
		return List{}, err
	}
	return List{members: members}, nil
}

// Replace replaces the member at the normalized index.
func (l List) Replace(i int, m Member) (List, error) {
	members, err := l.members.replace(i, m)
	if err != nil {
		return List{}, err
	}
	return List{members: members}, nil
}

// RemoveByIndex removes the members at the given signed indices.
func (l List) RemoveByIndex(indices ...int) (List, error) {
	members, err := l.members.removeByIndex(indices...)
	if err != nil {
		return List{}, err
	}
	return List{members: members}, nil
}

// Clear removes all members.
func (l List) Clear() List {
	return List{}
}

// Merge appends other's members to the tail of l.
func (l List) Merge(other List) List {
	out := l
	for _, m := range other.members.items {
		out = out.Push(m)
	}
	return out
}

// Encode serializes the list, joining members with ", ". An empty list
// serializes to the empty string.
func (l List) Encode() string {
	if l.members.len() == 0 {
		return ""
	}
	parts := make([]string, l.members.len())
	for i, m := range l.members.items {
		parts[i] = m.Encode()
	}
	return strings.Join(parts, ", ")
}
