package sf

// BareItem is the sum type of the six RFC 8941 leaf values plus the two
// RFC 9651 extensions (Date, DisplayString). It has no exported methods
// beyond Encode and a private tag method, so the set of implementations is
// closed to this package: Integer, Decimal, String, Token, ByteSequence,
// Boolean, Date, DisplayString.
type BareItem interface {
	// Encode returns the canonical textual form of the bare value.
	Encode() string

	isBareItem()
}

// bareItemsEqual reports whether two bare items are structurally equal, i.e. they
// serialize to the same canonical text. Used by the §4.5 identity
// short-circuit.
func bareItemsEqual(a, b BareItem) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Encode() == b.Encode()
}
