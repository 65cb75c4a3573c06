package sf

// Boolean is an sf-boolean bare value, serialized "?1" or "?0".
type Boolean bool

// Encode serializes the boolean.
func (b Boolean) Encode() string {
	if b {
		return "?1"
	}
	return "?0"
}

func (Boolean) isBareItem() {}
