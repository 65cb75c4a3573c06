package sf

// Item is a bare value plus its parameters.
type Item struct {
	bare   BareItem
	params Parameters
}

// NewItem constructs an Item from a bare value and its parameters.
func NewItem(bare BareItem, params Parameters) Item {
	return Item{bare: bare, params: params}
}

// Bare returns the item's bare value.
func (it Item) Bare() BareItem {
	return it.bare
}

// Parameters returns the item's parameters.
func (it Item) Parameters() Parameters {
	return it.params
}

// WithValue returns an Item with bare replacing the current bare value,
// keeping the existing parameters. Per the §4.5 identity short-circuit,
// if bare serializes identically to the current value, it returns the
// receiver unchanged.
func (it Item) WithValue(bare BareItem) Item {
	if bareItemsEqual(it.bare, bare) {
		return it
	}
	return Item{bare: bare, params: it.params}
}

// WithParameters returns an Item with params replacing the current
// parameters, keeping the existing bare value. Per the §4.5 identity
// short-circuit, if params serializes identically to the current
// parameters, it returns the receiver unchanged.
func (it Item) WithParameters(params Parameters) Item {
	if it.params.equal(params) {
		return it
	}
	return Item{bare: it.bare, params: params}
}

// Encode serializes the bare value followed by its parameters.
func (it Item) Encode() string {
	return it.bare.Encode() + it.params.Encode()
}

func (Item) isMember() {}
