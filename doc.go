// Package sf parses, models, and serializes HTTP Structured Fields as
// defined by RFC 8941, with RFC 9651's Date and DisplayString extensions.
//
// The three top-level field kinds are List, Dictionary, and Item, built
// from a closed set of bare value types (Integer, Decimal, String, Token,
// ByteSequence, Boolean, Date, DisplayString) plus the InnerList and
// Parameters structures that nest them. Every exported type is an
// immutable value: mutator methods return a new instance, short-circuiting
// to the receiver when the mutation would not change the canonical
// serialized form.
//
//	item, err := sf.ParseItem([]byte(`"hello world"; foo=bar`))
//	list, err := sf.ParseList([]byte(`sugar, tea, rum`))
//	dict, err := sf.ParseDictionary([]byte(`a=1, b=2;x=?0, c`))
//
// Parsing is all-or-nothing: a malformed input yields a *SyntaxError and no
// partial result. There is no tolerant mode and no network or transport
// code in this package; callers are expected to have already unfolded and
// selected a single field value from whatever protocol layer they work in.
package sf
