package sf

import "strconv"

// Date is an RFC 9651 sf-date bare value: a whole-second Unix timestamp.
type Date struct {
	seconds int64
}

// NewDate constructs a Date from a count of seconds since the Unix epoch,
// subject to the same 15-digit range as Integer.
func NewDate(seconds int64) (Date, error) {
	if seconds > MaxInteger || seconds < MinInteger {
		return Date{}, newSyntaxError(0, "date out of range: "+strconv.FormatInt(seconds, 10))
	}
	return Date{seconds: seconds}, nil
}

// Unix returns the whole-second Unix timestamp.
func (d Date) Unix() int64 {
	return d.seconds
}

// Encode serializes the date as "@<integer>".
func (d Date) Encode() string {
	return "@" + strconv.FormatInt(d.seconds, 10)
}

func (Date) isBareItem() {}
