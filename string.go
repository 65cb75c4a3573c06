package sf

import (
	"strings"

	"github.com/WyriHaximus/http-structured-fields/internal/ascii"
)

// String is an sf-string bare value: a sequence of bytes in 0x20..0x7E.
type String string

// NewString validates s against the sf-string charset before accepting it.
func NewString(s string) (String, error) {
	for i := 0; i < len(s); i++ {
		if !ascii.IsPrint(s[i]) {
			return "", newSyntaxError(i, "string contains byte outside 0x20..0x7E")
		}
	}
	return String(s), nil
}

// Encode serializes the string, escaping '"' and '\'.
func (s String) Encode() string {
	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"', '\\':
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	sb.WriteByte('"')
	return sb.String()
}

func (String) isBareItem() {}
