package sf

import "github.com/WyriHaximus/http-structured-fields/internal/ascii"

// Token is an sf-token bare value: a short bareword such as a media type
// or algorithm name.
type Token string

// NewToken validates s against the sf-token grammar before accepting it.
func NewToken(s string) (Token, error) {
	if len(s) == 0 {
		return "", newSyntaxError(0, "token must not be empty")
	}
	if !ascii.IsTokenStart(s[0]) {
		return "", newSyntaxError(0, "token must start with ALPHA or '*'")
	}
	for i := 1; i < len(s); i++ {
		if !ascii.IsTokenChar(s[i]) {
			return "", newSyntaxError(i, "invalid token character")
		}
	}
	return Token(s), nil
}

// Encode serializes the token literally.
func (t Token) Encode() string {
	return string(t)
}

func (Token) isBareItem() {}
