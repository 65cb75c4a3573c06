package sf

import "encoding/base64"

// ByteSequence is an sf-binary bare value: an opaque byte string,
// serialized as standard-alphabet base64 surrounded by colons.
type ByteSequence []byte

// NewByteSequence wraps raw bytes as a ByteSequence. Any byte string is
// valid; base64 encoding happens only at Encode time.
func NewByteSequence(b []byte) ByteSequence {
	cp := make([]byte, len(b))
	copy(cp, b)
	return ByteSequence(cp)
}

// Encode serializes the byte sequence as ":<base64>:".
func (b ByteSequence) Encode() string {
	return ":" + base64.StdEncoding.EncodeToString(b) + ":"
}

func (ByteSequence) isBareItem() {}
