package sf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInteger(t *testing.T) {
	testCases := []struct {
		name    string
		v       int64
		wantErr bool
	}{
		{name: "zero", v: 0},
		{name: "negative", v: -42},
		{name: "max", v: MaxInteger},
		{name: "min", v: MinInteger},
		{name: "over max", v: MaxInteger + 1, wantErr: true},
		{name: "under min", v: MinInteger - 1, wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			i, err := NewInteger(tc.v)
			if tc.wantErr {
				require.Error(t, err)
				var synErr *SyntaxError
				require.ErrorAs(t, err, &synErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.v, i.Int64())
		})
	}
}

func TestIntegerEncode(t *testing.T) {
	testCases := []struct {
		v    int64
		want string
	}{
		{v: 0, want: "0"},
		{v: 42, want: "42"},
		{v: -42, want: "-42"},
		{v: MaxInteger, want: "999999999999999"},
		{v: MinInteger, want: "-999999999999999"},
	}
	for _, tc := range testCases {
		i, err := NewInteger(tc.v)
		require.NoError(t, err)
		assert.Equal(t, tc.want, i.Encode())
	}
}
