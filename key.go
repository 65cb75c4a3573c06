package sf

import "github.com/WyriHaximus/http-structured-fields/internal/ascii"

// IsValidKey reports whether s matches the Key grammar:
// lcalpha / "*", followed by any number of ( lcalpha / DIGIT / "_" / "-" / "." / "*" ).
func IsValidKey(s string) bool {
	if len(s) == 0 {
		return false
	}
	if !ascii.IsKeyStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !ascii.IsKeyChar(s[i]) {
			return false
		}
	}
	return true
}

func validateKey(s string) error {
	if !IsValidKey(s) {
		return newSyntaxError(0, "invalid key: "+s)
	}
	return nil
}
