package textenc

import (
	"fmt"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Decode converts UTF-16 bytes into a string. A byte-order marker is
// required; both byte orders are accepted on input.
func Decode(data []byte) (string, error) {
	dec := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return "", fmt.Errorf("decode UTF-16: %w", err)
	}
	return string(out), nil
}

// Encode converts a string into UTF-16 little-endian bytes with a leading
// byte-order marker, the exact form the game client loads.
func Encode(s string) ([]byte, error) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	out, _, err := transform.Bytes(enc, []byte(s))
	if err != nil {
		return nil, fmt.Errorf("encode UTF-16: %w", err)
	}
	return out, nil
}
