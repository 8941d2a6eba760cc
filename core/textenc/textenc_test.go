package textenc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_LittleEndian(t *testing.T) {
	// "Hi" as UTF-16LE with BOM
	data := []byte{0xFF, 0xFE, 'H', 0x00, 'i', 0x00}

	s, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "Hi", s)
}

func TestDecode_BigEndian(t *testing.T) {
	// "Hi" as UTF-16BE with BOM
	data := []byte{0xFE, 0xFF, 0x00, 'H', 0x00, 'i'}

	s, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "Hi", s)
}

func TestDecode_MissingBOM(t *testing.T) {
	// Valid UTF-16LE content, but no byte-order marker
	data := []byte{'H', 0x00, 'i', 0x00}

	_, err := Decode(data)
	assert.Error(t, err)
}

func TestEncode_EmitsBOMAndLittleEndian(t *testing.T) {
	out, err := Encode("Hi")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xFE, 'H', 0x00, 'i', 0x00}, out)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"ascii", "Hello, world"},
		{"korean", "검은 발톱 낭인"},
		{"markup", "<body>[%userrace] & %1</body>\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := Encode(tt.input)
			require.NoError(t, err)

			decoded, err := Decode(encoded)
			require.NoError(t, err)
			assert.Equal(t, tt.input, decoded)
		})
	}
}

func TestEncode_Deterministic(t *testing.T) {
	a, err := Encode("same input")
	require.NoError(t, err)
	b, err := Encode("same input")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
