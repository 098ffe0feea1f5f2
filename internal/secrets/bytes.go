package secrets

import (
	"encoding/json"
	"fmt"
)

// Bytes is a byte slice that is encoded in JSON as an array of numbers
// instead of a base64 string, matching the key store file format.
type Bytes []byte

// MarshalJSON encodes b as a JSON array of integers in the range 0-255.
func (b Bytes) MarshalJSON() ([]byte, error) {
	if b == nil {
		return []byte("[]"), nil
	}
	ints := make([]uint16, len(b))
	for i, v := range b {
		ints[i] = uint16(v)
	}
	return json.Marshal(ints)
}

// UnmarshalJSON decodes a JSON array of integers, rejecting values outside 0-255.
func (b *Bytes) UnmarshalJSON(data []byte) error {
	var ints []int
	if err := json.Unmarshal(data, &ints); err != nil {
		return err
	}
	out := make([]byte, len(ints))
	for i, v := range ints {
		if v < 0 || v > 255 {
			return fmt.Errorf("byte value %d at index %d out of range", v, i)
		}
		out[i] = byte(v)
	}
	*b = out
	return nil
}
