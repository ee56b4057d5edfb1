package tlrt

import (
	"math"
	"strconv"
)

// Widths of the fixed-size binary kinds
const (
	Int128Size = 16
	Int256Size = 32
)

// EncodeInt32 boxes a 32-bit integer as a native number
func EncodeInt32(v int32) Value {
	return float64(v)
}

// DecodeInt32 accepts an integral number or a decimal string
func DecodeInt32(v Value) (int32, error) {
	n, err := decodeInteger(v, 32)
	if err != nil {
		return 0, err
	}
	return int32(n), nil
}

// EncodeInt64 boxes a 64-bit integer as a decimal string so no precision is lost
// at the host boundary
func EncodeInt64(v int64) Value {
	return strconv.FormatInt(v, 10)
}

// DecodeInt64 accepts an integral number or a decimal string
func DecodeInt64(v Value) (int64, error) {
	return decodeInteger(v, 64)
}

// EncodeDouble boxes a float64 as a native number
func EncodeDouble(v float64) Value {
	return v
}

// DecodeDouble accepts numbers only
func DecodeDouble(v Value) (float64, error) {
	f, ok := toFloat(v)
	if !ok {
		return 0, &TypeError{Expected: "number", Got: v}
	}
	return f, nil
}

// EncodeString boxes a string, secure or not
func EncodeString(v string) Value {
	return v
}

// DecodeString accepts strings only
func DecodeString(v Value) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", &TypeError{Expected: "string", Got: v}
	}
	return s, nil
}

// EncodeBool boxes a boolean
func EncodeBool(v bool) Value {
	return v
}

// DecodeBool accepts a boolean, or anything DecodeInt32 accepts with nonzero
// meaning true
func DecodeBool(v Value) (bool, error) {
	if b, ok := v.(bool); ok {
		return b, nil
	}
	n, err := DecodeInt32(v)
	if err != nil {
		return false, &TypeError{Expected: "bool", Got: v}
	}
	return n != 0, nil
}

// EncodeBytes copies binary data into a new buffer
func EncodeBytes(v []byte) Value {
	return append([]byte{}, v...)
}

// DecodeBytes requires a buffer and copies it verbatim. Empty buffers decode to
// nil, so DecodeBytes(EncodeBytes(b)) equals b only up to nil versus empty:
// []byte{} comes back as nil.
func DecodeBytes(v Value) ([]byte, error) {
	b, ok := v.([]byte)
	if !ok {
		return nil, &TypeError{Expected: "buffer", Got: v}
	}
	if len(b) == 0 {
		return nil, nil
	}
	return append([]byte(nil), b...), nil
}

// EncodeInt128 boxes a 128-bit value as a 16-byte buffer
func EncodeInt128(v [Int128Size]byte) Value {
	return append([]byte{}, v[:]...)
}

// DecodeInt128 requires a buffer of exactly 16 bytes
func DecodeInt128(v Value) ([Int128Size]byte, error) {
	var out [Int128Size]byte
	err := decodeFixed(v, out[:])
	return out, err
}

// EncodeInt256 boxes a 256-bit value as a 32-byte buffer
func EncodeInt256(v [Int256Size]byte) Value {
	return append([]byte{}, v[:]...)
}

// DecodeInt256 requires a buffer of exactly 32 bytes
func DecodeInt256(v Value) ([Int256Size]byte, error) {
	var out [Int256Size]byte
	err := decodeFixed(v, out[:])
	return out, err
}

func decodeFixed(v Value, dst []byte) error {
	b, ok := v.([]byte)
	if !ok {
		return &TypeError{Expected: "buffer", Got: v}
	}
	if len(b) != len(dst) {
		return &LengthError{Expected: len(dst), Got: len(b)}
	}
	copy(dst, b)
	return nil
}

func decodeInteger(v Value, bits int) (int64, error) {
	minimum := int64(-1) << (bits - 1)
	maximum := -(minimum + 1)

	switch n := v.(type) {
	case string:
		parsed, err := strconv.ParseInt(n, 10, bits)
		if err != nil {
			return 0, &ParseError{Input: n, Err: err}
		}
		return parsed, nil
	case int64:
		return checkRange(n, minimum, maximum, v)
	case int:
		return checkRange(int64(n), minimum, maximum, v)
	case int32:
		return checkRange(int64(n), minimum, maximum, v)
	case uint64:
		if n > math.MaxInt64 {
			return 0, &TypeError{Expected: integerName(bits), Got: v}
		}
		return checkRange(int64(n), minimum, maximum, v)
	}

	f, ok := toFloat(v)
	if !ok {
		return 0, &TypeError{Expected: "number or string", Got: v}
	}
	// float64(maximum) rounds up to 2^63 for 64 bits, hence the strict bound
	if f != math.Trunc(f) || f < float64(minimum) || f >= -float64(minimum) {
		return 0, &TypeError{Expected: integerName(bits), Got: v}
	}
	return int64(f), nil
}

func checkRange(n, minimum, maximum int64, v Value) (int64, error) {
	if n < minimum || n > maximum {
		return 0, &TypeError{Expected: "in-range integer", Got: v}
	}
	return n, nil
}

func integerName(bits int) string {
	if bits == 32 {
		return "32-bit integer"
	}
	return "64-bit integer"
}

func toFloat(v Value) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
