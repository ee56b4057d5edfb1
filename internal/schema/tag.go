package schema

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Tag is the stable 32-bit identifier of a constructor or function
type Tag int32

// ParseTag parses a decimal or 0x-prefixed hexadecimal tag. Values above the
// int32 range are reinterpreted as unsigned 32-bit identifiers.
func ParseTag(s string) (Tag, error) {
	s = strings.TrimSpace(s)
	neg := strings.HasPrefix(s, "-")
	digits := strings.TrimPrefix(s, "-")

	base := 10
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		base = 16
		digits = digits[2:]
	}

	v, err := strconv.ParseUint(digits, base, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTag, s)
	}
	if neg {
		if v > 1<<31 {
			return 0, fmt.Errorf("%w: %q out of range", ErrInvalidTag, s)
		}
		return Tag(-int64(v)), nil
	}
	return Tag(int32(uint32(v))), nil
}

// String renders the tag as unsigned hexadecimal, the way schema listings print it
func (t Tag) String() string {
	return fmt.Sprintf("0x%08x", uint32(t))
}

// UnmarshalJSON accepts a JSON number or a string holding a decimal or hex tag
func (t *Tag) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		s = string(data)
	}
	parsed, err := ParseTag(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// UnmarshalYAML accepts decimal and hexadecimal scalars
func (t *Tag) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: expected a scalar", ErrInvalidTag, value.Line)
	}
	parsed, err := ParseTag(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*t = parsed
	return nil
}
