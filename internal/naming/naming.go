// Package naming derives generated identifiers from raw schema names.
//
// Every function here is pure: generated output is diffed against the output
// of previous runs, so the same raw name must always produce the same result.
package naming

import "strings"

// BasicClassName upper-camel-cases every segment of raw. Segments are separated
// by any character that is not an ASCII letter or digit.
//
//	accountAddress       -> AccountAddress
//	raw.fullAccountState -> RawFullAccountState
//	wallet_v3.init       -> WalletV3Init
func BasicClassName(raw string) string {
	return join(segments(raw), true)
}

// FieldName is BasicClassName with a lower-case first segment
//
//	account_address -> accountAddress
//	AccountAddress  -> accountAddress
func FieldName(raw string) string {
	return join(segments(raw), false)
}

// GoName returns BasicClassName(raw) as an exported Go identifier
func GoName(raw string) string {
	name := BasicClassName(raw)
	if name == "" {
		return "X"
	}
	if isDigit(name[0]) {
		return "X" + name
	}
	return name
}

// Unexported lower-cases the first letter of an identifier
func Unexported(name string) string {
	if name == "" {
		return ""
	}
	return strings.ToLower(name[:1]) + name[1:]
}

func segments(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		return !isAlnum(r)
	})
}

func join(parts []string, upperFirst bool) string {
	var sb strings.Builder
	for i, part := range parts {
		if i == 0 && !upperFirst {
			sb.WriteString(strings.ToLower(part[:1]))
		} else {
			sb.WriteString(strings.ToUpper(part[:1]))
		}
		sb.WriteString(part[1:])
	}
	return sb.String()
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
