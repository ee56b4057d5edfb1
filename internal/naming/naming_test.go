package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasicClassName(t *testing.T) {
	// Test: every segment is upper-camel-cased, separators are dropped
	testCases := []struct {
		input    string
		expected string
	}{
		{"accountAddress", "AccountAddress"},
		{"raw.fullAccountState", "RawFullAccountState"},
		{"wallet_v3.initialAccountState", "WalletV3InitialAccountState"},
		{"key_store_type_directory", "KeyStoreTypeDirectory"},
		{"smc.runGetMethod", "SmcRunGetMethod"},
		{"__leading", "Leading"},
		{"trailing__", "Trailing"},
		{"ok", "Ok"},
		{"", ""},
		{"...", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, BasicClassName(tc.input))
		})
	}
}

func TestFieldName(t *testing.T) {
	// Test: first segment lower-cased, the rest upper-camel-cased
	testCases := []struct {
		input    string
		expected string
	}{
		{"account_address", "accountAddress"},
		{"AccountAddress", "accountAddress"},
		{"id", "id"},
		{"bounceable", "bounceable"},
		{"private_key.public_key", "privateKeyPublicKey"},
		{"wallet_v3", "walletV3"},
		{"_type", "type"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, FieldName(tc.input))
		})
	}
}

func TestBasicClassName_Idempotent(t *testing.T) {
	// Test: canonical names map to themselves
	inputs := []string{"accountAddress", "raw.message", "key_store_type_in_memory", "a.b.c", "X9"}
	for _, input := range inputs {
		once := BasicClassName(input)
		assert.Equal(t, once, BasicClassName(once), "input %q", input)

		field := FieldName(input)
		assert.Equal(t, field, FieldName(field), "input %q", input)
	}
}

func TestBasicClassName_Deterministic(t *testing.T) {
	// Test: repeated calls give identical output
	for i := 0; i < 10; i++ {
		assert.Equal(t, "RawTransaction", BasicClassName("raw.transaction"))
	}
}

func TestGoName(t *testing.T) {
	assert.Equal(t, "AccountAddress", GoName("account_address"))
	assert.Equal(t, "X2fa", GoName("2fa"))
	assert.Equal(t, "X", GoName("__"))
}

func TestUnexported(t *testing.T) {
	assert.Equal(t, "accountAddress", Unexported("AccountAddress"))
	assert.Equal(t, "", Unexported(""))
	assert.Equal(t, "x", Unexported("X"))
}
