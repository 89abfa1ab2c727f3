package utils_test

import (
	"testing"

	"saarthi/utils"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"9876543210", "+919876543210"},
		{"919876543210", "+919876543210"},
		{"+919876543210", "+919876543210"},
		{"+11234567890", "+11234567890"},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, utils.NormalizePhone(c.raw), "raw %q", c.raw)
	}
}

func TestIsValidPhone(t *testing.T) {
	valid := []string{
		"+919876543210",
		"9876543210",
		"7876543210",
		"8876543210",
		"+91 9876543210",
		"+91-9876543210",
	}
	for _, phone := range valid {
		assert.True(t, utils.IsValidPhone(phone), "phone %q", phone)
	}

	invalid := []string{
		"",
		"12345",
		"6876543210",
		"98765432100",
		"abcdefghij",
		"+91987654321",
	}
	for _, phone := range invalid {
		assert.False(t, utils.IsValidPhone(phone), "phone %q", phone)
	}
}
