package utils_test

import (
	"testing"

	"saarthi/models"
	"saarthi/utils"

	"github.com/stretchr/testify/assert"
)

// TestIdentityRoundTrip verifies that encode followed by decode returns the
// original principal.
func TestIdentityRoundTrip(t *testing.T) {
	p := models.Principal{ID: "abc-123", Role: models.RoleVictim, Name: "Priya Sharma"}

	decoded, err := utils.DecodeIdentity(utils.EncodeIdentity(p))

	assert.NoError(t, err)
	assert.Equal(t, p, decoded)
}

// TestDecodeIdentityKeepsColonsInName verifies that only the first two
// delimiters split, so a name containing colons survives decoding.
func TestDecodeIdentityKeepsColonsInName(t *testing.T) {
	decoded, err := utils.DecodeIdentity("id-1:police:Insp. Rao: Unit 7")

	assert.NoError(t, err)
	assert.Equal(t, "id-1", decoded.ID)
	assert.Equal(t, models.RolePolice, decoded.Role)
	assert.Equal(t, "Insp. Rao: Unit 7", decoded.Name)
}

func TestDecodeIdentityMalformed(t *testing.T) {
	cases := []string{"", "no-delimiters", "only:one"}
	for _, input := range cases {
		_, err := utils.DecodeIdentity(input)
		assert.ErrorIs(t, err, utils.ErrMalformedIdentity, "input %q", input)
	}
}

// TestDecodeIdentityEmptyName verifies that a trailing empty name still
// decodes; two delimiters make three fields.
func TestDecodeIdentityEmptyName(t *testing.T) {
	decoded, err := utils.DecodeIdentity("id-1:victim:")

	assert.NoError(t, err)
	assert.Equal(t, "", decoded.Name)
}

func TestValidIdentityName(t *testing.T) {
	assert.True(t, utils.ValidIdentityName("Priya Sharma"))
	assert.False(t, utils.ValidIdentityName("a:b"))
}
