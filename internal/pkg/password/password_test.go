package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	Cost = bcrypt.MinCost
	t.Cleanup(func() { Cost = DefaultCost })

	hash, err := Hash("kamar123")
	require.NoError(t, err)
	assert.NotEqual(t, "kamar123", hash)
	assert.True(t, Verify("kamar123", hash))
	assert.False(t, Verify("kamar124", hash))
}

func TestHashToken(t *testing.T) {
	a := HashToken("token")
	assert.Len(t, a, 64)
	assert.Equal(t, a, HashToken("token"))
	assert.NotEqual(t, a, HashToken("token2"))
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"abc123", false},
		{"abcdefgh", false},
		{"12345678", false},
		{"abcdefg1", true},
		{"kamarKost2024", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidatePassword(tt.in))
		})
	}
}
