package password_test

import (
	"mallbook/shared/password"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name    string
		plain   string
		wantErr error
	}{
		{name: "customer password", plain: "shopper-2025"},
		{name: "unicode password", plain: "kata-sandi-🛍️"},
		{name: "empty", plain: "", wantErr: password.ErrEmptyPassword},
		{name: "longer than bcrypt accepts", plain: strings.Repeat("x", 73), wantErr: password.ErrPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashed, err := password.Hash(tt.plain)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, hashed)

				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, tt.plain, hashed)

			cost, err := bcrypt.Cost([]byte(hashed))
			require.NoError(t, err)
			assert.Equal(t, password.Cost, cost)
		})
	}
}

func TestHashIsSalted(t *testing.T) {
	first, err := password.Hash("same-password")
	require.NoError(t, err)

	second, err := password.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerify(t *testing.T) {
	hashed, err := password.Hash("correct horse")
	require.NoError(t, err)

	tests := []struct {
		name    string
		plain   string
		hashed  string
		wantErr error
	}{
		{name: "match", plain: "correct horse", hashed: hashed},
		{name: "mismatch", plain: "battery staple", hashed: hashed, wantErr: password.ErrInvalidPassword},
		{name: "empty plain", plain: "", hashed: hashed, wantErr: password.ErrInvalidPassword},
		{name: "empty hash", plain: "correct horse", hashed: "", wantErr: password.ErrInvalidPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.plain, tt.hashed)
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("corrupt hash is not a mismatch", func(t *testing.T) {
		err := password.Verify("correct horse", "not-a-bcrypt-hash")

		assert.Error(t, err)
		assert.NotErrorIs(t, err, password.ErrInvalidPassword)
	})
}
