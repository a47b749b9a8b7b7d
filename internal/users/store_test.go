package users

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestFindByID(t *testing.T) {
	store := NewInMemory(
		Record{ID: 1, Username: "test", Password: "test"},
		Record{ID: 2, Username: "other", Password: "pw"},
	)

	r, err := store.FindByID(2)
	require.NoError(t, err)
	assert.Equal(t, "other", r.Username)

	_, err = store.FindByID(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindByCredentials(t *testing.T) {
	store := NewInMemory(
		Record{ID: 1, Username: "test", Password: "test"},
		Record{ID: 2, Username: "test", Password: "second"},
	)

	r, err := store.FindByCredentials("test", "test")
	require.NoError(t, err)
	assert.Equal(t, 1, r.ID, "first match in store order wins")

	r, err = store.FindByCredentials("test", "second")
	require.NoError(t, err)
	assert.Equal(t, 2, r.ID, "username collision still scans forward")
}

func TestFindByCredentialsInvalid(t *testing.T) {
	store := NewInMemory()

	for _, tc := range []struct{ username, password string }{
		{"test", "wrong"},
		{"nobody", "test"},
		{"", ""},
	} {
		_, err := store.FindByCredentials(tc.username, tc.password)
		assert.ErrorIs(t, err, ErrInvalidCredentials, "%s/%s", tc.username, tc.password)
	}
}

func TestFindByCredentialsBcrypt(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	store := NewInMemory(
		Record{ID: 7, Username: "hashed", PasswordHash: string(hash)},
	)

	r, err := store.FindByCredentials("hashed", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, 7, r.ID)

	_, err = store.FindByCredentials("hashed", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// The stored hash is never accepted as the password itself.
	_, err = store.FindByCredentials("hashed", string(hash))
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestDefaultSeed(t *testing.T) {
	store := NewInMemory()

	r, err := store.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, "test", r.Username)
}
