package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRegisterAndAuthenticate(t *testing.T) {
	s := NewUserService(newTestDB(t))
	user, err := s.Register("jdoe", "jdoe@example.org", "s3cret")
	require.NoError(t, err)
	assert.NotZero(t, user.Id)
	assert.NotEqual(t, "s3cret", user.PasswordHash)

	// Login works with the username or the email.
	assert.NotNil(t, s.Authenticate("jdoe", "s3cret"))
	assert.NotNil(t, s.Authenticate("jdoe@example.org", "s3cret"))

	// Wrong password and unknown identifier both come back nil.
	assert.Nil(t, s.Authenticate("jdoe", "wrong"))
	assert.Nil(t, s.Authenticate("nobody", "s3cret"))
}

func TestUserRegisterRejectsDuplicates(t *testing.T) {
	s := NewUserService(newTestDB(t))
	_, err := s.Register("jdoe", "jdoe@example.org", "s3cret")
	require.NoError(t, err)

	_, err = s.Register("jdoe", "other@example.org", "s3cret")
	assert.ErrorIs(t, err, ErrUserExists)

	_, err = s.Register("other", "jdoe@example.org", "s3cret")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestUserUpsertResetsPassword(t *testing.T) {
	s := NewUserService(newTestDB(t))
	first, err := s.Upsert("admin", "admin@example.org", "old-pass")
	require.NoError(t, err)

	second, err := s.Upsert("admin", "root@example.org", "new-pass")
	require.NoError(t, err)
	assert.Equal(t, first.Id, second.Id)

	assert.Nil(t, s.Authenticate("admin", "old-pass"))
	user := s.Authenticate("admin", "new-pass")
	require.NotNil(t, user)
	assert.Equal(t, "root@example.org", user.Email)
}
