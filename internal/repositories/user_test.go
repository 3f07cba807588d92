package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserWriteRepository_Save(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db)
	ctx := context.Background()
	avatar := "https://example.com/alice.png"

	id, err := repo.Save(ctx, "alice", "alice", "digest", &avatar)
	require.NoError(t, err)
	assert.Positive(t, id)

	var user struct {
		Username     string  `db:"username"`
		Email        string  `db:"email"`
		PasswordHash string  `db:"hashed_password"`
		Avatar       *string `db:"avatar"`
	}
	err = db.Get(&user, "SELECT username, email, hashed_password, avatar FROM users WHERE id=$1", id)
	require.NoError(t, err)

	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice", user.Email)
	assert.Equal(t, "digest", user.PasswordHash)
	assert.Equal(t, &avatar, user.Avatar)

	t.Run("duplicate username", func(t *testing.T) {
		_, err := repo.Save(ctx, "alice", "alice-2", "digest", nil)
		assert.ErrorIs(t, err, ErrUniqueViolation)
	})
}

func TestUserReadRepository_GetByUsername(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	_, err := writeRepo.Save(ctx, "charlie", "charlie", "secret", nil)
	require.NoError(t, err)

	t.Run("existing user", func(t *testing.T) {
		user, err := readRepo.GetByUsername(ctx, "charlie")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "charlie", user.Username)
		assert.Equal(t, "secret", user.PasswordHash)
		assert.Nil(t, user.Avatar)
		assert.False(t, user.CreatedAt.IsZero())
	})

	t.Run("missing user", func(t *testing.T) {
		user, err := readRepo.GetByUsername(ctx, "nobody")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}
