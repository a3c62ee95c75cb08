package repos

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trabajitos-sv/trabajitos-api/internal/db/models"
)

func TestUserCreateAndLookup(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewUserRepository(gdb)
	ctx := context.Background()

	user := &models.User{
		Name:           "Ana",
		Phone:          "7777-7777",
		Email:          "ana@example.com",
		HashedPassword: "hashed",
	}
	require.NoError(t, repo.Create(ctx, user))
	require.NotZero(t, user.ID)

	t.Run("duplicate email", func(t *testing.T) {
		err := repo.Create(ctx, &models.User{
			Name:           "Other Ana",
			Phone:          "6666-6666",
			Email:          "ana@example.com",
			HashedPassword: "hashed",
		})
		assert.ErrorIs(t, err, models.ErrDuplicateEmail)
	})

	got, err := repo.GetByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, models.ErrUserNotFound)

	_, err = repo.GetByID(ctx, 9999)
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}

func TestUserTokensPersistAsJSON(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewUserRepository(gdb)
	ctx := context.Background()

	user := createTestUser(t, gdb, "ana@example.com")
	user.PushToken("token-one")
	user.PushToken("token-two")
	require.NoError(t, repo.Save(ctx, user))

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"token-two", "token-one"}, got.Tokens)
	assert.True(t, got.HoldsToken("token-one"))
	assert.False(t, got.HoldsToken("token-three"))
}

func TestUserResetTokenLookup(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewUserRepository(gdb)
	ctx := context.Background()

	user := createTestUser(t, gdb, "ana@example.com")
	user.PassResetToken = "hashed-code"
	user.PassResetExpires = time.Now().Add(10 * time.Minute).Unix()
	require.NoError(t, repo.Save(ctx, user))

	got, err := repo.GetByResetToken(ctx, "hashed-code", time.Now().Unix())
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	t.Run("wrong code", func(t *testing.T) {
		_, err := repo.GetByResetToken(ctx, "other-code", time.Now().Unix())
		assert.ErrorIs(t, err, models.ErrResetCodeInvalid)
	})

	t.Run("expired code", func(t *testing.T) {
		_, err := repo.GetByResetToken(ctx, "hashed-code", time.Now().Add(11*time.Minute).Unix())
		assert.ErrorIs(t, err, models.ErrResetCodeInvalid)
	})
}

func TestUserList(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewUserRepository(gdb)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		createTestUser(t, gdb, fmt.Sprintf("user%d@example.com", i))
	}

	page, err := repo.List(ctx, &models.ListOptions{Page: 1, PageSize: 3})
	require.NoError(t, err)
	assert.Len(t, page.Items, 3)
	assert.Equal(t, int64(4), page.Total)
}
