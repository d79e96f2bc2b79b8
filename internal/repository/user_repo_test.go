package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"product-api/internal/model"
)

func TestUserRepositoryCreateAndFind(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	user := model.User{ID: "u1", Email: "a@x.com", PasswordHash: "hash", Name: "A"}

	require.NoError(t, repo.Create(context.Background(), user))

	byEmail, err := repo.FindByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.Equal(t, user, byEmail)

	byID, err := repo.FindByID(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, user, byID)
}

func TestUserRepositoryEmailIsCaseSensitive(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	require.NoError(t, repo.Create(context.Background(), model.User{ID: "u1", Email: "A@x.com"}))

	_, err := repo.FindByEmail(context.Background(), "a@x.com")
	require.ErrorIs(t, err, model.ErrUserNotFound)
}

func TestUserRepositoryRejectsDuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	require.NoError(t, repo.Create(context.Background(), model.User{ID: "u1", Email: "a@x.com"}))

	err := repo.Create(context.Background(), model.User{ID: "u2", Email: "a@x.com"})
	require.ErrorIs(t, err, model.ErrUserAlreadyExists)

	// The original record is untouched.
	user, err := repo.FindByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.Equal(t, "u1", user.ID)
}

func TestUserRepositoryConcurrentCreateSameEmail(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()

	const attempts = 16
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = repo.Create(context.Background(), model.User{ID: "u", Email: "race@x.com"})
		}(i)
	}
	wg.Wait()

	var successes int
	for _, err := range errs {
		if err == nil {
			successes++
		} else {
			require.True(t, errors.Is(err, model.ErrUserAlreadyExists))
		}
	}
	require.Equal(t, 1, successes)
}

func TestUserRepositoryFindMissing(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()

	_, err := repo.FindByEmail(context.Background(), "nobody@x.com")
	require.ErrorIs(t, err, model.ErrUserNotFound)

	_, err = repo.FindByID(context.Background(), "nope")
	require.ErrorIs(t, err, model.ErrUserNotFound)
}
