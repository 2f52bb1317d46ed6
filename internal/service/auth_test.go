package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treasuretrails/park-api/internal/domain"
	"github.com/treasuretrails/park-api/internal/repository"
)

type fakeUserRepo struct {
	nextID uint
	users  map[string]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: map[string]domain.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, user domain.User) (domain.User, error) {
	if _, ok := f.users[user.Email]; ok {
		return domain.User{}, repository.ErrUserEmailExists
	}
	user.ID = f.nextID
	f.nextID++
	f.users[user.Email] = user
	return user, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	user, ok := f.users[email]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}
	return user, nil
}

func TestAuthService_Signup(t *testing.T) {
	t.Parallel()

	t.Run("hashes the password", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewAuthService(repo)

		created, err := svc.Signup(context.Background(), domain.User{
			Email:    "pat@example.com",
			Password: "Password1",
			Name:     "Pat",
		})
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.NotEqual(t, "Password1", repo.users["pat@example.com"].Password)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewAuthService(repo)

		_, err := svc.Signup(context.Background(), domain.User{Email: "pat@example.com", Password: "Password1"})
		require.NoError(t, err)

		_, err = svc.Signup(context.Background(), domain.User{Email: "pat@example.com", Password: "Password2"})
		require.ErrorIs(t, err, ErrUserEmailExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := NewAuthService(repo)

	_, err := svc.Signup(context.Background(), domain.User{Email: "pat@example.com", Password: "Password1"})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.Login(context.Background(), "pat@example.com", "Password1")
		require.NoError(t, err)
		assert.Equal(t, "pat@example.com", user.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "pat@example.com", "nope")
		require.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "ghost@example.com", "Password1")
		require.ErrorIs(t, err, ErrUserNotFound)
	})
}
