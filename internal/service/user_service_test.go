package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopmatic/internal/entity"
)

func validSignup(id string) NewUserParams {
	return NewUserParams{
		ID:     id,
		Name:   "Abhi",
		Email:  "abhi@example.com",
		Photo:  "https://example.com/abhi.png",
		Gender: "male",
		DOB:    time.Date(1999, time.March, 2, 0, 0, 0, 0, time.UTC),
	}
}

func TestUserUpsertCreates(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	user, err := svc.Upsert(context.Background(), validSignup("u1"))
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.Equal(t, 1, repo.calls["Create"])
}

func TestUserUpsertExistingReturnsUnchanged(t *testing.T) {
	repo := newFakeUserRepo()
	repo.add(&entity.User{ID: "u1", Name: "Original", Email: "orig@example.com", Role: entity.RoleAdmin})
	svc := NewUserService(repo)

	params := validSignup("u1")
	params.Name = "Imposter"

	user, err := svc.Upsert(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, "Original", user.Name)
	assert.Equal(t, entity.RoleAdmin, user.Role)
	assert.Zero(t, repo.calls["Create"])
}

func TestUserUpsertRequiresFields(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	params := validSignup("u1")
	params.Gender = ""

	_, err := svc.Upsert(context.Background(), params)

	var reqErr *entity.Error
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, "Please Fill all the Fields", reqErr.Message)
}

func TestUserGetUnknown(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.GetByID(context.Background(), "missing")

	var reqErr *entity.Error
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, "Invalid Id", reqErr.Message)
}

func TestUserDelete(t *testing.T) {
	repo := newFakeUserRepo()
	repo.add(&entity.User{ID: "u1", Name: "Abhi"})
	svc := NewUserService(repo)

	require.NoError(t, svc.Delete(context.Background(), "u1"))
	assert.Error(t, svc.Delete(context.Background(), "u1"))
}
