// File: internal/model/user_test.go
package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	birth := time.Date(1998, 11, 25, 0, 0, 0, 0, time.UTC)
	phone := "11987654321"
	u := NewUser("Alice Souza", "alice@example.com", &phone, "52998224725", birth, "digest")

	_, err := uuid.Parse(u.ID)
	require.NoError(t, err)
	require.Equal(t, "Alice Souza", u.Name)
	require.Equal(t, "alice@example.com", u.Email)
	require.Equal(t, &phone, u.Phone)
	require.Equal(t, "52998224725", u.CPF)
	require.Equal(t, birth, u.BirthDate)
	require.Equal(t, "digest", u.PasswordHash)
	require.True(t, u.FirstAccess)
	require.True(t, u.Active)
	require.False(t, u.CreatedAt.IsZero())
	require.Equal(t, u.CreatedAt, u.UpdatedAt)

	other := NewUser("Bob", "bob@example.com", nil, "11144477735", birth, "digest")
	require.NotEqual(t, u.ID, other.ID)
}

func TestUserUpdate(t *testing.T) {
	birth := time.Date(1998, 11, 25, 0, 0, 0, 0, time.UTC)
	u := NewUser("Alice", "alice@example.com", nil, "52998224725", birth, "digest")
	before := u.UpdatedAt

	time.Sleep(time.Millisecond)
	phone := "11900000000"
	u.Update("Alice Souza", "souza@example.com", &phone)
	require.Equal(t, "Alice Souza", u.Name)
	require.Equal(t, "souza@example.com", u.Email)
	require.Equal(t, &phone, u.Phone)
	require.True(t, u.UpdatedAt.After(before))
	require.Equal(t, before, u.CreatedAt)
}

func TestUserSetPassword(t *testing.T) {
	birth := time.Date(1998, 11, 25, 0, 0, 0, 0, time.UTC)
	u := NewUser("Alice", "alice@example.com", nil, "52998224725", birth, "old")
	before := u.UpdatedAt

	time.Sleep(time.Millisecond)
	u.SetPassword("new", false)
	require.Equal(t, "new", u.PasswordHash)
	require.False(t, u.FirstAccess)
	require.True(t, u.UpdatedAt.After(before))
}

func TestUserDeactivate(t *testing.T) {
	birth := time.Date(1998, 11, 25, 0, 0, 0, 0, time.UTC)
	u := NewUser("Alice", "alice@example.com", nil, "52998224725", birth, "digest")
	before := u.UpdatedAt

	time.Sleep(time.Millisecond)
	u.Deactivate()
	require.False(t, u.Active)
	require.True(t, u.UpdatedAt.After(before))

	again := u.UpdatedAt
	time.Sleep(time.Millisecond)
	u.Deactivate()
	require.False(t, u.Active)
	require.True(t, u.UpdatedAt.After(again))
}
