package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"synergysphere/internal/dto"
	pkgErrors "synergysphere/pkg/errors"
)

func TestRegisterAndLogin(t *testing.T) {
	e := newEnv(t)

	resp, err := e.auth.Register(&dto.RegisterRequest{
		Email:    "Alice@Example.com",
		Password: "secret123",
		FullName: "Alice",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	// 邮箱统一小写存储
	assert.Equal(t, "alice@example.com", resp.User.Email)

	// 登录时邮箱大小写不敏感
	login, err := e.auth.Login(&dto.LoginRequest{
		Email:    "ALICE@example.COM",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)
	assert.NotEmpty(t, login.Token)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	e := newEnv(t)

	_, err := e.auth.Register(&dto.RegisterRequest{
		Email: "alice@example.com", Password: "secret123", FullName: "Alice",
	})
	require.NoError(t, err)

	_, err = e.auth.Register(&dto.RegisterRequest{
		Email: "ALICE@example.com", Password: "other456", FullName: "Imposter",
	})
	assert.ErrorIs(t, err, pkgErrors.ErrEmailTaken)
}

func TestLoginWrongPassword(t *testing.T) {
	e := newEnv(t)

	_, err := e.auth.Register(&dto.RegisterRequest{
		Email: "alice@example.com", Password: "secret123", FullName: "Alice",
	})
	require.NoError(t, err)

	_, err = e.auth.Login(&dto.LoginRequest{Email: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, pkgErrors.ErrInvalidCredentials)

	// 不存在的账号返回同样的错误
	_, err = e.auth.Login(&dto.LoginRequest{Email: "ghost@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, pkgErrors.ErrInvalidCredentials)
}

func TestChangePassword(t *testing.T) {
	e := newEnv(t)

	resp, err := e.auth.Register(&dto.RegisterRequest{
		Email: "alice@example.com", Password: "secret123", FullName: "Alice",
	})
	require.NoError(t, err)

	err = e.auth.ChangePassword(resp.User.ID, &dto.ChangePasswordRequest{
		CurrentPassword: "wrong", NewPassword: "newpass789",
	})
	require.Error(t, err)

	err = e.auth.ChangePassword(resp.User.ID, &dto.ChangePasswordRequest{
		CurrentPassword: "secret123", NewPassword: "newpass789",
	})
	require.NoError(t, err)

	_, err = e.auth.Login(&dto.LoginRequest{Email: "alice@example.com", Password: "newpass789"})
	assert.NoError(t, err)
}
