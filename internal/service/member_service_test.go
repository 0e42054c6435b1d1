package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"synergysphere/internal/dto"
	pkgErrors "synergysphere/pkg/errors"
)

func TestMemberAddIsUpsert(t *testing.T) {
	e := newEnv(t)
	alice := e.createUser(t, "alice@example.com", "Alice")
	bob := e.createUser(t, "bob@example.com", "Bob")
	project := e.createProject(t, alice.ID, "Project")

	item, err := e.members.Add(project.ID, alice.ID, &dto.AddMemberRequest{UserID: bob.ID})
	require.NoError(t, err)
	assert.Equal(t, "member", item.Role)

	// 重复添加覆盖角色而不是报错
	item, err = e.members.Add(project.ID, alice.ID, &dto.AddMemberRequest{UserID: bob.ID, Role: "admin"})
	require.NoError(t, err)
	assert.Equal(t, "admin", item.Role)

	items, err := e.members.List(project.ID, alice.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestMemberUpdateRole(t *testing.T) {
	e := newEnv(t)
	alice := e.createUser(t, "alice@example.com", "Alice")
	bob := e.createUser(t, "bob@example.com", "Bob")
	project := e.createProject(t, alice.ID, "Project")
	e.addMember(t, project.ID, bob.ID, "member")

	item, err := e.members.UpdateRole(project.ID, alice.ID, bob.ID, &dto.UpdateMemberRequest{Role: "viewer"})
	require.NoError(t, err)
	assert.Equal(t, "viewer", item.Role)

	// 不存在的成员 → 404
	carol := e.createUser(t, "carol@example.com", "Carol")
	_, err = e.members.UpdateRole(project.ID, alice.ID, carol.ID, &dto.UpdateMemberRequest{Role: "admin"})
	assert.ErrorIs(t, err, pkgErrors.ErrMemberNotFound)
}

func TestMemberSelfLeave(t *testing.T) {
	e := newEnv(t)
	alice := e.createUser(t, "alice@example.com", "Alice")
	bob := e.createUser(t, "bob@example.com", "Bob")
	project := e.createProject(t, alice.ID, "Project")
	e.addMember(t, project.ID, bob.ID, "member")

	// 普通成员可主动退出
	require.NoError(t, e.members.Remove(project.ID, bob.ID, bob.ID))

	items, err := e.members.List(project.ID, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestMemberRemoveRequiresManage(t *testing.T) {
	e := newEnv(t)
	alice := e.createUser(t, "alice@example.com", "Alice")
	bob := e.createUser(t, "bob@example.com", "Bob")
	carol := e.createUser(t, "carol@example.com", "Carol")
	project := e.createProject(t, alice.ID, "Project")
	e.addMember(t, project.ID, bob.ID, "member")
	e.addMember(t, project.ID, carol.ID, "member")

	err := e.members.Remove(project.ID, bob.ID, carol.ID)
	assert.ErrorIs(t, err, pkgErrors.ErrForbidden)

	require.NoError(t, e.members.Remove(project.ID, alice.ID, carol.ID))
}

func TestMemberGetJoinsUserFields(t *testing.T) {
	e := newEnv(t)
	alice := e.createUser(t, "alice@example.com", "Alice")
	bob := e.createUser(t, "bob@example.com", "Bob")
	project := e.createProject(t, alice.ID, "Project")
	e.addMember(t, project.ID, bob.ID, "member")

	item, err := e.members.Get(project.ID, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bob", item.FullName)
	assert.Equal(t, "bob@example.com", item.Email)
}
