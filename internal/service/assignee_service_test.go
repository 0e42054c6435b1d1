package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"synergysphere/internal/dto"
	pkgErrors "synergysphere/pkg/errors"
)

func TestAssigneeBatchSummary(t *testing.T) {
	e := newEnv(t)
	alice := e.createUser(t, "alice@example.com", "Alice")
	bob := e.createUser(t, "bob@example.com", "Bob")
	outsider := e.createUser(t, "eve@example.com", "Eve")
	project := e.createProject(t, alice.ID, "Project")
	e.addMember(t, project.ID, bob.ID, "member")
	task := e.createTask(t, project.ID, alice.ID, "Task")

	resp, err := e.assign.Add(task.ID, alice.ID, &dto.AddAssigneesRequest{
		UserIDs: []string{bob.ID, outsider.ID, "not-a-uuid"},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Summary.Requested)
	assert.Equal(t, 1, resp.Summary.Invalid)
	assert.Equal(t, 1, resp.Summary.NotMembers)
	assert.Equal(t, 0, resp.Summary.AlreadyAssigned)
	assert.Equal(t, 1, resp.Summary.Inserted)
	require.Len(t, resp.Added, 1)
	assert.Equal(t, bob.ID, resp.Added[0].UserID)
}

func TestAssigneeReAddIsIdempotent(t *testing.T) {
	e := newEnv(t)
	alice := e.createUser(t, "alice@example.com", "Alice")
	bob := e.createUser(t, "bob@example.com", "Bob")
	project := e.createProject(t, alice.ID, "Project")
	e.addMember(t, project.ID, bob.ID, "member")
	task := e.createTask(t, project.ID, alice.ID, "Task")

	_, err := e.assign.Add(task.ID, alice.ID, &dto.AddAssigneesRequest{UserID: bob.ID})
	require.NoError(t, err)

	// 重复指派不报错, 计入 alreadyAssigned
	resp, err := e.assign.Add(task.ID, alice.ID, &dto.AddAssigneesRequest{UserID: bob.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Summary.AlreadyAssigned)
	assert.Equal(t, 0, resp.Summary.Inserted)
	assert.Empty(t, resp.Added)
}

func TestProjectCreatorIsAssignable(t *testing.T) {
	e := newEnv(t)
	alice := e.createUser(t, "alice@example.com", "Alice")
	project := e.createProject(t, alice.ID, "Project")
	task := e.createTask(t, project.ID, alice.ID, "Task")

	// 创建者没有成员行, 但可被指派
	resp, err := e.assign.Add(task.ID, alice.ID, &dto.AddAssigneesRequest{UserID: alice.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Summary.Inserted)
}

func TestAssigneeRemoveRights(t *testing.T) {
	e := newEnv(t)
	alice := e.createUser(t, "alice@example.com", "Alice")
	bob := e.createUser(t, "bob@example.com", "Bob")
	carol := e.createUser(t, "carol@example.com", "Carol")
	project := e.createProject(t, alice.ID, "Project")
	e.addMember(t, project.ID, bob.ID, "member")
	e.addMember(t, project.ID, carol.ID, "member")
	task := e.createTask(t, project.ID, alice.ID, "Task")

	_, err := e.assign.Add(task.ID, alice.ID, &dto.AddAssigneesRequest{UserIDs: []string{bob.ID, carol.ID}})
	require.NoError(t, err)

	// 普通成员不能移除他人
	err = e.assign.Remove(task.ID, bob.ID, carol.ID)
	assert.ErrorIs(t, err, pkgErrors.ErrForbidden)

	// 本人可以移除自己
	require.NoError(t, e.assign.Remove(task.ID, bob.ID, bob.ID))

	// 管理者可以移除任何人
	require.NoError(t, e.assign.Remove(task.ID, alice.ID, carol.ID))

	items, err := e.assign.List(task.ID, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestMemberCannotAssign(t *testing.T) {
	e := newEnv(t)
	alice := e.createUser(t, "alice@example.com", "Alice")
	bob := e.createUser(t, "bob@example.com", "Bob")
	project := e.createProject(t, alice.ID, "Project")
	e.addMember(t, project.ID, bob.ID, "member")
	task := e.createTask(t, project.ID, alice.ID, "Task")

	// 非管理者且非任务创建者
	_, err := e.assign.Add(task.ID, bob.ID, &dto.AddAssigneesRequest{UserID: bob.ID})
	assert.ErrorIs(t, err, pkgErrors.ErrForbidden)
}
