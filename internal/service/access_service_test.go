package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"synergysphere/internal/dto"
	"synergysphere/internal/model"
	pkgErrors "synergysphere/pkg/errors"
)

func TestNonMemberGets404(t *testing.T) {
	e := newEnv(t)
	alice := e.createUser(t, "alice@example.com", "Alice")
	bob := e.createUser(t, "bob@example.com", "Bob")
	project := e.createProject(t, alice.ID, "Secret Project")

	_, err := e.projects.GetByID(project.ID, bob.ID)
	assert.ErrorIs(t, err, pkgErrors.ErrProjectNotFound)

	// 任务列表同样不可见
	_, err = e.tasks.ListByProject(project.ID, bob.ID, &dto.TaskListQuery{})
	assert.ErrorIs(t, err, pkgErrors.ErrProjectNotFound)
}

func TestMembershipGrantsVisibility(t *testing.T) {
	e := newEnv(t)
	alice := e.createUser(t, "alice@example.com", "Alice")
	bob := e.createUser(t, "bob@example.com", "Bob")
	project := e.createProject(t, alice.ID, "Shared Project")

	_, err := e.projects.GetByID(project.ID, bob.ID)
	require.ErrorIs(t, err, pkgErrors.ErrProjectNotFound)

	// 添加成员后可见
	_, err = e.members.Add(project.ID, alice.ID, &dto.AddMemberRequest{UserID: bob.ID})
	require.NoError(t, err)

	got, err := e.projects.GetByID(project.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, project.ID, got.ID)
}

func TestViewerCannotManageMembers(t *testing.T) {
	e := newEnv(t)
	alice := e.createUser(t, "alice@example.com", "Alice")
	bob := e.createUser(t, "bob@example.com", "Bob")
	carol := e.createUser(t, "carol@example.com", "Carol")
	project := e.createProject(t, alice.ID, "Project")
	e.addMember(t, project.ID, bob.ID, "viewer")

	// viewer 可以读成员列表
	items, err := e.members.List(project.ID, bob.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	// 但不能添加成员
	_, err = e.members.Add(project.ID, bob.ID, &dto.AddMemberRequest{UserID: carol.ID})
	assert.ErrorIs(t, err, pkgErrors.ErrForbidden)
}

func TestAdminCanManage(t *testing.T) {
	e := newEnv(t)
	alice := e.createUser(t, "alice@example.com", "Alice")
	bob := e.createUser(t, "bob@example.com", "Bob")
	carol := e.createUser(t, "carol@example.com", "Carol")
	project := e.createProject(t, alice.ID, "Project")
	e.addMember(t, project.ID, bob.ID, "admin")

	item, err := e.members.Add(project.ID, bob.ID, &dto.AddMemberRequest{UserID: carol.ID, Role: "member"})
	require.NoError(t, err)
	assert.Equal(t, carol.ID, item.UserID)
	assert.Equal(t, "member", item.Role)
}

func TestOnlyCreatorCanUpdateProject(t *testing.T) {
	e := newEnv(t)
	alice := e.createUser(t, "alice@example.com", "Alice")
	bob := e.createUser(t, "bob@example.com", "Bob")
	project := e.createProject(t, alice.ID, "Project")
	e.addMember(t, project.ID, bob.ID, "admin")

	name := "Renamed"
	_, err := e.projects.Update(project.ID, bob.ID, &dto.UpdateProjectRequest{Name: &name})
	assert.ErrorIs(t, err, pkgErrors.ErrForbidden)

	updated, err := e.projects.Update(project.ID, alice.ID, &dto.UpdateProjectRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
}

func TestProjectListIsMembershipAware(t *testing.T) {
	e := newEnv(t)
	alice := e.createUser(t, "alice@example.com", "Alice")
	bob := e.createUser(t, "bob@example.com", "Bob")
	owned := e.createProject(t, alice.ID, "Owned")
	joined := e.createProject(t, bob.ID, "Joined")
	e.createProject(t, bob.ID, "Hidden")
	e.addMember(t, joined.ID, alice.ID, "member")

	resp, err := e.projects.List(alice.ID, &dto.ProjectListQuery{})
	require.NoError(t, err)
	require.Equal(t, int64(2), resp.Total)

	ids := map[string]bool{}
	for _, p := range resp.Items.([]*model.Project) {
		ids[p.ID] = true
	}
	assert.True(t, ids[owned.ID])
	assert.True(t, ids[joined.ID])
}
