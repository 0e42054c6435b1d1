package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"synergysphere/internal/dto"
	"synergysphere/internal/model"
	pkgErrors "synergysphere/pkg/errors"
)

func TestCreateTaskWithAssignees(t *testing.T) {
	e := newEnv(t)
	alice := e.createUser(t, "alice@example.com", "Alice")
	bob := e.createUser(t, "bob@example.com", "Bob")
	outsider := e.createUser(t, "eve@example.com", "Eve")
	project := e.createProject(t, alice.ID, "Project")
	e.addMember(t, project.ID, bob.ID, "member")

	due := "2026-09-15"
	task, err := e.tasks.Create(project.ID, alice.ID, &dto.CreateTaskRequest{
		Title:       "Ship the thing",
		Status:      "in_progress",
		DueDate:     &due,
		AssigneeIDs: []string{bob.ID, outsider.ID, bob.ID},
	})
	require.NoError(t, err)
	require.NotEmpty(t, task.ID)
	assert.Equal(t, "in_progress", task.Status)
	require.NotNil(t, task.DueDate)

	// 非成员被过滤, 重复去重
	var assignees []*model.TaskAssignee
	require.NoError(t, e.db.Where("task_id = ?", task.ID).Find(&assignees).Error)
	require.Len(t, assignees, 1)
	assert.Equal(t, bob.ID, assignees[0].UserID)

	// 受派人收到通知
	var notifications []*model.Notification
	require.NoError(t, e.db.Where("user_id = ?", bob.ID).Find(&notifications).Error)
	require.Len(t, notifications, 1)
	assert.Equal(t, "task_assigned", notifications[0].Type)
}

func TestTaskListFilters(t *testing.T) {
	e := newEnv(t)
	alice := e.createUser(t, "alice@example.com", "Alice")
	project := e.createProject(t, alice.ID, "Project")

	for _, tc := range []struct {
		title  string
		status string
	}{
		{"Write docs", "todo"},
		{"Fix login bug", "in_progress"},
		{"Deploy release", "done"},
	} {
		_, err := e.tasks.Create(project.ID, alice.ID, &dto.CreateTaskRequest{
			Title: tc.title, Status: tc.status,
		})
		require.NoError(t, err)
	}

	resp, err := e.tasks.ListByProject(project.ID, alice.ID, &dto.TaskListQuery{Status: "todo"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Total)

	resp, err = e.tasks.ListByProject(project.ID, alice.ID, &dto.TaskListQuery{Q: "LOGIN"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Total)

	resp, err = e.tasks.ListByProject(project.ID, alice.ID, &dto.TaskListQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.Total)
}

func TestTaskUpdateByMember(t *testing.T) {
	e := newEnv(t)
	alice := e.createUser(t, "alice@example.com", "Alice")
	bob := e.createUser(t, "bob@example.com", "Bob")
	project := e.createProject(t, alice.ID, "Project")
	e.addMember(t, project.ID, bob.ID, "member")
	task := e.createTask(t, project.ID, alice.ID, "Task")

	status := "done"
	updated, err := e.tasks.Update(task.ID, bob.ID, &dto.UpdateTaskRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "done", updated.Status)
}

func TestTaskDeleteRights(t *testing.T) {
	e := newEnv(t)
	alice := e.createUser(t, "alice@example.com", "Alice")
	bob := e.createUser(t, "bob@example.com", "Bob")
	project := e.createProject(t, alice.ID, "Project")
	e.addMember(t, project.ID, bob.ID, "member")
	task := e.createTask(t, project.ID, alice.ID, "Task")

	// 普通成员不是任务创建者, 不能删除
	err := e.tasks.Delete(task.ID, bob.ID)
	assert.ErrorIs(t, err, pkgErrors.ErrForbidden)

	// 自己创建的任务可以删除
	mine := e.createTask(t, project.ID, bob.ID, "Bob's task")
	require.NoError(t, e.tasks.Delete(mine.ID, bob.ID))

	// 项目创建者可删除任何任务
	require.NoError(t, e.tasks.Delete(task.ID, alice.ID))
}

func TestMyTasksAcrossProjects(t *testing.T) {
	e := newEnv(t)
	alice := e.createUser(t, "alice@example.com", "Alice")
	bob := e.createUser(t, "bob@example.com", "Bob")
	p1 := e.createProject(t, alice.ID, "P1")
	p2 := e.createProject(t, alice.ID, "P2")
	e.addMember(t, p1.ID, bob.ID, "member")
	e.addMember(t, p2.ID, bob.ID, "member")

	for _, pid := range []string{p1.ID, p2.ID} {
		_, err := e.tasks.Create(pid, alice.ID, &dto.CreateTaskRequest{
			Title:       "Assigned",
			AssigneeIDs: []string{bob.ID},
		})
		require.NoError(t, err)
	}

	resp, err := e.tasks.ListMine(bob.ID, &dto.MyTasksQuery{})
	require.NoError(t, err)
	require.Equal(t, int64(2), resp.Total)

	items := resp.Items.([]*dto.MyTaskItem)
	assert.NotEmpty(t, items[0].ProjectName)

	// 按项目过滤
	resp, err = e.tasks.ListMine(bob.ID, &dto.MyTasksQuery{ProjectID: p1.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Total)
}
