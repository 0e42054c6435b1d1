package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"synergysphere/internal/dto"
	"synergysphere/internal/model"
	pkgErrors "synergysphere/pkg/errors"
)

func TestCommentSelfAuthorship(t *testing.T) {
	e := newEnv(t)
	alice := e.createUser(t, "alice@example.com", "Alice")
	bob := e.createUser(t, "bob@example.com", "Bob")
	carol := e.createUser(t, "carol@example.com", "Carol")
	project := e.createProject(t, alice.ID, "Project")
	e.addMember(t, project.ID, bob.ID, "member")
	e.addMember(t, project.ID, carol.ID, "member")
	task := e.createTask(t, project.ID, alice.ID, "Task")

	comment, err := e.comments.Create(task.ID, bob.ID, &dto.CreateCommentRequest{Body: "first"})
	require.NoError(t, err)
	assert.Equal(t, bob.ID, comment.AuthorID)

	// 作者本人可编辑, 无需管理角色
	updated, err := e.comments.Update(comment.ID, bob.ID, &dto.UpdateCommentRequest{Body: "edited"})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Body)

	// 无关成员不能编辑
	_, err = e.comments.Update(comment.ID, carol.ID, &dto.UpdateCommentRequest{Body: "hijack"})
	assert.ErrorIs(t, err, pkgErrors.ErrForbidden)

	// 项目创建者(管理者)可删除
	require.NoError(t, e.comments.Delete(comment.ID, alice.ID))
}

func TestCommentParentMustBelongToTask(t *testing.T) {
	e := newEnv(t)
	alice := e.createUser(t, "alice@example.com", "Alice")
	project := e.createProject(t, alice.ID, "Project")
	t1 := e.createTask(t, project.ID, alice.ID, "T1")
	t2 := e.createTask(t, project.ID, alice.ID, "T2")

	parent, err := e.comments.Create(t1.ID, alice.ID, &dto.CreateCommentRequest{Body: "root"})
	require.NoError(t, err)

	// 跨任务回复被拒绝
	_, err = e.comments.Create(t2.ID, alice.ID, &dto.CreateCommentRequest{
		Body: "reply", ParentCommentID: &parent.ID,
	})
	assert.ErrorIs(t, err, pkgErrors.ErrCommentNotFound)

	// 同任务回复成功
	reply, err := e.comments.Create(t1.ID, alice.ID, &dto.CreateCommentRequest{
		Body: "reply", ParentCommentID: &parent.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, reply.ParentCommentID)
	assert.Equal(t, parent.ID, *reply.ParentCommentID)
}

func TestCommentReplyNotifiesParentAuthor(t *testing.T) {
	e := newEnv(t)
	alice := e.createUser(t, "alice@example.com", "Alice")
	bob := e.createUser(t, "bob@example.com", "Bob")
	project := e.createProject(t, alice.ID, "Project")
	e.addMember(t, project.ID, bob.ID, "member")
	task := e.createTask(t, project.ID, alice.ID, "Task")

	parent, err := e.comments.Create(task.ID, alice.ID, &dto.CreateCommentRequest{Body: "root"})
	require.NoError(t, err)

	_, err = e.comments.Create(task.ID, bob.ID, &dto.CreateCommentRequest{
		Body: "reply", ParentCommentID: &parent.ID,
	})
	require.NoError(t, err)

	var notifications []*model.Notification
	require.NoError(t, e.db.Where("user_id = ?", alice.ID).Find(&notifications).Error)
	require.Len(t, notifications, 1)
	assert.Equal(t, "comment_reply", notifications[0].Type)

	// 回复自己不产生通知
	_, err = e.comments.Create(task.ID, alice.ID, &dto.CreateCommentRequest{
		Body: "self reply", ParentCommentID: &parent.ID,
	})
	require.NoError(t, err)
	require.NoError(t, e.db.Where("user_id = ?", alice.ID).Find(&notifications).Error)
	assert.Len(t, notifications, 1)
}

func TestCommentListPagination(t *testing.T) {
	e := newEnv(t)
	alice := e.createUser(t, "alice@example.com", "Alice")
	project := e.createProject(t, alice.ID, "Project")
	task := e.createTask(t, project.ID, alice.ID, "Task")

	for i := 0; i < 25; i++ {
		_, err := e.comments.Create(task.ID, alice.ID, &dto.CreateCommentRequest{Body: "c"})
		require.NoError(t, err)
	}

	resp, err := e.comments.ListByTask(task.ID, alice.ID, &dto.CommentListQuery{
		PageQuery: dto.PageQuery{Page: "2", Limit: "10"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(25), resp.Total)
	assert.Equal(t, 3, resp.TotalPages)
	assert.True(t, resp.HasPrev)
	assert.True(t, resp.HasNext)
	assert.Len(t, resp.Items.([]*dto.CommentItem), 10)
}
