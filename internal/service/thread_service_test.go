package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"synergysphere/internal/dto"
	"synergysphere/internal/model"
	pkgErrors "synergysphere/pkg/errors"
)

func TestThreadLifecycle(t *testing.T) {
	e := newEnv(t)
	alice := e.createUser(t, "alice@example.com", "Alice")
	bob := e.createUser(t, "bob@example.com", "Bob")
	project := e.createProject(t, alice.ID, "Project")
	e.addMember(t, project.ID, bob.ID, "member")

	thread, err := e.threads.Create(project.ID, bob.ID, &dto.CreateThreadRequest{Title: "Kickoff"})
	require.NoError(t, err)
	assert.Equal(t, "Kickoff", thread.Title)
	assert.Equal(t, "Bob", thread.FullName)

	// 作者可重命名
	renamed, err := e.threads.Update(thread.ID, bob.ID, &dto.UpdateThreadRequest{Title: "Kickoff v2"})
	require.NoError(t, err)
	assert.Equal(t, "Kickoff v2", renamed.Title)

	// 非作者普通成员不能删除
	carol := e.createUser(t, "carol@example.com", "Carol")
	e.addMember(t, project.ID, carol.ID, "member")
	err = e.threads.Delete(thread.ID, carol.ID)
	assert.ErrorIs(t, err, pkgErrors.ErrForbidden)

	// 项目创建者可删除
	require.NoError(t, e.threads.Delete(thread.ID, alice.ID))
}

func TestThreadMessageCount(t *testing.T) {
	e := newEnv(t)
	alice := e.createUser(t, "alice@example.com", "Alice")
	project := e.createProject(t, alice.ID, "Project")

	thread, err := e.threads.Create(project.ID, alice.ID, &dto.CreateThreadRequest{Title: "Talk"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := e.messages.Create(thread.ID, alice.ID, &dto.CreateMessageRequest{Body: "hi"})
		require.NoError(t, err)
	}

	got, err := e.threads.GetByID(thread.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.MessageCount)
}

func TestMessageReplyNotification(t *testing.T) {
	e := newEnv(t)
	alice := e.createUser(t, "alice@example.com", "Alice")
	bob := e.createUser(t, "bob@example.com", "Bob")
	project := e.createProject(t, alice.ID, "Project")
	e.addMember(t, project.ID, bob.ID, "member")

	thread, err := e.threads.Create(project.ID, alice.ID, &dto.CreateThreadRequest{Title: "Talk"})
	require.NoError(t, err)

	root, err := e.messages.Create(thread.ID, alice.ID, &dto.CreateMessageRequest{Body: "root"})
	require.NoError(t, err)

	_, err = e.messages.Create(thread.ID, bob.ID, &dto.CreateMessageRequest{
		Body: "reply", ParentMessageID: &root.ID,
	})
	require.NoError(t, err)

	var notifications []*model.Notification
	require.NoError(t, e.db.Where("user_id = ? AND type = ?", alice.ID, "message_reply").
		Find(&notifications).Error)
	assert.Len(t, notifications, 1)
}

func TestMessageParentMustBelongToThread(t *testing.T) {
	e := newEnv(t)
	alice := e.createUser(t, "alice@example.com", "Alice")
	project := e.createProject(t, alice.ID, "Project")

	t1, err := e.threads.Create(project.ID, alice.ID, &dto.CreateThreadRequest{Title: "T1"})
	require.NoError(t, err)
	t2, err := e.threads.Create(project.ID, alice.ID, &dto.CreateThreadRequest{Title: "T2"})
	require.NoError(t, err)

	root, err := e.messages.Create(t1.ID, alice.ID, &dto.CreateMessageRequest{Body: "root"})
	require.NoError(t, err)

	_, err = e.messages.Create(t2.ID, alice.ID, &dto.CreateMessageRequest{
		Body: "cross", ParentMessageID: &root.ID,
	})
	assert.ErrorIs(t, err, pkgErrors.ErrMessageNotFound)
}

func TestThreadHiddenFromNonMember(t *testing.T) {
	e := newEnv(t)
	alice := e.createUser(t, "alice@example.com", "Alice")
	eve := e.createUser(t, "eve@example.com", "Eve")
	project := e.createProject(t, alice.ID, "Project")

	thread, err := e.threads.Create(project.ID, alice.ID, &dto.CreateThreadRequest{Title: "Private"})
	require.NoError(t, err)

	_, err = e.threads.GetByID(thread.ID, eve.ID)
	assert.ErrorIs(t, err, pkgErrors.ErrThreadNotFound)

	_, err = e.messages.ListByThread(thread.ID, eve.ID, &dto.MessageListQuery{})
	assert.ErrorIs(t, err, pkgErrors.ErrThreadNotFound)
}
