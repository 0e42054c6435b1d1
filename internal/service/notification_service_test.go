package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"synergysphere/internal/dto"
	"synergysphere/internal/model"
	"synergysphere/internal/repository"
	pkgErrors "synergysphere/pkg/errors"
)

func TestMemberAddedNotification(t *testing.T) {
	e := newEnv(t)
	alice := e.createUser(t, "alice@example.com", "Alice")
	bob := e.createUser(t, "bob@example.com", "Bob")
	project := e.createProject(t, alice.ID, "Project")

	_, err := e.members.Add(project.ID, alice.ID, &dto.AddMemberRequest{UserID: bob.ID})
	require.NoError(t, err)

	resp, err := e.notify.List(bob.ID, &dto.NotificationListQuery{})
	require.NoError(t, err)
	require.Equal(t, int64(1), resp.Total)

	items := resp.Items.([]*dto.NotificationItem)
	assert.Equal(t, "member_added", items[0].Type)
	assert.False(t, items[0].IsRead)
	require.NotNil(t, items[0].ActorName)
	assert.Equal(t, "Alice", *items[0].ActorName)
}

func TestMarkReadScopedToRecipient(t *testing.T) {
	e := newEnv(t)
	alice := e.createUser(t, "alice@example.com", "Alice")
	bob := e.createUser(t, "bob@example.com", "Bob")
	project := e.createProject(t, alice.ID, "Project")

	_, err := e.members.Add(project.ID, alice.ID, &dto.AddMemberRequest{UserID: bob.ID})
	require.NoError(t, err)

	resp, err := e.notify.List(bob.ID, &dto.NotificationListQuery{})
	require.NoError(t, err)
	items := resp.Items.([]*dto.NotificationItem)
	require.Len(t, items, 1)

	// 其他用户标记他人通知 → 404
	err = e.notify.MarkRead(items[0].ID, alice.ID)
	assert.ErrorIs(t, err, pkgErrors.ErrNotFound)

	require.NoError(t, e.notify.MarkRead(items[0].ID, bob.ID))

	resp, err = e.notify.List(bob.ID, &dto.NotificationListQuery{IsRead: "false"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.Total)
}

func TestMarkAllReadWithFilter(t *testing.T) {
	e := newEnv(t)
	alice := e.createUser(t, "alice@example.com", "Alice")
	bob := e.createUser(t, "bob@example.com", "Bob")
	p1 := e.createProject(t, alice.ID, "P1")
	p2 := e.createProject(t, alice.ID, "P2")

	_, err := e.members.Add(p1.ID, alice.ID, &dto.AddMemberRequest{UserID: bob.ID})
	require.NoError(t, err)
	_, err = e.members.Add(p2.ID, alice.ID, &dto.AddMemberRequest{UserID: bob.ID})
	require.NoError(t, err)

	// 仅标记 p1 范围内的通知
	updated, err := e.notify.MarkAllRead(bob.ID, &dto.MarkAllReadRequest{ProjectID: p1.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)

	resp, err := e.notify.List(bob.ID, &dto.NotificationListQuery{IsRead: "false"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Total)

	// 无过滤条件标记剩余全部
	updated, err = e.notify.MarkAllRead(bob.ID, &dto.MarkAllReadRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)
}

func TestCleanupDeletesOnlyOldReadNotifications(t *testing.T) {
	e := newEnv(t)
	bob := e.createUser(t, "bob@example.com", "Bob")
	repo := repository.NewNotificationRepository(e.db)

	old := &model.Notification{UserID: bob.ID, Type: "member_added", Payload: datatypes.JSON("{}"), IsRead: true}
	require.NoError(t, e.db.Create(old).Error)
	require.NoError(t, e.db.Model(old).Update("created_at", time.Now().AddDate(0, 0, -120)).Error)

	oldUnread := &model.Notification{UserID: bob.ID, Type: "member_added", Payload: datatypes.JSON("{}")}
	require.NoError(t, e.db.Create(oldUnread).Error)
	require.NoError(t, e.db.Model(oldUnread).Update("created_at", time.Now().AddDate(0, 0, -120)).Error)

	fresh := &model.Notification{UserID: bob.ID, Type: "member_added", Payload: datatypes.JSON("{}"), IsRead: true}
	require.NoError(t, e.db.Create(fresh).Error)

	deleted, err := repo.DeleteReadBefore(time.Now().AddDate(0, 0, -90))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	var remaining int64
	require.NoError(t, e.db.Model(&model.Notification{}).Count(&remaining).Error)
	assert.Equal(t, int64(2), remaining)
}
