package service

import (
	"encoding/json"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"synergysphere/internal/dto"
	"synergysphere/internal/model"
	"synergysphere/internal/pkg/logger"
	"synergysphere/internal/repository"
	"synergysphere/pkg/constants"
	pkgErrors "synergysphere/pkg/errors"
)

type NotificationService interface {
	List(userID string, q *dto.NotificationListQuery) (*dto.PageResponse, error)
	MarkRead(id, userID string) error
	MarkAllRead(userID string, req *dto.MarkAllReadRequest) (int64, error)

	// 业务事件派发, 失败只记日志不影响主流程
	NotifyMemberAdded(project *model.Project, actorID, userID, role string)
	NotifyTaskAssigned(project *model.Project, task *model.Task, actorID string, userIDs []string)
	NotifyCommentReply(project *model.Project, task *model.Task, actorID, recipientID string)
	NotifyMessageReply(project *model.Project, thread *model.DiscussionThread, actorID, recipientID string)
}

type notificationService struct {
	notifyRepo repository.NotificationRepository
}

func NewNotificationService(notifyRepo repository.NotificationRepository) NotificationService {
	return &notificationService{notifyRepo: notifyRepo}
}

func (s *notificationService) List(userID string, q *dto.NotificationListQuery) (*dto.PageResponse, error) {
	items, total, err := s.notifyRepo.List(userID, q)
	if err != nil {
		return nil, err
	}
	return dto.NewPageResponse(items, total, q.GetPage(), q.GetLimit()), nil
}

// MarkRead 只允许收件人操作, 其他人一律 404
func (s *notificationService) MarkRead(id, userID string) error {
	affected, err := s.notifyRepo.MarkRead(id, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return pkgErrors.ErrNotFound
	}
	return nil
}

func (s *notificationService) MarkAllRead(userID string, req *dto.MarkAllReadRequest) (int64, error) {
	return s.notifyRepo.MarkAllRead(userID, req)
}

func payloadJSON(fields map[string]interface{}) datatypes.JSON {
	b, err := json.Marshal(fields)
	if err != nil {
		return datatypes.JSON("{}")
	}
	return datatypes.JSON(b)
}

func (s *notificationService) NotifyMemberAdded(project *model.Project, actorID, userID, role string) {
	if userID == actorID {
		return
	}
	n := &model.Notification{
		UserID:    userID,
		Type:      constants.NotifyMemberAdded,
		ProjectID: &project.ID,
		ActorID:   &actorID,
		Payload: payloadJSON(map[string]interface{}{
			"project_name": project.Name,
			"role":         role,
		}),
	}
	if err := s.notifyRepo.Create(n); err != nil {
		logger.Warn("通知写入失败",
			zap.String("type", constants.NotifyMemberAdded),
			zap.String("user_id", userID),
			zap.Error(err))
	}
}

func (s *notificationService) NotifyTaskAssigned(project *model.Project, task *model.Task, actorID string, userIDs []string) {
	rows := make([]*model.Notification, 0, len(userIDs))
	for _, uid := range userIDs {
		if uid == actorID {
			continue
		}
		rows = append(rows, &model.Notification{
			UserID:    uid,
			Type:      constants.NotifyTaskAssigned,
			ProjectID: &project.ID,
			TaskID:    &task.ID,
			ActorID:   &actorID,
			Payload: payloadJSON(map[string]interface{}{
				"project_name": project.Name,
				"task_title":   task.Title,
			}),
		})
	}
	if err := s.notifyRepo.CreateBatch(rows); err != nil {
		logger.Warn("通知写入失败",
			zap.String("type", constants.NotifyTaskAssigned),
			zap.String("task_id", task.ID),
			zap.Error(err))
	}
}

func (s *notificationService) NotifyCommentReply(project *model.Project, task *model.Task, actorID, recipientID string) {
	if recipientID == actorID {
		return
	}
	n := &model.Notification{
		UserID:    recipientID,
		Type:      constants.NotifyCommentReply,
		ProjectID: &project.ID,
		TaskID:    &task.ID,
		ActorID:   &actorID,
		Payload: payloadJSON(map[string]interface{}{
			"project_name": project.Name,
			"task_title":   task.Title,
		}),
	}
	if err := s.notifyRepo.Create(n); err != nil {
		logger.Warn("通知写入失败",
			zap.String("type", constants.NotifyCommentReply),
			zap.String("user_id", recipientID),
			zap.Error(err))
	}
}

func (s *notificationService) NotifyMessageReply(project *model.Project, thread *model.DiscussionThread, actorID, recipientID string) {
	if recipientID == actorID {
		return
	}
	n := &model.Notification{
		UserID:    recipientID,
		Type:      constants.NotifyMessageReply,
		ProjectID: &project.ID,
		ActorID:   &actorID,
		Payload: payloadJSON(map[string]interface{}{
			"project_name": project.Name,
			"thread_title": thread.Title,
		}),
	}
	if err := s.notifyRepo.Create(n); err != nil {
		logger.Warn("通知写入失败",
			zap.String("type", constants.NotifyMessageReply),
			zap.String("user_id", recipientID),
			zap.Error(err))
	}
}
