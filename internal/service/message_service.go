package service

import (
	"errors"

	"synergysphere/internal/dto"
	"synergysphere/internal/model"
	"synergysphere/internal/repository"
	pkgErrors "synergysphere/pkg/errors"
)

type MessageService interface {
	Create(threadID, userID string, req *dto.CreateMessageRequest) (*dto.MessageItem, error)
	ListByThread(threadID, userID string, q *dto.MessageListQuery) (*dto.PageResponse, error)
	Update(messageID, userID string, req *dto.UpdateMessageRequest) (*dto.MessageItem, error)
	Delete(messageID, userID string) error
}

type messageService struct {
	messageRepo repository.MessageRepository
	projectRepo repository.ProjectRepository
	access      AccessService
	notify      NotificationService
}

func NewMessageService(
	messageRepo repository.MessageRepository,
	projectRepo repository.ProjectRepository,
	access AccessService,
	notify NotificationService,
) MessageService {
	return &messageService{
		messageRepo: messageRepo,
		projectRepo: projectRepo,
		access:      access,
		notify:      notify,
	}
}

// Create 父消息必须属于同一主题; 回复父消息作者时派发通知
func (s *messageService) Create(threadID, userID string, req *dto.CreateMessageRequest) (*dto.MessageItem, error) {
	thread, err := s.access.ResolveThreadForView(threadID, userID)
	if err != nil {
		return nil, err
	}

	var parent *model.DiscussionMessage
	if req.ParentMessageID != nil {
		ok, err := s.messageRepo.ParentExists(threadID, *req.ParentMessageID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, pkgErrors.ErrMessageNotFound
		}
		parent, err = s.messageRepo.FindByID(*req.ParentMessageID)
		if err != nil {
			return nil, err
		}
	}

	message := &model.DiscussionMessage{
		ThreadID:        threadID,
		AuthorID:        userID,
		Body:            req.Body,
		ParentMessageID: req.ParentMessageID,
	}
	if err := s.messageRepo.Create(message); err != nil {
		return nil, err
	}

	if parent != nil {
		project, err := s.projectRepo.FindByID(thread.ProjectID)
		if err == nil {
			s.notify.NotifyMessageReply(project, thread, userID, parent.AuthorID)
		}
	}

	return s.messageRepo.FindItem(message.ID)
}

func (s *messageService) ListByThread(threadID, userID string, q *dto.MessageListQuery) (*dto.PageResponse, error) {
	if _, err := s.access.ResolveThreadForView(threadID, userID); err != nil {
		return nil, err
	}
	items, total, err := s.messageRepo.ListByThread(threadID, q)
	if err != nil {
		return nil, err
	}
	return dto.NewPageResponse(items, total, q.GetPage(), q.GetLimit()), nil
}

// resolveForEdit 作者本人或项目管理者可编辑/删除
func (s *messageService) resolveForEdit(messageID, userID string) (*model.DiscussionMessage, error) {
	message, err := s.messageRepo.FindByID(messageID)
	if err != nil {
		if errors.Is(err, pkgErrors.ErrRecordNotFound) {
			return nil, pkgErrors.ErrMessageNotFound
		}
		return nil, err
	}

	thread, err := s.access.ResolveThreadForView(message.ThreadID, userID)
	if err != nil {
		return nil, pkgErrors.ErrMessageNotFound
	}

	if message.AuthorID == userID {
		return message, nil
	}
	ok, err := s.access.CanManage(thread.ProjectID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, pkgErrors.ErrForbidden
	}
	return message, nil
}

func (s *messageService) Update(messageID, userID string, req *dto.UpdateMessageRequest) (*dto.MessageItem, error) {
	message, err := s.resolveForEdit(messageID, userID)
	if err != nil {
		return nil, err
	}
	if err := s.messageRepo.UpdateBody(message.ID, req.Body); err != nil {
		return nil, err
	}
	return s.messageRepo.FindItem(message.ID)
}

func (s *messageService) Delete(messageID, userID string) error {
	message, err := s.resolveForEdit(messageID, userID)
	if err != nil {
		return err
	}
	return s.messageRepo.Delete(message.ID)
}
