package service

import (
	"errors"

	"synergysphere/internal/dto"
	"synergysphere/internal/model"
	"synergysphere/internal/repository"
	pkgErrors "synergysphere/pkg/errors"
)

type ThreadService interface {
	Create(projectID, userID string, req *dto.CreateThreadRequest) (*dto.ThreadItem, error)
	ListByProject(projectID, userID string, q *dto.ThreadListQuery) (*dto.PageResponse, error)
	GetByID(threadID, userID string) (*dto.ThreadItem, error)
	Update(threadID, userID string, req *dto.UpdateThreadRequest) (*dto.ThreadItem, error)
	Delete(threadID, userID string) error
}

type threadService struct {
	threadRepo repository.ThreadRepository
	access     AccessService
}

func NewThreadService(threadRepo repository.ThreadRepository, access AccessService) ThreadService {
	return &threadService{
		threadRepo: threadRepo,
		access:     access,
	}
}

func (s *threadService) Create(projectID, userID string, req *dto.CreateThreadRequest) (*dto.ThreadItem, error) {
	if _, err := s.access.ResolveProjectForView(projectID, userID); err != nil {
		return nil, err
	}

	thread := &model.DiscussionThread{
		ProjectID: projectID,
		Title:     req.Title,
		CreatedBy: userID,
	}
	if err := s.threadRepo.Create(thread); err != nil {
		return nil, err
	}
	return s.threadRepo.FindItem(thread.ID)
}

func (s *threadService) ListByProject(projectID, userID string, q *dto.ThreadListQuery) (*dto.PageResponse, error) {
	if _, err := s.access.ResolveProjectForView(projectID, userID); err != nil {
		return nil, err
	}
	items, total, err := s.threadRepo.ListByProject(projectID, q)
	if err != nil {
		return nil, err
	}
	return dto.NewPageResponse(items, total, q.GetPage(), q.GetLimit()), nil
}

func (s *threadService) GetByID(threadID, userID string) (*dto.ThreadItem, error) {
	thread, err := s.access.ResolveThreadForView(threadID, userID)
	if err != nil {
		return nil, err
	}
	return s.threadRepo.FindItem(thread.ID)
}

// resolveForEdit 作者本人或项目管理者可重命名/删除
func (s *threadService) resolveForEdit(threadID, userID string) (*model.DiscussionThread, error) {
	thread, err := s.access.ResolveThreadForView(threadID, userID)
	if err != nil {
		return nil, err
	}
	if thread.CreatedBy == userID {
		return thread, nil
	}
	ok, err := s.access.CanManage(thread.ProjectID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, pkgErrors.ErrForbidden
	}
	return thread, nil
}

func (s *threadService) Update(threadID, userID string, req *dto.UpdateThreadRequest) (*dto.ThreadItem, error) {
	thread, err := s.resolveForEdit(threadID, userID)
	if err != nil {
		return nil, err
	}
	if err := s.threadRepo.UpdateTitle(thread.ID, req.Title); err != nil {
		return nil, err
	}
	item, err := s.threadRepo.FindItem(thread.ID)
	if err != nil {
		if errors.Is(err, pkgErrors.ErrRecordNotFound) {
			return nil, pkgErrors.ErrThreadNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *threadService) Delete(threadID, userID string) error {
	thread, err := s.resolveForEdit(threadID, userID)
	if err != nil {
		return err
	}
	return s.threadRepo.Delete(thread.ID)
}
