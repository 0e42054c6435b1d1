package service

import (
	"errors"

	"synergysphere/internal/dto"
	"synergysphere/internal/model"
	"synergysphere/internal/repository"
	pkgErrors "synergysphere/pkg/errors"
)

type CommentService interface {
	Create(taskID, userID string, req *dto.CreateCommentRequest) (*dto.CommentItem, error)
	ListByTask(taskID, userID string, q *dto.CommentListQuery) (*dto.PageResponse, error)
	Update(commentID, userID string, req *dto.UpdateCommentRequest) (*dto.CommentItem, error)
	Delete(commentID, userID string) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	projectRepo repository.ProjectRepository
	access      AccessService
	notify      NotificationService
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	projectRepo repository.ProjectRepository,
	access AccessService,
	notify NotificationService,
) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		projectRepo: projectRepo,
		access:      access,
		notify:      notify,
	}
}

// Create 父评论必须属于同一任务; 回复父评论作者时派发通知
func (s *commentService) Create(taskID, userID string, req *dto.CreateCommentRequest) (*dto.CommentItem, error) {
	task, err := s.access.ResolveTaskForView(taskID, userID)
	if err != nil {
		return nil, err
	}

	var parent *model.TaskComment
	if req.ParentCommentID != nil {
		ok, err := s.commentRepo.ParentExists(taskID, *req.ParentCommentID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, pkgErrors.ErrCommentNotFound
		}
		parent, err = s.commentRepo.FindByID(*req.ParentCommentID)
		if err != nil {
			return nil, err
		}
	}

	comment := &model.TaskComment{
		TaskID:          taskID,
		AuthorID:        userID,
		Body:            req.Body,
		ParentCommentID: req.ParentCommentID,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	if parent != nil {
		project, err := s.projectRepo.FindByID(task.ProjectID)
		if err == nil {
			s.notify.NotifyCommentReply(project, task, userID, parent.AuthorID)
		}
	}

	return s.commentRepo.FindItem(comment.ID)
}

func (s *commentService) ListByTask(taskID, userID string, q *dto.CommentListQuery) (*dto.PageResponse, error) {
	if _, err := s.access.ResolveTaskForView(taskID, userID); err != nil {
		return nil, err
	}
	items, total, err := s.commentRepo.ListByTask(taskID, q)
	if err != nil {
		return nil, err
	}
	return dto.NewPageResponse(items, total, q.GetPage(), q.GetLimit()), nil
}

// resolveForEdit 作者本人或项目管理者可编辑/删除
func (s *commentService) resolveForEdit(commentID, userID string) (*model.TaskComment, error) {
	comment, err := s.commentRepo.FindByID(commentID)
	if err != nil {
		if errors.Is(err, pkgErrors.ErrRecordNotFound) {
			return nil, pkgErrors.ErrCommentNotFound
		}
		return nil, err
	}

	task, err := s.access.ResolveTaskForView(comment.TaskID, userID)
	if err != nil {
		return nil, pkgErrors.ErrCommentNotFound
	}

	if comment.AuthorID == userID {
		return comment, nil
	}
	ok, err := s.access.CanManage(task.ProjectID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, pkgErrors.ErrForbidden
	}
	return comment, nil
}

func (s *commentService) Update(commentID, userID string, req *dto.UpdateCommentRequest) (*dto.CommentItem, error) {
	comment, err := s.resolveForEdit(commentID, userID)
	if err != nil {
		return nil, err
	}
	if err := s.commentRepo.UpdateBody(comment.ID, req.Body); err != nil {
		return nil, err
	}
	return s.commentRepo.FindItem(comment.ID)
}

func (s *commentService) Delete(commentID, userID string) error {
	comment, err := s.resolveForEdit(commentID, userID)
	if err != nil {
		return err
	}
	return s.commentRepo.Delete(comment.ID)
}
