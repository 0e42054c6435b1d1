package service

import (
	"synergysphere/internal/dto"
	"synergysphere/internal/model"
	"synergysphere/internal/repository"
	"synergysphere/pkg/constants"
	pkgErrors "synergysphere/pkg/errors"
)

type ProjectService interface {
	Create(userID string, req *dto.CreateProjectRequest) (*model.Project, error)
	List(userID string, q *dto.ProjectListQuery) (*dto.PageResponse, error)
	GetByID(projectID, userID string) (*model.Project, error)
	Update(projectID, userID string, req *dto.UpdateProjectRequest) (*model.Project, error)
	Delete(projectID, userID string) error
}

type projectService struct {
	projectRepo repository.ProjectRepository
	access      AccessService
}

func NewProjectService(projectRepo repository.ProjectRepository, access AccessService) ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		access:      access,
	}
}

func (s *projectService) Create(userID string, req *dto.CreateProjectRequest) (*model.Project, error) {
	status := req.Status
	if status == "" {
		status = constants.ProjectStatusActive
	}
	project := &model.Project{
		CreatedBy:   userID,
		Name:        req.Name,
		Description: req.Description,
		Status:      status,
	}
	if err := s.projectRepo.Create(project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *projectService) List(userID string, q *dto.ProjectListQuery) (*dto.PageResponse, error) {
	projects, total, err := s.projectRepo.ListVisible(userID, q)
	if err != nil {
		return nil, err
	}
	return dto.NewPageResponse(projects, total, q.GetPage(), q.GetLimit()), nil
}

func (s *projectService) GetByID(projectID, userID string) (*model.Project, error) {
	return s.access.ResolveProjectForView(projectID, userID)
}

// Update 仅创建者可修改项目属性
func (s *projectService) Update(projectID, userID string, req *dto.UpdateProjectRequest) (*model.Project, error) {
	project, err := s.access.ResolveProjectForView(projectID, userID)
	if err != nil {
		return nil, err
	}
	if project.CreatedBy != userID {
		return nil, pkgErrors.ErrForbidden
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if len(fields) == 0 {
		return project, nil
	}

	if err := s.projectRepo.UpdateFields(projectID, fields); err != nil {
		return nil, err
	}
	return s.projectRepo.FindByID(projectID)
}

// Delete 仅创建者可删除, 关联行由外键级联清理
func (s *projectService) Delete(projectID, userID string) error {
	project, err := s.access.ResolveProjectForView(projectID, userID)
	if err != nil {
		return err
	}
	if project.CreatedBy != userID {
		return pkgErrors.ErrForbidden
	}
	return s.projectRepo.Delete(projectID)
}
