package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"synergysphere/internal/dto"
	"synergysphere/internal/model"
	pkgErrors "synergysphere/pkg/errors"
)

type ProjectRepository interface {
	Create(project *model.Project) error
	FindByID(id string) (*model.Project, error)
	ListVisible(userID string, q *dto.ProjectListQuery) ([]*model.Project, int64, error)
	UpdateFields(id string, fields map[string]interface{}) error
	Delete(id string) error
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(project *model.Project) error {
	if err := r.db.Create(project).Error; err != nil {
		return pkgErrors.Database("创建项目失败", err)
	}
	return nil
}

func (r *projectRepository) FindByID(id string) (*model.Project, error) {
	var project model.Project
	err := r.db.Where("id = ?", id).First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgErrors.ErrRecordNotFound
		}
		return nil, pkgErrors.Database("查询项目失败", err)
	}
	return &project, nil
}

// ListVisible 仅返回请求者创建或加入的项目
func (r *projectRepository) ListVisible(userID string, q *dto.ProjectListQuery) ([]*model.Project, int64, error) {
	var projects []*model.Project
	var total int64

	query := r.db.Model(&model.Project{}).
		Where("projects.created_by = ? OR projects.id IN (?)",
			userID,
			r.db.Model(&model.ProjectMember{}).Select("project_id").Where("user_id = ?", userID),
		)

	if q.Q != "" {
		like := "%" + strings.ToLower(q.Q) + "%"
		query = query.Where("LOWER(projects.name) LIKE ? OR LOWER(projects.description) LIKE ?", like, like)
	}
	if q.Status != "" {
		query = query.Where("projects.status = ?", q.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, pkgErrors.Database("统计项目失败", err)
	}

	order := q.OrderClause(dto.ProjectSortFields, "created_at", dto.OrderDesc)
	if err := query.Order(order).
		Offset(q.GetOffset()).
		Limit(q.GetLimit()).
		Find(&projects).Error; err != nil {
		return nil, 0, pkgErrors.Database("查询项目失败", err)
	}

	return projects, total, nil
}

func (r *projectRepository) UpdateFields(id string, fields map[string]interface{}) error {
	if err := r.db.Model(&model.Project{}).Where("id = ?", id).
		Updates(fields).Error; err != nil {
		return pkgErrors.Database("更新项目失败", err)
	}
	return nil
}

func (r *projectRepository) Delete(id string) error {
	if err := r.db.Where("id = ?", id).Delete(&model.Project{}).Error; err != nil {
		return pkgErrors.Database("删除项目失败", err)
	}
	return nil
}
