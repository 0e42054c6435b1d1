package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"synergysphere/internal/dto"
	"synergysphere/internal/model"
	pkgErrors "synergysphere/pkg/errors"
)

type MemberRepository interface {
	Upsert(member *model.ProjectMember) error
	Find(projectID, userID string) (*model.ProjectMember, error)
	ListWithUsers(projectID string) ([]*dto.MemberItem, error)
	FindItem(projectID, userID string) (*dto.MemberItem, error)
	UpdateRole(projectID, userID, role string) (int64, error)
	Delete(projectID, userID string) (int64, error)
	MemberUserIDs(projectID string, candidates []string) ([]string, error)
}

type memberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

// Upsert 重复添加时仅覆盖角色, 保持幂等
func (r *memberRepository) Upsert(member *model.ProjectMember) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "project_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"role"}),
	}).Create(member).Error
	if err != nil {
		return pkgErrors.Database("添加项目成员失败", err)
	}
	return nil
}

func (r *memberRepository) Find(projectID, userID string) (*model.ProjectMember, error) {
	var member model.ProjectMember
	err := r.db.Where("project_id = ? AND user_id = ?", projectID, userID).
		First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgErrors.ErrRecordNotFound
		}
		return nil, pkgErrors.Database("查询项目成员失败", err)
	}
	return &member, nil
}

func (r *memberRepository) ListWithUsers(projectID string) ([]*dto.MemberItem, error) {
	var items []*dto.MemberItem
	err := r.db.Table("project_members").
		Select("project_members.user_id, project_members.role, project_members.added_at, "+
			"users.full_name, users.email, users.avatar_url").
		Joins("JOIN users ON users.id = project_members.user_id").
		Where("project_members.project_id = ?", projectID).
		Order("project_members.added_at ASC").
		Scan(&items).Error
	if err != nil {
		return nil, pkgErrors.Database("查询项目成员失败", err)
	}
	return items, nil
}

func (r *memberRepository) FindItem(projectID, userID string) (*dto.MemberItem, error) {
	var item dto.MemberItem
	err := r.db.Table("project_members").
		Select("project_members.user_id, project_members.role, project_members.added_at, "+
			"users.full_name, users.email, users.avatar_url").
		Joins("JOIN users ON users.id = project_members.user_id").
		Where("project_members.project_id = ? AND project_members.user_id = ?", projectID, userID).
		Take(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgErrors.ErrRecordNotFound
		}
		return nil, pkgErrors.Database("查询项目成员失败", err)
	}
	return &item, nil
}

func (r *memberRepository) UpdateRole(projectID, userID, role string) (int64, error) {
	res := r.db.Model(&model.ProjectMember{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Update("role", role)
	if res.Error != nil {
		return 0, pkgErrors.Database("更新成员角色失败", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *memberRepository) Delete(projectID, userID string) (int64, error) {
	res := r.db.Where("project_id = ? AND user_id = ?", projectID, userID).
		Delete(&model.ProjectMember{})
	if res.Error != nil {
		return 0, pkgErrors.Database("移除项目成员失败", res.Error)
	}
	return res.RowsAffected, nil
}

// MemberUserIDs 过滤出候选集中实际属于项目成员的用户 ID
func (r *memberRepository) MemberUserIDs(projectID string, candidates []string) ([]string, error) {
	var ids []string
	if len(candidates) == 0 {
		return ids, nil
	}
	err := r.db.Model(&model.ProjectMember{}).
		Where("project_id = ? AND user_id IN ?", projectID, candidates).
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, pkgErrors.Database("查询项目成员失败", err)
	}
	return ids, nil
}
