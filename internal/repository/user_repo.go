package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"synergysphere/internal/dto"
	"synergysphere/internal/model"
	pkgErrors "synergysphere/pkg/errors"
)

type UserRepository interface {
	Create(user *model.User) error
	FindByID(id string) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	Update(user *model.User) error
	UpdatePassword(id, passwordHash string) error
	List(q *dto.UserListQuery) ([]*model.User, int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *model.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return pkgErrors.Database("创建用户失败", err)
	}
	return nil
}

func (r *userRepository) FindByID(id string) (*model.User, error) {
	var user model.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgErrors.ErrRecordNotFound
		}
		return nil, pkgErrors.Database("查询用户失败", err)
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.db.Where("email = ?", strings.ToLower(email)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgErrors.ErrRecordNotFound
		}
		return nil, pkgErrors.Database("查询用户失败", err)
	}
	return &user, nil
}

func (r *userRepository) Update(user *model.User) error {
	if err := r.db.Save(user).Error; err != nil {
		return pkgErrors.Database("更新用户失败", err)
	}
	return nil
}

func (r *userRepository) UpdatePassword(id, passwordHash string) error {
	if err := r.db.Model(&model.User{}).Where("id = ?", id).
		Update("password_hash", passwordHash).Error; err != nil {
		return pkgErrors.Database("更新密码失败", err)
	}
	return nil
}

func (r *userRepository) List(q *dto.UserListQuery) ([]*model.User, int64, error) {
	var users []*model.User
	var total int64

	query := r.db.Model(&model.User{}).Where("is_active = ?", true)
	if q.Q != "" {
		like := "%" + strings.ToLower(q.Q) + "%"
		query = query.Where("LOWER(full_name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, pkgErrors.Database("统计用户失败", err)
	}

	order := q.OrderClause(dto.UserSortFields, "created_at", dto.OrderDesc)
	if err := query.Order(order).
		Offset(q.GetOffset()).
		Limit(q.GetLimit()).
		Find(&users).Error; err != nil {
		return nil, 0, pkgErrors.Database("查询用户失败", err)
	}

	return users, total, nil
}
