package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"synergysphere/internal/api/middleware"
	"synergysphere/internal/dto"
	"synergysphere/internal/service"
	"synergysphere/pkg/responses"
	"synergysphere/pkg/utils"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List 用户检索
// @Summary 按姓名或邮箱检索用户
// @Tags User
// @Produce json
// @Param q query string false "关键字"
// @Success 200 {object} dto.PageResponse
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	var q dto.UserListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		responses.ErrorWithCode(c, http.StatusBadRequest, utils.FormatValidationError(err))
		return
	}

	resp, err := h.userService.List(&q)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.OK(c, resp)
}

// GetByID 用户公开资料
// @Summary 用户公开资料
// @Tags User
// @Produce json
// @Param id path string true "用户ID"
// @Success 200 {object} dto.UserResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetByID(id)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.OK(c, user)
}

// UpdateProfile 更新个人资料
// @Summary 更新当前用户资料
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "更新资料请求"
// @Success 200 {object} dto.UserResponse
// @Router /users/me [patch]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithCode(c, http.StatusBadRequest, utils.FormatValidationError(err))
		return
	}

	user, err := h.userService.UpdateProfile(middleware.CurrentUserID(c), &req)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.OK(c, user)
}
