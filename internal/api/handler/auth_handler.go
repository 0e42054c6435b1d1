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

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register 注册
// @Summary 注册新用户
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "注册请求"
// @Success 201 {object} dto.AuthResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithCode(c, http.StatusBadRequest, utils.FormatValidationError(err))
		return
	}

	resp, err := h.authService.Register(&req)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Created(c, resp)
}

// Login 登录
// @Summary 邮箱密码登录
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "登录请求"
// @Success 200 {object} dto.AuthResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithCode(c, http.StatusBadRequest, utils.FormatValidationError(err))
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.OK(c, resp)
}

// Me 当前用户信息
// @Summary 当前用户信息
// @Tags Auth
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authService.Me(middleware.CurrentUserID(c))
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.OK(c, gin.H{"user": user})
}

// ChangePassword 修改密码
// @Summary 修改当前用户密码
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.ChangePasswordRequest true "修改密码请求"
// @Success 204
// @Router /auth/password [patch]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithCode(c, http.StatusBadRequest, utils.FormatValidationError(err))
		return
	}

	if err := h.authService.ChangePassword(middleware.CurrentUserID(c), &req); err != nil {
		responses.Error(c, err)
		return
	}
	responses.NoContent(c)
}
