package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "synergysphere/pkg/errors"
)

// ErrorBody 错误响应结构, 前端以 toast 形式展示 error 字段
type ErrorBody struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"` // 详细错误信息（可选）
}

// OK 200 成功响应, 直接返回实体
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201 创建成功
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent 204 无响应体
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error 错误响应, AppError.Code 即 HTTP 状态码
func Error(c *gin.Context, err error) {
	if appErr := pkgErrors.AsAppError(err); appErr != nil {
		c.JSON(appErr.Code, ErrorBody{Error: appErr.Message})
		return
	}

	// 未知错误统一 500, 不向调用方泄露内部细节
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, ErrorBody{Error: "Internal server error"})
}

// ErrorWithCode 自定义错误响应
func ErrorWithCode(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorBody{Error: message})
}

// ErrorWithDetail 带详细信息的错误响应
func ErrorWithDetail(c *gin.Context, code int, message, detail string) {
	c.JSON(code, ErrorBody{Error: message, Detail: detail})
}
