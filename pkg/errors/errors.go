package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError 应用错误, Code 直接使用 HTTP 状态码
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New 创建新错误
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Newf 创建带格式化消息的错误
func Newf(code int, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap 包装错误
func Wrap(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// AsAppError 提取 AppError; 非 AppError 返回 nil
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// 预定义错误
var (
	ErrBadRequest    = New(http.StatusBadRequest, "Invalid request")
	ErrUnauthorized  = New(http.StatusUnauthorized, "Unauthorized")
	ErrForbidden     = New(http.StatusForbidden, "Not allowed")
	ErrNotFound      = New(http.StatusNotFound, "Resource not found")
	ErrConflict      = New(http.StatusConflict, "Resource conflict")
	ErrInternalError = New(http.StatusInternalServerError, "Internal server error")

	// 具体业务错误
	ErrInvalidToken       = New(http.StatusUnauthorized, "Invalid or expired token")
	ErrInvalidCredentials = New(http.StatusUnauthorized, "Invalid credentials")
	ErrUserDisabled       = New(http.StatusForbidden, "Account is disabled")
	ErrEmailTaken         = New(http.StatusConflict, "Email already in use")
	ErrUserNotFound       = New(http.StatusNotFound, "User not found")
	ErrProjectNotFound    = New(http.StatusNotFound, "Project not found")
	ErrTaskNotFound       = New(http.StatusNotFound, "Task not found")
	ErrThreadNotFound     = New(http.StatusNotFound, "Thread not found")
	ErrMessageNotFound    = New(http.StatusNotFound, "Message not found")
	ErrCommentNotFound    = New(http.StatusNotFound, "Comment not found")
	ErrMemberNotFound     = New(http.StatusNotFound, "Member not found")
	ErrRecordNotFound     = New(http.StatusNotFound, "Record not found")
)

// Database 数据库错误统一包装为 500
func Database(message string, err error) *AppError {
	return Wrap(http.StatusInternalServerError, message, err)
}
