package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"synergysphere/pkg/responses"
	"synergysphere/pkg/utils"
)

// pathID 提取路径参数并校验 UUID 形状, 非法时直接响应 400
func pathID(c *gin.Context, name string) (string, bool) {
	id := c.Param(name)
	if !utils.IsUUID(id) {
		responses.ErrorWithCode(c, http.StatusBadRequest, "Invalid "+name)
		return "", false
	}
	return id, true
}
