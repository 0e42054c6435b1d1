package utils

import "github.com/google/uuid"

// IsUUID 校验字符串是否为合法 UUID, 所有路径/查询参数在入库前先过此校验
func IsUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
