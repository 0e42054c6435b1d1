package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageQueryDefaults(t *testing.T) {
	q := PageQuery{}
	assert.Equal(t, 1, q.GetPage())
	assert.Equal(t, 20, q.GetLimit())
	assert.Equal(t, 0, q.GetOffset())
}

func TestPageQueryNonNumeric(t *testing.T) {
	q := PageQuery{Page: "abc", Limit: "xyz"}
	assert.Equal(t, 1, q.GetPage())
	assert.Equal(t, 20, q.GetLimit())
}

func TestPageQueryClamp(t *testing.T) {
	q := PageQuery{Page: "0", Limit: "500"}
	assert.Equal(t, 1, q.GetPage())
	assert.Equal(t, 100, q.GetLimit())

	q = PageQuery{Page: "-3", Limit: "0"}
	assert.Equal(t, 1, q.GetPage())
	assert.Equal(t, 20, q.GetLimit())
}

func TestPageQueryOffset(t *testing.T) {
	q := PageQuery{Page: "3", Limit: "25"}
	assert.Equal(t, 50, q.GetOffset())
}

func TestOrderClauseAllowList(t *testing.T) {
	allowed := map[string]string{
		"created_at": "tasks.created_at",
		"title":      "tasks.title",
	}

	q := PageQuery{Sort: "title", Order: "ASC"}
	assert.Equal(t, "tasks.title ASC", q.OrderClause(allowed, "created_at", OrderDesc))

	// 未知排序键回退默认列
	q = PageQuery{Sort: "password_hash", Order: "asc"}
	assert.Equal(t, "tasks.created_at ASC", q.OrderClause(allowed, "created_at", OrderDesc))

	// 非法 order 回退默认方向
	q = PageQuery{Sort: "title", Order: "sideways"}
	assert.Equal(t, "tasks.title DESC", q.OrderClause(allowed, "created_at", OrderDesc))

	q = PageQuery{}
	assert.Equal(t, "tasks.created_at DESC", q.OrderClause(allowed, "created_at", OrderDesc))
}

func TestNewPageResponse(t *testing.T) {
	resp := NewPageResponse([]int{1, 2, 3}, 45, 2, 20)
	assert.Equal(t, int64(45), resp.Total)
	assert.Equal(t, 3, resp.TotalPages)
	assert.True(t, resp.HasPrev)
	assert.True(t, resp.HasNext)

	// 最后一页
	resp = NewPageResponse([]int{1}, 45, 3, 20)
	assert.False(t, resp.HasNext)
	assert.True(t, resp.HasPrev)

	// 空结果 totalPages 至少为1
	resp = NewPageResponse([]int{}, 0, 1, 20)
	assert.Equal(t, 1, resp.TotalPages)
	assert.False(t, resp.HasPrev)
	assert.False(t, resp.HasNext)

	// 整除边界: page*limit == total 时没有下一页
	resp = NewPageResponse([]int{}, 40, 2, 20)
	assert.Equal(t, 2, resp.TotalPages)
	assert.False(t, resp.HasNext)
}
