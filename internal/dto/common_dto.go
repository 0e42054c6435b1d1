package dto

import (
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// PageQuery 分页与排序查询参数
// page/limit 按字符串绑定: 非法值回退默认值而不是报 400
type PageQuery struct {
	Page  string `form:"page"`
	Limit string `form:"limit"`
	Sort  string `form:"sort"`
	Order string `form:"order"`
}

// GetPage 获取页码, 非数字或小于1时取默认值
func (p *PageQuery) GetPage() int {
	page, err := strconv.Atoi(p.Page)
	if err != nil || page < 1 {
		return DefaultPage
	}
	return page
}

// GetLimit 获取每页数量, 上限100以约束扫描成本
func (p *PageQuery) GetLimit() int {
	limit, err := strconv.Atoi(p.Limit)
	if err != nil || limit < 1 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// GetOffset 获取偏移量
func (p *PageQuery) GetOffset() int {
	return (p.GetPage() - 1) * p.GetLimit()
}

// OrderClause 构造 ORDER BY 片段
// sort 仅允许白名单内的逻辑名, 未知键回退 defaultKey, 杜绝经由排序参数的注入
func (p *PageQuery) OrderClause(allowed map[string]string, defaultKey, defaultOrder string) string {
	col, ok := allowed[p.Sort]
	if !ok {
		col = allowed[defaultKey]
	}

	order := strings.ToLower(p.Order)
	if order != OrderAsc && order != OrderDesc {
		order = defaultOrder
	}

	return col + " " + strings.ToUpper(order)
}

// PageResponse 分页响应信封
type PageResponse struct {
	Items      interface{} `json:"items"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	Total      int64       `json:"total"`
	TotalPages int         `json:"totalPages"`
	HasPrev    bool        `json:"hasPrev"`
	HasNext    bool        `json:"hasNext"`
}

// NewPageResponse 创建分页响应
// totalPages 至少为1; hasNext 当且仅当 page*limit < total
func NewPageResponse(items interface{}, total int64, page, limit int) *PageResponse {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	if totalPages < 1 {
		totalPages = 1
	}
	return &PageResponse{
		Items:      items,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    int64(page)*int64(limit) < total,
	}
}

// ItemsResponse 非分页列表响应
type ItemsResponse struct {
	Items interface{} `json:"items"`
}
