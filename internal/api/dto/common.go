package dto

// Response 统一返回体
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// PageDTO 通用分页参数
type PageDTO struct {
	Page int `form:"page" json:"page" validate:"omitempty,min=1"`
	Size int `form:"size" json:"size" validate:"omitempty,min=1,max=100"`
}

// Normalize 填充默认分页并换算偏移量
func (p *PageDTO) Normalize() (limit, offset int) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Size < 1 {
		p.Size = 10
	}
	return p.Size, (p.Page - 1) * p.Size
}

// PageResult 带总数的分页结果
type PageResult struct {
	Total int64 `json:"total"`
	List  any   `json:"list"`
}
