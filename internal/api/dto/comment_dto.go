package dto

// CreateCommentDTO 被回复人与页面标题由服务端按 ParentID/PageID
// 反查，客户端不提供
type CreateCommentDTO struct {
	Comment  string `json:"comment" validate:"required,max=500"`
	Type     int8   `json:"type" validate:"min=0,max=1"`
	PageID   uint64 `json:"page_id"`
	ParentID uint64 `json:"father_id"`
}
