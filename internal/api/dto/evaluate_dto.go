package dto

// CreateEvaluateDTO 评分或反馈。Target 指明评价对象是服务记录
// 还是缴费记录。评价服务时 RecordID 是前台记录主键，反馈服务时
// 是后台工单号（ServiceType 区分活动与维修）；评价缴费时 RecordID
// 一律是缴费记录主键。
type CreateEvaluateDTO struct {
	RecordID    uint64   `json:"record_id" validate:"required"`
	Type        int8     `json:"type" validate:"min=0,max=1"`
	Target      int8     `json:"target" validate:"min=0,max=1"`
	Score       *float64 `json:"score" validate:"omitempty,min=0,max=5"`
	Content     string   `json:"content" validate:"omitempty,max=200"`
	ServiceType string   `json:"service_type" validate:"omitempty,max=3"`
}

// FeedbackReplyDTO 管理员回复反馈
type FeedbackReplyDTO struct {
	EvaluateID uint64 `json:"evaluate_id" validate:"required"`
	Content    string `json:"content" validate:"required,max=200"`
}
