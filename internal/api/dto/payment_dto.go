package dto

// CreatePaymentDTO 缴费。保证金类（type>=4）的 Name 前 5 位
// 即房屋/车位编号，日常费用的 Name 必须与收费通知标题一致。
type CreatePaymentDTO struct {
	Name  string  `json:"name" validate:"required,max=50"`
	Type  int8    `json:"type" validate:"min=0,max=5"`
	Money float64 `json:"money" validate:"required,min=0"`
}

// MessageDTO 站内消息
type MessageDTO struct {
	RecipientID   string `json:"recipient_id" validate:"required,max=50"`
	RecipientName string `json:"recipient_name" validate:"omitempty,max=20"`
	Content       string `json:"content" validate:"required,max=200"`
}
