package model

import (
	"time"
)

// 评价类型
const (
	EvaluateTypeScore    int8 = 0 // 评价
	EvaluateTypeFeedback int8 = 1 // 反馈
)

// 反馈受理状态
const (
	EvaluateStatusOpen    int8 = 0
	EvaluateStatusHandled int8 = 1
)

// 评价目标：前台服务记录或缴费记录
const (
	EvaluateTargetService int8 = 0
	EvaluateTargetPayment int8 = 1
)

// Evaluate 评价/反馈记录，Weekday 为创建时的星期数（0 为周日）
type Evaluate struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UserID    uint64    `gorm:"not null;index:idx_user_id" json:"user_id"`
	Name      string    `gorm:"type:varchar(100)" json:"name"`
	RecordID  uint64    `gorm:"not null" json:"record_id"`
	Type      int8      `gorm:"type:tinyint(1);not null;default:0" json:"type"`
	Weekday   int       `gorm:"type:tinyint(1);not null;default:0" json:"weekday"`
	Score     float64   `gorm:"not null;default:0" json:"score"`
	Content   string    `gorm:"type:varchar(200)" json:"content"`
	Status    int8      `gorm:"type:tinyint(1);not null;default:0" json:"status"`
	CreatedAt time.Time `json:"create_time"`
	UpdatedAt time.Time `json:"update_time"`
}

func (Evaluate) TableName() string {
	return "evaluate"
}
