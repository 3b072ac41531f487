package model

import (
	"time"
)

// ServiceOrder 前台用户服务记录，OrderID 回指后台的
// ActivityApply 或 RepairsApply（由 Type 区分）
type ServiceOrder struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UserID    uint64    `gorm:"not null;index:idx_user_id" json:"user_id"`
	OrderID   uint64    `gorm:"not null" json:"order_id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Type      string    `gorm:"type:varchar(3);not null;default:''" json:"type"`
	Status    Status    `gorm:"type:tinyint(1);not null;default:0" json:"status"`
	Score     *float64  `json:"score"`
	CreatedAt time.Time `json:"create_time"`
	UpdatedAt time.Time `json:"update_time"`
}

func (ServiceOrder) TableName() string {
	return "user_service"
}
