package model

import (
	"time"
)

// RepairsApply 后台维修申请，Type 为 C*/P*（社区/个人）+ 故障类别 0~3
type RepairsApply struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	UserID     uint64    `gorm:"not null;index:idx_user_id" json:"user_id"`
	Name       string    `gorm:"type:varchar(100)" json:"name"`
	Type       string    `gorm:"type:varchar(3);not null;default:'P3'" json:"type"`
	Status     Status    `gorm:"type:tinyint(1);not null;default:0" json:"status"`
	WorkerName string    `gorm:"type:varchar(20)" json:"worker_name"`
	WorkerID   uint64    `gorm:"not null;default:0" json:"worker_id"`
	CreatedAt  time.Time `json:"create_time"`
	UpdatedAt  time.Time `json:"update_time"`
}

func (RepairsApply) TableName() string {
	return "repairs_apply"
}
