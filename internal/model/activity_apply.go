package model

import (
	"time"
)

// ActivityApply 后台活动报名记录，前台镜像为 ServiceOrder(type='A')
type ActivityApply struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	NoticeID  uint64    `gorm:"column:publicity_id;not null;uniqueIndex:idx_user_notice,priority:2" json:"publicity_id"`
	UserID    uint64    `gorm:"not null;uniqueIndex:idx_user_notice,priority:1" json:"user_id"`
	Status    Status    `gorm:"type:tinyint(1);not null;default:0" json:"status"`
	CreatedAt time.Time `json:"create_time"`
	UpdatedAt time.Time `json:"update_time"`
}

func (ActivityApply) TableName() string {
	return "activity_apply"
}
