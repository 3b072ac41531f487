package model

import (
	"time"
)

// 通知类型
const (
	NoticeTypeAnnouncement int8 = 0 // 社区公告
	NoticeTypeActivity     int8 = 1 // 活动发布
	NoticeTypeFee          int8 = 2 // 收费通知
)

// 发布状态
const (
	NoticeStatusOpen    int8 = 0
	NoticeStatusExpired int8 = 1
)

// Notice 社区公示（公告 / 活动 / 收费通知）
type Notice struct {
	ID        uint64     `gorm:"primaryKey" json:"id"`
	UserID    uint64     `gorm:"not null;index:idx_user_id" json:"user_id"`
	Type      int8       `gorm:"type:tinyint(1);not null;default:0" json:"type"`
	Title     string     `gorm:"type:varchar(50);not null" json:"title"`
	Content   string     `gorm:"type:varchar(500)" json:"content"`
	Img       string     `gorm:"type:varchar(255)" json:"img"`
	Address   string     `gorm:"type:varchar(60)" json:"address"`
	Money     float64    `gorm:"type:decimal(10,2);default:0" json:"money"`
	Start     *time.Time `json:"start"`
	End       *time.Time `json:"end"`
	Join      int        `gorm:"not null;default:0" json:"join"`
	Need      int        `gorm:"not null;default:0" json:"need"`
	Status    int8       `gorm:"type:tinyint(1);not null;default:0" json:"status"`
	CreatedAt time.Time  `json:"create_time"`
	UpdatedAt time.Time  `json:"update_time"`
}

func (Notice) TableName() string {
	return "publicity"
}
