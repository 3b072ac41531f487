package model

import (
	"time"
)

// Message 站内消息
type Message struct {
	ID            uint64    `gorm:"primaryKey" json:"id"`
	UserID        uint64    `gorm:"not null;index:idx_user_id" json:"user_id"`
	RecipientID   string    `gorm:"type:varchar(50);not null;default:''" json:"recipient_id"`
	RecipientName string    `gorm:"type:varchar(20);not null;default:''" json:"recipient_name"`
	Content       string    `gorm:"type:varchar(200);not null;default:''" json:"content"`
	CreatedAt     time.Time `json:"create_time"`
	UpdatedAt     time.Time `json:"update_time"`
}

func (Message) TableName() string {
	return "message"
}
