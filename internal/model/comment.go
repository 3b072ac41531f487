package model

import (
	"time"
)

// 评论类型
const (
	CommentTypeBoard int8 = 0 // 留言
	CommentTypeReply int8 = 1 // 评论
)

// 评论发布状态
const (
	CommentStatusShielded int8 = 0
	CommentStatusVisible  int8 = 1
)

// Comment 留言/评论，ParentID=0 表示根节点
// parent 链按约定构成森林，屏蔽/删除时整棵子树一并处理
type Comment struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UserID    uint64    `gorm:"not null;index:idx_user_id" json:"user_id"`
	Comment   string    `gorm:"type:varchar(500)" json:"comment"`
	ReplyName string    `gorm:"type:varchar(20)" json:"reply_name"`
	Type      int8      `gorm:"type:tinyint(1);not null;default:0" json:"type"`
	PageName  string    `gorm:"type:varchar(50);not null;default:'留言板'" json:"page_name"`
	PageID    uint64    `gorm:"not null;default:0" json:"page_id"`
	Status    int8      `gorm:"type:tinyint(1);not null;default:1" json:"status"`
	ParentID  uint64    `gorm:"column:father_id;not null;default:0;index:idx_father_id" json:"father_id"`
	Good      int       `gorm:"not null;default:0" json:"good"`
	Show      bool      `gorm:"type:tinyint(1);not null;default:1" json:"show"`
	CreatedAt time.Time `json:"create_time"`
	UpdatedAt time.Time `json:"update_time"`
}

func (Comment) TableName() string {
	return "comments"
}
