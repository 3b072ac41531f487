package model

import (
	"time"
)

// 用户组
const (
	GroupResident int8 = 0 // 普通用户
	GroupWorker   int8 = 1 // 维修师傅
	GroupAdmin    int8 = 2 // 管理员
)

// 账号状态
const (
	UserStatusAbnormal  int8 = 0
	UserStatusMonitored int8 = 1
	UserStatusNormal    int8 = 2
)

type User struct {
	ID           uint64     `gorm:"primaryKey" json:"id"`
	Username     string     `gorm:"type:varchar(50);uniqueIndex:idx_username" json:"username"`
	Password     string     `gorm:"type:varchar(255)" json:"-"`
	Name         string     `gorm:"type:varchar(20)" json:"name"`
	Avatar       string     `gorm:"type:varchar(255)" json:"avatar"`
	Phone        *string    `gorm:"type:varchar(30);uniqueIndex:idx_phone" json:"phone"`
	Sex          int8       `gorm:"type:tinyint(1);default:1" json:"sex"`
	Group        int8       `gorm:"column:user_group;type:tinyint(1);default:0" json:"group"`
	IDNum        string     `gorm:"type:varchar(20)" json:"id_num"`
	Message      string     `gorm:"type:varchar(200)" json:"message"`
	CheckIn      *time.Time `json:"check_in"`
	Status       int8       `gorm:"type:tinyint(1);default:2" json:"status"`
	InfoComplete bool       `gorm:"type:tinyint(1);default:0" json:"info_complete"`
	// 维修师傅当前承接的维修任务 id，0 表示空闲
	TaskID uint64 `gorm:"not null;default:0" json:"task_id"`
	// 本月已缴费项目位图：水/电/燃气/物业各占 1 位
	PaymentID int8      `gorm:"not null;default:0" json:"payment_id"`
	CreatedAt time.Time `json:"create_time"`
	UpdatedAt time.Time `json:"update_time"`
}

func (User) TableName() string {
	return "user"
}
