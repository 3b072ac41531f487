package model

import (
	"strings"
	"time"
)

// 收费类型
const (
	PaymentTypeWater    int8 = 0
	PaymentTypeElectric int8 = 1
	PaymentTypeProperty int8 = 2
	PaymentTypeGas      int8 = 3
	PaymentTypeHouse    int8 = 4 // 房屋保证金
	PaymentTypeParking  int8 = 5 // 车位保证金
)

// PurchaseTypeMin 及以上的缴费类型会产生车位/房屋使用记录
const PurchaseTypeMin int8 = 4

var feeTypeNames = map[string]int8{
	"水费":  PaymentTypeWater,
	"电费":  PaymentTypeElectric,
	"物业费": PaymentTypeProperty,
	"燃气费": PaymentTypeGas,
}

// FeeTypeOf 从收费通知标题解析缴费类型。
// 标题带月份前缀（如 "5月份水费"），按结尾的费种名归类，认不出来按水费记。
func FeeTypeOf(name string) int8 {
	for suffix, feeType := range feeTypeNames {
		if strings.HasSuffix(name, suffix) {
			return feeType
		}
	}
	return PaymentTypeWater
}

// Payment 后台缴费单
type Payment struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UserID    uint64    `gorm:"not null;index:idx_user_id" json:"user_id"`
	Name      string    `gorm:"type:varchar(50);not null" json:"name"`
	Status    Status    `gorm:"type:tinyint(1);not null;default:0" json:"status"`
	Type      int8      `gorm:"type:tinyint(1);not null;default:0" json:"type"`
	Money     float64   `gorm:"type:decimal(10,2);not null;default:0" json:"money"`
	CreatedAt time.Time `json:"create_time"`
	UpdatedAt time.Time `json:"update_time"`
}

func (Payment) TableName() string {
	return "payment"
}

// DeriveUnitCode 从缴费单名称解析出房屋/车位编号（前 5 位）
// 和所属片区（首字符）。名称不足 5 位视为非法。
func DeriveUnitCode(name string) (code, area string, ok bool) {
	runes := []rune(name)
	if len(runes) < 5 {
		return "", "", false
	}
	return string(runes[:5]), string(runes[:1]), true
}

// UserPayment 前台用户缴费记录，OrderID 回指后台 Payment
type UserPayment struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UserID    uint64    `gorm:"not null;index:idx_user_id" json:"user_id"`
	Money     float64   `gorm:"type:decimal(10,2);not null;default:0" json:"money"`
	Name      string    `gorm:"type:varchar(50);not null;default:''" json:"name"`
	Type      int8      `gorm:"type:tinyint(1);not null;default:0" json:"type"`
	OrderID   uint64    `gorm:"not null;default:0" json:"order_id"`
	Status    Status    `gorm:"type:tinyint(1);not null;default:0" json:"status"`
	Score     *float64  `json:"score"`
	CreatedAt time.Time `json:"create_time"`
	UpdatedAt time.Time `json:"update_time"`
}

func (UserPayment) TableName() string {
	return "user_payment"
}
