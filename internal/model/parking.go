package model

import (
	"time"
)

// Parking 车位使用记录，车位号由缴费款项名前 5 位派生
type Parking struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	UserID       uint64    `gorm:"not null;uniqueIndex:idx_parking_user" json:"user_id"`
	PaymentID    uint64    `gorm:"not null;index:idx_payment_id" json:"payment_id"`
	ParkingLotID string    `gorm:"type:varchar(5);not null;uniqueIndex:idx_lot" json:"parking_lot_id"`
	AreaCode     string    `gorm:"type:char(1);not null;default:'A';index:idx_area" json:"area_code"`
	Status       Status    `gorm:"type:tinyint(1);not null;default:0" json:"status"`
	CreatedAt    time.Time `json:"create_time"`
	UpdatedAt    time.Time `json:"update_time"`
}

func (Parking) TableName() string {
	return "parking"
}

// House 房屋使用记录
type House struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UserID    uint64    `gorm:"not null;uniqueIndex:idx_house_user" json:"user_id"`
	PaymentID uint64    `gorm:"not null;index:idx_payment_id" json:"payment_id"`
	HouseID   string    `gorm:"type:varchar(5);not null;uniqueIndex:idx_house" json:"house_id"`
	AreaCode  string    `gorm:"type:char(1);not null;default:'A';index:idx_area" json:"area_code"`
	Status    Status    `gorm:"type:tinyint(1);not null;default:0" json:"status"`
	CreatedAt time.Time `json:"create_time"`
	UpdatedAt time.Time `json:"update_time"`
}

func (House) TableName() string {
	return "house"
}
