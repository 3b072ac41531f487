package dto

// 车位与房屋的直购登记。归属人一律取当前登录用户，
// 片区由编号首字符派生，请求体里都不收。

type CreateParkingDTO struct {
	ParkingLotID string `json:"parking_lot_id" validate:"required,max=5"`
}

type CreateHouseDTO struct {
	HouseID string `json:"house_id" validate:"required,max=5"`
}
