package dto

import "time"

type UserDTO struct {
	ID           uint64     `json:"id"`
	Username     string     `json:"username"`
	Name         string     `json:"name"`
	Avatar       string     `json:"avatar"`
	Phone        *string    `json:"phone,omitempty"`
	Sex          int8       `json:"sex"`
	Group        int8       `json:"group"`
	Message      string     `json:"message"`
	Status       int8       `json:"status"`
	InfoComplete bool       `json:"info_complete"`
	TaskID       uint64     `json:"task_id"`
	PaymentID    int8       `json:"payment_id"`
	CheckIn      *time.Time `json:"check_in,omitempty"`
	CreatedAt    time.Time  `json:"create_time"`
}

// SearchUserDTO 按姓名模糊查询
type SearchUserDTO struct {
	PageDTO
	Name string `form:"name" json:"name" validate:"omitempty,max=20"`
}

type UpdateUserDTO struct {
	Name    *string `json:"name" validate:"omitempty,max=20"`
	Phone   *string `json:"phone" validate:"omitempty,len=11"`
	Sex     *int8   `json:"sex" validate:"omitempty,min=0,max=1"`
	Message *string `json:"message" validate:"omitempty,max=200"`
	IDNum   *string `json:"id_num" validate:"omitempty,max=20"`
	Status  *int8   `json:"status" validate:"omitempty,min=0,max=2"`
	Group   *int8   `json:"group" validate:"omitempty,min=0,max=2"`
}

type ChangePasswordDTO struct {
	OldPassword string `json:"old_password" validate:"required,max=64"`
	NewPassword string `json:"new_password" validate:"required,min=6,max=64"`
}
