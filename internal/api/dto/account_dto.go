package dto

// RegisterDTO 注册参数，手机号可选
type RegisterDTO struct {
	Username string  `json:"username" validate:"required,min=4,max=50"`
	Password string  `json:"password" validate:"required,min=6,max=64"`
	Name     string  `json:"name" validate:"required,max=20"`
	Phone    *string `json:"phone" validate:"omitempty,len=11"`
	Sex      int8    `json:"sex" validate:"min=0,max=1"`
	IDNum    string  `json:"id_num" validate:"omitempty,max=20"`
}

// CredentialDTO 登录凭据：账号密码或手机验证码二选一
type CredentialDTO struct {
	Username *string `json:"username" validate:"omitempty,max=50"`
	Password *string `json:"password" validate:"omitempty,max=64"`
	Phone    *string `json:"phone" validate:"omitempty,len=11"`
	Code     *string `json:"code" validate:"omitempty,len=6"`
}

// LoginResultDTO 登录成功返回
type LoginResultDTO struct {
	Token  string `json:"token"`
	UserID uint64 `json:"user_id"`
	Name   string `json:"name"`
	Group  int8   `json:"group"`
	Avatar string `json:"avatar"`
}

// RankingEntryDTO 登录排行榜条目
type RankingEntryDTO struct {
	UserID uint64  `json:"user_id"`
	Name   string  `json:"name"`
	Count  float64 `json:"count"`
}
