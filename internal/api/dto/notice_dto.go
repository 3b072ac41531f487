package dto

import "time"

type CreateNoticeDTO struct {
	Type    int8       `json:"type" validate:"min=0,max=2"`
	Title   string     `json:"title" validate:"required,max=50"`
	Content string     `json:"content" validate:"omitempty,max=500"`
	Img     string     `json:"img" validate:"omitempty,max=255"`
	Address string     `json:"address" validate:"omitempty,max=60"`
	Money   float64    `json:"money" validate:"omitempty,min=0"`
	Start   *time.Time `json:"start"`
	End     *time.Time `json:"end"`
	Need    int        `json:"need" validate:"omitempty,min=0"`
}

type SearchNoticeDTO struct {
	PageDTO
	Type *int8 `form:"type" json:"type" validate:"omitempty,min=0,max=2"`
}

// NoticeDTO 公示详情，Likes 为点赞人数，Liked 为当前用户是否已点赞
type NoticeDTO struct {
	ID        uint64     `json:"id"`
	Type      int8       `json:"type"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Img       string     `json:"img"`
	Address   string     `json:"address"`
	Money     float64    `json:"money"`
	Start     *time.Time `json:"start"`
	End       *time.Time `json:"end"`
	Join      int        `json:"join"`
	Need      int        `json:"need"`
	Status    int8       `json:"status"`
	Likes     int64      `json:"likes"`
	Liked     bool       `json:"liked"`
	CreatedAt time.Time  `json:"create_time"`
}

// ActivityProgressDTO 活动报名进度
type ActivityProgressDTO struct {
	ID    uint64 `json:"id"`
	Title string `json:"title"`
	Join  int    `json:"join"`
	Need  int    `json:"need"`
}
