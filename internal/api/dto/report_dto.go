package dto

// RecordsReportDTO 近 7 天运营记录汇总
type RecordsReportDTO struct {
	Activities []any `json:"activities"`
	Repairs    []any `json:"repairs"`
	Payments   []any `json:"payments"`
	Houses     []any `json:"houses"`
	Parkings   []any `json:"parkings"`
}

// CommunityStatsDTO 社区总体统计
type CommunityStatsDTO struct {
	AllUser   int64 `json:"all_user"`
	Resident  int64 `json:"resident"`
	HouseUse  int64 `json:"house_use"`
	HouseFree int64 `json:"house_free"`
	ParkUse   int64 `json:"park_use"`
	ParkFree  int64 `json:"park_free"`
}

// WeekdayBucketsDTO 近 7 天评分分布，下标 0 对应星期日
type WeekdayBucketsDTO struct {
	Negative [7]int `json:"negative"` // score < 3
	General  [7]int `json:"general"`  // 3 <= score < 5
	Praise   [7]int `json:"praise"`   // score == 5
}

// CallCountDTO 服务调用计数
type CallCountDTO struct {
	MySQL int64 `json:"mysql"`
	Redis int64 `json:"redis"`
}
