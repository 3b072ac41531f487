package dto

// ActivityApplyDTO 活动报名
type ActivityApplyDTO struct {
	NoticeID uint64 `json:"publicity_id" validate:"required"`
}

// ReviewDTO 审批目标状态
type ReviewDTO struct {
	Status int8 `json:"status" validate:"min=0,max=7"`
}

// RepairsApplyDTO 维修申请，Type 为 C*/P* + 故障类别
type RepairsApplyDTO struct {
	Name string `json:"name" validate:"required,max=100"`
	Type string `json:"type" validate:"required,len=2"`
}

// RepairAssignDTO 维修工单推进，WorkerID 非零时绑定/交接维修工
type RepairAssignDTO struct {
	Status   int8   `json:"status" validate:"min=0,max=7"`
	WorkerID uint64 `json:"worker_id"`
}
