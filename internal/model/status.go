package model

// Status 工单/记录的流转状态，所有业务表共用同一套取值
type Status int8

const (
	StatusPending    Status = 0 // 待处理
	StatusAssigned   Status = 1 // 已派单
	StatusInProgress Status = 2 // 处理中
	StatusCompleted  Status = 3 // 已完成
	StatusApproved   Status = 4 // 审批通过
	StatusRejected   Status = 5 // 审批驳回
	StatusInFeedback Status = 6 // 反馈中
	StatusEvaluated  Status = 7 // 已评价
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "待处理"
	case StatusAssigned:
		return "已派单"
	case StatusInProgress:
		return "处理中"
	case StatusCompleted:
		return "已完成"
	case StatusApproved:
		return "审批通过"
	case StatusRejected:
		return "审批驳回"
	case StatusInFeedback:
		return "反馈中"
	case StatusEvaluated:
		return "已评价"
	}
	return "未知状态"
}

// Kind 状态机按业务线区分的流转表键
type Kind int

const (
	KindActivity Kind = iota
	KindRepair
	KindPayment
	KindParking
	KindHouse
)

// ServiceTypeActivity 前台服务记录里活动类的 type 值，
// 其余取值均视为维修类
const ServiceTypeActivity = "A"

// KindOfServiceType 由前台服务记录的 type 字段推断业务线
func KindOfServiceType(serviceType string) Kind {
	if serviceType == ServiceTypeActivity {
		return KindActivity
	}
	return KindRepair
}

// 各业务线允许的状态流转。没被列出的组合一律非法，
// 评价完成（StatusEvaluated）是所有业务线的终态。
var legalTransitions = map[Kind]map[Status][]Status{
	KindActivity: {
		StatusPending:    {StatusApproved, StatusRejected},
		StatusApproved:   {StatusInFeedback, StatusEvaluated},
		StatusInFeedback: {StatusEvaluated, StatusCompleted},
	},
	KindRepair: {
		StatusPending:    {StatusAssigned},
		StatusAssigned:   {StatusInProgress},
		StatusInProgress: {StatusCompleted},
		StatusCompleted:  {StatusInFeedback, StatusEvaluated},
		StatusInFeedback: {StatusEvaluated, StatusCompleted},
	},
	KindPayment: {
		StatusPending:    {StatusCompleted},
		StatusCompleted:  {StatusInFeedback, StatusEvaluated},
		StatusInFeedback: {StatusEvaluated, StatusCompleted},
	},
	KindParking: {
		StatusPending:    {StatusCompleted},
		StatusCompleted:  {StatusInFeedback, StatusEvaluated},
		StatusInFeedback: {StatusEvaluated, StatusCompleted},
	},
	KindHouse: {
		StatusPending:    {StatusCompleted},
		StatusCompleted:  {StatusInFeedback, StatusEvaluated},
		StatusInFeedback: {StatusEvaluated, StatusCompleted},
	},
}

// CanTransition 判断某业务线下 from 到 to 的流转是否合法，
// 原地不动总是允许
func CanTransition(kind Kind, from, to Status) bool {
	if from == to {
		return true
	}
	for _, next := range legalTransitions[kind][from] {
		if next == to {
			return true
		}
	}
	return false
}
