package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		from Status
		to   Status
		want bool
	}{
		{"活动待审批可通过", KindActivity, StatusPending, StatusApproved, true},
		{"活动待审批可驳回", KindActivity, StatusPending, StatusRejected, true},
		{"活动待审批不能直接完成", KindActivity, StatusPending, StatusCompleted, false},
		{"活动通过后可评价", KindActivity, StatusApproved, StatusEvaluated, true},
		{"活动通过后可反馈", KindActivity, StatusApproved, StatusInFeedback, true},
		{"活动驳回是终态", KindActivity, StatusRejected, StatusApproved, false},

		{"维修待处理只能派单", KindRepair, StatusPending, StatusAssigned, true},
		{"维修待处理不能跳到处理中", KindRepair, StatusPending, StatusInProgress, false},
		{"维修已派单转处理中", KindRepair, StatusAssigned, StatusInProgress, true},
		{"维修处理中转完成", KindRepair, StatusInProgress, StatusCompleted, true},
		{"维修完成后可评价", KindRepair, StatusCompleted, StatusEvaluated, true},
		{"维修完成后可反馈", KindRepair, StatusCompleted, StatusInFeedback, true},
		{"维修不能倒退", KindRepair, StatusCompleted, StatusPending, false},

		{"缴费待处理转完成", KindPayment, StatusPending, StatusCompleted, true},
		{"车位完成后可反馈", KindParking, StatusCompleted, StatusInFeedback, true},
		{"房屋完成后可评价", KindHouse, StatusCompleted, StatusEvaluated, true},

		{"反馈处理完可回到已完成", KindRepair, StatusInFeedback, StatusCompleted, true},
		{"反馈中也可直接评价", KindActivity, StatusInFeedback, StatusEvaluated, true},
		{"已评价是终态", KindRepair, StatusEvaluated, StatusInFeedback, false},
		{"已评价不能重开", KindActivity, StatusEvaluated, StatusCompleted, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.kind, tt.from, tt.to))
		})
	}
}

func TestCanTransitionSameStatus(t *testing.T) {
	for _, kind := range []Kind{KindActivity, KindRepair, KindPayment, KindParking, KindHouse} {
		for status := StatusPending; status <= StatusEvaluated; status++ {
			assert.True(t, CanTransition(kind, status, status))
		}
	}
}

func TestKindOfServiceType(t *testing.T) {
	assert.Equal(t, KindActivity, KindOfServiceType("A"))
	assert.Equal(t, KindRepair, KindOfServiceType("C1"))
	assert.Equal(t, KindRepair, KindOfServiceType("P2"))
	assert.Equal(t, KindRepair, KindOfServiceType(""))
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "待处理", StatusPending.String())
	assert.Equal(t, "已评价", StatusEvaluated.String())
	assert.Equal(t, "未知状态", Status(99).String())
}

func TestDeriveUnitCode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode string
		wantArea string
		wantOK   bool
	}{
		{"标准车位号", "A1234车位保证金", "A1234", "A", true},
		{"刚好五位", "B0001", "B0001", "B", true},
		{"不足五位", "C123", "", "", false},
		{"空名称", "", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, area, ok := DeriveUnitCode(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantArea, area)
		})
	}
}
