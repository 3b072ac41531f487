package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeeTypeOf(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  int8
	}{
		{"水费", "5月份水费", PaymentTypeWater},
		{"电费", "5月份电费", PaymentTypeElectric},
		{"物业费", "5月份物业费", PaymentTypeProperty},
		{"燃气费", "5月份燃气费", PaymentTypeGas},
		{"不带月份前缀", "物业费", PaymentTypeProperty},
		{"认不出来按水费", "5月份卫生费", PaymentTypeWater},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FeeTypeOf(tt.title))
		})
	}
}
