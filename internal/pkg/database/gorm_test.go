package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithClientFoundRows(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
		want string
	}{
		{
			name: "已有参数时追加",
			dsn:  "user:pw@tcp(127.0.0.1:3306)/app?charset=utf8mb4",
			want: "user:pw@tcp(127.0.0.1:3306)/app?charset=utf8mb4&clientFoundRows=true",
		},
		{
			name: "无参数时新起查询串",
			dsn:  "user:pw@tcp(127.0.0.1:3306)/app",
			want: "user:pw@tcp(127.0.0.1:3306)/app?clientFoundRows=true",
		},
		{
			name: "已配置则不重复",
			dsn:  "user:pw@tcp(127.0.0.1:3306)/app?clientFoundRows=true",
			want: "user:pw@tcp(127.0.0.1:3306)/app?clientFoundRows=true",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, withClientFoundRows(tt.dsn))
		})
	}
}
