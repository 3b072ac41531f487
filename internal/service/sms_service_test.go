package service

import (
	"StarEstate/internal/pkg/consts"
	"StarEstate/internal/pkg/redis"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyCode(t *testing.T) {
	newTestRedis(t)
	ctx := context.Background()
	svc := NewSmsService()

	require.NoError(t, redis.SetWithExpiration(ctx, consts.SmsCodeKey+"13800138000", "123456", consts.SmsCodeTTL))

	assert.ErrorIs(t, svc.VerifyCode(ctx, "13800138000", "654321"), ErrCodeIncorrect)
	assert.NoError(t, svc.VerifyCode(ctx, "13800138000", "123456"))

	// 验证码是一次性的
	assert.ErrorIs(t, svc.VerifyCode(ctx, "13800138000", "123456"), ErrCodeIncorrect)
}

func TestVerifyCodeMissing(t *testing.T) {
	newTestRedis(t)
	svc := NewSmsService()
	assert.ErrorIs(t, svc.VerifyCode(context.Background(), "13800138000", "123456"), ErrCodeIncorrect)
}
