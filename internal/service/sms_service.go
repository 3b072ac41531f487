package service

import (
	"StarEstate/internal/pkg/consts"
	"StarEstate/internal/pkg/redis"
	"StarEstate/internal/pkg/util"
	"context"
)

type SmsService interface {
	SendCode(ctx context.Context, phone string) error
	VerifyCode(ctx context.Context, phone string, code string) error
}

type SmsServiceImpl struct{}

func NewSmsService() SmsService {
	return &SmsServiceImpl{}
}

func (s *SmsServiceImpl) SendCode(ctx context.Context, phone string) error {
	code := util.GenerateCode(6)
	err := redis.SetWithExpiration(ctx, consts.SmsCodeKey+phone, code, consts.SmsCodeTTL)
	if err != nil {
		return err
	}
	return util.SendSms(phone, code)
}

func (s *SmsServiceImpl) VerifyCode(ctx context.Context, phone string, code string) error {
	redisCode, err := redis.GetValue(ctx, consts.SmsCodeKey+phone)
	if err != nil {
		return err
	}
	if redisCode == "" || redisCode != code {
		return ErrCodeIncorrect
	}
	_ = redis.DeleteKey(ctx, consts.SmsCodeKey+phone)
	return nil
}
