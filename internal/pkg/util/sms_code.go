package util

import (
	"StarEstate/internal/api/config"
	"fmt"
	log "log/slog"
	"math/rand"
	"time"

	"github.com/go-resty/resty/v2"
)

const SuccessResp = "0"
const digits = "0123456789"

// SendSms 调用短信网关向指定手机号下发验证码
func SendSms(phone string, code string) error {
	smsCfg := config.Cfg.SMS
	content := fmt.Sprintf("【StarEstate】您的登录验证码为 %s ，60秒内有效。", code)

	client := resty.New().SetTimeout(10 * time.Second)
	resp, err := client.R().
		SetQueryParams(map[string]string{
			"u": smsCfg.Username,
			"p": smsCfg.ApiKey,
			"m": phone,
			"c": content,
		}).
		Get(smsCfg.URL)
	if err != nil {
		return err
	}
	if resp.StatusCode() != 200 {
		return fmt.Errorf("sms send failed: %s", resp.Status())
	}
	if resp.String() != SuccessResp {
		return fmt.Errorf("sms send failed: response code %s", resp.String())
	}

	log.Info("短信验证码已下发", "phone", phone)
	return nil
}

// GenerateCode 生成指定长度的数字验证码
func GenerateCode(length int) string {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	code := make([]byte, length)
	for i := range code {
		code[i] = digits[r.Intn(len(digits))]
	}
	return string(code)
}
