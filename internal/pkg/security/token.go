package security

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// TokenLength 登录令牌的十六进制字符数
const TokenLength = 40

// NewToken 生成一个不透明的随机登录令牌
// 令牌本身不携带任何信息，用户快照由 Redis 按令牌键存储
func NewToken() (string, error) {
	buf := make([]byte, TokenLength/2)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("生成令牌失败: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
