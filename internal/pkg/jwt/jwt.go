package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"synergysphere/internal/pkg/config"
	pkgErrors "synergysphere/pkg/errors"
)

// UserClaims 用户Claims, 即认证后附加到请求上下文的身份信息
type UserClaims struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	jwt.RegisteredClaims
}

// Manager 签发与校验 Token, 持有服务端密钥
type Manager struct {
	secret []byte
	expire time.Duration
}

// NewManager 创建 Token 管理器
func NewManager(cfg *config.JWTConfig) *Manager {
	expire := time.Duration(cfg.TokenExpire) * time.Second
	if expire <= 0 {
		expire = time.Duration(config.DefaultTokenExpire) * time.Second
	}
	return &Manager{
		secret: []byte(cfg.Secret),
		expire: expire,
	}
}

// GenerateToken 生成访问Token
func (m *Manager) GenerateToken(id, email, fullName string) (string, error) {
	claims := UserClaims{
		ID:       id,
		Email:    email,
		FullName: fullName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.expire)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ValidateToken 校验Token签名与有效期
// 任何失败原因对调用方不做区分, 统一返回 401
func (m *Manager) ValidateToken(tokenString string) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		// 验证签名方法
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, pkgErrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*UserClaims)
	if !ok || !token.Valid {
		return nil, pkgErrors.ErrInvalidToken
	}

	return claims, nil
}
