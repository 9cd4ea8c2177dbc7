package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

type JWT struct {
	key []byte
	now func() time.Time
}

// User 是令牌中携带的身份信息
type User struct {
	ID      uint
	Role    string
	Expires int64 // Unix second
}

type claims struct {
	jwt.RegisteredClaims
	UserID uint   `json:"userId"`
	Role   string `json:"role"`
}

func New(key string) (*JWT, error) {
	if len(key) == 0 {
		return nil, errors.New("key is empty")
	}

	return &JWT{key: []byte(key), now: time.Now}, nil
}

// WithClock 返回使用指定时钟签发与校验的副本
func (j *JWT) WithClock(now func() time.Time) *JWT {
	return &JWT{key: j.key, now: now}
}

func (j *JWT) Now() time.Time {
	return j.now()
}

func (j *JWT) ParseUser(tokenString string) (*User, error) {
	// 检查是否有效
	if len(tokenString) == 0 {
		return nil, fmt.Errorf("%w: token string is empty", ErrInvalidToken)
	}

	// 映射字段，只接受 HS256 并要求带有过期时间
	c := &claims{}
	token, err := jwt.ParseWithClaims(tokenString, c, func(token *jwt.Token) (interface{}, error) {
		return j.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid || c.ExpiresAt == nil {
		return nil, ErrInvalidToken
	}

	return &User{
		ID:      c.UserID,
		Role:    c.Role,
		Expires: c.ExpiresAt.Unix(),
	}, nil
}

func (j *JWT) SignToken(user *User) (string, error) {
	// 创建声明
	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(j.now()),
			ExpiresAt: jwt.NewNumericDate(time.Unix(user.Expires, 0)),
		},
		UserID: user.ID,
		Role:   user.Role,
	}

	// 创建令牌
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)

	// 签名并返回
	return token.SignedString(j.key)
}
