package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	JWTSecret         string = "Quicker"
	JWTExpirationTime        = time.Hour * 24
)

// UserClaims 定义了我们 Token 中需要包含的业务信息
// Token 仅绑定用户邮箱，身份解析在鉴权时通过用户表完成
type UserClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}
