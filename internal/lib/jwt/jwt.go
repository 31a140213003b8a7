package jwt

import (
	"time"

	"pixhub/internal/domain/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// NewToken выпускает HS256-токен с uid и email пользователя.
// jti делает каждый выпуск уникальным: iat имеет секундное разрешение,
// и без jti два токена, выданные в одну секунду, совпадали бы побайтно.
func NewToken(user models.User, secret string, duration time.Duration) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["uid"] = user.ID.String()
	claims["email"] = user.Email
	claims["jti"] = uuid.NewString()
	claims["iat"] = time.Now().Unix()
	claims["exp"] = time.Now().Add(duration).Unix()

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}
