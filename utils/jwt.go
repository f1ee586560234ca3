package utils

import (
    "time"
    "github.com/golang-jwt/jwt/v5"
    "os"
)

// SessionTTL bounds both the JWT expiry and the server-side session row.
const SessionTTL = time.Hour * 72

func GenerateJWT(username, sessionID string) (string, error) {
    token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
        "username": username,
        "sid":      sessionID,
        "exp":      time.Now().Add(SessionTTL).Unix(),
    })

    return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
