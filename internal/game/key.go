package game

import (
	"errors"
	"os"

	"github.com/golang-jwt/jwt/v5"
)

// Games are referenced across requests by an opaque key: a signed compact
// token wrapping the numeric game id, so clients never see raw row ids.

type gameKeyClaims struct {
	GameID uint `json:"gid"`
	jwt.RegisteredClaims
}

func keySecret() []byte {
	return []byte(os.Getenv("GAME_KEY_SECRET"))
}

var EncodeGameKey = func(id uint) (string, error) {
	claims := gameKeyClaims{GameID: id}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(keySecret())
}

var DecodeGameKey = func(key string) (uint, error) {
	claims := &gameKeyClaims{}
	token, err := jwt.ParseWithClaims(key, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return keySecret(), nil
	})
	if err != nil {
		return 0, err
	}
	if !token.Valid || claims.GameID == 0 {
		return 0, errors.New("invalid game key")
	}

	return claims.GameID, nil
}
