package jwt

import (
	"encoding/json"
	"errors"
	"fmt"
	types "go-storefront/internal/common/type"
	"go-storefront/internal/pkg/logger"
	"go-storefront/internal/pkg/validation"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	UserDataKey   = "user_data"
	TokenDuration = 24 * time.Hour
)

var (
	ErrInvalidToken = errors.New("invalid token")

	mu     sync.RWMutex
	secret []byte
)

// Setup installs the HMAC secret used to sign and verify tokens.
func Setup(s string) {
	mu.Lock()
	defer mu.Unlock()
	secret = []byte(s)
}

func getJWTSecret() []byte {
	mu.RLock()
	defer mu.RUnlock()
	if len(secret) == 0 {
		logger.Warning.Println("JWT secret not configured, using default secret")
		return []byte("$d3f4uIt_s3cr3t_key#")
	}
	return secret
}

func GenerateToken(data types.UserWithAuth) (string, *time.Time, error) {
	exp := time.Now().Add(TokenDuration)

	claims := jwt.MapClaims{
		"exp":       exp.Unix(),
		UserDataKey: data,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(getJWTSecret())
	if err != nil {
		return "", nil, err
	}

	return signedToken, &exp, nil
}

func ValidateToken(jwtToken string) (*types.UserWithAuth, error) {
	token, err := jwt.Parse(jwtToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return getJWTSecret(), nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims[UserDataKey] == nil {
		return nil, fmt.Errorf("user data not found in token claims")
	}

	userDataBytes, err := json.Marshal(claims[UserDataKey])
	if err != nil {
		return nil, fmt.Errorf("error marshalling user data: %w", err)
	}

	var userData types.UserWithAuth
	if err := json.Unmarshal(userDataBytes, &userData); err != nil {
		return nil, fmt.Errorf("error unmarshalling user data: %w", err)
	}

	if err := validation.Validate(userData); err != nil {
		return nil, err
	}

	return &userData, nil
}
