package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/habitloop/habitloop/internal/model"
	"github.com/habitloop/habitloop/internal/repository"
)

var (
	ErrInvalidToken = errors.New("invalid token")
)

// AuthService verifies the identity tokens issued by the sign-in flow and
// resolves them to a user and the user's current subscription.
type AuthService struct {
	userRepository      repository.UserRepository
	subscriptionService *SubscriptionService
	jwtSecret           string
	jwtExpiry           time.Duration
}

func NewAuthService(
	userRepository repository.UserRepository,
	subscriptionService *SubscriptionService,
	jwtSecret string,
	jwtExpiry time.Duration,
) *AuthService {
	return &AuthService{
		userRepository:      userRepository,
		subscriptionService: subscriptionService,
		jwtSecret:           jwtSecret,
		jwtExpiry:           jwtExpiry,
	}
}

func (s *AuthService) GenerateJWT(user *model.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(s.jwtExpiry).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// VerifyJWT checks the signature and expiry and returns the user id claim.
func (s *AuthService) VerifyJWT(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", ErrInvalidToken
	}

	return userID, nil
}

// Identify resolves a token to the user and subscription it belongs to.
func (s *AuthService) Identify(ctx context.Context, tokenString string) (*model.User, *model.Subscription, error) {
	userID, err := s.VerifyJWT(tokenString)
	if err != nil {
		return nil, nil, err
	}

	user, err := s.userRepository.ByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	subscription, err := s.subscriptionService.Subscription(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	return user, subscription, nil
}
