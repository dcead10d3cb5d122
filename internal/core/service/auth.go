package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/gameroom/backoffice/internal/core/domain"
	"github.com/gameroom/backoffice/internal/core/dto"
	"github.com/gameroom/backoffice/internal/core/logger"
	"github.com/gameroom/backoffice/internal/core/port"
	"github.com/gameroom/backoffice/internal/core/serviceerrors"
)

// Identity is the authenticated principal carried through request handling.
type Identity struct {
	UserID domain.ID
	Name   string
	Email  string
}

type authClaims struct {
	Name  string `json:"nombre"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type AuthService struct {
	userRepository port.UserPort
	jwtSecret      []byte
	tokenTTL       time.Duration
	bcryptCost     int
}

func NewAuthService(userRepository port.UserPort, jwtSecret string, tokenTTL time.Duration, bcryptCost int) *AuthService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		userRepository: userRepository,
		jwtSecret:      []byte(jwtSecret),
		tokenTTL:       tokenTTL,
		bcryptCost:     bcryptCost,
	}
}

func (s *AuthService) Register(ctx context.Context, request *dto.RegisterRequest) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := domain.NewUser(request.Name, request.Email, string(hash))
	if err := s.userRepository.Create(ctx, user); err != nil {
		if serviceerrors.IsOfKind(err, serviceerrors.KindConflict) {
			return nil, serviceerrors.NewConflictError("El email ya está registrado")
		}
		logger.Error(ctx, "auth: register failed", err, map[string]any{
			"email": request.Email,
		})
		return nil, err
	}

	logger.Info(ctx, "User registered", map[string]any{"user_id": user.ID})
	return user, nil
}

// Login verifies credentials and issues a signed bearer token. A wrong email
// and a wrong password give the same answer.
func (s *AuthService) Login(ctx context.Context, request *dto.LoginRequest) (string, *domain.User, error) {
	user, err := s.userRepository.GetByEmail(ctx, request.Email)
	if err != nil {
		if serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			return "", nil, serviceerrors.NewInvalidRequestError("Credenciales inválidas")
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password)); err != nil {
		return "", nil, serviceerrors.NewInvalidRequestError("Credenciales inválidas")
	}

	now := time.Now()
	claims := authClaims{
		Name:  user.Name,
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   string(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", nil, err
	}

	logger.Info(ctx, "User logged in", map[string]any{"user_id": user.ID})
	return token, user, nil
}

// Verify parses and validates a bearer token and returns the identity it
// carries.
func (s *AuthService) Verify(tokenString string) (*Identity, error) {
	var claims authClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, serviceerrors.NewInvalidRequestError("Token inválido o expirado")
	}

	return &Identity{
		UserID: domain.ID(claims.Subject),
		Name:   claims.Name,
		Email:  claims.Email,
	}, nil
}
