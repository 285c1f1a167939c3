package auth

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/geovannedomonte/vaiart/internal/config"
	"github.com/geovannedomonte/vaiart/internal/domain"
	apperrors "github.com/geovannedomonte/vaiart/internal/errors"
)

const minPasswordLength = 6

type authService struct {
	repo     Repository
	secret   []byte
	tokenTTL time.Duration
	logger   *zap.Logger
}

func NewService(repo Repository, cfg config.AuthConfig, logger *zap.Logger) Service {
	return &authService{
		repo:     repo,
		secret:   []byte(cfg.JWTSecret),
		tokenTTL: cfg.TokenTTL,
		logger:   logger,
	}
}

func validateCredentials(email, password string) error {
	var details []apperrors.ValidationDetail

	if strings.TrimSpace(email) == "" || !strings.Contains(email, "@") {
		details = append(details, apperrors.ValidationDetail{
			Field:   "email",
			Message: "email must be a valid address",
		})
	}

	if len(password) < minPasswordLength {
		details = append(details, apperrors.ValidationDetail{
			Field:   "password",
			Message: "password must have at least 6 characters",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}

	return nil
}

func (s *authService) Register(ctx context.Context, email, password string) (*UserDTO, error) {
	if err := validateCredentials(email, password); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewConflictError("email is already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.NewInternalError("hashing password", err)
	}

	user := domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleCustomer,
	}

	id, err := s.repo.Insert(ctx, &user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user registered", zap.Uint("userId", id), zap.String("email", email))

	return &UserDTO{
		ID:    id,
		Email: email,
		Role:  string(user.Role),
	}, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*TokenDTO, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, apperrors.NewAuthError("invalid credentials")
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, apperrors.NewAuthError("invalid credentials")
	}

	expiresAt := time.Now().Add(s.tokenTTL)
	claims := Claims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, apperrors.NewInternalError("signing token", err)
	}

	return &TokenDTO{Token: token, ExpiresAt: expiresAt}, nil
}

// ParseToken fails closed: any parse, signature, or expiry problem comes
// back as a generic AuthError.
func (s *authService) ParseToken(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, apperrors.NewAuthError("invalid or expired token")
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, apperrors.NewAuthError("invalid or expired token")
	}

	return claims, nil
}

// EnsureAdmin creates the back-office account on startup when configured
// and missing. No-op otherwise.
func (s *authService) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.NewInternalError("hashing admin password", err)
	}

	user := domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	}

	if _, err := s.repo.Insert(ctx, &user); err != nil {
		return err
	}

	s.logger.Info("admin account bootstrapped", zap.String("email", email))
	return nil
}
