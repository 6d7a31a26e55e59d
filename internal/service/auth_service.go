package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"blogapi/internal/models"
	"blogapi/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// RegisterInput is the sign-up payload.
type RegisterInput struct {
	Username string `validate:"required,min=3"`
	Email    string `validate:"required,contains=@"`
	Password string `validate:"required,min=6"`
}

type loginInput struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// AuthService handles registration, login and token verification.
type AuthService struct {
	users      repository.UserRepo
	signingKey []byte
	tokenTTL   time.Duration
	hashCost   int
	now        func() time.Time
}

func NewAuthService(repo repository.UserRepo, opts Options) *AuthService {
	opts = opts.withDefaults()
	return &AuthService{
		users:      repo,
		signingKey: []byte(opts.SigningKey),
		tokenTTL:   opts.TokenTTL,
		hashCost:   opts.BcryptCost,
		now:        time.Now,
	}
}

// normalize trims the identity fields; passwords are taken verbatim.
func (in RegisterInput) normalize() RegisterInput {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	return in
}

// Register validates the input, rejects duplicates and stores a new user with role "user".
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (int, error) {
	return s.createUser(ctx, in, models.RoleUser)
}

func (s *AuthService) createUser(ctx context.Context, in RegisterInput, role string) (int, error) {
	in = in.normalize()
	if err := validateStruct(in, "username, email and password are required"); err != nil {
		return 0, err
	}

	exists, err := s.users.ExistsByEmailOrUsername(ctx, in.Email, in.Username)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, ErrUserExists
	}

	hash, err := s.hashPassword(in.Password)
	if err != nil {
		return 0, err
	}
	id, err := s.users.Create(ctx, models.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         role,
	})
	if errors.Is(err, repository.ErrDuplicate) {
		return 0, ErrUserExists
	}
	return id, err
}

// EnsureAdmin creates an admin account unless a user with the email already
// exists. It reports whether an account was created.
func (s *AuthService) EnsureAdmin(ctx context.Context, in RegisterInput) (bool, error) {
	in = in.normalize()
	existing, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	if _, err := s.createUser(ctx, in, models.RoleAdmin); err != nil {
		return false, fmt.Errorf("seed admin %q: %w", in.Email, err)
	}
	return true, nil
}

// Login checks credentials and returns a signed token with the user record.
// Unknown email and wrong password fail identically.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, models.User, error) {
	in := loginInput{Email: strings.TrimSpace(email), Password: password}
	if err := validateStruct(in, "email and password are required"); err != nil {
		return "", models.User{}, err
	}

	u, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return "", models.User{}, err
	}
	if u == nil {
		return "", models.User{}, ErrInvalidCredentials
	}
	if err := verifyPassword(u.PasswordHash, in.Password); err != nil {
		return "", models.User{}, ErrInvalidCredentials
	}

	token, err := s.issueToken(models.Principal{ID: u.ID, Role: u.Role})
	if err != nil {
		return "", models.User{}, err
	}
	out := *u
	out.PasswordHash = ""
	return token, out, nil
}

// Claims defines JWT claims
type Claims struct {
	jwt.RegisteredClaims
	UserID int    `json:"user_id"`
	Role   string `json:"role"`
}

// ParseToken verifies an HS256 token and returns its principal.
func (s *AuthService) ParseToken(accessToken string) (models.Principal, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return models.Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID <= 0 || !models.ValidRole(claims.Role) {
		return models.Principal{}, ErrInvalidToken
	}

	return models.Principal{ID: claims.UserID, Role: claims.Role}, nil
}

func (s *AuthService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", newError(KindValidation, "password must be at most 72 bytes")
	}
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func (s *AuthService) issueToken(p models.Principal) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(p.ID),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: p.ID,
		Role:   p.Role,
	})
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
