package service

import (
	"context"
	"time"

	"blogapi/internal/models"
	"blogapi/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type Authorization interface {
	Register(ctx context.Context, in RegisterInput) (int, error)
	Login(ctx context.Context, email, password string) (string, models.User, error)
	ParseToken(accessToken string) (models.Principal, error)
	EnsureAdmin(ctx context.Context, in RegisterInput) (bool, error)
}

// Articles is public reads plus owner/admin writes.
type Articles interface {
	List(ctx context.Context) ([]models.Article, error)
	Search(ctx context.Context, title string) ([]models.Article, error)
	Get(ctx context.Context, id int) (models.Article, error)
	Create(ctx context.Context, p models.Principal, in ArticleInput) (models.Article, error)
	Update(ctx context.Context, p models.Principal, id int, in ArticleInput) (models.Article, error)
	Delete(ctx context.Context, p models.Principal, id int) error
}

type Comments interface {
	ListByArticle(ctx context.Context, articleID int) ([]models.Comment, error)
	Get(ctx context.Context, id int) (models.Comment, error)
	Create(ctx context.Context, p models.Principal, articleID int, content string) (models.Comment, error)
	Delete(ctx context.Context, p models.Principal, id int) error
}

// Users is account management: self-service or admin.
type Users interface {
	List(ctx context.Context, p models.Principal) ([]models.User, error)
	Get(ctx context.Context, p models.Principal, id int) (models.User, error)
	Update(ctx context.Context, p models.Principal, id int, in UserUpdateInput) (models.User, error)
	Delete(ctx context.Context, p models.Principal, id int) error
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Articles Articles
	Comments Comments
	Users    Users
}

// Options tunes token issuing and password hashing.
type Options struct {
	SigningKey string
	TokenTTL   time.Duration
	BcryptCost int
}

const defaultTokenTTL = time.Hour

func (o Options) withDefaults() Options {
	if o.TokenTTL <= 0 {
		o.TokenTTL = defaultTokenTTL
	}
	if o.BcryptCost == 0 {
		o.BcryptCost = bcrypt.DefaultCost
	}
	return o
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, opts Options) *Service {
	auth := NewAuthService(repos.Users, opts)
	return &Service{
		Authorization: auth,
		Articles:      NewArticleService(repos.Articles),
		Comments:      NewCommentService(repos.Comments, repos.Articles),
		Users:         NewUserService(repos.Users, auth.hashPassword),
	}
}
