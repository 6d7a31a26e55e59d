package repository

import (
	"context"
	"database/sql"

	"blogapi/internal/models"
)

// UserRepo persists accounts. Lookups return (nil, nil) when no row matches.
type UserRepo interface {
	Create(ctx context.Context, u models.User) (int, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id int, upd *UserUpdate) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type ArticleRepo interface {
	Create(ctx context.Context, a models.Article) (int, error)
	GetByID(ctx context.Context, id int) (*models.Article, error)
	List(ctx context.Context) ([]models.Article, error)
	SearchByTitle(ctx context.Context, title string) ([]models.Article, error)
	Update(ctx context.Context, id int, title, content string) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type CommentRepo interface {
	Create(ctx context.Context, c models.Comment) (int, error)
	GetByID(ctx context.Context, id int) (*models.Comment, error)
	ListByArticle(ctx context.Context, articleID int) ([]models.Comment, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type Repository struct {
	Users    UserRepo
	Articles ArticleRepo
	Comments CommentRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:    NewUserSQLite(db),
		Articles: NewArticleSQLite(db),
		Comments: NewCommentSQLite(db),
	}
}
