package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"blogapi/internal/models"
)

type ArticleSQLite struct {
	db *sql.DB
}

func NewArticleSQLite(db *sql.DB) *ArticleSQLite { return &ArticleSQLite{db: db} }

var _ ArticleRepo = (*ArticleSQLite)(nil)

const (
	articleColumns = `id, title, content, author_id, created_at`

	insertArticleSQL     = `INSERT INTO articles (title, content, author_id, created_at) VALUES (?, ?, ?, ?)`
	selectArticleByIDSQL = `SELECT ` + articleColumns + ` FROM articles WHERE id = ?`
	selectArticlesSQL    = `SELECT ` + articleColumns + ` FROM articles ORDER BY id ASC`
	searchArticlesSQL    = `SELECT ` + articleColumns + ` FROM articles WHERE title LIKE ? ESCAPE '\' ORDER BY id ASC`
	updateArticleSQL     = `UPDATE articles SET title = ?, content = ? WHERE id = ?`
	deleteArticleSQL     = `DELETE FROM articles WHERE id = ?`
)

const likeEscapeChar = `\`

var likeEscaper = strings.NewReplacer(
	likeEscapeChar, likeEscapeChar+likeEscapeChar,
	"%", likeEscapeChar+"%",
	"_", likeEscapeChar+"_",
)

// containsPattern builds a LIKE pattern matching s as a literal substring.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

func scanArticle(s rowScanner) (models.Article, error) {
	var a models.Article
	err := s.Scan(&a.ID, &a.Title, &a.Content, &a.AuthorID, &a.CreatedAt)
	a.CreatedAt = a.CreatedAt.UTC()
	return a, err
}

func (r *ArticleSQLite) queryArticles(ctx context.Context, q string, args ...any) ([]models.Article, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.Article, 0, 32)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts an article and returns its ID.
func (r *ArticleSQLite) Create(ctx context.Context, a models.Article) (int, error) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	res, err := r.db.ExecContext(ctx, insertArticleSQL, a.Title, a.Content, a.AuthorID, a.CreatedAt.UTC())
	if err != nil {
		return 0, fmt.Errorf("insert article: %w", err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for article: %w", err)
	}
	return int(lastID), nil
}

// GetByID returns (nil, nil) if the article does not exist.
func (r *ArticleSQLite) GetByID(ctx context.Context, id int) (*models.Article, error) {
	a, err := scanArticle(r.db.QueryRowContext(ctx, selectArticleByIDSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select article %d: %w", id, err)
	}
	return &a, nil
}

func (r *ArticleSQLite) List(ctx context.Context) ([]models.Article, error) {
	out, err := r.queryArticles(ctx, selectArticlesSQL)
	if err != nil {
		return nil, fmt.Errorf("select articles: %w", err)
	}
	return out, nil
}

// SearchByTitle returns articles whose title contains title literally.
func (r *ArticleSQLite) SearchByTitle(ctx context.Context, title string) ([]models.Article, error) {
	out, err := r.queryArticles(ctx, searchArticlesSQL, containsPattern(title))
	if err != nil {
		return nil, fmt.Errorf("search articles: %w", err)
	}
	return out, nil
}

func (r *ArticleSQLite) Update(ctx context.Context, id int, title, content string) (bool, error) {
	res, err := r.db.ExecContext(ctx, updateArticleSQL, title, content, id)
	if err != nil {
		return false, fmt.Errorf("update article %d: %w", id, err)
	}
	ok, err := rowsAffected(res)
	if err != nil {
		return false, fmt.Errorf("update article %d rows affected: %w", id, err)
	}
	return ok, nil
}

func (r *ArticleSQLite) Delete(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteArticleSQL, id)
	if err != nil {
		return false, fmt.Errorf("delete article %d: %w", id, err)
	}
	ok, err := rowsAffected(res)
	if err != nil {
		return false, fmt.Errorf("delete article %d rows affected: %w", id, err)
	}
	return ok, nil
}
