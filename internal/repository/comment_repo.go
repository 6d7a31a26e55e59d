package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"blogapi/internal/models"
)

type CommentSQLite struct {
	db *sql.DB
}

func NewCommentSQLite(db *sql.DB) *CommentSQLite { return &CommentSQLite{db: db} }

var _ CommentRepo = (*CommentSQLite)(nil)

const (
	commentColumns = `id, content, user_id, article_id, created_at`

	insertCommentSQL           = `INSERT INTO comments (content, user_id, article_id, created_at) VALUES (?, ?, ?, ?)`
	selectCommentByIDSQL       = `SELECT ` + commentColumns + ` FROM comments WHERE id = ?`
	selectCommentsByArticleSQL = `SELECT ` + commentColumns + ` FROM comments WHERE article_id = ? ORDER BY id ASC`
	deleteCommentSQL           = `DELETE FROM comments WHERE id = ?`
)

func scanComment(s rowScanner) (models.Comment, error) {
	var c models.Comment
	err := s.Scan(&c.ID, &c.Content, &c.UserID, &c.ArticleID, &c.CreatedAt)
	c.CreatedAt = c.CreatedAt.UTC()
	return c, err
}

func (r *CommentSQLite) Create(ctx context.Context, c models.Comment) (int, error) {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	res, err := r.db.ExecContext(ctx, insertCommentSQL, c.Content, c.UserID, c.ArticleID, c.CreatedAt.UTC())
	if err != nil {
		return 0, fmt.Errorf("insert comment on article %d: %w", c.ArticleID, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for comment: %w", err)
	}
	return int(lastID), nil
}

func (r *CommentSQLite) GetByID(ctx context.Context, id int) (*models.Comment, error) {
	c, err := scanComment(r.db.QueryRowContext(ctx, selectCommentByIDSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select comment %d: %w", id, err)
	}
	return &c, nil
}

func (r *CommentSQLite) ListByArticle(ctx context.Context, articleID int) ([]models.Comment, error) {
	rows, err := r.db.QueryContext(ctx, selectCommentsByArticleSQL, articleID)
	if err != nil {
		return nil, fmt.Errorf("select comments of article %d: %w", articleID, err)
	}
	defer rows.Close()

	out := make([]models.Comment, 0, 16)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}
	return out, nil
}

func (r *CommentSQLite) Delete(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteCommentSQL, id)
	if err != nil {
		return false, fmt.Errorf("delete comment %d: %w", id, err)
	}
	ok, err := rowsAffected(res)
	if err != nil {
		return false, fmt.Errorf("delete comment %d rows affected: %w", id, err)
	}
	return ok, nil
}
