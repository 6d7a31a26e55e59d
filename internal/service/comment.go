package service

import (
	"context"
	"strings"
	"time"

	"blogapi/internal/models"
	"blogapi/internal/repository"
)

type commentInput struct {
	Content string `validate:"required"`
}

type CommentService struct {
	comments repository.CommentRepo
	articles repository.ArticleRepo
	now      func() time.Time
}

func NewCommentService(comments repository.CommentRepo, articles repository.ArticleRepo) *CommentService {
	return &CommentService{comments: comments, articles: articles, now: time.Now}
}

func (s *CommentService) requireArticle(ctx context.Context, articleID int) error {
	a, err := s.articles.GetByID(ctx, articleID)
	if err != nil {
		return err
	}
	if a == nil {
		return ErrArticleNotFound
	}
	return nil
}

// ListByArticle returns the comments of an existing article.
func (s *CommentService) ListByArticle(ctx context.Context, articleID int) ([]models.Comment, error) {
	if err := s.requireArticle(ctx, articleID); err != nil {
		return nil, err
	}
	return s.comments.ListByArticle(ctx, articleID)
}

func (s *CommentService) Get(ctx context.Context, id int) (models.Comment, error) {
	c, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return models.Comment{}, err
	}
	if c == nil {
		return models.Comment{}, ErrCommentNotFound
	}
	return *c, nil
}

// Create adds a comment by p to an existing article.
func (s *CommentService) Create(ctx context.Context, p models.Principal, articleID int, content string) (models.Comment, error) {
	if err := validateStruct(commentInput{Content: strings.TrimSpace(content)}, "comment content is required"); err != nil {
		return models.Comment{}, err
	}
	if err := s.requireArticle(ctx, articleID); err != nil {
		return models.Comment{}, err
	}

	c := models.Comment{Content: content, UserID: p.ID, ArticleID: articleID, CreatedAt: s.now().UTC()}
	id, err := s.comments.Create(ctx, c)
	if err != nil {
		return models.Comment{}, err
	}
	c.ID = id
	return c, nil
}

// Delete removes a comment. Its author or an admin may do it.
func (s *CommentService) Delete(ctx context.Context, p models.Principal, id int) error {
	current, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !CanAccess(p, current.UserID, "") {
		return newError(KindAuthorization, "you are not allowed to delete this comment")
	}
	ok, err := s.comments.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCommentNotFound
	}
	return nil
}
