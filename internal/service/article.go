package service

import (
	"context"
	"strings"
	"time"

	"blogapi/internal/models"
	"blogapi/internal/repository"
)

// ArticleInput carries the writable article fields. Author is never
// taken from input.
type ArticleInput struct {
	Title   string `validate:"required"`
	Content string `validate:"required"`
}

type searchInput struct {
	Title string `validate:"required"`
}

const errTitleContentRequired = "title and content are required"

type ArticleService struct {
	articles repository.ArticleRepo
	now      func() time.Time
}

func NewArticleService(articles repository.ArticleRepo) *ArticleService {
	return &ArticleService{articles: articles, now: time.Now}
}

func (s *ArticleService) List(ctx context.Context) ([]models.Article, error) {
	return s.articles.List(ctx)
}

func (s *ArticleService) Search(ctx context.Context, title string) ([]models.Article, error) {
	if err := validateStruct(searchInput{Title: title}, "title is required"); err != nil {
		return nil, err
	}
	return s.articles.SearchByTitle(ctx, title)
}

func (s *ArticleService) Get(ctx context.Context, id int) (models.Article, error) {
	a, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return models.Article{}, err
	}
	if a == nil {
		return models.Article{}, ErrArticleNotFound
	}
	return *a, nil
}

// Create stores an article authored by p.
func (s *ArticleService) Create(ctx context.Context, p models.Principal, in ArticleInput) (models.Article, error) {
	if err := validateArticle(in); err != nil {
		return models.Article{}, err
	}
	a := models.Article{Title: in.Title, Content: in.Content, AuthorID: p.ID, CreatedAt: s.now().UTC()}
	id, err := s.articles.Create(ctx, a)
	if err != nil {
		return models.Article{}, err
	}
	a.ID = id
	return a, nil
}

// Update rewrites title and content. Only the author or an admin may do it.
func (s *ArticleService) Update(ctx context.Context, p models.Principal, id int, in ArticleInput) (models.Article, error) {
	if err := validateArticle(in); err != nil {
		return models.Article{}, err
	}
	current, err := s.Get(ctx, id)
	if err != nil {
		return models.Article{}, err
	}
	if !CanAccess(p, current.AuthorID, "") {
		return models.Article{}, newError(KindAuthorization, "you are not allowed to modify this article")
	}

	ok, err := s.articles.Update(ctx, id, in.Title, in.Content)
	if err != nil {
		return models.Article{}, err
	}
	if !ok {
		return models.Article{}, ErrArticleNotFound
	}
	current.Title, current.Content = in.Title, in.Content
	return current, nil
}

// Delete removes an article. Admin only, whoever the author is.
func (s *ArticleService) Delete(ctx context.Context, p models.Principal, id int) error {
	if err := requireAdmin(p); err != nil {
		return err
	}
	ok, err := s.articles.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrArticleNotFound
	}
	return nil
}

func validateArticle(in ArticleInput) error {
	trimmed := ArticleInput{Title: strings.TrimSpace(in.Title), Content: strings.TrimSpace(in.Content)}
	return validateStruct(trimmed, errTitleContentRequired)
}
