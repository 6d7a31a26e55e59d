package service

import (
	"context"
	"strings"

	"blogapi/internal/models"
	"blogapi/internal/repository"
)

// memUserRepo is an in-memory repository.UserRepo.
type memUserRepo struct {
	users  map[int]models.User
	nextID int
	err    error

	createCalls int
	updateCalls int
	lastFields  []string
}

func newMemUserRepo(users ...models.User) *memUserRepo {
	r := &memUserRepo{users: map[int]models.User{}}
	for _, u := range users {
		r.users[u.ID] = u
		if u.ID > r.nextID {
			r.nextID = u.ID
		}
	}
	return r
}

func (r *memUserRepo) conflicts(id int, username, email string) bool {
	for _, u := range r.users {
		if u.ID == id {
			continue
		}
		if (username != "" && u.Username == username) || (email != "" && u.Email == email) {
			return true
		}
	}
	return false
}

func (r *memUserRepo) Create(_ context.Context, u models.User) (int, error) {
	r.createCalls++
	if r.err != nil {
		return 0, r.err
	}
	if r.conflicts(0, u.Username, u.Email) {
		return 0, repository.ErrDuplicate
	}
	r.nextID++
	u.ID = r.nextID
	if u.Role == "" {
		u.Role = models.RoleUser
	}
	r.users[u.ID] = u
	return u.ID, nil
}

func (r *memUserRepo) GetByID(_ context.Context, id int) (*models.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) ExistsByEmailOrUsername(_ context.Context, email, username string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	return r.conflicts(0, username, email), nil
}

func (r *memUserRepo) List(_ context.Context) ([]models.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]models.User, 0, len(r.users))
	for i := 1; i <= r.nextID; i++ {
		if u, ok := r.users[i]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *memUserRepo) Update(_ context.Context, id int, upd *repository.UserUpdate) (bool, error) {
	r.updateCalls++
	r.lastFields = upd.Fields()
	if r.err != nil {
		return false, r.err
	}
	if upd.Empty() {
		return false, repository.ErrEmptyUpdate
	}
	u, ok := r.users[id]
	if !ok {
		return false, nil
	}
	next := applyUserUpdate(u, upd)
	if r.conflicts(id, next.Username, next.Email) {
		return false, repository.ErrDuplicate
	}
	r.users[id] = next
	return true, nil
}

// applyUserUpdate mirrors the columns set on upd into u.
func applyUserUpdate(u models.User, upd *repository.UserUpdate) models.User {
	upd.Each(func(column, value string) {
		switch column {
		case "username":
			u.Username = value
		case "email":
			u.Email = value
		case "password_hash":
			u.PasswordHash = value
		case "role":
			u.Role = value
		}
	})
	return u
}

func (r *memUserRepo) Delete(_ context.Context, id int) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

// memArticleRepo is an in-memory repository.ArticleRepo.
type memArticleRepo struct {
	articles map[int]models.Article
	nextID   int
	err      error
	// getErr fails GetByID only.
	getErr error

	updateCalls int
	deleteCalls int
}

func newMemArticleRepo(articles ...models.Article) *memArticleRepo {
	r := &memArticleRepo{articles: map[int]models.Article{}}
	for _, a := range articles {
		r.articles[a.ID] = a
		if a.ID > r.nextID {
			r.nextID = a.ID
		}
	}
	return r
}

func (r *memArticleRepo) Create(_ context.Context, a models.Article) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.nextID++
	a.ID = r.nextID
	r.articles[a.ID] = a
	return a.ID, nil
}

func (r *memArticleRepo) GetByID(_ context.Context, id int) (*models.Article, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.getErr != nil {
		return nil, r.getErr
	}
	a, ok := r.articles[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *memArticleRepo) List(_ context.Context) ([]models.Article, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]models.Article, 0, len(r.articles))
	for i := 1; i <= r.nextID; i++ {
		if a, ok := r.articles[i]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memArticleRepo) SearchByTitle(ctx context.Context, title string) ([]models.Article, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Article, 0, len(all))
	for _, a := range all {
		if strings.Contains(strings.ToLower(a.Title), strings.ToLower(title)) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memArticleRepo) Update(_ context.Context, id int, title, content string) (bool, error) {
	r.updateCalls++
	if r.err != nil {
		return false, r.err
	}
	a, ok := r.articles[id]
	if !ok {
		return false, nil
	}
	a.Title, a.Content = title, content
	r.articles[id] = a
	return true, nil
}

func (r *memArticleRepo) Delete(_ context.Context, id int) (bool, error) {
	r.deleteCalls++
	if r.err != nil {
		return false, r.err
	}
	if _, ok := r.articles[id]; !ok {
		return false, nil
	}
	delete(r.articles, id)
	return true, nil
}

// memCommentRepo is an in-memory repository.CommentRepo.
type memCommentRepo struct {
	comments map[int]models.Comment
	nextID   int
	err      error
	// getErr fails GetByID only.
	getErr error

	createCalls int
	deleteCalls int
}

func newMemCommentRepo(comments ...models.Comment) *memCommentRepo {
	r := &memCommentRepo{comments: map[int]models.Comment{}}
	for _, c := range comments {
		r.comments[c.ID] = c
		if c.ID > r.nextID {
			r.nextID = c.ID
		}
	}
	return r
}

func (r *memCommentRepo) Create(_ context.Context, c models.Comment) (int, error) {
	r.createCalls++
	if r.err != nil {
		return 0, r.err
	}
	r.nextID++
	c.ID = r.nextID
	r.comments[c.ID] = c
	return c.ID, nil
}

func (r *memCommentRepo) GetByID(_ context.Context, id int) (*models.Comment, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.getErr != nil {
		return nil, r.getErr
	}
	c, ok := r.comments[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *memCommentRepo) ListByArticle(_ context.Context, articleID int) ([]models.Comment, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]models.Comment, 0)
	for i := 1; i <= r.nextID; i++ {
		if c, ok := r.comments[i]; ok && c.ArticleID == articleID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memCommentRepo) Delete(_ context.Context, id int) (bool, error) {
	r.deleteCalls++
	if r.err != nil {
		return false, r.err
	}
	if _, ok := r.comments[id]; !ok {
		return false, nil
	}
	delete(r.comments, id)
	return true, nil
}

var (
	adminP = models.Principal{ID: 1, Role: models.RoleAdmin}
	aliceP = models.Principal{ID: 2, Role: models.RoleUser}
	bobP   = models.Principal{ID: 3, Role: models.RoleUser}
)
