package service

import (
	"context"
	"errors"
	"strings"

	"blogapi/internal/models"
	"blogapi/internal/repository"
)

// UserUpdateInput is a partial update. An empty string means the field was
// not supplied; anything else, whitespace included, is supplied and validated.
type UserUpdateInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

// userUpdateFields holds the supplied fields, identity fields trimmed.
type userUpdateFields struct {
	Username *string `validate:"omitnil,min=3"`
	Email    *string `validate:"omitnil,contains=@"`
	Password *string `validate:"omitnil,min=6"`
	Role     *string `validate:"omitnil,oneof=user admin"`
}

func (in UserUpdateInput) supplied() userUpdateFields {
	trimmed := func(v string) *string {
		if v == "" {
			return nil
		}
		t := strings.TrimSpace(v)
		return &t
	}
	f := userUpdateFields{
		Username: trimmed(in.Username),
		Email:    trimmed(in.Email),
		Role:     trimmed(in.Role),
	}
	if in.Password != "" {
		pw := in.Password
		f.Password = &pw
	}
	return f
}

func (f userUpdateFields) empty() bool {
	return f.Username == nil && f.Email == nil && f.Password == nil && f.Role == nil
}

type UserService struct {
	users repository.UserRepo
	hash  func(password string) (string, error)
}

func NewUserService(users repository.UserRepo, hash func(string) (string, error)) *UserService {
	return &UserService{users: users, hash: hash}
}

func (s *UserService) List(ctx context.Context, p models.Principal) ([]models.User, error) {
	if err := requireAdmin(p); err != nil {
		return nil, err
	}
	return s.users.List(ctx)
}

func (s *UserService) find(ctx context.Context, id int) (models.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	if u == nil {
		return models.User{}, ErrUserNotFound
	}
	return *u, nil
}

// Get returns a user to itself or to an admin.
func (s *UserService) Get(ctx context.Context, p models.Principal, id int) (models.User, error) {
	u, err := s.find(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	if !CanAccess(p, u.ID, "") {
		return models.User{}, ErrForbidden
	}
	return u, nil
}

// Update applies the supplied fields. Role is admin-only.
func (s *UserService) Update(ctx context.Context, p models.Principal, id int, in UserUpdateInput) (models.User, error) {
	f := in.supplied()
	if f.empty() {
		return models.User{}, ErrNothingToUpdate
	}
	if _, err := s.find(ctx, id); err != nil {
		return models.User{}, err
	}
	if !CanAccess(p, id, "") {
		return models.User{}, ErrForbidden
	}
	if f.Role != nil && !p.IsAdmin() {
		return models.User{}, ErrRoleChangeDenied
	}
	if err := validateStruct(f, ""); err != nil {
		return models.User{}, err
	}

	upd, err := s.buildUpdate(f)
	if err != nil {
		return models.User{}, err
	}
	ok, err := s.users.Update(ctx, id, upd)
	if errors.Is(err, repository.ErrDuplicate) {
		return models.User{}, ErrUserExists
	}
	if err != nil {
		return models.User{}, err
	}
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return s.find(ctx, id)
}

func (s *UserService) buildUpdate(f userUpdateFields) (*repository.UserUpdate, error) {
	upd := repository.NewUserUpdate()
	if f.Username != nil {
		upd.SetUsername(*f.Username)
	}
	if f.Email != nil {
		upd.SetEmail(*f.Email)
	}
	if f.Password != nil {
		hash, err := s.hash(*f.Password)
		if err != nil {
			return nil, err
		}
		upd.SetPasswordHash(hash)
	}
	if f.Role != nil {
		upd.SetRole(*f.Role)
	}
	return upd, nil
}

// Delete removes a user. Admin only, and never the admin's own account.
func (s *UserService) Delete(ctx context.Context, p models.Principal, id int) error {
	if err := requireAdmin(p); err != nil {
		return err
	}
	if id == p.ID {
		return ErrSelfDelete
	}
	ok, err := s.users.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUserNotFound
	}
	return nil
}
