package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"blogapi/internal/models"
)

func fakeHash(pw string) (string, error) { return "hashed:" + pw, nil }

func newTestUserService() (*UserService, *memUserRepo) {
	repo := newMemUserRepo(
		models.User{ID: adminP.ID, Username: "admin", Email: "admin@x.io", PasswordHash: "h", Role: models.RoleAdmin},
		models.User{ID: aliceP.ID, Username: "alice", Email: "alice@x.io", PasswordHash: "h", Role: models.RoleUser},
		models.User{ID: bobP.ID, Username: "bob", Email: "bob@x.io", PasswordHash: "h", Role: models.RoleUser},
	)
	return NewUserService(repo, fakeHash), repo
}

func TestUserService_List_AdminOnly(t *testing.T) {
	svc, _ := newTestUserService()

	if _, err := svc.List(context.Background(), aliceP); !errors.Is(err, ErrAuthorization) {
		t.Fatalf("non-admin: expected authorization error, got %v", err)
	}
	users, err := svc.List(context.Background(), adminP)
	if err != nil || len(users) != 3 {
		t.Fatalf("admin: (%d users, %v)", len(users), err)
	}
}

func TestUserService_Get(t *testing.T) {
	svc, _ := newTestUserService()
	ctx := context.Background()

	if u, err := svc.Get(ctx, aliceP, aliceP.ID); err != nil || u.Username != "alice" {
		t.Fatalf("self: (%+v, %v)", u, err)
	}
	if _, err := svc.Get(ctx, aliceP, bobP.ID); !errors.Is(err, ErrAuthorization) {
		t.Fatalf("other: expected authorization error, got %v", err)
	}
	if _, err := svc.Get(ctx, adminP, bobP.ID); err != nil {
		t.Fatalf("admin: %v", err)
	}
	if _, err := svc.Get(ctx, aliceP, 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing: expected not found, got %v", err)
	}
}

func TestUserService_Update(t *testing.T) {
	cases := []struct {
		name       string
		p          models.Principal
		id         int
		in         UserUpdateInput
		wantErr    error
		wantMsg    string
		wantFields string
	}{
		{name: "nothing to update", p: aliceP, id: aliceP.ID, in: UserUpdateInput{}, wantErr: ErrValidation, wantMsg: "nothing to update"},
		{name: "whitespace username is supplied", p: aliceP, id: aliceP.ID, in: UserUpdateInput{Username: "  "}, wantErr: ErrValidation, wantMsg: "username must be at least 3 characters"},
		{name: "whitespace username next to valid email", p: aliceP, id: aliceP.ID, in: UserUpdateInput{Username: "   ", Email: "new@x.io"}, wantErr: ErrValidation, wantMsg: "username must be at least 3 characters"},
		{name: "whitespace email", p: aliceP, id: aliceP.ID, in: UserUpdateInput{Email: "  "}, wantErr: ErrValidation, wantMsg: "invalid email"},
		{name: "whitespace role by non-admin", p: aliceP, id: aliceP.ID, in: UserUpdateInput{Role: "  ", Email: "new@x.io"}, wantErr: ErrAuthorization, wantMsg: "only admins can change roles"},
		{name: "whitespace role by admin", p: adminP, id: bobP.ID, in: UserUpdateInput{Role: " "}, wantErr: ErrValidation},
		{name: "padded short username", p: aliceP, id: aliceP.ID, in: UserUpdateInput{Username: "  al  "}, wantErr: ErrValidation, wantMsg: "username must be at least 3 characters"},
		{name: "missing user", p: adminP, id: 99, in: UserUpdateInput{Username: "ghost"}, wantErr: ErrNotFound},
		{name: "other user forbidden", p: aliceP, id: bobP.ID, in: UserUpdateInput{Username: "bobby"}, wantErr: ErrAuthorization},
		{name: "non-admin role change", p: aliceP, id: aliceP.ID, in: UserUpdateInput{Role: models.RoleAdmin}, wantErr: ErrAuthorization, wantMsg: "only admins can change roles"},
		{name: "short username", p: aliceP, id: aliceP.ID, in: UserUpdateInput{Username: "al"}, wantErr: ErrValidation, wantMsg: "username must be at least 3 characters"},
		{name: "bad email", p: aliceP, id: aliceP.ID, in: UserUpdateInput{Email: "nope"}, wantErr: ErrValidation, wantMsg: "invalid email"},
		{name: "short password", p: aliceP, id: aliceP.ID, in: UserUpdateInput{Password: "123"}, wantErr: ErrValidation},
		{name: "unknown role", p: adminP, id: bobP.ID, in: UserUpdateInput{Role: "root"}, wantErr: ErrValidation},
		{name: "duplicate email", p: aliceP, id: aliceP.ID, in: UserUpdateInput{Email: "bob@x.io"}, wantErr: ErrConflict},
		{name: "self email", p: aliceP, id: aliceP.ID, in: UserUpdateInput{Email: "new@x.io"}, wantFields: "email"},
		{name: "self password", p: aliceP, id: aliceP.ID, in: UserUpdateInput{Password: "longenough"}, wantFields: "password_hash"},
		{name: "admin promotes", p: adminP, id: bobP.ID, in: UserUpdateInput{Role: models.RoleAdmin, Username: "robert"}, wantFields: "username,role"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, repo := newTestUserService()
			before := repo.users[tc.id]

			got, err := svc.Update(context.Background(), tc.p, tc.id, tc.in)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				if tc.wantMsg != "" && err.Error() != tc.wantMsg {
					t.Fatalf("message: got %q, want %q", err.Error(), tc.wantMsg)
				}
				if repo.users[tc.id] != before {
					t.Fatalf("user must be unchanged: %+v", repo.users[tc.id])
				}
				return
			}
			if err != nil {
				t.Fatalf("Update: %v", err)
			}
			if strings.Join(repo.lastFields, ",") != tc.wantFields {
				t.Fatalf("fields written: got %v, want %s", repo.lastFields, tc.wantFields)
			}
			if got.ID != tc.id {
				t.Fatalf("returned wrong user: %+v", got)
			}
		})
	}
}

func TestUserService_Update_HashesPassword(t *testing.T) {
	svc, repo := newTestUserService()

	if _, err := svc.Update(context.Background(), aliceP, aliceP.ID, UserUpdateInput{Password: "newpassword"}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if repo.users[aliceP.ID].PasswordHash != "hashed:newpassword" {
		t.Fatalf("password not hashed through hasher: %q", repo.users[aliceP.ID].PasswordHash)
	}
}

func TestUserService_Update_AdminRoleApplied(t *testing.T) {
	svc, repo := newTestUserService()

	got, err := svc.Update(context.Background(), adminP, bobP.ID, UserUpdateInput{Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Role != models.RoleAdmin || repo.users[bobP.ID].Role != models.RoleAdmin {
		t.Fatalf("role not applied: %+v", got)
	}
}

func TestUserService_Delete(t *testing.T) {
	svc, repo := newTestUserService()
	ctx := context.Background()

	if err := svc.Delete(ctx, aliceP, bobP.ID); !errors.Is(err, ErrAuthorization) {
		t.Fatalf("non-admin: expected authorization error, got %v", err)
	}
	err := svc.Delete(ctx, adminP, adminP.ID)
	if !errors.Is(err, ErrValidation) || err.Error() != ErrSelfDelete.Error() {
		t.Fatalf("self delete: expected %v, got %v", ErrSelfDelete, err)
	}
	if _, ok := repo.users[adminP.ID]; !ok {
		t.Fatalf("admin account must persist")
	}
	if err := svc.Delete(ctx, adminP, bobP.ID); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	if err := svc.Delete(ctx, adminP, bobP.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete: expected not found, got %v", err)
	}
}

func TestUserService_Update_TrimsSuppliedFields(t *testing.T) {
	svc, repo := newTestUserService()

	got, err := svc.Update(context.Background(), adminP, bobP.ID, UserUpdateInput{Username: "  robert ", Role: " admin "})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Username != "robert" || repo.users[bobP.ID].Role != models.RoleAdmin {
		t.Fatalf("trimmed values not written: %+v", repo.users[bobP.ID])
	}
}
