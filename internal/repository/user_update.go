package repository

import "strings"

// userField is one of the user columns a partial update may write.
type userField string

const (
	fieldUsername     userField = "username"
	fieldEmail        userField = "email"
	fieldPasswordHash userField = "password_hash"
	fieldRole         userField = "role"
)

// userFieldOrder fixes the column order of generated statements.
var userFieldOrder = [...]userField{fieldUsername, fieldEmail, fieldPasswordHash, fieldRole}

// UserUpdate collects the columns of a partial user update. Only the typed
// setters can add a column, so the set of writable columns is closed.
type UserUpdate struct {
	values map[userField]string
}

func NewUserUpdate() *UserUpdate {
	return &UserUpdate{values: make(map[userField]string, len(userFieldOrder))}
}

func (u *UserUpdate) set(f userField, v string) *UserUpdate {
	if u.values == nil {
		u.values = make(map[userField]string, len(userFieldOrder))
	}
	u.values[f] = v
	return u
}

func (u *UserUpdate) SetUsername(v string) *UserUpdate     { return u.set(fieldUsername, v) }
func (u *UserUpdate) SetEmail(v string) *UserUpdate        { return u.set(fieldEmail, v) }
func (u *UserUpdate) SetPasswordHash(v string) *UserUpdate { return u.set(fieldPasswordHash, v) }
func (u *UserUpdate) SetRole(v string) *UserUpdate         { return u.set(fieldRole, v) }

// Empty reports whether no column has been set.
func (u *UserUpdate) Empty() bool {
	return u == nil || len(u.values) == 0
}

// Each calls fn for every set column in statement order.
func (u *UserUpdate) Each(fn func(column, value string)) {
	if u.Empty() {
		return
	}
	for _, f := range userFieldOrder {
		if v, ok := u.values[f]; ok {
			fn(string(f), v)
		}
	}
}

// Fields returns the names of the set columns in statement order.
func (u *UserUpdate) Fields() []string {
	var out []string
	u.Each(func(column, _ string) { out = append(out, column) })
	return out
}

// build renders the UPDATE statement and its arguments, id last.
func (u *UserUpdate) build(id int) (string, []any) {
	var (
		sets []string
		args []any
	)
	u.Each(func(column, value string) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	})
	args = append(args, id)
	return "UPDATE users SET " + strings.Join(sets, ", ") + " WHERE id = ?", args
}
