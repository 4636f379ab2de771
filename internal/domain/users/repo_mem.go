package users

import (
	"context"

	"github.com/swasthyasetu/portal/pkg/browse"
)

// memRepo is the fixture-backed store. Records are seeded once at
// construction and never mutated; searches return fresh slices.
type memRepo struct {
	users []User
}

// NewMemRepo creates the seeded in-memory user store.
func NewMemRepo() UserRepository {
	return &memRepo{users: seedUsers()}
}

func (r *memRepo) GetByID(_ context.Context, id string) (*User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memRepo) Search(_ context.Context, criteria browse.Criteria) ([]User, error) {
	return browse.Filter(r.users, criteria,
		func(u User) []string { return []string{u.Name, u.Email} },
		func(u User, facet string) string {
			switch facet {
			case "type":
				return u.Type
			case "status":
				return u.Status
			}
			return ""
		},
	), nil
}

func (r *memRepo) All(_ context.Context) ([]User, error) {
	out := make([]User, len(r.users))
	copy(out, r.users)
	return out, nil
}
