package command

import (
	"context"

	"github.com/tair/expense-tracker/internal/user/domain"
	"github.com/tair/expense-tracker/pkg/apperrors"
)

// fakeUserStore implements both repository contracts in memory
type fakeUserStore struct {
	users map[string]*domain.User

	saveCalls   int
	updateCalls int
	deleteCalls int
}

func newFakeUserStore(users ...*domain.User) *fakeUserStore {
	store := &fakeUserStore{users: make(map[string]*domain.User)}
	for _, u := range users {
		store.users[u.ID().String()] = u
	}
	return store
}

func (s *fakeUserStore) Save(ctx context.Context, user *domain.User) error {
	s.saveCalls++
	for _, existing := range s.users {
		if existing.Email().Equals(user.Email()) {
			return apperrors.Conflict("email already exists")
		}
	}
	s.users[user.ID().String()] = user
	return nil
}

func (s *fakeUserStore) Update(ctx context.Context, user *domain.User) error {
	s.updateCalls++
	if _, ok := s.users[user.ID().String()]; !ok {
		return apperrors.NotFound("user not found")
	}
	s.users[user.ID().String()] = user
	return nil
}

func (s *fakeUserStore) Delete(ctx context.Context, id domain.UserID) error {
	s.deleteCalls++
	if _, ok := s.users[id.String()]; !ok {
		return apperrors.NotFound("user not found")
	}
	delete(s.users, id.String())
	return nil
}

func (s *fakeUserStore) ExistsByEmail(ctx context.Context, email domain.Email) (bool, error) {
	for _, u := range s.users {
		if u.Email().Equals(email) {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeUserStore) ExistsByID(ctx context.Context, id domain.UserID) (bool, error) {
	_, ok := s.users[id.String()]
	return ok, nil
}

func (s *fakeUserStore) FindByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	u, ok := s.users[id.String()]
	if !ok {
		return nil, apperrors.NotFound("user not found")
	}
	return u, nil
}

func (s *fakeUserStore) FindByEmail(ctx context.Context, email domain.Email) (*domain.User, error) {
	for _, u := range s.users {
		if u.Email().Equals(email) {
			return u, nil
		}
	}
	return nil, apperrors.NotFound("user not found")
}

func (s *fakeUserStore) FindAll(ctx context.Context, filter domain.ListFilter) ([]*domain.User, error) {
	users := make([]*domain.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	return users, nil
}

func (s *fakeUserStore) FindByRole(ctx context.Context, role domain.Role, limit, offset int) ([]*domain.User, error) {
	var users []*domain.User
	for _, u := range s.users {
		if u.Role() == role {
			users = append(users, u)
		}
	}
	return users, nil
}

func (s *fakeUserStore) FindActiveUsers(ctx context.Context, limit, offset int) ([]*domain.User, error) {
	var users []*domain.User
	for _, u := range s.users {
		if u.IsActive() {
			users = append(users, u)
		}
	}
	return users, nil
}

func (s *fakeUserStore) SearchUsers(ctx context.Context, searchTerm string, limit, offset int) ([]*domain.User, error) {
	return s.FindAll(ctx, domain.ListFilter{})
}

func (s *fakeUserStore) Count(ctx context.Context, filter domain.CountFilter) (int64, error) {
	return int64(len(s.users)), nil
}

// fakeHasher avoids bcrypt cost in unit tests
type fakeHasher struct{}

func (fakeHasher) Hash(plaintext string) (string, error) {
	return "hashed:" + plaintext, nil
}

func (fakeHasher) Verify(plaintext, hash string) bool {
	return hash == "hashed:"+plaintext
}
