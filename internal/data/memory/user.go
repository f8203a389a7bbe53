package memory

import (
	"context"
	"fmt"
	"strings"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"

	"github.com/google/uuid"
)

type userRepository struct{ s *Store }

func userID(u *entity.User) uuid.UUID { return u.ID }

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return fmt.Errorf("create user %s: %w", user.Email, repository.ErrDuplicate)
		}
	}

	stored := *user
	r.s.users = append(r.s.users, &stored)
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := findIndex(r.s.users, id, userID)
	if i < 0 {
		return nil, nil
	}
	user := *r.s.users[i]
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.users {
		if strings.EqualFold(existing.Email, email) {
			user := *existing
			return &user, nil
		}
	}
	return nil, nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := findIndex(r.s.users, user.ID, userID)
	if i < 0 {
		return fmt.Errorf("user %s not found", user.ID.String())
	}
	stored := *user
	r.s.users[i] = &stored
	return nil
}
