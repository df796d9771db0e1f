package store

import (
	"strings"
	"sync"

	"biblioteca-api/internal/models"
)

type UserStore struct {
	mu     sync.RWMutex
	users  map[int64]models.User
	nextID int64
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[int64]models.User), nextID: 1}
}

func (s *UserStore) Save(user models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user.ID == 0 {
		user.ID = s.nextID
		s.nextID++
	}
	s.users[user.ID] = user
	return user
}

func (s *UserStore) FindByID(id int64) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	return user, ok
}

func (s *UserStore) FindAll() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, user)
	}
	return users
}

func (s *UserStore) DeleteByID(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.users, id)
}

func (s *UserStore) ExistsByID(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.users[id]
	return ok
}

func (s *UserStore) FindByEmail(email string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email == email {
			return user, true
		}
	}
	return models.User{}, false
}

func (s *UserStore) FindByNameContaining(name string) []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := []models.User{}
	if name == "" {
		return matches
	}
	needle := strings.ToLower(name)
	for _, user := range s.users {
		if strings.Contains(strings.ToLower(user.Name), needle) {
			matches = append(matches, user)
		}
	}
	return matches
}

func (s *UserStore) FindByState(state models.UserState) []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := []models.User{}
	for _, user := range s.users {
		if user.State == state {
			matches = append(matches, user)
		}
	}
	return matches
}
