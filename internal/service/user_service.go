package service

import (
	"strings"

	"biblioteca-api/internal/apperrors"
	"biblioteca-api/internal/models"
	"biblioteca-api/internal/store"
)

type UserService struct {
	store *store.UserStore
}

func NewUserService(s *store.UserStore) *UserService {
	return &UserService{store: s}
}

func (s *UserService) FindByID(id int64) (models.User, error) {
	user, ok := s.store.FindByID(id)
	if !ok {
		return models.User{}, apperrors.UserNotFound(id)
	}
	return user, nil
}

func (s *UserService) FindByEmail(email string) (models.User, error) {
	user, ok := s.store.FindByEmail(email)
	if !ok {
		return models.User{}, apperrors.UserNotFoundEmail(email)
	}
	return user, nil
}

func (s *UserService) ListAll() []models.User {
	return s.store.FindAll()
}

func (s *UserService) SearchByName(name string) []models.User {
	return s.store.FindByNameContaining(name)
}

func (s *UserService) ListByState(state models.UserState) []models.User {
	return s.store.FindByState(state)
}

func (s *UserService) Create(user models.User) (models.User, error) {
	if err := validateUser(&user); err != nil {
		return models.User{}, err
	}
	return s.store.Save(user), nil
}

func (s *UserService) Update(id int64, user models.User) (models.User, error) {
	if !s.store.ExistsByID(id) {
		return models.User{}, apperrors.UserNotFound(id)
	}
	user.ID = id
	if err := validateUser(&user); err != nil {
		return models.User{}, err
	}
	return s.store.Save(user), nil
}

func (s *UserService) Delete(id int64) error {
	if !s.store.ExistsByID(id) {
		return apperrors.UserNotFound(id)
	}
	s.store.DeleteByID(id)
	return nil
}

func (s *UserService) ChangeState(id int64, state models.UserState) (models.User, error) {
	user, err := s.FindByID(id)
	if err != nil {
		return models.User{}, err
	}
	user.State = state
	return s.store.Save(user), nil
}

func validateUser(user *models.User) error {
	if strings.TrimSpace(user.Name) == "" {
		return apperrors.InvalidData("user name is required")
	}
	email := strings.TrimSpace(user.Email)
	if email == "" || !strings.Contains(email, "@") {
		return apperrors.InvalidData("a valid email is required")
	}
	if user.State == "" {
		user.State = models.UserActive
	}
	return nil
}
