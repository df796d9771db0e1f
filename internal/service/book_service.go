package service

import (
	"strings"

	"biblioteca-api/internal/apperrors"
	"biblioteca-api/internal/models"
	"biblioteca-api/internal/store"
)

type BookService struct {
	store *store.BookStore
}

func NewBookService(s *store.BookStore) *BookService {
	return &BookService{store: s}
}

func (s *BookService) FindByID(id int64) (models.Book, error) {
	book, ok := s.store.FindByID(id)
	if !ok {
		return models.Book{}, apperrors.BookNotFound(id)
	}
	return book, nil
}

func (s *BookService) FindByISBN(isbn string) (models.Book, error) {
	book, ok := s.store.FindByISBN(isbn)
	if !ok {
		return models.Book{}, apperrors.BookNotFoundISBN(isbn)
	}
	return book, nil
}

func (s *BookService) ListAll() []models.Book {
	return s.store.FindAll()
}

func (s *BookService) SearchByTitle(title string) []models.Book {
	return s.store.FindByTitleContaining(title)
}

func (s *BookService) SearchByAuthor(author string) []models.Book {
	return s.store.FindByAuthorContaining(author)
}

func (s *BookService) ListByState(state models.BookState) []models.Book {
	return s.store.FindByState(state)
}

// Create validates the book, defaults its state to DISPONIBLE and saves it.
func (s *BookService) Create(book models.Book) (models.Book, error) {
	if err := validateBook(&book); err != nil {
		return models.Book{}, err
	}
	return s.store.Save(book), nil
}

// Update overwrites the book stored under id; the id must already exist.
func (s *BookService) Update(id int64, book models.Book) (models.Book, error) {
	if !s.store.ExistsByID(id) {
		return models.Book{}, apperrors.BookNotFound(id)
	}
	book.ID = id
	if err := validateBook(&book); err != nil {
		return models.Book{}, err
	}
	return s.store.Save(book), nil
}

func (s *BookService) Delete(id int64) error {
	if !s.store.ExistsByID(id) {
		return apperrors.BookNotFound(id)
	}
	s.store.DeleteByID(id)
	return nil
}

// ChangeState assigns the state directly, outside the loan lifecycle.
func (s *BookService) ChangeState(id int64, state models.BookState) (models.Book, error) {
	book, err := s.FindByID(id)
	if err != nil {
		return models.Book{}, err
	}
	book.State = state
	return s.store.Save(book), nil
}

func validateBook(book *models.Book) error {
	if strings.TrimSpace(book.Title) == "" {
		return apperrors.InvalidData("book title is required")
	}
	if book.State == "" {
		book.State = models.BookAvailable
	}
	return nil
}
