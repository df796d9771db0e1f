package store

import (
	"strings"
	"sync"

	"biblioteca-api/internal/models"
)

type BookStore struct {
	mu     sync.RWMutex
	books  map[int64]models.Book
	nextID int64
}

func NewBookStore() *BookStore {
	return &BookStore{books: make(map[int64]models.Book), nextID: 1}
}

// Save assigns the next id when the book has none and stores it by id.
func (s *BookStore) Save(book models.Book) models.Book {
	s.mu.Lock()
	defer s.mu.Unlock()

	if book.ID == 0 {
		book.ID = s.nextID
		s.nextID++
	}
	s.books[book.ID] = book
	return book
}

func (s *BookStore) FindByID(id int64) (models.Book, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	book, ok := s.books[id]
	return book, ok
}

func (s *BookStore) FindAll() []models.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	books := make([]models.Book, 0, len(s.books))
	for _, book := range s.books {
		books = append(books, book)
	}
	return books
}

func (s *BookStore) DeleteByID(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.books, id)
}

func (s *BookStore) ExistsByID(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.books[id]
	return ok
}

func (s *BookStore) FindByISBN(isbn string) (models.Book, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, book := range s.books {
		if book.ISBN == isbn {
			return book, true
		}
	}
	return models.Book{}, false
}

func (s *BookStore) FindByTitleContaining(title string) []models.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := []models.Book{}
	if title == "" {
		return matches
	}
	needle := strings.ToLower(title)
	for _, book := range s.books {
		if strings.Contains(strings.ToLower(book.Title), needle) {
			matches = append(matches, book)
		}
	}
	return matches
}

func (s *BookStore) FindByAuthorContaining(author string) []models.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := []models.Book{}
	if author == "" {
		return matches
	}
	needle := strings.ToLower(author)
	for _, book := range s.books {
		if strings.Contains(strings.ToLower(book.Author), needle) {
			matches = append(matches, book)
		}
	}
	return matches
}

func (s *BookStore) FindByState(state models.BookState) []models.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := []models.Book{}
	for _, book := range s.books {
		if book.State == state {
			matches = append(matches, book)
		}
	}
	return matches
}
