package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"biblioteca-api/internal/models"
	"biblioteca-api/internal/utils"
)

func doRequest(t *testing.T, env *testEnv, method, target string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(dst); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
}

func TestBookHandler_AddBook(t *testing.T) {
	env := newTestEnv()

	body := []byte(`{"isbn":"123","titulo":"El principito","autor":"Saint-Exupéry"}`)
	w := doRequest(t, env, http.MethodPost, "/api/books", body)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}

	var book models.Book
	decodeBody(t, w, &book)
	if book.ID != 1 {
		t.Errorf("id = %d, want 1", book.ID)
	}
	if book.State != models.BookAvailable {
		t.Errorf("estado = %s, want DISPONIBLE", book.State)
	}
}

func TestBookHandler_AddBook_MissingTitle(t *testing.T) {
	env := newTestEnv()

	w := doRequest(t, env, http.MethodPost, "/api/books", []byte(`{"isbn":"123"}`))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var apiErr utils.APIError
	decodeBody(t, w, &apiErr)
	if apiErr.Status != http.StatusBadRequest {
		t.Errorf("envelope status = %d, want 400", apiErr.Status)
	}
	if apiErr.Path != "/api/books" {
		t.Errorf("envelope path = %q, want /api/books", apiErr.Path)
	}
}

func TestBookHandler_GetBook_NotFound(t *testing.T) {
	env := newTestEnv()

	w := doRequest(t, env, http.MethodGet, "/api/books/42", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}

	var apiErr utils.APIError
	decodeBody(t, w, &apiErr)
	if apiErr.Error != http.StatusText(http.StatusNotFound) {
		t.Errorf("envelope error = %q, want %q", apiErr.Error, http.StatusText(http.StatusNotFound))
	}
}

func TestBookHandler_SearchRoutes(t *testing.T) {
	env := newTestEnv()
	if _, err := env.books.Create(models.Book{ISBN: "123", Title: "El Principito", Author: "Saint-Exupéry"}); err != nil {
		t.Fatal(err)
	}
	if _, err := env.books.Create(models.Book{ISBN: "456", Title: "Ficciones", Author: "Borges"}); err != nil {
		t.Fatal(err)
	}

	w := doRequest(t, env, http.MethodGet, "/api/books/titulo/principito", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var books []models.Book
	decodeBody(t, w, &books)
	if len(books) != 1 {
		t.Fatalf("title search results = %d, want 1", len(books))
	}

	w = doRequest(t, env, http.MethodGet, "/api/books/autor/BORGES", nil)
	decodeBody(t, w, &books)
	if len(books) != 1 {
		t.Fatalf("author search results = %d, want 1", len(books))
	}

	w = doRequest(t, env, http.MethodGet, "/api/books/isbn/456", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("isbn lookup status = %d, want 200", w.Code)
	}

	w = doRequest(t, env, http.MethodGet, "/api/books/estado/DISPONIBLE", nil)
	decodeBody(t, w, &books)
	if len(books) != 2 {
		t.Fatalf("state search results = %d, want 2", len(books))
	}

	w = doRequest(t, env, http.MethodGet, "/api/books/estado/NUEVO", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("invalid state status = %d, want 400", w.Code)
	}
}

func TestBookHandler_ChangeState(t *testing.T) {
	env := newTestEnv()
	if _, err := env.books.Create(models.Book{ISBN: "123", Title: "El principito"}); err != nil {
		t.Fatal(err)
	}

	w := doRequest(t, env, http.MethodPatch, "/api/books/1/estado?estado=PERDIDO", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var updated models.Book
	decodeBody(t, w, &updated)
	if updated.State != models.BookLost {
		t.Errorf("estado = %s, want PERDIDO", updated.State)
	}

	w = doRequest(t, env, http.MethodPatch, "/api/books/1/estado?estado=ROTO", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("invalid state status = %d, want 400", w.Code)
	}
}

func TestBookHandler_Update(t *testing.T) {
	env := newTestEnv()
	if _, err := env.books.Create(models.Book{ISBN: "123", Title: "El principito"}); err != nil {
		t.Fatal(err)
	}

	body := []byte(`{"isbn":"123","titulo":"El principito","autor":"Antoine de Saint-Exupéry","estado":"DISPONIBLE"}`)
	w := doRequest(t, env, http.MethodPut, "/api/books/1", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var updated models.Book
	decodeBody(t, w, &updated)
	if updated.Author != "Antoine de Saint-Exupéry" {
		t.Errorf("autor = %q not updated", updated.Author)
	}

	w = doRequest(t, env, http.MethodPut, "/api/books/42", body)
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing book status = %d, want 404", w.Code)
	}
}

func TestBookHandler_Delete(t *testing.T) {
	env := newTestEnv()
	if _, err := env.books.Create(models.Book{ISBN: "123", Title: "El principito"}); err != nil {
		t.Fatal(err)
	}

	w := doRequest(t, env, http.MethodDelete, "/api/books/1", nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", w.Code)
	}

	w = doRequest(t, env, http.MethodDelete, "/api/books/1", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", w.Code)
	}
}

func TestBookHandler_DeleteWithActiveLoan(t *testing.T) {
	env := newTestEnv()
	book, err := env.books.Create(models.Book{ISBN: "123", Title: "El principito"})
	if err != nil {
		t.Fatal(err)
	}
	user, err := env.users.Create(models.User{Name: "Juan", Email: "juan@x.com"})
	if err != nil {
		t.Fatal(err)
	}
	loan, err := env.loans.Create(user.ID, book.ID, models.Date{})
	if err != nil {
		t.Fatal(err)
	}

	w := doRequest(t, env, http.MethodDelete, "/api/books/1", nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}

	if _, err := env.loans.Return(loan.ID); err != nil {
		t.Fatal(err)
	}
	w = doRequest(t, env, http.MethodDelete, "/api/books/1", nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete after return status = %d, want 204", w.Code)
	}
}
