package models

type BookState string

const (
	BookAvailable   BookState = "DISPONIBLE"
	BookLoaned      BookState = "PRESTADO"
	BookUnderRepair BookState = "EN_REPARACION"
	BookLost        BookState = "PERDIDO"

	BookEntity = "libro"
)

type Book struct {
	ID     int64     `json:"id"`
	ISBN   string    `json:"isbn"`
	Title  string    `json:"titulo"`
	Author string    `json:"autor"`
	State  BookState `json:"estado"`
}

var ValidBookStates = map[string]bool{
	string(BookAvailable):   true,
	string(BookLoaned):      true,
	string(BookUnderRepair): true,
	string(BookLost):        true,
}

func IsValidBookState(state string) bool {
	return ValidBookStates[state]
}

// Equal defines book identity by (id, isbn).
func (b Book) Equal(other Book) bool {
	return b.ID == other.ID && b.ISBN == other.ISBN
}
