// exposes a Store interface that is passed to API handlers and the board
// scheduler's document source.
package db

import (
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Noor-Digital-LLC/minaret/internal/model"
)

type Store interface {
	// user functions
	CreateUser(email, hashedPassword string, name *string) (int, error)
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)
	UpdateUserPassword(id int, hashedPassword string) error

	// configuration document functions
	GetDocument(name string) ([]byte, error)
	UpsertDocument(name string, body []byte) error
	ClearDocument(name string) error
	ListDocuments() ([]DocumentMeta, error)
}

// DocumentMeta describes one stored configuration document.
type DocumentMeta struct {
	Name      string    `db:"name"`
	UpdatedAt time.Time `db:"updated_at"`
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

func NewStore() Store {
	return &pgStore{db: DB}
}
