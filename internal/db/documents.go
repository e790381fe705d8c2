package db

import (
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"
)

// ErrDocumentNotFound is returned when a configuration document has never
// been written (or was cleared).
var ErrDocumentNotFound = errors.New("configuration document not found")

// fetches a configuration document's raw JSON body by name.
func (s *pgStore) GetDocument(name string) ([]byte, error) {
	var body []byte
	query := `
	SELECT body
	FROM config_documents
	WHERE name = $1;
	`
	err := s.db.Get(&body, query, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDocumentNotFound
		}
		log.Error().Err(err).Str("document", name).Msg("failed to get config document")
		return nil, err
	}
	return body, nil
}

// inserts or replaces a configuration document.
func (s *pgStore) UpsertDocument(name string, body []byte) error {
	query := `
	INSERT INTO config_documents (name, body, updated_at)
	VALUES ($1, $2, now())
	ON CONFLICT (name) DO UPDATE
	SET body = EXCLUDED.body, updated_at = now();
	`
	if _, err := s.db.Exec(query, name, body); err != nil {
		log.Error().Err(err).Str("document", name).Msg("failed to upsert config document")
		return err
	}
	return nil
}

// resets a document to the empty object. Used when the admin clears the
// Eid configuration; boards read {} as "nothing scheduled".
func (s *pgStore) ClearDocument(name string) error {
	return s.UpsertDocument(name, []byte(`{}`))
}

func (s *pgStore) ListDocuments() ([]DocumentMeta, error) {
	var out []DocumentMeta
	query := `
	SELECT name, updated_at
	FROM config_documents
	ORDER BY name;
	`
	if err := s.db.Select(&out, query); err != nil {
		log.Error().Err(err).Msg("failed to list config documents")
		return nil, err
	}
	return out, nil
}
