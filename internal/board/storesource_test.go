package board

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Noor-Digital-LLC/minaret/internal/db"
	"github.com/Noor-Digital-LLC/minaret/internal/model"
)

// docStore is a minimal db.Store whose document reads the test controls.
type docStore struct {
	docs map[string][]byte
	err  error
}

func (d *docStore) GetDocument(name string) ([]byte, error) {
	if d.err != nil {
		return nil, d.err
	}
	body, ok := d.docs[name]
	if !ok {
		return nil, db.ErrDocumentNotFound
	}
	return body, nil
}

func (d *docStore) CreateUser(string, string, *string) (int, error)  { return 0, nil }
func (d *docStore) GetUserByEmail(string) (*model.User, error)       { return nil, nil }
func (d *docStore) GetUserByID(int) (*model.User, error)             { return nil, nil }
func (d *docStore) UpdateUserPassword(int, string) error             { return nil }
func (d *docStore) UpsertDocument(string, []byte) error              { return nil }
func (d *docStore) ClearDocument(string) error                       { return nil }
func (d *docStore) ListDocuments() ([]db.DocumentMeta, error)        { return nil, nil }

var _ db.Store = (*docStore)(nil)

func TestStoreSourceFetch(t *testing.T) {
	store := &docStore{docs: map[string][]byte{
		DocMosqueDetail: []byte(`{"mosque_name": "Test Mosque"}`),
	}}
	src := NewStoreSource(store, false)

	body, err := src.Fetch(context.Background(), DocMosqueDetail)
	require.NoError(t, err)
	assert.JSONEq(t, `{"mosque_name": "Test Mosque"}`, string(body))
}

func TestStoreSourceMissingDocumentIsEmptyConfig(t *testing.T) {
	src := NewStoreSource(&docStore{docs: map[string][]byte{}}, false)

	body, err := src.Fetch(context.Background(), DocEidTiming)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(body))
}

func TestStoreSourceFailurePropagatesWithoutCache(t *testing.T) {
	boom := errors.New("connection refused")
	src := NewStoreSource(&docStore{err: boom}, false)

	_, err := src.Fetch(context.Background(), DocPrayerTimes)
	assert.ErrorIs(t, err, boom)
}
