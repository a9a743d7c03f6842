package state

import (
	"database/sql"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tplforge/tplforge/internal/config"
	"github.com/tplforge/tplforge/internal/testutil"
)

func TestUpCreatesStateDirectory(t *testing.T) {
	cfg := &config.Settings{StateDBPath: filepath.Join(t.TempDir(), "nested", "state.db")}

	require.NoError(t, Up(cfg, testutil.NewTestLogger(t)))

	db, err := Connect(cfg)
	require.NoError(t, err)
	defer db.Close()

	store := NewStore(db)
	c := &Conversion{Slug: "my-app", Source: "a.yml", ContentHash: []byte{0x01}}
	require.NoError(t, store.Create(c))
	assert.NotZero(t, c.ID)

	out, err := store.List()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "my-app", out[0].Slug)
}

func newMock(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewStore(db), mock
}

func TestStoreCreate(t *testing.T) {
	store, mock := newMock(t)

	hash := []byte{0xde, 0xad, 0xbe, 0xef}
	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO conversions (slug, source, content_hash) VALUES (?, ?, ?)")).
		WithArgs("my-app", "docker-compose.yml", hash).
		WillReturnResult(sqlmock.NewResult(7, 1))

	c := &Conversion{Slug: "my-app", Source: "docker-compose.yml", ContentHash: hash}
	require.NoError(t, store.Create(c))
	assert.Equal(t, int64(7), c.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreCreateError(t *testing.T) {
	store, mock := newMock(t)

	mock.ExpectExec("INSERT INTO conversions").
		WillReturnError(sql.ErrConnDone)

	err := store.Create(&Conversion{Slug: "my-app"})
	assert.Error(t, err)
}

func TestStoreList(t *testing.T) {
	store, mock := newMock(t)

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "slug", "source", "content_hash", "created_at"}).
		AddRow(int64(2), "second", "b.yml", []byte{0x02}, now).
		AddRow(int64(1), "first", "a.yml", []byte{0x01}, now.Add(-time.Hour))

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, slug, source, content_hash, created_at FROM conversions ORDER BY created_at DESC, id DESC")).
		WillReturnRows(rows)

	out, err := store.List()
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "second", out[0].Slug)
	assert.Equal(t, "first", out[1].Slug)
	assert.Equal(t, []byte{0x01}, out[1].ContentHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreListEmpty(t *testing.T) {
	store, mock := newMock(t)

	mock.ExpectQuery("SELECT id, slug, source, content_hash, created_at FROM conversions").
		WillReturnRows(sqlmock.NewRows([]string{"id", "slug", "source", "content_hash", "created_at"}))

	out, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, out)
}
