package repo

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/Suchethan021/careerhub-platform/internal/models"
)

// recordingTx captures the SQL of every statement executed inside a
// transaction, in order.
type recordingTx struct {
	stmts []string
}

func (t *recordingTx) Begin(_ context.Context) (pgx.Tx, error) { return t, nil }
func (t *recordingTx) Commit(_ context.Context) error          { return nil }
func (t *recordingTx) Rollback(_ context.Context) error        { return nil }

func (t *recordingTx) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	t.stmts = append(t.stmts, sql)
	return pgconn.CommandTag{}, nil
}

func (t *recordingTx) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	t.stmts = append(t.stmts, sql)
	return emptyRows{}, nil
}

func (t *recordingTx) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row {
	panic("not used")
}

func (t *recordingTx) CopyFrom(_ context.Context, _ pgx.Identifier, _ []string, _ pgx.CopyFromSource) (int64, error) {
	panic("not used")
}
func (t *recordingTx) SendBatch(_ context.Context, _ *pgx.Batch) pgx.BatchResults { panic("not used") }
func (t *recordingTx) LargeObjects() pgx.LargeObjects                             { panic("not used") }
func (t *recordingTx) Prepare(_ context.Context, _, _ string) (*pgconn.StatementDescription, error) {
	panic("not used")
}
func (t *recordingTx) Conn() *pgx.Conn { return nil }

type emptyRows struct{}

func (emptyRows) Close()                                       {}
func (emptyRows) Err() error                                   { return nil }
func (emptyRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (emptyRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (emptyRows) Next() bool                                   { return false }
func (emptyRows) Scan(_ ...any) error                          { return nil }
func (emptyRows) Values() ([]any, error)                       { return nil, nil }
func (emptyRows) RawValues() [][]byte                          { return nil }
func (emptyRows) Conn() *pgx.Conn                              { return nil }

type recordingDB struct{ tx *recordingTx }

func (d *recordingDB) Begin(_ context.Context) (pgx.Tx, error) { return d.tx, nil }
func (d *recordingDB) Exec(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
	panic("not used")
}
func (d *recordingDB) Query(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
	panic("not used")
}
func (d *recordingDB) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row { panic("not used") }

func indexOf(t *testing.T, stmts []string, fragment string) int {
	t.Helper()
	for i, s := range stmts {
		if strings.Contains(s, fragment) {
			return i
		}
	}
	t.Fatalf("no statement containing %q", fragment)
	return -1
}

// Deleting a section and recreating one of the same type in a single save
// hands the repo a fresh row whose type matches a still-live row. Only one
// live row per type is allowed, so the soft-delete of dropped rows has to
// land before the new row's insert.
func TestReplaceSectionsPrunesBeforeUpsert(t *testing.T) {
	tx := &recordingTx{}
	p := &pgRepo{pool: &recordingDB{tx: tx}}

	recreated := models.ContentSection{
		ID:         uuid.New(),
		Type:       models.SectionAbout,
		OrderIndex: 0,
		IsVisible:  true,
		Title:      "About us",
	}
	_, err := p.ReplaceSections(context.Background(), uuid.New(), []models.ContentSection{recreated})
	require.NoError(t, err)

	prune := indexOf(t, tx.stmts, "UPDATE content_sections SET deleted_at = now()")
	insert := indexOf(t, tx.stmts, "INSERT INTO content_sections")
	require.Less(t, prune, insert)
}

// An empty save keeps every row out of the keep set, which clears the page.
func TestReplaceSectionsEmptySaveStillPrunes(t *testing.T) {
	tx := &recordingTx{}
	p := &pgRepo{pool: &recordingDB{tx: tx}}

	out, err := p.ReplaceSections(context.Background(), uuid.New(), nil)
	require.NoError(t, err)
	require.Empty(t, out)
	indexOf(t, tx.stmts, "UPDATE content_sections SET deleted_at = now()")
}
