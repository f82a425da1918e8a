package docstore

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

const postgresSchema = `
	CREATE TABLE IF NOT EXISTS documents (
		id          UUID PRIMARY KEY,
		collection  TEXT NOT NULL,
		body        JSONB NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS documents_collection_idx ON documents (collection);
`

// Postgres stores every collection in one JSONB documents table.
type Postgres struct {
	db *sql.DB
}

// OpenPostgres opens the pool and makes sure the table exists. A failing
// schema step is not fatal: the pool is still returned so later writes can
// succeed once the database comes back.
func OpenPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "docstore: open postgres")
	}
	p := NewPostgres(db)
	if err := p.EnsureSchema(ctx); err != nil {
		return p, err
	}
	return p, nil
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) EnsureSchema(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, postgresSchema); err != nil {
		return wrapPQ(err, "docstore: ensure schema")
	}
	return nil
}

func (p *Postgres) Insert(ctx context.Context, collection string, v any) (string, error) {
	if collection == "" {
		return "", ErrCollectionRequired
	}
	doc, err := toDocument(v)
	if err != nil {
		return "", err
	}
	body, err := jsonString(doc)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	_, err = p.db.ExecContext(ctx, `
		INSERT INTO documents (id, collection, body)
		VALUES ($1, $2, $3)
	`,
		id,
		collection,
		body,
	)
	if err != nil {
		return "", wrapPQ(err, "docstore: insert into "+collection)
	}
	return id, nil
}

func (p *Postgres) Ping(ctx context.Context) error {
	if err := p.db.PingContext(ctx); err != nil {
		return errors.Wrap(ErrUnavailable, err.Error())
	}
	return nil
}

func (p *Postgres) Collections(ctx context.Context) ([]string, error) {
	rows, err := p.db.QueryContext(ctx, `
		SELECT DISTINCT collection
		FROM documents
		ORDER BY collection ASC
	`)
	if err != nil {
		return nil, wrapPQ(err, "docstore: list collections")
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, errors.Wrap(err, "docstore: scan collection")
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

func (p *Postgres) Name() string { return "postgres" }

func (p *Postgres) Close(context.Context) error {
	return p.db.Close()
}

// wrapPQ keeps the SQLSTATE class in the message when the driver reports one.
func wrapPQ(err error, msg string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return errors.Wrapf(err, "%s (sqlstate %s)", msg, pqErr.Code)
	}
	return errors.Wrap(err, msg)
}
