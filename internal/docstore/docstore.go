// Package docstore implements the append-only document gateway used by the
// demo: insert one document into a named collection, report reachability,
// list collection names.
package docstore

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

var (
	// ErrUnavailable is returned when the backing database is not reachable.
	ErrUnavailable = errors.New("docstore: database unavailable")

	// ErrCollectionRequired is returned when Insert is called without a collection.
	ErrCollectionRequired = errors.New("docstore: collection name required")
)

// Document is a stored document as a generic key/value map.
type Document map[string]any

// Store is the gateway contract shared by all backends.
type Store interface {
	Insert(ctx context.Context, collection string, v any) (string, error)
	Ping(ctx context.Context) error
	Collections(ctx context.Context) ([]string, error)
	Name() string
	Close(ctx context.Context) error
}

// now is swapped in tests.
var now = func() time.Time { return time.Now().UTC() }

// toDocument flattens v into a Document and stamps created_at/updated_at
// when the caller did not set them. Numbers stay json.Number so integers
// wider than a float64 mantissa survive.
func toDocument(v any) (Document, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "docstore: marshal document")
	}
	doc := Document{}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "docstore: document must be a JSON object")
	}
	if doc == nil {
		return nil, errors.New("docstore: document must be a JSON object")
	}

	ts := now()
	if _, ok := doc["created_at"]; !ok {
		doc["created_at"] = ts
	}
	if _, ok := doc["updated_at"]; !ok {
		doc["updated_at"] = ts
	}
	return doc, nil
}

func jsonString(doc Document) (string, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return "", errors.Wrap(err, "docstore: marshal document")
	}
	return string(raw), nil
}
