package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Mongo writes each collection to the MongoDB collection of the same name.
type Mongo struct {
	db *mongo.Database
}

// OpenMongo configures a client. The driver connects lazily, so an
// unreachable server surfaces on the first Ping or Insert, not here.
func OpenMongo(ctx context.Context, uri, name string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(err, "docstore: connect mongo")
	}
	return NewMongo(client.Database(name)), nil
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{db: db}
}

func (m *Mongo) Insert(ctx context.Context, collection string, v any) (string, error) {
	if collection == "" {
		return "", ErrCollectionRequired
	}
	doc, err := toDocument(v)
	if err != nil {
		return "", err
	}

	res, err := m.db.Collection(collection).InsertOne(ctx, bsonValue(map[string]any(doc)))
	if err != nil {
		return "", errors.Wrap(err, "docstore: insert into "+collection)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

// bsonValue turns json.Number into int64, or float64 when the literal has a
// fraction or exponent or overflows int64, so numbers are stored as BSON
// numbers rather than strings.
func bsonValue(v any) any {
	switch x := v.(type) {
	case map[string]any:
		out := make(bson.M, len(x))
		for k, e := range x {
			out[k] = bsonValue(e)
		}
		return out
	case []any:
		out := make(bson.A, len(x))
		for i, e := range x {
			out[i] = bsonValue(e)
		}
		return out
	case json.Number:
		if !strings.ContainsAny(x.String(), ".eE") {
			if n, err := x.Int64(); err == nil {
				return n
			}
		}
		if f, err := x.Float64(); err == nil {
			return f
		}
		return x.String()
	default:
		return v
	}
}

func (m *Mongo) Ping(ctx context.Context) error {
	if err := m.db.Client().Ping(ctx, readpref.Primary()); err != nil {
		return errors.Wrap(ErrUnavailable, err.Error())
	}
	return nil
}

func (m *Mongo) Collections(ctx context.Context) ([]string, error) {
	names, err := m.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, errors.Wrap(err, "docstore: list collections")
	}
	return names, nil
}

func (m *Mongo) Name() string { return "mongodb" }

func (m *Mongo) Close(ctx context.Context) error {
	return m.db.Client().Disconnect(ctx)
}
