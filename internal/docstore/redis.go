package docstore

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// Redis appends JSON documents to one list per collection and tracks the
// collection names in a set. Keys are prefixed with the database name.
type Redis struct {
	client *redis.Client
	prefix string
}

func OpenRedis(url, name string) (*Redis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Wrap(err, "docstore: parse redis url")
	}
	return NewRedis(redis.NewClient(opts), name), nil
}

func NewRedis(client *redis.Client, prefix string) *Redis {
	if prefix == "" {
		prefix = defaultName
	}
	return &Redis{client: client, prefix: prefix}
}

func (r *Redis) Insert(ctx context.Context, collection string, v any) (string, error) {
	if collection == "" {
		return "", ErrCollectionRequired
	}
	doc, err := toDocument(v)
	if err != nil {
		return "", err
	}
	id := uuid.NewString()
	doc["_id"] = id

	body, err := jsonString(doc)
	if err != nil {
		return "", err
	}

	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, r.listKey(collection), body)
	pipe.SAdd(ctx, r.collectionsKey(), collection)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", errors.Wrap(err, "docstore: insert into "+collection)
	}
	return id, nil
}

func (r *Redis) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.Wrap(ErrUnavailable, err.Error())
	}
	return nil
}

func (r *Redis) Collections(ctx context.Context) ([]string, error) {
	names, err := r.client.SMembers(ctx, r.collectionsKey()).Result()
	if err != nil && err != redis.Nil {
		return nil, errors.Wrap(err, "docstore: list collections")
	}
	sort.Strings(names)
	return names, nil
}

func (r *Redis) Name() string { return "redis" }

func (r *Redis) Close(context.Context) error {
	return r.client.Close()
}

func (r *Redis) listKey(collection string) string {
	return r.prefix + ":" + collection
}

func (r *Redis) collectionsKey() string {
	return r.prefix + ":collections"
}
