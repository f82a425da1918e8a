package docstore

import (
	"context"
	"strings"

	"github.com/pkg/errors"
)

const defaultName = "cliqo"

// Open picks a backend from the URL scheme. An empty URL yields an in-memory
// store so the service keeps answering without a database.
func Open(ctx context.Context, url, name string) (Store, error) {
	if strings.TrimSpace(name) == "" {
		name = defaultName
	}

	scheme := ""
	if i := strings.Index(url, "://"); i > 0 {
		scheme = strings.ToLower(url[:i])
	}

	switch {
	case strings.TrimSpace(url) == "", scheme == "memory":
		return NewMemory(), nil
	case scheme == "mongodb", scheme == "mongodb+srv":
		m, err := OpenMongo(ctx, url, name)
		if err != nil {
			return nil, err
		}
		return m, nil
	case scheme == "postgres", scheme == "postgresql":
		// A schema error still comes with a usable store.
		p, err := OpenPostgres(ctx, url)
		if p == nil {
			return nil, err
		}
		return p, err
	case scheme == "redis", scheme == "rediss":
		r, err := OpenRedis(url, name)
		if err != nil {
			return nil, err
		}
		return r, nil
	default:
		return nil, errors.Errorf("docstore: unsupported database url scheme %q", scheme)
	}
}
