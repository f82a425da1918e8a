package docstore

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryInsertAndDocuments(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	id1, err := m.Insert(ctx, "demotranscript", map[string]any{"role": "user", "text": "hi"})
	require.NoError(t, err)
	id2, err := m.Insert(ctx, "demotranscript", map[string]any{"role": "assistant", "text": "hello"})
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)

	docs := m.Documents("demotranscript")
	require.Len(t, docs, 2)
	assert.Equal(t, "user", docs[0]["role"])
	assert.Equal(t, "assistant", docs[1]["role"])
	assert.Equal(t, id1, docs[0]["_id"])
	assert.Empty(t, m.Documents("demoevent"))
}

func TestMemoryRequiresCollection(t *testing.T) {
	_, err := NewMemory().Insert(context.Background(), "", map[string]any{"x": 1})
	assert.ErrorIs(t, err, ErrCollectionRequired)
}

func TestMemoryCollectionsSorted(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	for _, c := range []string{"demosession", "demoevent", "demolead"} {
		_, err := m.Insert(ctx, c, map[string]any{})
		require.NoError(t, err)
	}

	names, err := m.Collections(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"demoevent", "demolead", "demosession"}, names)
	assert.NoError(t, m.Ping(ctx))
}

func TestMemoryConcurrentInserts(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = m.Insert(ctx, "demoevent", map[string]any{"n": fmt.Sprint(i)})
		}(i)
	}
	wg.Wait()

	assert.Len(t, m.Documents("demoevent"), 50)
}
