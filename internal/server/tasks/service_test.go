package tasks

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dberestov/taskdeck/internal/common"
	"github.com/dberestov/taskdeck/internal/server/docstore"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	store := docstore.New(filepath.Join(t.TempDir(), "todos.json"))
	return NewService(NewFileRepository(store))
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestCreate_TrimsText(t *testing.T) {
	svc := newTestService(t)

	task, err := svc.Create(context.Background(), 1, "  Buy milk  ")
	require.NoError(t, err)

	assert.Equal(t, int64(1), task.ID)
	assert.Equal(t, "Buy milk", task.Text)
	assert.False(t, task.Completed)
	assert.False(t, task.CreatedAt.IsZero())
	assert.Nil(t, task.UpdatedAt)
}

func TestCreate_EmptyTextRejected(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, "")
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = svc.Create(ctx, 1, "   \t  ")
	assert.ErrorIs(t, err, common.ErrValidation)

	// nothing persisted
	list, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestList_OwnerScopedInsertionOrder(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, "first")
	require.NoError(t, err)
	_, err = svc.Create(ctx, 2, "other owner")
	require.NoError(t, err)
	_, err = svc.Create(ctx, 1, "second")
	require.NoError(t, err)

	list, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "first", list[0].Text)
	assert.Equal(t, "second", list[1].Text)
}

func TestList_FreshOwnerIsEmptyNotNil(t *testing.T) {
	svc := newTestService(t)

	list, err := svc.List(context.Background(), 7)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestUpdate_PartialFields(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, "Buy milk")
	require.NoError(t, err)

	// completed only: text untouched
	updated, err := svc.Update(ctx, 1, created.ID, Change{Completed: boolPtr(true)})
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", updated.Text)
	assert.True(t, updated.Completed)
	require.NotNil(t, updated.UpdatedAt)

	// text only: completed untouched, text trimmed
	updated, err = svc.Update(ctx, 1, created.ID, Change{Text: strPtr("  Buy bread  ")})
	require.NoError(t, err)
	assert.Equal(t, "Buy bread", updated.Text)
	assert.True(t, updated.Completed)
}

func TestUpdate_EmptyTextRejected(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, "Buy milk")
	require.NoError(t, err)

	_, err = svc.Update(ctx, 1, created.ID, Change{Text: strPtr("   ")})
	assert.ErrorIs(t, err, common.ErrValidation)

	// stored record unchanged
	list, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", list[0].Text)
}

func TestUpdate_ExistenceBlindNotFound(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, "owned by user 1")
	require.NoError(t, err)

	_, missingErr := svc.Update(ctx, 1, 999, Change{Completed: boolPtr(true)})
	_, foreignErr := svc.Update(ctx, 2, created.ID, Change{Completed: boolPtr(true)})

	assert.ErrorIs(t, missingErr, common.ErrNotFound)
	assert.ErrorIs(t, foreignErr, common.ErrNotFound)
	assert.Equal(t, missingErr, foreignErr,
		"a foreign task must be reported exactly like a missing one")
}

func TestDelete_ReturnsPriorState(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, "Buy milk")
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, 1, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)
	assert.Equal(t, "Buy milk", deleted.Text)

	list, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDelete_ExistenceBlindNotFound(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, "owned by user 1")
	require.NoError(t, err)

	_, err = svc.Delete(ctx, 2, created.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)

	// still there for its owner
	list, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestIDs_NeverReusedAfterDelete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, 1, "first")
	require.NoError(t, err)
	_, err = svc.Delete(ctx, 1, first.ID)
	require.NoError(t, err)

	second, err := svc.Create(ctx, 1, "second")
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID, "ids are never reused, even after deletion")
}

func TestCreate_ConcurrentAssignsDistinctSequentialIDs(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	const n = 25
	var wg sync.WaitGroup
	ids := make(chan int64, n)

	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			task, err := svc.Create(ctx, 1, "concurrent")
			if err != nil {
				t.Errorf("create error: %v", err)
				return
			}
			ids <- task.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	require.Len(t, seen, n)
	for id := int64(1); id <= n; id++ {
		assert.True(t, seen[id], "missing id %d", id)
	}

	list, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, n, "no writes may be lost")
}
