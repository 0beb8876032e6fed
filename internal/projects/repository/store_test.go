package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arun225295196/SIT725/internal/projects/domain"
)

type storeFactory func(t *testing.T, seed int64, samples []domain.CreateInput) Store

func sampleInputs() []domain.CreateInput {
	return []domain.CreateInput{
		{Title: "Sample Project 1", Description: "First", Category: "Web Development", Image: "https://via.placeholder.com/300", Link: "#"},
		{Title: "Sample Project 2", Description: "Second", Category: "Mobile App"},
		{Title: "Sample Project 3", Description: "Third", Category: "Data Science"},
	}
}

func strPtr(s string) *string { return &s }

// runStoreContract exercises the behaviour every Store implementation shares.
func runStoreContract(t *testing.T, newStore storeFactory) {
	ctx := context.Background()

	t.Run("seeded list is ordered", func(t *testing.T) {
		s := newStore(t, 1, sampleInputs())

		got, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, got, 3)
		for i, p := range got {
			assert.Equal(t, int64(i+1), p.ID)
		}
		assert.Equal(t, "Sample Project 1", got[0].Title)
		assert.Equal(t, "#", got[0].Link)
	})

	t.Run("create assigns next id and defaults category", func(t *testing.T) {
		s := newStore(t, 1, sampleInputs())

		p, err := s.Create(ctx, domain.CreateInput{Title: "New", Description: "Desc"})
		require.NoError(t, err)
		assert.Equal(t, int64(4), p.ID)
		assert.Equal(t, domain.DefaultCategory, p.Category)
		assert.False(t, p.CreatedAt.IsZero())

		got, err := s.Get(ctx, 4)
		require.NoError(t, err)
		assert.Equal(t, "New", got.Title)
	})

	t.Run("create rejects missing fields", func(t *testing.T) {
		s := newStore(t, 1, nil)

		_, err := s.Create(ctx, domain.CreateInput{Title: "only title"})
		assert.ErrorIs(t, err, domain.ErrTitleDescriptionRequired)

		all, err := s.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("get unknown id", func(t *testing.T) {
		s := newStore(t, 1, sampleInputs())

		_, err := s.Get(ctx, 999)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("update merges fields", func(t *testing.T) {
		s := newStore(t, 1, sampleInputs())
		before, err := s.Get(ctx, 2)
		require.NoError(t, err)

		p, err := s.Update(ctx, 2, domain.UpdateInput{Title: strPtr("Renamed"), Category: strPtr("Games")})
		require.NoError(t, err)
		assert.Equal(t, int64(2), p.ID)
		assert.Equal(t, "Renamed", p.Title)
		assert.Equal(t, "Games", p.Category)
		assert.Equal(t, before.Description, p.Description)
		assert.True(t, before.CreatedAt.Equal(p.CreatedAt))

		got, err := s.Get(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Title)
	})

	t.Run("update unknown id", func(t *testing.T) {
		s := newStore(t, 1, sampleInputs())

		_, err := s.Update(ctx, 42, domain.UpdateInput{Title: strPtr("x")})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		s := newStore(t, 1, sampleInputs())

		ok, err := s.Delete(ctx, 2)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = s.Delete(ctx, 2)
		require.NoError(t, err)
		assert.False(t, ok)

		all, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, int64(1), all[0].ID)
		assert.Equal(t, int64(3), all[1].ID)
	})

	t.Run("ids are not reused after delete", func(t *testing.T) {
		s := newStore(t, 1, sampleInputs())

		_, err := s.Delete(ctx, 3)
		require.NoError(t, err)

		p, err := s.Create(ctx, domain.CreateInput{Title: "T", Description: "D"})
		require.NoError(t, err)
		assert.Equal(t, int64(4), p.ID)
	})

	t.Run("list by category is case insensitive", func(t *testing.T) {
		s := newStore(t, 1, sampleInputs())

		got, err := s.ListByCategory(ctx, "web development")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Sample Project 1", got[0].Title)

		none, err := s.ListByCategory(ctx, "Web")
		require.NoError(t, err)
		assert.NotNil(t, none)
		assert.Empty(t, none)
	})

	t.Run("reset keeps counting", func(t *testing.T) {
		s := newStore(t, 1, sampleInputs())

		require.NoError(t, s.Reset(ctx, sampleInputs()[:1]))

		all, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, int64(4), all[0].ID)
	})

	t.Run("reset rejects invalid samples untouched", func(t *testing.T) {
		s := newStore(t, 1, sampleInputs())

		err := s.Reset(ctx, []domain.CreateInput{{Title: "no description"}})
		assert.ErrorIs(t, err, domain.ErrTitleDescriptionRequired)

		all, err := s.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("custom seed", func(t *testing.T) {
		s := newStore(t, 100, sampleInputs()[:1])

		all, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, int64(100), all[0].ID)
	})

	t.Run("concurrent creates get distinct ids", func(t *testing.T) {
		s := newStore(t, 1, nil)

		const n = 20
		ids := make(chan int64, n)
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				p, err := s.Create(ctx, domain.CreateInput{Title: "T", Description: "D"})
				if assert.NoError(t, err) {
					ids <- p.ID
				}
			}()
		}
		wg.Wait()
		close(ids)

		seen := make(map[int64]bool)
		for id := range ids {
			assert.False(t, seen[id], "duplicate id %d", id)
			seen[id] = true
		}
		assert.Len(t, seen, n)
	})

	t.Run("ping", func(t *testing.T) {
		s := newStore(t, 1, nil)
		assert.NoError(t, s.Ping(ctx))
	})
}
