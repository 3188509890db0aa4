package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunk(t *testing.T) {
	t.Run("even split", func(t *testing.T) {
		chunks := Chunk([]int{1, 2, 3, 4}, 2)
		assert.Equal(t, [][]int{{1, 2}, {3, 4}}, chunks)
	})

	t.Run("remainder in last chunk", func(t *testing.T) {
		chunks := Chunk([]int{1, 2, 3, 4, 5}, 2)
		assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, chunks)
	})

	t.Run("chunk larger than input", func(t *testing.T) {
		chunks := Chunk([]string{"a"}, 100)
		assert.Equal(t, [][]string{{"a"}}, chunks)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, Chunk([]int{}, 10))
	})

	t.Run("non-positive size", func(t *testing.T) {
		assert.Nil(t, Chunk([]int{1, 2}, 0))
	})
}

func TestFetchAll(t *testing.T) {
	t.Run("stops on short page", func(t *testing.T) {
		data := []int{1, 2, 3, 4, 5}
		var calls int
		page := func(_ context.Context, offset, limit int) ([]int, error) {
			calls++
			end := offset + limit
			if end > len(data) {
				end = len(data)
			}
			if offset >= len(data) {
				return nil, nil
			}
			return data[offset:end], nil
		}

		all, err := FetchAll(context.Background(), 2, page)
		require.NoError(t, err)
		assert.Equal(t, data, all)
		assert.Equal(t, 3, calls)
	})

	t.Run("exact multiple needs one extra empty page", func(t *testing.T) {
		data := []int{1, 2, 3, 4}
		page := func(_ context.Context, offset, limit int) ([]int, error) {
			if offset >= len(data) {
				return nil, nil
			}
			return data[offset : offset+limit], nil
		}

		all, err := FetchAll(context.Background(), 2, page)
		require.NoError(t, err)
		assert.Equal(t, data, all)
	})

	t.Run("propagates page error", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := FetchAll(context.Background(), 10, func(context.Context, int, int) ([]int, error) {
			return nil, boom
		})
		assert.ErrorIs(t, err, boom)
	})
}
