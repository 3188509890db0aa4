package storage

import "context"

// Chunk splits items into slices of at most size elements, preserving order.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) == 0 {
		return nil
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[start:end])
	}
	return chunks
}

// FetchAll pages through a gateway query in order, calling page(offset, limit)
// until a short page signals the end. The page func is expected to carry its
// own rate limiting, as every Gateway query method does.
func FetchAll[T any](ctx context.Context, limit int, page func(ctx context.Context, offset, limit int) ([]T, error)) ([]T, error) {
	var all []T
	for offset := 0; ; offset += limit {
		rows, err := page(ctx, offset, limit)
		if err != nil {
			return nil, err
		}
		all = append(all, rows...)
		if len(rows) < limit {
			return all, nil
		}
	}
}
