package record

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Filter returns the records matched by m in their original order. The
// source collection is never modified.
func Filter(c Collection, m Matcher) Collection {
	result := Collection{}
	for i := range c {
		if m.Matches(&c[i]) {
			result = append(result, c[i])
		}
	}
	return result
}

// minChunk is the smallest slice worth handing to its own goroutine.
const minChunk = 4096

// FilterParallel scans contiguous chunks concurrently and concatenates the
// partial results in chunk order, so the result is the same as Filter.
func FilterParallel(ctx context.Context, c Collection, m Matcher, workers int) (Collection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if workers <= 1 || len(c) < 2*minChunk {
		return Filter(c, m), nil
	}

	chunk := (len(c) + workers - 1) / workers
	if chunk < minChunk {
		chunk = minChunk
	}
	parts := make([]Collection, (len(c)+chunk-1)/chunk)

	g, ctx := errgroup.WithContext(ctx)
	for p := range parts {
		p := p
		from := p * chunk
		to := min(from+chunk, len(c))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			parts[p] = Filter(c[from:to], m)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, part := range parts {
		total += len(part)
	}
	result := make(Collection, 0, total)
	for _, part := range parts {
		result = append(result, part...)
	}
	return result, nil
}

// DeleteById removes the first record with the given id by moving the last
// record into its slot. Order is not preserved. It reports whether a record
// was removed.
func DeleteById(c *Collection, id uint32) bool {
	rows := *c
	for i := range rows {
		if rows[i].Id != id {
			continue
		}
		last := len(rows) - 1
		rows[i] = rows[last]
		rows[last] = Record{} // release strings of the vacated slot
		*c = rows[:last]
		return true
	}
	return false
}
