package pagination

import (
	"net/url"
	"strconv"
)

// Result is one page of items plus navigation metadata.
type Result[T any] struct {
	Items      []T
	Total      int
	LinkHeader string
	NextCursor string
	PrevCursor string
}

// Paginate returns the page of items that follows the cursor in params.
// Items keep their order. cursorType ties cursors to one listing so a diet
// cursor cannot be replayed against foods. Links point at baseURL and carry
// query plus the effective limit.
func Paginate[T any](
	items []T,
	params Params,
	cursorType string,
	getID func(T) string,
	baseURL string,
	query url.Values,
) (Result[T], error) {
	cursor, err := DecodeCursor(params.Cursor)
	if err != nil {
		return Result[T]{}, err
	}
	if params.Cursor != "" && cursor.Type != cursorType {
		return Result[T]{}, ErrInvalidCursor
	}

	limit := params.PageSize()
	total := len(items)

	start := 0
	if cursor.Value != "" {
		start = -1
		for i, item := range items {
			if getID(item) == cursor.Value {
				start = i + 1
				break
			}
		}
		if start < 0 {
			return Result[T]{}, ErrInvalidCursor
		}
	}
	end := min(start+limit, total)
	page := items[start:end]

	var next, prev string
	if end < total && len(page) > 0 {
		next = Cursor{Type: cursorType, Value: getID(page[len(page)-1])}.Encode()
	}
	if start > 0 {
		prevValue := ""
		if start > limit {
			prevValue = getID(items[start-limit-1])
		}
		prev = Cursor{Type: cursorType, Value: prevValue}.Encode()
	}

	q := cloneValues(query)
	q.Del("cursor")
	q.Set("limit", strconv.Itoa(limit))

	return Result[T]{
		Items:      page,
		Total:      total,
		LinkHeader: BuildLinkHeader(baseURL, q, next, prev),
		NextCursor: next,
		PrevCursor: prev,
	}, nil
}
