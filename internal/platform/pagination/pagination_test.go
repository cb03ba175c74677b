package pagination

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
	"testing"
)

func ids(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "id-" + strconv.Itoa(i)
	}
	return out
}

func self(s string) string { return s }

func TestCursorRoundTrip(t *testing.T) {
	c := Cursor{Type: "food", Value: "custom-food-1:with-colon"}
	got, err := DecodeCursor(c.Encode())
	if err != nil {
		t.Fatalf("DecodeCursor: %v", err)
	}
	if got != c {
		t.Fatalf("got %+v, want %+v", got, c)
	}
}

func TestDecodeCursorInvalid(t *testing.T) {
	for _, s := range []string{"!!!", "bm9jb2xvbg"} {
		if _, err := DecodeCursor(s); !errors.Is(err, ErrInvalidCursor) {
			t.Errorf("DecodeCursor(%q) = %v, want ErrInvalidCursor", s, err)
		}
	}
	c, err := DecodeCursor("")
	if err != nil || c != (Cursor{}) {
		t.Fatalf("empty cursor should decode to zero value, got %+v %v", c, err)
	}
}

func TestPageSize(t *testing.T) {
	if (Params{}).PageSize() != DefaultLimit {
		t.Fatal("expected default limit")
	}
	if (Params{Limit: 5}).PageSize() != 5 {
		t.Fatal("expected explicit limit")
	}
}

func TestPaginateWalksForwardAndBack(t *testing.T) {
	items := ids(5)
	first, err := Paginate(items, Params{Limit: 2}, "diet", self, "/v1/diets", nil)
	if err != nil {
		t.Fatalf("first page: %v", err)
	}
	if strings.Join(first.Items, ",") != "id-0,id-1" || first.Total != 5 {
		t.Fatalf("unexpected first page: %+v", first)
	}
	if first.PrevCursor != "" || first.NextCursor == "" {
		t.Fatalf("unexpected cursors on first page: %+v", first)
	}

	second, err := Paginate(items, Params{Limit: 2, Cursor: first.NextCursor}, "diet", self, "/v1/diets", nil)
	if err != nil {
		t.Fatalf("second page: %v", err)
	}
	if strings.Join(second.Items, ",") != "id-2,id-3" {
		t.Fatalf("unexpected second page: %v", second.Items)
	}

	third, err := Paginate(items, Params{Limit: 2, Cursor: second.NextCursor}, "diet", self, "/v1/diets", nil)
	if err != nil {
		t.Fatalf("third page: %v", err)
	}
	if strings.Join(third.Items, ",") != "id-4" || third.NextCursor != "" {
		t.Fatalf("unexpected last page: %+v", third)
	}

	back, err := Paginate(items, Params{Limit: 2, Cursor: third.PrevCursor}, "diet", self, "/v1/diets", nil)
	if err != nil {
		t.Fatalf("prev page: %v", err)
	}
	if strings.Join(back.Items, ",") != "id-2,id-3" {
		t.Fatalf("prev cursor should return to the second page, got %v", back.Items)
	}
}

func TestPaginateRejectsForeignAndStaleCursors(t *testing.T) {
	items := ids(3)
	foreign := Cursor{Type: "food", Value: "id-0"}.Encode()
	if _, err := Paginate(items, Params{Cursor: foreign}, "diet", self, "/", nil); !errors.Is(err, ErrInvalidCursor) {
		t.Fatalf("expected ErrInvalidCursor for foreign cursor, got %v", err)
	}
	stale := Cursor{Type: "diet", Value: "deleted"}.Encode()
	if _, err := Paginate(items, Params{Cursor: stale}, "diet", self, "/", nil); !errors.Is(err, ErrInvalidCursor) {
		t.Fatalf("expected ErrInvalidCursor for stale cursor, got %v", err)
	}
}

func TestPaginateLinkHeaderKeepsQuery(t *testing.T) {
	query := url.Values{"category": {"fruits"}, "cursor": {"old"}}
	res, err := Paginate(ids(3), Params{Limit: 1}, "food", self, "/v1/foods", query)
	if err != nil {
		t.Fatalf("Paginate: %v", err)
	}
	if !strings.Contains(res.LinkHeader, `rel="next"`) || !strings.Contains(res.LinkHeader, "category=fruits") ||
		!strings.Contains(res.LinkHeader, "limit=1") {
		t.Fatalf("unexpected link header %q", res.LinkHeader)
	}
	if strings.Contains(res.LinkHeader, "cursor=old") {
		t.Fatalf("stale cursor leaked into links: %q", res.LinkHeader)
	}
	if query.Get("cursor") != "old" {
		t.Fatal("input query was modified")
	}
}

func TestPaginateEmpty(t *testing.T) {
	res, err := Paginate([]string{}, Params{}, "diet", self, "/", nil)
	if err != nil {
		t.Fatalf("Paginate: %v", err)
	}
	if len(res.Items) != 0 || res.LinkHeader != "" {
		t.Fatalf("unexpected result %+v", res)
	}
}
