package page_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/rpggio/projman/internal/domain/page"
	"github.com/stretchr/testify/require"
)

func TestRequest_Normalize(t *testing.T) {
	cases := []struct {
		name string
		in   page.Request
		want page.Request
	}{
		{"zero value", page.Request{}, page.Request{Page: 0, Size: 10}},
		{"negative page", page.Request{Page: -3, Size: 5}, page.Request{Page: 0, Size: 5}},
		{"oversized", page.Request{Page: 2, Size: 5000}, page.Request{Page: 2, Size: page.MaxSize}},
		{"unchanged", page.Request{Page: 1, Size: 20}, page.Request{Page: 1, Size: 20}},
		{"huge page", page.Request{Page: math.MaxInt / 5, Size: 10}, page.Request{Page: page.MaxPage, Size: 10}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.in.Normalize())
		})
	}
	require.Equal(t, 40, page.Request{Page: 2, Size: 20}.Offset())
}

func TestRequest_OffsetDoesNotOverflow(t *testing.T) {
	for _, req := range []page.Request{
		{Page: math.MaxInt / 5, Size: 10},
		{Page: math.MaxInt, Size: page.MaxSize},
		{Page: page.MaxPage, Size: page.MaxSize},
	} {
		require.GreaterOrEqual(t, req.Offset(), 0, "page %d size %d", req.Page, req.Size)
	}
}

func TestNew_TotalPages(t *testing.T) {
	p := page.New(page.DefaultRequest(), 7, []string{"a", "b", "c", "d", "e", "f", "g"})
	require.Equal(t, 0, p.ActualPage)
	require.Equal(t, int64(7), p.TotalRecords)
	require.Equal(t, 1, p.TotalPages)
	require.Len(t, p.ItemList, 7)

	p = page.New(page.Request{Page: 2, Size: 10}, 21, []string{"u"})
	require.Equal(t, 3, p.TotalPages)
	require.Equal(t, 2, p.ActualPage)

	empty := page.New[string](page.DefaultRequest(), 0, nil)
	require.Equal(t, 0, empty.TotalPages)
	require.NotNil(t, empty.ItemList)
}

func TestPage_JSONShape(t *testing.T) {
	data, err := json.Marshal(page.New[int](page.DefaultRequest(), 0, nil))
	require.NoError(t, err)
	require.JSONEq(t, `{"actualPage":0,"totalRecords":0,"totalPages":0,"itemList":[]}`, string(data))
}
