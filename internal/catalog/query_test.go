package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"unitrade/internal/domain/entity"
)

func fixtureListings() []*entity.Listing {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return []*entity.Listing{
		{ID: "l1", Title: "Calculus Textbook", Category: "Books", Price: 30, Views: 5, Status: entity.ListingActive, CreatedAt: base.Add(1 * time.Hour)},
		{ID: "l2", Title: "Graphing Calculator", Category: "Electronics", Price: 45, Views: 20, Status: entity.ListingActive, CreatedAt: base.Add(2 * time.Hour)},
		{ID: "l3", Title: "Desk Lamp", Category: "Furniture", Price: 12, Views: 9, Status: entity.ListingSold, CreatedAt: base.Add(3 * time.Hour)},
		{ID: "l4", Title: "Winter Jacket", Category: "Clothing", Price: 25, Views: 2, Status: entity.ListingBanned, CreatedAt: base.Add(4 * time.Hour)},
		{ID: "l5", Title: "Tennis Racket", Category: "Sports", Price: 30, Views: 14, Status: entity.ListingReceived, CreatedAt: base.Add(5 * time.Hour)},
	}
}

func ids(listings []*entity.Listing) []string {
	out := make([]string, 0, len(listings))
	for _, l := range listings {
		out = append(out, l.ID)
	}
	return out
}

func TestQueryExcludesBannedAlways(t *testing.T) {
	got := Query(fixtureListings(), Params{})
	assert.NotContains(t, ids(got), "l4")
	assert.Len(t, got, 4)
}

func TestQueryHideCompleted(t *testing.T) {
	got := Query(fixtureListings(), Params{HideCompleted: true})
	assert.ElementsMatch(t, []string{"l1", "l2"}, ids(got))
}

func TestQuerySearchCaseInsensitiveSubstring(t *testing.T) {
	got := Query(fixtureListings(), Params{Search: "  CALC "})
	assert.ElementsMatch(t, []string{"l1", "l2"}, ids(got))
}

func TestQueryCategoryAndExclude(t *testing.T) {
	got := Query(fixtureListings(), Params{Category: "Books"})
	assert.Equal(t, []string{"l1"}, ids(got))

	got = Query(fixtureListings(), Params{ExcludeID: "l2"})
	assert.NotContains(t, ids(got), "l2")
}

func TestQuerySortOrders(t *testing.T) {
	cases := []struct {
		name string
		sort SortKey
		want []string
	}{
		{"newest first by default", "", []string{"l5", "l3", "l2", "l1"}},
		{"date desc", SortDateDesc, []string{"l5", "l3", "l2", "l1"}},
		{"price asc", SortPriceAsc, []string{"l3", "l1", "l5", "l2"}},
		{"price desc", SortPriceDesc, []string{"l2", "l1", "l5", "l3"}},
		{"views desc", SortViewsDesc, []string{"l2", "l5", "l3", "l1"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Query(fixtureListings(), Params{Sort: tc.sort})
			assert.Equal(t, tc.want, ids(got))
		})
	}
}

func TestQueryPriceTieKeepsInputOrder(t *testing.T) {
	// l1 and l5 both cost 30; the stable sort must keep l1 before l5.
	got := Query(fixtureListings(), Params{Sort: SortPriceAsc})
	assert.Equal(t, []string{"l3", "l1", "l5", "l2"}, ids(got))
}

func TestQueryLimitAppliedAfterSort(t *testing.T) {
	got := Query(fixtureListings(), Params{Sort: SortPriceDesc, Limit: 2})
	assert.Equal(t, []string{"l2", "l1"}, ids(got))
}

func TestQueryDoesNotMutateInput(t *testing.T) {
	in := fixtureListings()
	before := ids(in)

	Query(in, Params{Sort: SortPriceAsc, Search: "a", Limit: 1})

	assert.Equal(t, before, ids(in))
}

func TestQueryDeterministic(t *testing.T) {
	in := fixtureListings()
	p := Params{Search: "calc", Sort: SortViewsDesc}
	first := ids(Query(in, p))
	second := ids(Query(in, p))
	assert.Equal(t, first, second)
}
