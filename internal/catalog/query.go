package catalog

import (
	"sort"
	"strings"

	"unitrade/internal/domain/entity"
)

type SortKey string

const (
	SortDateDesc  SortKey = "date_desc"
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortViewsDesc SortKey = "views_desc"
)

// Params describes one catalog query.
type Params struct {
	Search        string
	Sort          SortKey
	HideCompleted bool
	Category      string
	ExcludeID     string
	Limit         int
}

// Query filters and orders a listing collection. It never mutates its input
// and returns identical output for identical input. Banned listings are
// always excluded; sold and received listings are excluded when
// HideCompleted is set. The sort is stable, so listings that compare equal
// keep their relative input order.
func Query(listings []*entity.Listing, p Params) []*entity.Listing {
	search := strings.ToLower(strings.TrimSpace(p.Search))

	out := make([]*entity.Listing, 0, len(listings))
	for _, l := range listings {
		if l.Status == entity.ListingBanned {
			continue
		}
		if p.HideCompleted && l.Completed() {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(l.Title), search) {
			continue
		}
		if p.Category != "" && l.Category != p.Category {
			continue
		}
		if p.ExcludeID != "" && l.ID == p.ExcludeID {
			continue
		}
		out = append(out, l)
	}

	switch p.Sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortViewsDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Views > out[j].Views })
	case SortDateDesc, "":
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}

	if p.Limit > 0 && len(out) > p.Limit {
		out = out[:p.Limit]
	}
	return out
}
