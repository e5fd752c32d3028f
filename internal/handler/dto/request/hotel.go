package request

import (
	"hotel-booking-api/internal/usecase/queries"
)

type ListHotelsRequest struct {
	City     *string `form:"city"`
	MinStars *int    `form:"min_stars"`
	MaxPrice *int64  `form:"max_price_cents"`
	Search   *string `form:"search"`
	Ordering string  `form:"ordering"`
	Limit    int32   `form:"limit"`
	Offset   int32   `form:"offset"`
}

func (r ListHotelsRequest) ToFilter() queries.HotelFilter {
	filter := queries.HotelFilter{
		CitySlug:      r.City,
		MinStarRating: r.MinStars,
		MaxPriceCents: r.MaxPrice,
		Search:        r.Search,
		Limit:         r.Limit,
		Offset:        r.Offset,
	}

	ordering := r.Ordering
	if len(ordering) > 0 && ordering[0] == '-' {
		filter.SortDescending = true
		ordering = ordering[1:]
	}
	filter.Sort = ordering

	return filter
}
