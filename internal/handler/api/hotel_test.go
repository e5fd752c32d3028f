//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"hotel-booking-api/internal/handler/api"
	resdto "hotel-booking-api/internal/handler/dto/response"
	"hotel-booking-api/internal/usecase/queries"
	"hotel-booking-api/tests/common/builder"
	"hotel-booking-api/tests/common/httptest"
	queriesmock "hotel-booking-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HotelHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockCtrl          *gomock.Controller
	mockHotelQueries  *queriesmock.MockHotelQueries
	mockReviewQueries *queriesmock.MockReviewQueries
	handler           *api.HotelHandler
}

func (s *HotelHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockHotelQueries = queriesmock.NewMockHotelQueries(s.mockCtrl)
	s.mockReviewQueries = queriesmock.NewMockReviewQueries(s.mockCtrl)
	s.handler = api.NewHotelHandler(s.mockHotelQueries, s.mockReviewQueries)

	s.router.GET("/api/hotels", s.handler.SearchHotels)
	s.router.GET("/api/hotels/featured", s.handler.FeaturedHotels)
	s.router.GET("/api/hotels/:slug", s.handler.GetHotel)
	s.router.GET("/api/hotel-reviews/:id", s.handler.HotelReviews)
	s.router.GET("/api/cities", s.handler.ListCities)
	s.router.GET("/api/amenities", s.handler.ListAmenities)
}

func (s *HotelHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHotelHandlerSuite(t *testing.T) {
	suite.Run(t, new(HotelHandlerTestSuite))
}

// ================================================================================
// TestSearchHotels
// ================================================================================

func (s *HotelHandlerTestSuite) TestSearchHotels() {
	url := "/api/hotels"

	s.Run("success: formats the nightly price", func() {
		items := []*queries.HotelListItem{builder.NewHotelBuilder().BuildListItem()}
		s.mockHotelQueries.EXPECT().Search(gomock.Any(), gomock.Any()).
			Return(items, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body []resdto.HotelListItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
		s.Equal("150.00", body[0].PricePerNight)
	})

	s.Run("success: filters and ordering are forwarded", func() {
		s.mockHotelQueries.EXPECT().Search(gomock.Any(), gomock.Cond(func(x any) bool {
			f, ok := x.(queries.HotelFilter)
			return ok &&
				f.CitySlug != nil && *f.CitySlug == "paris" &&
				f.MinStarRating != nil && *f.MinStarRating == 4 &&
				f.Sort == "price_per_night" && f.SortDescending
		})).Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?city=paris&min_stars=4&ordering=-price_per_night", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on a non-numeric filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?min_stars=four", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query parameters")
	})
}

// ================================================================================
// TestFeaturedHotels
// ================================================================================

func (s *HotelHandlerTestSuite) TestFeaturedHotels() {
	s.Run("success: only featured hotels come back", func() {
		items := []*queries.HotelListItem{builder.NewHotelBuilder().BuildListItem()}
		s.mockHotelQueries.EXPECT().Featured(gomock.Any()).Return(items, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/hotels/featured", nil, "")

		var body []resdto.HotelListItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.True(body[0].IsFeatured)
	})
}

// ================================================================================
// TestGetHotel
// ================================================================================

func (s *HotelHandlerTestSuite) TestGetHotel() {
	b := builder.NewHotelBuilder()
	url := fmt.Sprintf("/api/hotels/%s", b.Slug)

	s.Run("success: returns the hotel with amenities", func() {
		b.WithAmenities(queries.AmenityView{ID: uuid.New(), Name: "Free WiFi", Icon: "wifi"})
		s.mockHotelQueries.EXPECT().GetBySlug(gomock.Any(), b.Slug).
			Return(b.BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.HotelResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(b.Name, body.Name)
		s.Equal("150.00", body.PricePerNight)
		s.Require().Len(body.Amenities, 1)
		s.Equal("Free WiFi", body.Amenities[0].Name)
	})

	s.Run("error: 404 for an unknown slug", func() {
		s.mockHotelQueries.EXPECT().GetBySlug(gomock.Any(), b.Slug).
			Return(nil, queries.ErrHotelNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Hotel not found")
	})
}

// ================================================================================
// TestHotelReviews
// ================================================================================

func (s *HotelHandlerTestSuite) TestHotelReviews() {
	hotelID := uuid.New()
	url := fmt.Sprintf("/api/hotel-reviews/%s", hotelID)

	s.Run("success: paging is forwarded", func() {
		items := []*queries.ReviewView{builder.NewReviewBuilder().BuildView()}
		s.mockReviewQueries.EXPECT().ListByHotel(gomock.Any(), hotelID, int32(10), int32(20)).
			Return(items, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=10&offset=20", nil, "")

		var body []resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("Alice", body[0].UserName)
	})

	s.Run("error: 400 for a malformed hotel id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/hotel-reviews/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid hotel ID format")
	})
}

// ================================================================================
// TestCitiesAndAmenities
// ================================================================================

func (s *HotelHandlerTestSuite) TestListCities() {
	s.Run("success", func() {
		cities := []*queries.CityView{{ID: uuid.New(), Name: "Paris", Slug: "paris", Country: "France"}}
		s.mockHotelQueries.EXPECT().ListCities(gomock.Any()).Return(cities, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/cities", nil, "")

		var body []resdto.CityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("paris", body[0].Slug)
	})
}

func (s *HotelHandlerTestSuite) TestListAmenities() {
	s.Run("success", func() {
		amenities := []*queries.AmenityView{{ID: uuid.New(), Name: "Pool", Icon: "pool"}}
		s.mockHotelQueries.EXPECT().ListAmenities(gomock.Any()).Return(amenities, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/amenities", nil, "")

		var body []resdto.AmenityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("Pool", body[0].Name)
	})
}
