package api

import (
	"errors"
	"net/http"

	reqdto "hotel-booking-api/internal/handler/dto/request"
	resdto "hotel-booking-api/internal/handler/dto/response"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type HotelHandler struct {
	hotelQueries  queries.HotelQueries
	reviewQueries queries.ReviewQueries
}

func NewHotelHandler(hotelQueries queries.HotelQueries, reviewQueries queries.ReviewQueries) *HotelHandler {
	return &HotelHandler{
		hotelQueries:  hotelQueries,
		reviewQueries: reviewQueries,
	}
}

func (h *HotelHandler) SearchHotels(c *gin.Context) {
	var req reqdto.ListHotelsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	items, err := h.hotelQueries.Search(c.Request.Context(), req.ToFilter())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromHotelList(items))
}

func (h *HotelHandler) FeaturedHotels(c *gin.Context) {
	items, err := h.hotelQueries.Featured(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromHotelList(items))
}

func (h *HotelHandler) GetHotel(c *gin.Context) {
	view, err := h.hotelQueries.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrHotelNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Hotel not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromHotelView(view))
}

func (h *HotelHandler) HotelReviews(c *gin.Context) {
	hotelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid hotel ID format",
		})
		return
	}

	var paging struct {
		Limit  int32 `form:"limit"`
		Offset int32 `form:"offset"`
	}
	if err := c.ShouldBindQuery(&paging); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	items, err := h.reviewQueries.ListByHotel(c.Request.Context(), hotelID, paging.Limit, paging.Offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReviewList(items))
}

func (h *HotelHandler) ListCities(c *gin.Context) {
	items, err := h.hotelQueries.ListCities(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCityList(items))
}

func (h *HotelHandler) ListAmenities(c *gin.Context) {
	items, err := h.hotelQueries.ListAmenities(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromAmenityList(items))
}
