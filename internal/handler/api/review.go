package api

import (
	"errors"
	"net/http"

	"hotel-booking-api/internal/domain/review"
	reqdto "hotel-booking-api/internal/handler/dto/request"
	resdto "hotel-booking-api/internal/handler/dto/response"
	"hotel-booking-api/internal/handler/middleware"
	"hotel-booking-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewCommands commands.ReviewCommands
}

func NewReviewHandler(reviewCommands commands.ReviewCommands) *ReviewHandler {
	return &ReviewHandler{
		reviewCommands: reviewCommands,
	}
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	reviewEntity, err := h.reviewCommands.CreateReview(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrBookingAccessDenied):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "You can only review your own bookings",
			})
		case errors.Is(err, review.ErrStayNotEligible):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Only completed stays can be reviewed",
			})
		case errors.Is(err, review.ErrReviewAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{
				"error": "A review for this booking already exists",
			})
		case errors.Is(err, review.ErrInvalidRating):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Rating must be between 1 and 5",
			})
		case errors.Is(err, review.ErrEmptyComment), errors.Is(err, review.ErrCommentTooLong):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Comment must be between 1 and 1000 characters",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReviewEntity(reviewEntity))
}
