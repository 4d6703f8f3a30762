package handler

import (
	"github.com/labstack/echo/v4"

	"unitrade/internal/usecase"
	"unitrade/pkg/errors"
	"unitrade/pkg/response"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

type createReviewRequest struct {
	ListingID string `json:"listingId" validate:"required"`
	Rating    int    `json:"rating" validate:"required,gte=1,lte=5"`
	Content   string `json:"content" validate:"max=1000"`
}

func (h *ReviewHandler) ListReviews(c echo.Context) error {
	sellerID := c.QueryParam("sellerId")
	if sellerID == "" {
		return response.Error(c, errors.BadRequest("sellerId is required", nil))
	}

	reviews, err := h.reviewUseCase.ListBySeller(c.Request().Context(), sellerID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, reviews)
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)
	review, err := h.reviewUseCase.Create(c.Request().Context(), uid, usecase.CreateReviewInput{
		ListingID: req.ListingID,
		Rating:    req.Rating,
		Content:   req.Content,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, review)
}
