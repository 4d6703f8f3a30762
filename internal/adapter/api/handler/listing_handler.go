package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"unitrade/internal/catalog"
	"unitrade/internal/usecase"
	"unitrade/pkg/response"
)

type ListingHandler struct {
	listingUseCase *usecase.ListingUseCase
}

func NewListingHandler(listingUseCase *usecase.ListingUseCase) *ListingHandler {
	return &ListingHandler{
		listingUseCase: listingUseCase,
	}
}

type createListingRequest struct {
	Title       string   `json:"title" validate:"required,max=120"`
	Price       float64  `json:"price" validate:"gte=0"`
	Description string   `json:"description" validate:"max=2000"`
	Category    string   `json:"category" validate:"required,oneof=Books Electronics Furniture Clothing Sports Others"`
	Image       string   `json:"image" validate:"omitempty,url"`
	Tags        []string `json:"tags"`
}

type purchaseRequest struct {
	Address string `json:"address"`
}

func (h *ListingHandler) CreateListing(c echo.Context) error {
	var req createListingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	sellerID := c.Get("uid").(string)
	listing, err := h.listingUseCase.Create(c.Request().Context(), sellerID, usecase.CreateListingInput{
		Title:       req.Title,
		Price:       req.Price,
		Description: req.Description,
		Category:    req.Category,
		Image:       req.Image,
		Tags:        req.Tags,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, listing)
}

func (h *ListingHandler) ListListings(c echo.Context) error {
	hideCompleted, _ := strconv.ParseBool(c.QueryParam("hideSold"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	views, err := h.listingUseCase.List(c.Request().Context(), catalog.Params{
		Search:        c.QueryParam("search"),
		Sort:          catalog.SortKey(c.QueryParam("sort")),
		HideCompleted: hideCompleted,
		Category:      c.QueryParam("category"),
		ExcludeID:     c.QueryParam("excludeId"),
		Limit:         limit,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, views)
}

func (h *ListingHandler) GetListing(c echo.Context) error {
	listing, err := h.listingUseCase.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, listing)
}

func (h *ListingHandler) GetRelated(c echo.Context) error {
	listings, err := h.listingUseCase.Related(c.Request().Context(), c.QueryParam("category"), c.QueryParam("excludeId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, listings)
}

func (h *ListingHandler) IncrementView(c echo.Context) error {
	if err := h.listingUseCase.IncrementView(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, nil)
}

func (h *ListingHandler) Purchase(c echo.Context) error {
	var req purchaseRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	buyerID := c.Get("uid").(string)
	listing, err := h.listingUseCase.Purchase(c.Request().Context(), c.Param("id"), buyerID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, listing)
}

func (h *ListingHandler) ConfirmReceipt(c echo.Context) error {
	buyerID := c.Get("uid").(string)
	listing, err := h.listingUseCase.ConfirmReceipt(c.Request().Context(), c.Param("id"), buyerID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, listing)
}
