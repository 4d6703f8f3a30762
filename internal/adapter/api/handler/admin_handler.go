package handler

import (
	"github.com/labstack/echo/v4"

	"unitrade/internal/domain/entity"
	"unitrade/internal/domain/repository"
	"unitrade/internal/usecase"
	"unitrade/pkg/response"
	"unitrade/pkg/utils"
)

type AdminHandler struct {
	adminUseCase *usecase.AdminUseCase
}

func NewAdminHandler(adminUseCase *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
	}
}

type setBannedRequest struct {
	Banned bool `json:"isBanned"`
}

type setListingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active sold received banned"`
	Reason string `json:"reason"`
}

func (h *AdminHandler) ListAccounts(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	filter := repository.AccountFilter{
		Search: c.QueryParam("search"),
		Role:   entity.Role(c.QueryParam("role")),
	}
	if status := c.QueryParam("status"); status != "" {
		banned := status == "banned"
		filter.Banned = &banned
	}

	accounts, total, err := h.adminUseCase.ListAccounts(c.Request().Context(), filter, pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, accounts, total, pagination.Page, pagination.PageSize)
}

func (h *AdminHandler) ListListings(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	filter := usecase.AdminListingFilter{
		Search:   c.QueryParam("search"),
		Status:   entity.ListingStatus(c.QueryParam("status")),
		Category: c.QueryParam("category"),
	}

	listings, total, err := h.adminUseCase.ListListings(c.Request().Context(), filter, pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, listings, total, pagination.Page, pagination.PageSize)
}

func (h *AdminHandler) SetAccountBanned(c echo.Context) error {
	var req setBannedRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	account, err := h.adminUseCase.SetAccountBanned(c.Request().Context(), c.Param("id"), req.Banned)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, account)
}

func (h *AdminHandler) SetListingStatus(c echo.Context) error {
	var req setListingStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	listing, err := h.adminUseCase.SetListingStatus(c.Request().Context(), c.Param("id"), entity.ListingStatus(req.Status), req.Reason)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, listing)
}
