package handler

import (
	"github.com/labstack/echo/v4"

	"unitrade/internal/usecase"
	"unitrade/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

type updateProfileRequest struct {
	Bio    *string `json:"bio" validate:"omitempty,max=500"`
	Avatar *string `json:"avatar" validate:"omitempty,url"`
}

type toggleWishlistRequest struct {
	ListingID string `json:"listingId" validate:"required"`
}

type toggleFollowRequest struct {
	TargetID string `json:"targetId" validate:"required"`
}

type withdrawRequest struct {
	Amount     float64 `json:"amount" validate:"required,gt=0"`
	CardNumber string  `json:"cardNumber" validate:"required,min=8"`
}

func (h *UserHandler) GetAccount(c echo.Context) error {
	account, err := h.userUseCase.GetAccount(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, account)
}

func (h *UserHandler) GetProfileData(c echo.Context) error {
	profile, err := h.userUseCase.GetProfileData(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, profile)
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)
	account, err := h.userUseCase.UpdateProfile(c.Request().Context(), uid, usecase.UpdateProfileInput{
		Bio:    req.Bio,
		Avatar: req.Avatar,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, account)
}

func (h *UserHandler) ToggleWishlist(c echo.Context) error {
	var req toggleWishlistRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)
	account, err := h.userUseCase.ToggleWishlist(c.Request().Context(), uid, req.ListingID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, account)
}

func (h *UserHandler) ToggleFollow(c echo.Context) error {
	var req toggleFollowRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)
	account, err := h.userUseCase.ToggleFollow(c.Request().Context(), uid, req.TargetID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, account)
}

func (h *UserHandler) Withdraw(c echo.Context) error {
	var req withdrawRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)
	result, err := h.userUseCase.Withdraw(c.Request().Context(), uid, req.Amount, req.CardNumber)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, result)
}
