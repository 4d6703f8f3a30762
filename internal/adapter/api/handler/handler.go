package handler

import (
	"unitrade/internal/usecase"
)

var (
	authHandler    *AuthHandler
	userHandler    *UserHandler
	listingHandler *ListingHandler
	messageHandler *MessageHandler
	reviewHandler  *ReviewHandler
	adminHandler   *AdminHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	listingUseCase *usecase.ListingUseCase,
	messageUseCase *usecase.MessageUseCase,
	reviewUseCase *usecase.ReviewUseCase,
	adminUseCase *usecase.AdminUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase)
	listingHandler = NewListingHandler(listingUseCase)
	messageHandler = NewMessageHandler(messageUseCase)
	reviewHandler = NewReviewHandler(reviewUseCase)
	adminHandler = NewAdminHandler(adminUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetListingHandler() *ListingHandler {
	return listingHandler
}

func GetMessageHandler() *MessageHandler {
	return messageHandler
}

func GetReviewHandler() *ReviewHandler {
	return reviewHandler
}

func GetAdminHandler() *AdminHandler {
	return adminHandler
}
