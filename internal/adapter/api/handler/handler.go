package handler

import (
	"ewastehub/internal/domain/repository"
	"ewastehub/internal/domain/service"
	"ewastehub/internal/usecase"

	"github.com/labstack/echo/v4"
)

var (
	authHandler   *AuthHandler
	userHandler   *UserHandler
	ewasteHandler *EWasteHandler
	bulkHandler   *BulkEWasteHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	ewasteUseCase *usecase.EWasteUseCase,
	bulkUseCase *usecase.BulkEWasteUseCase,
	fileService service.FileUploadService,
	fileMetadataRepo repository.FileMetadataRepository,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase)
	ewasteHandler = NewEWasteHandler(ewasteUseCase, fileService, fileMetadataRepo)
	bulkHandler = NewBulkEWasteHandler(bulkUseCase, fileService, fileMetadataRepo)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetEWasteHandler() *EWasteHandler {
	return ewasteHandler
}

func GetBulkEWasteHandler() *BulkEWasteHandler {
	return bulkHandler
}

// actorFromContext assembles the authenticated actor from values the auth and
// role middleware stored on the request.
func actorFromContext(c echo.Context) usecase.Actor {
	actor := usecase.Actor{}
	if uid, ok := c.Get("uid").(string); ok {
		actor.ID = uid
	}
	if role, ok := c.Get("role").(string); ok {
		actor.Role = role
	}
	return actor
}
