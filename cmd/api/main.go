package main

import (
	"context"
	"log"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"ewastehub/internal/adapter/api"
	"ewastehub/internal/adapter/api/handler"
	apimiddleware "ewastehub/internal/adapter/api/middleware"
	"ewastehub/internal/adapter/api/router"
	"ewastehub/internal/adapter/repository"
	"ewastehub/internal/infrastructure/cache"
	"ewastehub/internal/infrastructure/firebase"
	"ewastehub/internal/infrastructure/ratelimit"
	"ewastehub/internal/infrastructure/storage"
	"ewastehub/internal/usecase"
	"ewastehub/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption

	// Service account JSON in the environment wins (production); a file path
	// is the local-development fallback.
	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	serviceAccountPath := ""
	if serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		serviceAccountPath = os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			serviceAccountPath = "./serviceAccountKey.json"
		}

		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}

		log.Printf("Using Firebase service account from file: %s", serviceAccountPath)
		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(
		ctx,
		cfg.StorageBucket,
		cfg.FirebaseProject,
		serviceAccountPath,
	)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	ewasteRepo := repository.NewFirestoreEWasteRepository(firestoreClient)
	bulkRepo := repository.NewFirestoreBulkEWasteRepository(firestoreClient)
	fileMetadataRepo := repository.NewFirestoreFileMetadataRepository(firestoreClient)

	firebaseAuthClient := firebase.NewAuthClient(authClient, cfg.FirebaseApiKey)

	// Redis is optional: with no address configured the listing use cases run
	// straight against Firestore.
	var listingCache usecase.ListingCache
	if cfg.RedisAddr != "" {
		redisCache, err := cache.NewListingCache(cfg.RedisAddr)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisCache.Close()
		listingCache = redisCache
	}

	authUseCase := usecase.NewAuthUseCase(userRepo, firebaseAuthClient)
	userUseCase := usecase.NewUserUseCase(userRepo)
	ewasteUseCase := usecase.NewEWasteUseCase(ewasteRepo, userRepo, listingCache)
	bulkUseCase := usecase.NewBulkEWasteUseCase(bulkRepo, userRepo, listingCache)

	handler.Setup(authUseCase, userUseCase, ewasteUseCase, bulkUseCase, storageClient, fileMetadataRepo)
	handler.SetupHealthHandler(firebaseAuthClient)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	roleMiddleware := apimiddleware.NewRoleMiddleware(userRepo)

	loginLimiter := ratelimit.NewRateLimiter(cfg.LoginBurst, time.Minute)
	loginLimiter.StartCleanupRoutine()

	router.Setup(e, authMiddleware, roleMiddleware, loginLimiter)

	log.Printf("Starting server on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
