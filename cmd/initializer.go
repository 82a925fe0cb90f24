package main

import (
	"database/sql"
	"log"

	"firebase.google.com/go/messaging"

	"myHomeBack/internal/cache"
	"myHomeBack/internal/config"
	"myHomeBack/internal/handlers"
	"myHomeBack/internal/repositories"
	"myHomeBack/internal/services"
	"myHomeBack/utils"
)

type application struct {
	errorLog             *log.Logger
	infoLog              *log.Logger
	db                   *sql.DB
	signingKey           string
	advertisementHandler *handlers.AdvertisementHandler
	imageHandler         *handlers.ImageHandler
	userHandler          *handlers.UserHandler
	messageHandler       *handlers.MessageHandler
	userRepo             *repositories.UserRepository
	tokenManager         *utils.Manager
	messageService       *services.MessageService
	statusService        *services.StatusService
	wsManager            *WebSocketManager
}

func initializeApp(db *sql.DB, cfg config.Config, fcmClient *messaging.Client, errorLog, infoLog *log.Logger) *application {
	// Repositories
	advertisementRepo := repositories.AdvertisementRepository{DB: db}
	userRepo := repositories.UserRepository{DB: db}
	messageRepo := repositories.MessageRepository{DB: db}

	// Cache is best effort; the app runs without Redis.
	var listingCache *cache.AdvertisementCache
	if cfg.Redis.Addr != "" {
		c, err := cache.NewAdvertisementCache(cfg.Redis.Addr, cfg.CacheTTL(cache.DefaultTTL))
		if err != nil {
			errorLog.Printf("redis unavailable, listing cache disabled: %v", err)
		} else {
			listingCache = c
		}
	}

	var storage *utils.Storage
	if cfg.Storage.Bucket != "" {
		s, err := utils.NewStorage(cfg.Storage.Bucket, cfg.Storage.Region, cfg.Storage.Endpoint, cfg.Storage.AccessKey, cfg.Storage.SecretKey)
		if err != nil {
			errorLog.Printf("S3 storage unavailable, image mirror disabled: %v", err)
		} else {
			storage = s
		}
	}

	tokenManager, err := utils.NewManager(cfg.Auth.SigningKey)
	if err != nil {
		errorLog.Fatal(err)
	}

	// Services
	advertisementService := &services.AdvertisementService{AdvertisementRepo: &advertisementRepo, Cache: listingCache}
	userService := &services.UserService{UserRepo: &userRepo, TokenManager: tokenManager}
	messageService := &services.MessageService{MessageRepo: &messageRepo}
	notificationService := &services.NotificationService{Client: fcmClient, UserRepo: &userRepo, ErrorLog: errorLog}
	statusService := &services.StatusService{Repo: &advertisementRepo, Cache: listingCache}

	// Handlers
	advertisementHandler := &handlers.AdvertisementHandler{Service: advertisementService}
	imageHandler := &handlers.ImageHandler{Service: advertisementService, Storage: storage}
	userHandler := &handlers.UserHandler{Service: userService}
	messageHandler := &handlers.MessageHandler{Service: messageService, UserService: userService, Notification: notificationService}

	return &application{
		errorLog:             errorLog,
		infoLog:              infoLog,
		db:                   db,
		signingKey:           cfg.Auth.SigningKey,
		advertisementHandler: advertisementHandler,
		imageHandler:         imageHandler,
		userHandler:          userHandler,
		messageHandler:       messageHandler,
		userRepo:             &userRepo,
		tokenManager:         tokenManager,
		messageService:       messageService,
		statusService:        statusService,
	}
}
