package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/treasuretrails/park-api/docs"
	v1 "github.com/treasuretrails/park-api/internal/api/handler/v1"
	"github.com/treasuretrails/park-api/internal/api/middleware"
	"github.com/treasuretrails/park-api/internal/clock"
	"github.com/treasuretrails/park-api/internal/config"
	"github.com/treasuretrails/park-api/internal/repository"
	"github.com/treasuretrails/park-api/internal/repository/dao"
	"github.com/treasuretrails/park-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	userHandler := s.initUserHandler(db)
	venueHandler := s.initVenueHandler()
	catalogHandler := s.initCatalogHandler(db)
	ledgerHandler := s.initLedgerHandler(db)
	redemptionHandler := s.initRedemptionHandler(db)
	s.MountHandlers(authHandler, userHandler, venueHandler, catalogHandler, ledgerHandler, redemptionHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewUserService(repo)
	handler := v1.NewUserHandler(svc)

	return handler
}

func (s *Server) initVenueHandler() *v1.VenueHandler {
	return v1.NewVenueHandler(s.Config.Venue)
}

func (s *Server) initCatalogHandler(db *gorm.DB) *v1.CatalogHandler {
	catalogRepo := repository.NewCatalogRepository(dao.NewCatalogDAO(db))
	gate := service.NewAdminGate(s.Config.Venue.OwnerEmail)
	svc := service.NewCatalogService(catalogRepo, gate)
	uSvc := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))
	handler := v1.NewCatalogHandler(svc, uSvc)

	return handler
}

func (s *Server) initLedgerHandler(db *gorm.DB) *v1.LedgerHandler {
	catalogRepo := repository.NewCatalogRepository(dao.NewCatalogDAO(db))
	holderRepo := repository.NewHolderRepository(dao.NewHolderDAO(db))
	svc := service.NewLedgerService(catalogRepo, holderRepo, clock.NewSystem())
	uSvc := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))
	handler := v1.NewLedgerHandler(svc, uSvc)

	return handler
}

func (s *Server) initRedemptionHandler(db *gorm.DB) *v1.RedemptionHandler {
	catalogRepo := repository.NewCatalogRepository(dao.NewCatalogDAO(db))
	holderRepo := repository.NewHolderRepository(dao.NewHolderDAO(db))
	svc := service.NewRedemptionService(catalogRepo, holderRepo, clock.NewSystem())
	uSvc := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))
	handler := v1.NewRedemptionHandler(svc, uSvc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
	venueHandler *v1.VenueHandler,
	catalogHandler *v1.CatalogHandler,
	ledgerHandler *v1.LedgerHandler,
	redemptionHandler *v1.RedemptionHandler,
) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", authHandler.HandleSignup)
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	park := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		park.GET("/users/:userID", userHandler.HandleGetUser)
		park.GET("/venue", venueHandler.HandleGetVenue)

		// Catalog administration, venue owner only.
		park.POST("/catalog/tickets", catalogHandler.HandleCreateTicket)
		park.POST("/catalog/activities", catalogHandler.HandleCreateActivity)
		park.PUT("/catalog/activities/:activityID/active", catalogHandler.HandleToggleActivity)
		park.POST("/catalog/restaurants", catalogHandler.HandleCreateRestaurant)
		park.POST("/catalog/stores", catalogHandler.HandleCreateStore)
		park.PUT("/catalog/restaurants/:restaurantID/menu", catalogHandler.HandleSetRestaurantMenu)
		park.PUT("/catalog/stores/:storeID/products", catalogHandler.HandleSetStoreProducts)

		// Catalog queries.
		park.GET("/catalog/tickets", catalogHandler.HandleGetTickets)
		park.GET("/catalog/tickets/:ticketID", catalogHandler.HandleGetTicket)
		park.GET("/catalog/activities", catalogHandler.HandleGetActivities)
		park.GET("/catalog/activities/active", catalogHandler.HandleGetActiveActivities)
		park.GET("/catalog/activities/:activityID", catalogHandler.HandleGetActivity)
		park.GET("/catalog/restaurants", catalogHandler.HandleGetRestaurants)
		park.GET("/catalog/restaurants/:restaurantID/menu", catalogHandler.HandleGetRestaurantMenu)
		park.GET("/catalog/restaurants/:restaurantID/menu/ids", catalogHandler.HandleGetRestaurantMenuIDs)
		park.GET("/catalog/stores", catalogHandler.HandleGetStores)
		park.GET("/catalog/stores/:storeID/products", catalogHandler.HandleGetStoreProducts)
		park.GET("/catalog/stores/:storeID/products/ids", catalogHandler.HandleGetStoreProductIDs)

		// Ticket purchase and holder reads.
		park.POST("/catalog/tickets/:ticketID/purchase", ledgerHandler.HandlePurchaseTicket)
		park.GET("/me/tickets", ledgerHandler.HandleGetMyTickets)
		park.GET("/me/credits", ledgerHandler.HandleGetMyCredits)
		park.GET("/me/ledger", ledgerHandler.HandleGetMyLedger)

		// Redemptions.
		park.POST("/challenges/:activityID/complete", redemptionHandler.HandleCompleteChallenge)
		park.POST("/attractions/:activityID/entrance", redemptionHandler.HandleEnterAttraction)
		park.POST("/attractions/:activityID/exit", redemptionHandler.HandleExitAttraction)
		park.POST("/restaurants/:restaurantID/meals/purchase", redemptionHandler.HandleBuyMeals)
		park.POST("/stores/:storeID/products/purchase", redemptionHandler.HandleBuyProducts)
		park.GET("/me/attractions/:activityID/entrances", redemptionHandler.HandleGetEntranceCount)
		park.GET("/me/attractions/:activityID/exits", redemptionHandler.HandleGetExitCount)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "TreasureTrails Park API"
	docs.SwaggerInfo.Description = "Credit ledger and catalog API for the TreasureTrails park."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
