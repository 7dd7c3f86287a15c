package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/devfolio/adapters/event"
	httpAdapter "github.com/khoahotran/devfolio/adapters/http"
	"github.com/khoahotran/devfolio/adapters/media_storage"
	"github.com/khoahotran/devfolio/adapters/persistence"
	authUC "github.com/khoahotran/devfolio/internal/application/usecase/auth"
	categoryUC "github.com/khoahotran/devfolio/internal/application/usecase/category"
	portfolioUC "github.com/khoahotran/devfolio/internal/application/usecase/portfolio"
	profileUC "github.com/khoahotran/devfolio/internal/application/usecase/profile"
	projectUC "github.com/khoahotran/devfolio/internal/application/usecase/project"
	"github.com/khoahotran/devfolio/internal/config"
	"github.com/khoahotran/devfolio/pkg/auth"
	"github.com/khoahotran/devfolio/pkg/logger"
	"github.com/khoahotran/devfolio/pkg/tracing"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Start DevFolio API Server...")

	if cfg.Jaeger.OTLPEndpoint != "" {
		tp, err := tracing.NewTracerProvider(cfg, appLogger, "devfolio-api")
		if err != nil {
			appLogger.Fatal("cannot init tracer", err)
		}
		defer tp.Shutdown(context.Background())
	}

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		appLogger.Fatal("cannot init Kafka", err)
	}
	defer kafkaClient.Close()

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool, appLogger)
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	categoryRepo := persistence.NewPostgresCategoryRepo(dbPool, appLogger)
	projectRepo := persistence.NewPostgresProjectRepo(dbPool, appLogger)
	viewCache := persistence.NewRedisViewCache(redisClient, cfg.Redis.ViewTTL)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize uploader", err)
	}

	// Use Cases
	signUpUseCase := authUC.NewSignUpUseCase(userRepo, profileRepo, jwtSvc, appLogger)
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger)
	profileUseCase := profileUC.NewProfileUseCase(profileRepo, kafkaClient, appLogger)
	savePictureUseCase := profileUC.NewSavePictureUseCase(profileRepo, uploader, appLogger)
	createCategoryUseCase := categoryUC.NewCreateCategoryUseCase(categoryRepo, profileRepo, kafkaClient, appLogger)
	updateCategoryUseCase := categoryUC.NewUpdateCategoryUseCase(categoryRepo, profileRepo, kafkaClient, appLogger)
	deleteCategoryUseCase := categoryUC.NewDeleteCategoryUseCase(categoryRepo, profileRepo, kafkaClient, appLogger)
	listCategoriesUseCase := categoryUC.NewListCategoriesUseCase(categoryRepo)
	createProjectUseCase := projectUC.NewCreateProjectUseCase(projectRepo, profileRepo, kafkaClient, appLogger)
	updateProjectUseCase := projectUC.NewUpdateProjectUseCase(projectRepo, profileRepo, kafkaClient, appLogger)
	deleteProjectUseCase := projectUC.NewDeleteProjectUseCase(projectRepo, profileRepo, kafkaClient, appLogger)
	listProjectsUseCase := projectUC.NewListProjectsUseCase(projectRepo)
	viewPortfolioUseCase := portfolioUC.NewViewPortfolioUseCase(
		profileRepo, categoryRepo, projectRepo, viewCache, portfolioUC.DefaultRetryPolicy, appLogger)
	contactOwnerUseCase := portfolioUC.NewContactOwnerUseCase(profileRepo, userRepo, kafkaClient)

	// HTTP Handlers
	authHandler := httpAdapter.NewAuthHandler(signUpUseCase, loginUseCase)
	profileHandler := httpAdapter.NewProfileHandler(profileUseCase, savePictureUseCase)
	categoryHandler := httpAdapter.NewCategoryHandler(
		createCategoryUseCase, updateCategoryUseCase, deleteCategoryUseCase, listCategoriesUseCase)
	projectHandler := httpAdapter.NewProjectHandler(
		createProjectUseCase, updateProjectUseCase, deleteProjectUseCase, listProjectsUseCase)
	portfolioHandler := httpAdapter.NewPortfolioHandler(viewPortfolioUseCase, contactOwnerUseCase)

	authMiddleware := httpAdapter.AuthMiddleware(jwtSvc)
	errorMiddleware := httpAdapter.ErrorMiddleware(appLogger)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), errorMiddleware)

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/signup", authHandler.SignUp)
			authGroup.POST("/login", authHandler.Login)
		}

		admin := api.Group("/admin")
		admin.Use(authMiddleware)
		{
			admin.GET("/profile", profileHandler.GetProfile)
			admin.PUT("/profile", profileHandler.UpdateProfile)
			admin.PUT("/profile/picture", profileHandler.SavePicture)

			categories := admin.Group("/categories")
			{
				categories.POST("", categoryHandler.CreateCategory)
				categories.GET("", categoryHandler.ListCategories)
				categories.PUT("/:id", categoryHandler.UpdateCategory)
				categories.DELETE("/:id", categoryHandler.DeleteCategory)
			}

			projects := admin.Group("/projects")
			{
				projects.POST("", projectHandler.CreateProject)
				projects.GET("", projectHandler.ListProjects)
				projects.PUT("/:id", projectHandler.UpdateProject)
				projects.DELETE("/:id", projectHandler.DeleteProject)
			}
		}

		public := api.Group("/portfolio")
		{
			public.GET("/:username", portfolioHandler.ViewPortfolio)
			public.POST("/:username/contact", portfolioHandler.ContactOwner)
		}
	}

	appLogger.Info("Server running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("Cannot run server", err)
	}
}
