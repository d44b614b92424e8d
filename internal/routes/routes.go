package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/frizeriacentrala/site-api/internal/audit"
	"github.com/frizeriacentrala/site-api/internal/cache"
	"github.com/frizeriacentrala/site-api/internal/config"
	"github.com/frizeriacentrala/site-api/internal/content"
	"github.com/frizeriacentrala/site-api/internal/handlers"
	infraRepo "github.com/frizeriacentrala/site-api/internal/infra/repository"
	"github.com/frizeriacentrala/site-api/internal/mailer"
	"github.com/frizeriacentrala/site-api/internal/middleware"
	"github.com/frizeriacentrala/site-api/internal/storage"
	ucContent "github.com/frizeriacentrala/site-api/internal/usecase/content"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) error {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	client := content.NewClient(db, cfg.Dataset, cfg.APIVersion, cfg.AssetBaseURL)
	repo := infraRepo.NewContentGormRepository(client)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	getPageDataUC := ucContent.NewGetPageData(repo)
	listGalleryUC := ucContent.NewListGallery(repo)

	// ======================================================
	// HANDLERS (PUBLIC READS)
	// ======================================================
	metaHandler := handlers.NewMetaHandler(client)
	siteHandler := handlers.NewSiteHandler(repo)
	pageHandler := handlers.NewPageHandler(repo, getPageDataUC)
	galleryHandler := handlers.NewGalleryHandler(listGalleryUC)
	catalogHandler := handlers.NewCatalogHandler(repo)

	// ======================================================
	// API (JSON) READ SURFACE
	// ======================================================
	api := r.Group("/api/" + cfg.APIVersion)
	{
		api.GET("/meta", metaHandler.Info)

		api.GET("/site-settings", siteHandler.GetSiteSettings)
		api.GET("/site-logo", siteHandler.GetSiteLogo)
		api.GET("/shop-location", siteHandler.GetShopLocation)

		api.GET("/page-data", pageHandler.GetPageData)
		api.GET("/routes", pageHandler.GetRoutes)

		api.GET("/gallery", galleryHandler.List)
		api.GET("/services", catalogHandler.ListServices)
		api.GET("/faq", catalogHandler.ListFaqs)
		api.GET("/barbers", catalogHandler.ListBarbers)
	}

	// ======================================================
	// SITE CONTEXT: CONTACT FORM
	// ======================================================
	if cfg.Context == config.ContextSite {
		sender, err := mailer.NewSMTPSender(mailer.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.EmailFrom,
			To:       cfg.ContactEmail,
		})
		if err != nil {
			return err
		}

		rdb := cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, 0)
		limiter := cache.NewRateLimiter(rdb, cfg.ContactRateLimit, time.Hour)

		sendContactUC := ucContent.NewSendContact(sender, limiter)
		contactHandler := handlers.NewContactHandler(sendContactUC)

		api.POST("/email/send", contactHandler.Send)
	}

	// ======================================================
	// STUDIO CONTEXT: AUTHORING SURFACE
	// ======================================================
	if cfg.Context == config.ContextStudio {
		store := storage.NewAssetStore(storage.Options{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Dataset:   cfg.Dataset,
		})

		authHandler := handlers.NewAuthHandler(db, cfg)
		studioHandler := handlers.NewStudioHandler(db, auditDispatcher)
		assetHandler := handlers.NewAssetHandler(store, cfg.AssetBaseURL, auditDispatcher)

		studio := r.Group(cfg.StudioBasePath)

		studio.POST("/auth/register", authHandler.Register)
		studio.POST("/auth/login", authHandler.Login)

		secured := studio.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.PUT("/site-settings", studioHandler.UpsertSettings)
			secured.PUT("/site-logo", studioHandler.UpsertLogo)
			secured.PUT("/shop-location", studioHandler.UpsertLocation)

			secured.GET("/section-types", studioHandler.SectionTypes)

			secured.GET("/pages", studioHandler.ListPages)
			secured.PUT("/pages", studioHandler.UpsertPage)
			secured.POST("/pages/:docid/publish", studioHandler.PublishPage)
			secured.DELETE("/pages/:docid", studioHandler.DeletePage)

			secured.PUT("/services", studioHandler.UpsertService)
			secured.DELETE("/services/:docid", studioHandler.DeleteService)

			secured.PUT("/faq", studioHandler.UpsertFaq)
			secured.DELETE("/faq/:docid", studioHandler.DeleteFaq)

			secured.PUT("/barbers", studioHandler.UpsertBarber)
			secured.DELETE("/barbers/:docid", studioHandler.DeleteBarber)

			secured.POST("/gallery", studioHandler.CreateGalleryImage)
			secured.DELETE("/gallery/:docid", studioHandler.DeleteGalleryImage)

			secured.POST("/assets", assetHandler.Upload)
		}
	}

	return nil
}
