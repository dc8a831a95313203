package app

import (
	"fmt"
	"html/template"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	gocache "github.com/patrickmn/go-cache"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"craftfolio/internal/auth"
	"craftfolio/internal/config"
	"craftfolio/internal/handlers"
	"craftfolio/internal/logger"
	"craftfolio/internal/mailer"
	"craftfolio/internal/middleware"
	"craftfolio/internal/models"
	"craftfolio/internal/repositories"
	"craftfolio/internal/routes"
	"craftfolio/internal/storage"
	"craftfolio/internal/validator"
	"craftfolio/web"
)

const (
	seedAdminUsername = "admin"
	seedAdminPassword = "admin123"
)

func Run() {
	if err := godotenv.Load(); err != nil {
		// No .env is the normal case outside local development
		logger.Debug("no .env file loaded")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", "error", err)
	}

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	db, err := gorm.Open(sqlite.Open(cfg.Database.Path), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "path", cfg.Database.Path, "error", err)
	}
	logger.Info("Database connected", "path", cfg.Database.Path)

	if err := Migrate(db); err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}

	if err := EnsureAdmin(db); err != nil {
		logger.Fatal("Failed to seed admin user", "error", err)
	}

	router := SetupRouter(cfg, db)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// Migrate creates or updates the three tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.PortfolioItem{},
		&models.Feedback{},
	)
}

// EnsureAdmin seeds the admin account when the users table is empty.
func EnsureAdmin(db *gorm.DB) error {
	users := repositories.NewUserRepository()

	count, err := users.Count(db)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(seedAdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{Username: seedAdminUsername, PasswordHash: hash}
	if err := users.Create(db, admin); err != nil {
		return err
	}

	logger.Warn("Default admin user created - change the password after first login",
		"username", seedAdminUsername,
	)
	return nil
}

// SetupRouter builds the Gin engine with every middleware, handler and
// route wired up. Tests call this directly against their own database.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), middleware.RequestID(), middleware.Logging(),
		middleware.MaxBodySize(cfg.Upload.MaxSize))
	engine.MaxMultipartMemory = cfg.Upload.MaxSize

	tmpl := template.Must(template.ParseFS(web.Templates, "templates/*.html"))
	engine.SetHTMLTemplate(tmpl)

	images, err := storage.NewLocalImageStore(cfg.Upload.Dir, cfg.Upload.AllowedExts)
	if err != nil {
		logger.Fatal("Failed to initialize image store", "dir", cfg.Upload.Dir, "error", err)
	}
	if !images.Exists(storage.DefaultImage) {
		logger.Warn("Default image missing from upload directory",
			"dir", cfg.Upload.Dir, "file", storage.DefaultImage,
		)
	}

	sessions := auth.NewSessions(cfg.Session.Secret, time.Duration(cfg.Session.TTLHours)*time.Hour)
	valid := validator.New()
	listCache := gocache.New(5*time.Minute, 10*time.Minute)

	userRepo := repositories.NewUserRepository()
	portfolioRepo := repositories.NewPortfolioRepository()
	feedbackRepo := repositories.NewFeedbackRepository()

	engine.Use(middleware.CurrentUser(db, userRepo, sessions))

	site := handlers.NewSiteHandler(db, portfolioRepo, feedbackRepo, valid, listCache, mailer.New(cfg))
	admin := handlers.NewAdminHandler(db, userRepo, portfolioRepo, feedbackRepo, images, sessions, valid, listCache)
	routes.RegisterRoutes(engine, site, admin)

	engine.Static("/static/css", "web/static/css")
	engine.Static("/static/uploads", cfg.Upload.Dir)

	return engine
}
