package app

import (
	"github.com/casefolio/casefolio/internal/config"
	"github.com/casefolio/casefolio/internal/direct"
	"github.com/casefolio/casefolio/internal/repository"
	"github.com/casefolio/casefolio/internal/service"
	"github.com/casefolio/casefolio/internal/storage"
)

type App struct {
	Cfg            *config.Config
	AuthService    *service.AuthService
	AccountService *service.AccountService
	CaseService    *service.CaseService
	ContentService *service.ContentService
	MediaService   *service.MediaService
}

func New(cfg *config.Config) *App {
	// Repositories
	caseRepository := repository.NewCaseRepository(cfg.CasesFile())
	userRepository := repository.NewUserRepository(cfg.UsersFile())
	contentRepository := repository.NewContentRepository(cfg.ContentFile())

	// Storage and external API
	mediaStorage := storage.NewLocalStorage(cfg.PublicDir, cfg.StaticURL)
	verifier := direct.NewClient(cfg.DirectAPIURL)

	// Services
	mediaService := service.NewMediaService(mediaStorage)
	caseService := service.NewCaseService(caseRepository, mediaService)
	accountService := service.NewAccountService(userRepository, verifier)
	contentService := service.NewContentService(contentRepository)
	authService := service.NewAuthService(cfg.JWTSecret, cfg.AdminPassword, cfg.JWTExpiry, cfg.IsProduction())

	return &App{
		Cfg:            cfg,
		AuthService:    authService,
		AccountService: accountService,
		CaseService:    caseService,
		ContentService: contentService,
		MediaService:   mediaService,
	}
}
