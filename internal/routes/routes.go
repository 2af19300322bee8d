package routes

import (
	"net/http"

	"github.com/casefolio/casefolio/internal/app"
	"github.com/casefolio/casefolio/internal/handler"
	"github.com/casefolio/casefolio/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	cases := handler.NewCaseHandler(app.CaseService)
	auth := handler.NewAuthHandler(app.AuthService, app.AccountService)
	account := handler.NewAccountHandler(app.AccountService)
	content := handler.NewContentHandler(app.ContentService)

	mux := http.NewServeMux()

	// Static files (uploaded media lives under the public dir)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(app.Cfg.PublicDir))))

	// Public
	mux.HandleFunc("GET /cases", cases.ListCases)
	mux.HandleFunc("GET /cases/{slug}", cases.ShowCase)
	mux.HandleFunc("GET /about", content.ShowAbout)

	// Auth (rate limited)
	rateLimiter := middleware.RateLimitAuth()
	mux.HandleFunc("POST /auth/signup", rateLimiter(auth.Signup))
	mux.HandleFunc("POST /auth/login", rateLimiter(auth.Login))
	mux.HandleFunc("POST /auth/logout", auth.Logout)
	mux.HandleFunc("POST /admin/login", rateLimiter(auth.AdminLogin))

	// Linked external accounts (authenticated users)
	mux.HandleFunc("GET /app/accounts", middleware.RequireAuth(account.ListLinkedAccounts))
	mux.HandleFunc("POST /app/accounts", middleware.RequireAuth(account.LinkAccount))
	mux.HandleFunc("DELETE /app/accounts/{login}", middleware.RequireAuth(account.UnlinkAccount))

	// Admin
	mux.HandleFunc("POST /admin/cases", middleware.RequireAdmin(cases.CreateCase))
	mux.HandleFunc("POST /admin/cases/{slug}", middleware.RequireAdmin(cases.UpdateCase))
	mux.HandleFunc("POST /admin/uploads", middleware.RequireAdmin(cases.UploadEditorImage))
	mux.HandleFunc("PUT /admin/about", middleware.RequireAdmin(content.UpdateAbout))

	return middleware.Chain(mux,
		middleware.RequestLogging,
		middleware.AuthMiddleware(app.AuthService),
	)
}
