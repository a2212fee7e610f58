package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/voxdigify/crm-api/internal/api/handler"
	"github.com/voxdigify/crm-api/internal/api/middleware"
	"github.com/voxdigify/crm-api/internal/core/domain"
	"github.com/voxdigify/crm-api/internal/core/ports"
	"github.com/voxdigify/crm-api/internal/core/service"
	"github.com/voxdigify/crm-api/internal/infrastructure/config"
	mongodb "github.com/voxdigify/crm-api/internal/infrastructure/db/mongo"
	redisdb "github.com/voxdigify/crm-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// All dependencies are wired here from the connection registry and config
// constructed at startup.
func NewRouter(reg *mongodb.Registry, rdb *goredis.Client, graph ports.GraphAPI, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("crm"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(reg.Users)
	leadRepo := mongodb.NewRecordRepository[domain.Lead](reg.Leads, "leads", "_id")
	contactRepo := mongodb.NewRecordRepository[domain.Contact](reg.Contacts, "contacts", "_id")
	accountRepo := mongodb.NewRecordRepository[domain.Account](reg.Accounts, "clients", "_id")
	// callStartTime is a datetime-local string, so lexicographic order is
	// chronological order.
	callRepo := mongodb.NewRecordRepository[domain.Call](reg.Calls, "calls", "callStartTime")
	meetingRepo := mongodb.NewRecordRepository[domain.Meeting](reg.Meetings, "meetings", "from")

	// --- Services ---
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, time.Hour)
	userService := service.NewUserService(userRepo, log)

	leadService := service.NewRecordService(leadRepo, "lead",
		func(l domain.Lead) string { return l.Source }, log)
	contactService := service.NewRecordService(contactRepo, "contact",
		func(ct domain.Contact) string { return ct.Owner }, log)
	accountService := service.NewRecordService(accountRepo, "client",
		func(a domain.Account) string { return a.AccountOwner }, log)
	callService := service.NewRecordService(callRepo, "call",
		func(cl domain.Call) string { return cl.CallOwner }, log)
	meetingService := service.NewRecordService(meetingRepo, "meeting",
		func(m domain.Meeting) string { return m.Host }, log)

	limiter := redisdb.NewRateLimiter(rdb, cfg.Facebook.RateLimitPerMin)
	socialService := service.NewSocialService(graph, limiter, cfg.Facebook.Pages(), service.InstagramAccount{
		AccountID:   cfg.Instagram.BusinessAccountID,
		AccessToken: cfg.Instagram.AccessToken,
	}, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	socialHandler := handler.NewSocialHandler(socialService)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(reg, rdb)

	authGate := middleware.Auth(cfg.JWTSecret)
	adminGate := middleware.RBAC(domain.RoleAdmin)

	// --- Public routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Profile routes (any authenticated role) ---
	profile := e.Group("/auth/profile", authGate)
	profile.GET("", userHandler.Profile)
	profile.PUT("", userHandler.UpdateProfile)
	profile.DELETE("", userHandler.DeleteProfile)

	// --- Admin routes ---
	admin := e.Group("/auth", authGate, adminGate)
	admin.GET("/users", userHandler.ListUsers)
	admin.PUT("/user/:id/role", userHandler.ChangeRole)
	admin.DELETE("/user/:id", userHandler.DeleteUser)

	// --- Entity routes ---
	api := e.Group("/api", authGate)
	registerRecords(api, "/leads", handler.NewLeadHandler(leadService))
	registerRecords(api, "/contacts", handler.NewContactHandler(contactService))
	registerRecords(api, "/clients", handler.NewAccountHandler(accountService))
	registerRecords(api, "/calls", handler.NewCallHandler(callService))
	registerRecords(api, "/meetings", handler.NewMeetingHandler(meetingService))

	// --- Social routes ---
	pages := api.Group("/pages/:page")
	pages.GET("/posts", socialHandler.Posts)
	pages.GET("/posts/:postID/comments", socialHandler.Comments)
	pages.GET("/posts/:postID/likes", socialHandler.Likes)
	pages.GET("/followers", socialHandler.Followers)
	pages.GET("/analytics", socialHandler.Analytics)

	api.GET("/instagram/insights", socialHandler.InstagramInsights)

	return e
}

// registerRecords mounts the shared CRUD + summary routes for one entity.
func registerRecords[R any, T domain.Record[T]](g *echo.Group, prefix string, h *handler.RecordHandler[R, T]) {
	grp := g.Group(prefix)
	grp.GET("", h.List)
	grp.POST("", h.Create)
	grp.DELETE("/:id", h.Delete)
	grp.GET("/summary", h.Summary)
}
