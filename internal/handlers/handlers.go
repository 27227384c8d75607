package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"adminpanel/api/internal/audit"
	"adminpanel/api/internal/authgate"
	"adminpanel/api/internal/config"
	"adminpanel/api/internal/middleware"
	"adminpanel/api/internal/models"
	"adminpanel/api/internal/repository"
	"adminpanel/api/internal/service"
	"adminpanel/api/internal/session"
)

// AuthProvider and UserManager are the service slices the handlers
// consume; tests swap in fakes.
type AuthProvider interface {
	Login(ctx context.Context, input service.LoginInput) (models.User, string, error)
}

type UserManager interface {
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, actor models.User, input service.CreateUserInput) (models.User, error)
	Update(ctx context.Context, actor models.User, id int64, input service.UpdateUserInput) (models.User, error)
	Delete(ctx context.Context, actor models.User, id int64) error
}

type HandlerSet struct {
	log     zerolog.Logger
	cfg     *config.AppConfig
	auth    AuthProvider
	userMgr UserManager
	gate    *authgate.Gate
	cookies *session.CookieTransport
	db      *pgxpool.Pool
	cache   *redis.Client
}

func NewHandlerSet(log zerolog.Logger, db *pgxpool.Pool, cache *redis.Client, cfg *config.AppConfig) HandlerSet {
	userRepo := repository.NewUserRepository(db)
	recorder := audit.NewRecorder(cache, cfg.Audit, log)

	return HandlerSet{
		log:     log,
		cfg:     cfg,
		auth:    service.NewAuthService(userRepo, cfg, log),
		userMgr: service.NewUserService(userRepo, recorder, log),
		gate:    authgate.New(userRepo, cfg.Security.SessionSecret, log),
		cookies: session.NewCookieTransport(cfg.Environment, cfg.Security.SessionTTL),
		db:      db,
		cache:   cache,
	}
}

func (h HandlerSet) Register(engine *gin.Engine) {
	engine.GET("/login", h.LoginPage)
	engine.GET("/", middleware.RequireUserPage(h.gate, h.cookies), h.Home)

	dashboard := engine.Group("/dashboard")
	dashboard.Use(middleware.RequireAdminPage(h.gate, h.cookies))
	dashboard.GET("/users", h.UsersPage)

	api := engine.Group("/api")
	api.GET("/healthz", h.Health)
	api.GET("/user/current", h.Current)

	auth := api.Group("/auth")
	auth.POST("/login", h.Login)
	auth.POST("/logout", h.Logout)

	users := api.Group("/users")
	users.Use(middleware.RequireAdminAPI(h.gate, h.cookies))
	users.GET("", h.ListUsers)
	users.POST("", h.CreateUser)
	users.PATCH("/:id", h.UpdateUser)
	users.DELETE("/:id", h.DeleteUser)
}
