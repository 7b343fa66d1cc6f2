package v1

import (
	"net/http"
	"time"

	"go-talent-directory/config"
	"go-talent-directory/internal/delivery/http/middleware"
	"go-talent-directory/internal/delivery/http/response"
	"go-talent-directory/internal/domain"
	"go-talent-directory/pkg/auth"
	"go-talent-directory/pkg/redis"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC       domain.AuthUsecase
	TalentUC     domain.TalentUsecase
	SkillUC      domain.SkillUsecase
	ExperienceUC domain.ExperienceUsecase
	ProjectUC    domain.ProjectUsecase
	SocialLinkUC domain.SocialLinkUsecase
	Tokens       *auth.TokenManager
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middlewares. CORS must run first so even rejected requests get
	// the right headers.
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second
	r.Use(middleware.RateLimitMiddleware(
		middleware.DefaultRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		status := gin.H{"redis": "disabled"}
		if redis.Client() != nil {
			status["redis"] = "ok"
			if err := redis.HealthCheck(c.Request.Context()); err != nil {
				status["redis"] = "unreachable"
			}
		}
		response.Success(c, http.StatusOK, "System operational", status)
	})

	// Swagger
	r.GET("/api/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Locally stored photos (S3 serves its own URLs)
	if deps.Config.StorageBackend != "s3" {
		r.Static("/media", deps.Config.MediaDir)
	}

	api := r.Group("/api")
	authMW := middleware.AuthMiddleware(deps.Tokens, deps.AuthUC)
	loginRL := middleware.RateLimitMiddleware(
		middleware.LoginRateLimitConfig(deps.Config.RateLimitLoginThreshold, window))

	accounts := api.Group("/accounts")
	{
		authHandler := &AuthHandler{authUC: deps.AuthUC}
		accounts.POST("/auth/register/", loginRL, authHandler.Register)
		accounts.POST("/auth/login/", loginRL, authHandler.Login)
		accounts.POST("/auth/refresh/", authHandler.Refresh)
		accounts.GET("/me/", authMW, authHandler.Me)
	}

	talents := api.Group("/talents")
	{
		talentHandler := &TalentHandler{talentUC: deps.TalentUC}
		talents.GET("/public/", talentHandler.Public)
		talents.GET("/latest/", talentHandler.Latest)
		talents.GET("/top/", talentHandler.Top)
		talents.GET("/statistics/", talentHandler.Statistics)

		me := talents.Group("/me", authMW)
		{
			profileHandler := &ProfileHandler{talentUC: deps.TalentUC}
			me.GET("/profile/", profileHandler.GetMyProfile)
			me.PATCH("/profile/",
				middleware.RateLimitMiddleware(middleware.UploadRateLimitConfig()),
				profileHandler.UpdateMyProfile)

			skillHandler := &SkillHandler{skillUC: deps.SkillUC}
			me.GET("/skills/", skillHandler.List)
			me.POST("/skills/", skillHandler.Add)
			me.DELETE("/skills/:id/", skillHandler.Remove)

			experienceHandler := &ExperienceHandler{experienceUC: deps.ExperienceUC}
			me.GET("/experiences/", experienceHandler.List)
			me.POST("/experiences/", experienceHandler.Add)
			me.DELETE("/experiences/:id/", experienceHandler.Remove)

			projectHandler := &ProjectHandler{projectUC: deps.ProjectUC}
			me.GET("/projects/", projectHandler.List)
			me.POST("/projects/", projectHandler.Add)
			me.DELETE("/projects/:id/", projectHandler.Remove)

			linkHandler := &SocialLinkHandler{linkUC: deps.SocialLinkUC}
			me.GET("/social-links/", linkHandler.List)
			me.POST("/social-links/", linkHandler.Add)
			me.DELETE("/social-links/:id/", linkHandler.Remove)
		}

		// Must come after /me so the wildcard does not shadow it.
		talents.GET("/:id/", talentHandler.Detail)
	}

	return r
}
