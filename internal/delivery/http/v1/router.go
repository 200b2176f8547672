package v1

import (
	"net/http"

	"talentflow-backend/config"
	"talentflow-backend/internal/delivery/http/middleware"
	"talentflow-backend/internal/delivery/http/response"
	"talentflow-backend/internal/domain"
	"talentflow-backend/internal/usecase"
	"talentflow-backend/pkg/auth"
	"talentflow-backend/pkg/netsim"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC       domain.AuthUsecase
	JobUC        domain.JobUsecase
	CandidateUC  domain.CandidateUsecase
	AssessmentUC domain.AssessmentUsecase
	HealthUC     usecase.HealthUsecase
	Tokens       *auth.TokenIssuer
	Simulator    *netsim.Simulator
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")

	health := deps.HealthUC
	if health == nil {
		health = usecase.NewHealthUsecase(nil)
	}
	api.GET("/health", func(c *gin.Context) {
		status, err := health.Check(c.Request.Context())
		if err != nil {
			response.Error(c, http.StatusServiceUnavailable, "Store unreachable", status)
			return
		}
		response.Success(c, http.StatusOK, "System operational", status)
	})

	sim := deps.Simulator
	delays := deps.Config.Simulator

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens))

	NewAuthHandler(api, protected, deps.AuthUC, middleware.SimulateDelay(sim, delays.AuthDelay))
	NewJobHandler(api, deps.JobUC, JobRoutes{
		Read:    middleware.SimulateDelay(sim, delays.JobsReadDelay),
		Create:  middleware.SimulateWrite(sim, "create job"),
		Update:  middleware.SimulateWrite(sim, "update job"),
		Reorder: middleware.SimulateWrite(sim, "reorder job"),
	})
	NewCandidateHandler(api, deps.CandidateUC, CandidateRoutes{
		Read:   middleware.SimulateDelay(sim, delays.CandidatesReadDelay),
		Update: middleware.SimulateWrite(sim, "update candidate"),
	})
	NewAssessmentHandler(api, deps.AssessmentUC, AssessmentRoutes{
		Read:   middleware.SimulateDelay(sim, delays.AssessmentReadDelay),
		Save:   middleware.SimulateWrite(sim, "save assessment"),
		Submit: middleware.SimulateDelay(sim, delays.SubmitDelay),
	})

	return r
}
