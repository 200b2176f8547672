package v1

import (
	"net/http"

	"talentflow-backend/internal/delivery/http/response"
	"talentflow-backend/internal/domain"
	"talentflow-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

// JobRoutes carries the simulation middleware for each job route.
type JobRoutes struct {
	Read    gin.HandlerFunc
	Create  gin.HandlerFunc
	Update  gin.HandlerFunc
	Reorder gin.HandlerFunc
}

func NewJobHandler(api *gin.RouterGroup, jobUC domain.JobUsecase, routes JobRoutes) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := api.Group("/jobs")
	{
		jobs.GET("", routes.Read, handler.List)
		jobs.GET("/:id", handler.Get)
		jobs.POST("", routes.Create, handler.Create)
		jobs.PATCH("/:id", routes.Update, handler.Update)
		jobs.PATCH("/:id/reorder", routes.Reorder, handler.Reorder)
	}
}

type JobListResponse struct {
	Jobs       []domain.Job      `json:"jobs"`
	Pagination domain.Pagination `json:"pagination"`
}

// List godoc
// @Summary      List jobs
// @Tags         jobs
// @Produce      json
// @Param        search    query     string  false  "Title or tag substring"
// @Param        status    query     string  false  "active or archived"
// @Param        sort      query     string  false  "Sort field, prefix with - for descending"
// @Param        page      query     int     false  "Page number"
// @Param        pageSize  query     int     false  "Page size"
// @Success      200       {object}  JobListResponse
// @Failure      400       {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	result, err := h.jobUC.ListJobs(c.Request.Context(), domain.JobFilter{
		Search:   c.Query("search"),
		Status:   c.Query("status"),
		Sort:     c.Query("sort"),
		Page:     intQuery(c, "page", 1),
		PageSize: intQuery(c, "pageSize", 10),
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, JobListResponse{Jobs: result.Data, Pagination: result.Pagination})
}

// Get godoc
// @Summary      Get a job
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  domain.Job
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	job, err := h.jobUC.GetJob(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, job)
}

// Create godoc
// @Summary      Create a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      domain.CreateJobInput  true  "Job"
// @Success      201  {object}  domain.Job
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	var req domain.CreateJobInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job, err := h.jobUC.CreateJob(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusCreated, job)
}

// Update godoc
// @Summary      Update a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id   path      int                    true  "Job ID"
// @Param        job  body      domain.UpdateJobInput  true  "Fields to change"
// @Success      200  {object}  domain.Job
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /jobs/{id} [patch]
func (h *JobHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req domain.UpdateJobInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job, err := h.jobUC.UpdateJob(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, job)
}

// Reorder godoc
// @Summary      Move a job to a new position
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id    path      int                     true  "Job ID"
// @Param        move  body      domain.ReorderJobInput  true  "Positions"
// @Success      200   {object}  map[string]bool
// @Failure      500   {object}  response.Response
// @Router       /jobs/{id}/reorder [patch]
func (h *JobHandler) Reorder(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req domain.ReorderJobInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.jobUC.ReorderJob(c.Request.Context(), id, req); err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"success": true})
}
