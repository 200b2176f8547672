package v1

import (
	"net/http"

	"talentflow-backend/internal/delivery/http/response"
	"talentflow-backend/internal/domain"
	"talentflow-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

type CandidateRoutes struct {
	Read   gin.HandlerFunc
	Update gin.HandlerFunc
}

func NewCandidateHandler(api *gin.RouterGroup, candidateUC domain.CandidateUsecase, routes CandidateRoutes) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	candidates := api.Group("/candidates")
	{
		candidates.GET("", routes.Read, handler.List)
		candidates.GET("/export", handler.Export)
		candidates.GET("/:id", handler.Get)
		candidates.PATCH("/:id", routes.Update, handler.Update)
		candidates.GET("/:id/timeline", handler.Timeline)
	}
}

type CandidateListResponse struct {
	Candidates []domain.CandidateWithJob `json:"candidates"`
	Pagination domain.Pagination         `json:"pagination"`
}

func candidateFilter(c *gin.Context) domain.CandidateFilter {
	return domain.CandidateFilter{
		Search:   c.Query("search"),
		Stage:    c.Query("stage"),
		JobID:    int64Query(c, "jobId"),
		Page:     intQuery(c, "page", 1),
		PageSize: intQuery(c, "pageSize", 50),
	}
}

// List godoc
// @Summary      List candidates, newest first
// @Tags         candidates
// @Produce      json
// @Param        search    query     string  false  "Name or email substring"
// @Param        stage     query     string  false  "Pipeline stage"
// @Param        jobId     query     int     false  "Job ID"
// @Param        page      query     int     false  "Page number"
// @Param        pageSize  query     int     false  "Page size"
// @Success      200       {object}  CandidateListResponse
// @Router       /candidates [get]
func (h *CandidateHandler) List(c *gin.Context) {
	result, err := h.candidateUC.ListCandidates(c.Request.Context(), candidateFilter(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, CandidateListResponse{Candidates: result.Data, Pagination: result.Pagination})
}

// Export godoc
// @Summary      Export filtered candidates
// @Tags         candidates
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce      text/csv
// @Param        format  query  string  false  "xlsx (default) or csv"
// @Success      200
// @Failure      400  {object}  response.Response
// @Router       /candidates/export [get]
func (h *CandidateHandler) Export(c *gin.Context) {
	out, err := h.candidateUC.ExportCandidates(c.Request.Context(), candidateFilter(c), c.Query("format"))
	if err != nil {
		c.Error(err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+out.Filename+`"`)
	c.Data(http.StatusOK, out.ContentType, out.Data)
}

// Get godoc
// @Summary      Get a candidate with its job
// @Tags         candidates
// @Produce      json
// @Param        id   path      int  true  "Candidate ID"
// @Success      200  {object}  domain.CandidateWithJob
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [get]
func (h *CandidateHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	candidate, err := h.candidateUC.GetCandidate(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, candidate)
}

// Update godoc
// @Summary      Update a candidate
// @Description  A stage change appends a timeline entry; notes override the default entry text.
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id         path      int                          true  "Candidate ID"
// @Param        candidate  body      domain.UpdateCandidateInput  true  "Fields to change"
// @Success      200        {object}  domain.CandidateWithJob
// @Failure      400        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Failure      500        {object}  response.Response
// @Router       /candidates/{id} [patch]
func (h *CandidateHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req domain.UpdateCandidateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	candidate, err := h.candidateUC.UpdateCandidate(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, candidate)
}

// Timeline godoc
// @Summary      Stage history of a candidate
// @Tags         candidates
// @Produce      json
// @Param        id   path      int  true  "Candidate ID"
// @Success      200  {array}   domain.CandidateTimeline
// @Router       /candidates/{id}/timeline [get]
func (h *CandidateHandler) Timeline(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	entries, err := h.candidateUC.GetTimeline(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, entries)
}
