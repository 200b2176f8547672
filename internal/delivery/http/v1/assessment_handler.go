package v1

import (
	"net/http"

	"talentflow-backend/internal/delivery/http/response"
	"talentflow-backend/internal/domain"
	"talentflow-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AssessmentHandler struct {
	assessmentUC domain.AssessmentUsecase
}

type AssessmentRoutes struct {
	Read   gin.HandlerFunc
	Save   gin.HandlerFunc
	Submit gin.HandlerFunc
}

func NewAssessmentHandler(api *gin.RouterGroup, assessmentUC domain.AssessmentUsecase, routes AssessmentRoutes) {
	handler := &AssessmentHandler{assessmentUC: assessmentUC}

	assessments := api.Group("/assessments")
	{
		assessments.GET("/:jobId", routes.Read, handler.Get)
		assessments.PUT("/:jobId", routes.Save, handler.Save)
		assessments.POST("/:jobId/submit", routes.Submit, handler.Submit)
	}
}

// Get godoc
// @Summary      Assessment of a job
// @Description  Responds with null when the job has no assessment.
// @Tags         assessments
// @Produce      json
// @Param        jobId  path      int  true  "Job ID"
// @Success      200    {object}  domain.Assessment
// @Router       /assessments/{jobId} [get]
func (h *AssessmentHandler) Get(c *gin.Context) {
	jobID, ok := idParam(c, "jobId")
	if !ok {
		return
	}
	assessment, err := h.assessmentUC.GetAssessment(c.Request.Context(), jobID)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, assessment)
}

// Save godoc
// @Summary      Create or replace the assessment of a job
// @Tags         assessments
// @Accept       json
// @Produce      json
// @Param        jobId       path      int                         true  "Job ID"
// @Param        assessment  body      domain.SaveAssessmentInput  true  "Assessment"
// @Success      200         {object}  domain.Assessment
// @Failure      400         {object}  response.Response
// @Failure      500         {object}  response.Response
// @Router       /assessments/{jobId} [put]
func (h *AssessmentHandler) Save(c *gin.Context) {
	jobID, ok := idParam(c, "jobId")
	if !ok {
		return
	}

	var req domain.SaveAssessmentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	assessment, err := h.assessmentUC.SaveAssessment(c.Request.Context(), jobID, req)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, assessment)
}

// Submit godoc
// @Summary      Submit a candidate's answers
// @Tags         assessments
// @Accept       json
// @Produce      json
// @Param        jobId       path      int                         true  "Job ID"
// @Param        submission  body      domain.SubmitResponseInput  true  "Answers"
// @Success      200         {object}  domain.SubmissionResult
// @Failure      404         {object}  response.Response
// @Failure      500         {object}  response.Response
// @Router       /assessments/{jobId}/submit [post]
func (h *AssessmentHandler) Submit(c *gin.Context) {
	jobID, ok := idParam(c, "jobId")
	if !ok {
		return
	}

	var req domain.SubmitResponseInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	result, err := h.assessmentUC.SubmitResponse(c.Request.Context(), jobID, req)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}
