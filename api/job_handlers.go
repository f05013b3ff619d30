package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetJobHandler handles requests to get job status by ID
func (api *API) GetJobHandler(c *gin.Context) {
	jobID := c.Param("jobId")

	job, err := api.engine.GetJob(jobID)
	if err != nil {
		SendEngineError(c, err, "", "get job")
		return
	}
	c.JSON(http.StatusOK, job)
}

// ListJobsHandler handles requests to list jobs for a dictionary
func (api *API) ListJobsHandler(c *gin.Context) {
	name := c.Param("name")

	status, result := ValidateJobStatus(c.Query("status"))
	if result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	jobs := api.engine.ListJobs(name, status)
	c.JSON(http.StatusOK, gin.H{
		"jobs":       jobs,
		"dictionary": name,
		"total":      len(jobs),
	})
}

// GetJobMetricsHandler handles requests to get job performance metrics
func (api *API) GetJobMetricsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"metrics": api.engine.JobMetrics()})
}
