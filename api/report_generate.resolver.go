package api

import (
	"fmt"
	"time"

	"fundtracker/internal/app"
	"fundtracker/internal/domain"
	"fundtracker/internal/util"

	"github.com/gin-gonic/gin"
)

type reportGenerateRequest struct {
	Month string `json:"month"`
	Force bool   `json:"force"`
	Email bool   `json:"email"`
}

// reportGenerate runs the monthly flow report on demand. The month in the
// body overrides the configured one; with no body at all the job config
// decides, which normally means the previous calendar month.
func (m ApiHandler) reportGenerate(c *gin.Context) {
	var requestBody reportGenerateRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&requestBody); err != nil {
			returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
			return
		}
	}

	var period domain.ReportPeriod
	if requestBody.Month != "" {
		start, end, err := util.MonthBounds(requestBody.Month)
		if err != nil {
			returnErrorJsonCode(err, c, 400)
			return
		}
		period = domain.ReportPeriod{Start: start, End: end}
	} else {
		var err error
		period, err = m.ReportJobConfig.Period(time.Now().UTC())
		if err != nil {
			returnErrorJson(err, c)
			return
		}
	}

	flows, err := app.LoadInstitutionFlows(m.ReportJobConfig, m.ReportFlowsDir)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	input := app.ReportRunInput{
		Flows:  flows,
		Period: period,
		Force:  requestBody.Force,
	}
	if requestBody.Email {
		input.Recipients = m.ReportJobConfig.Recipients
	}

	report, err := m.ReportApp.GenerateMonthlyReport(c.Request.Context(), input)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"report":  report,
	})
}
