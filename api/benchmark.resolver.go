package api

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

type benchmarkPointResponse struct {
	Time  string  `json:"time"`
	Value float64 `json:"value"`
}

func (m ApiHandler) benchmark(c *gin.Context) {
	day := strings.TrimSpace(c.Query("day"))
	if day == "" {
		returnErrorJsonCode(fmt.Errorf("missing query parameter day"), c, 400)
		return
	}
	code := strings.TrimSpace(c.Query("code"))

	points, err := m.BenchmarkHandler.GetIntradayChange(code, day)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := []benchmarkPointResponse{}
	for _, p := range points {
		out = append(out, benchmarkPointResponse{
			Time:  p.Timestamp,
			Value: p.Value,
		})
	}

	c.JSON(200, gin.H{
		"success": true,
		"points":  out,
	})
}
