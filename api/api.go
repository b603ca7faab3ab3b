package api

import (
	"bytes"
	"database/sql"
	"fmt"
	"io"
	"log"
	"time"

	"fundtracker/internal"
	"fundtracker/internal/app"
	"fundtracker/internal/domain"
	"fundtracker/internal/repository"
	l1_service "fundtracker/internal/service/l1"
	l2_service "fundtracker/internal/service/l2"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type ApiHandler struct {
	Db                        *sql.DB
	BenchmarkHandler          internal.BenchmarkHandler
	ValuationService          l2_service.ValuationService
	CatalogService            l1_service.CatalogService
	ReportApp                 app.ReportApp
	ReportJobConfig           app.ReportJobConfig
	ReportFlowsDir            string
	FundCatalogRepository     repository.FundCatalogRepository
	ApiRequestRepository      repository.ApiRequestRepository
	LatencyTrackingRepository repository.LatencyTrackingRepository
	JwtDecodeToken            string
	AdminEmails               []string
}

func int64Ptr(i int64) *int64 {
	return &i
}
func int32Ptr(i int32) *int32 {
	return &i
}
func strPtr(s string) *string {
	return &s
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddlware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to fundtracker"})
	})
	router.GET("/api/fund/search", m.fundSearch)
	router.POST("/api/valuation", m.valuation)
	router.GET("/api/benchmark", m.benchmark)
	router.POST("/api/catalog/refresh", m.adminAuthMiddleware, m.catalogRefresh)
	router.POST("/api/report/generate", m.adminAuthMiddleware, m.reportGenerate)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(500, gin.H{
		"success": false,
		"error":   err.Error(),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"success": false,
		"error":   err.Error(),
	})
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

// requestProfile fetches the span profile the middleware attached, so
// resolvers can thread it into service contexts. Falls back to a fresh
// profile when the middleware is not mounted, as in resolver tests.
func requestProfile(c *gin.Context) *domain.Profile {
	if v, ok := c.Get(domain.ContextProfileKey); ok {
		if profile, ok := v.(*domain.Profile); ok {
			return profile
		}
	}
	profile, _ := domain.NewProfile()
	return profile
}

func (m ApiHandler) logRequestMiddlware(ctx *gin.Context) {
	w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: ctx.Writer}
	ctx.Writer = w

	body, err := ctx.GetRawData()
	if err != nil {
		log.Println(fmt.Errorf("failed to get raw data: %w", err))
	}
	ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

	profile, endProfile := domain.NewProfile()
	ctx.Set(domain.ContextProfileKey, profile)

	start := time.Now().UTC()
	req, err := m.ApiRequestRepository.Add(repository.ApiRequest{
		IPAddress:   strPtr(ctx.ClientIP()),
		Method:      ctx.Request.Method,
		Route:       ctx.Request.URL.Path,
		RequestBody: strPtr(string(body)),
		StartTs:     start,
	})
	if err != nil {
		log.Println(err)
	}

	ctx.Next()

	endProfile()
	if req != nil {
		req.DurationMs = int64Ptr(time.Since(start).Milliseconds())
		req.StatusCode = int32Ptr(int32(ctx.Writer.Status()))
		req.ResponseBody = strPtr(w.body.String())

		err = m.ApiRequestRepository.Update(*req)
		if err != nil {
			log.Println(err)
		}

		if len(profile.Spans) > 0 {
			err = m.LatencyTrackingRepository.Add(profile, &req.RequestID)
			if err != nil {
				log.Println(err)
			}
		}
	}
}
