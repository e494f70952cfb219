package handler

import (
	"html/template"
	"iex-companies/internal/api/dto"
	"iex-companies/internal/api/middleware"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// NewRouter wires the middleware chain and every route onto a fresh engine.
func NewRouter(hd HandlerItf, templates *template.Template, logger *zap.Logger, timeout time.Duration) *gin.Engine {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("ticker", dto.ValidTicker)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Error(logger))
	r.Use(middleware.Timeout(timeout))
	r.SetHTMLTemplate(templates)

	r.GET("/", hd.GetCompaniesPage)
	r.GET("/healthz", hd.Health)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/companies", hd.GetCompanies)
		v1.GET("/companies/:symbol", hd.GetCompanyBySymbol)
	}
	return r
}
