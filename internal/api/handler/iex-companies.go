package handler

import (
	"iex-companies/internal/api/dto"
	"iex-companies/internal/api/usecase"
	"iex-companies/internal/models"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HandlerItf interface {
	GetCompaniesPage(*gin.Context)
	GetCompanies(*gin.Context)
	GetCompanyBySymbol(*gin.Context)
	Health(*gin.Context)
}

type Handler struct {
	uc usecase.UsecaseItf
}

func NewHandler(uc usecase.UsecaseItf) *Handler {
	return &Handler{uc: uc}
}

// GetCompaniesPage renders every stored company into index.html.
func (hd *Handler) GetCompaniesPage(ctx *gin.Context) {
	companies, err := hd.uc.GetCompanies(ctx.Request.Context())
	if err != nil {
		ctx.Error(err)
		return
	}
	if ctx.Request.Context().Err() != nil {
		return
	}

	ctx.HTML(http.StatusOK, "index.html", dto.CompaniesPage{
		Companies: companies,
		Count:     len(companies),
	})
}

func (hd *Handler) GetCompanies(ctx *gin.Context) {
	companies, err := hd.uc.GetCompanies(ctx.Request.Context())
	if err != nil {
		ctx.Error(err)
		return
	}
	if ctx.Request.Context().Err() != nil {
		return
	}

	res := dto.GetCompaniesRes{
		Companies: companies,
		Count:     len(companies),
	}
	if res.Companies == nil {
		res.Companies = []models.Company{}
	}

	ctx.JSON(http.StatusOK,
		gin.H{
			"message": nil,
			"error":   nil,
			"data":    res,
		})
}

func (hd *Handler) GetCompanyBySymbol(ctx *gin.Context) {
	var req dto.GetCompanyBySymbolReq
	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.Error(err)
		return
	}

	company, err := hd.uc.GetCompanyBySymbol(ctx.Request.Context(), req.Symbol)
	if err != nil {
		ctx.Error(err)
		return
	}
	if ctx.Request.Context().Err() != nil {
		return
	}

	ctx.JSON(http.StatusOK,
		gin.H{
			"message": nil,
			"error":   nil,
			"data":    company,
		})
}

func (hd *Handler) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
