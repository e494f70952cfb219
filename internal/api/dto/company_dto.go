package dto

import (
	"iex-companies/internal/models"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Res is the envelope every JSON error response is written in.
type Res struct {
	Success bool `json:"success"`
	Error   any  `json:"error"`
	Data    any  `json:"data"`
}

type ErrorType struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// GetCompanies

type GetCompaniesRes struct {
	Companies []models.Company `json:"companies"`
	Count     int              `json:"count"`
}

// GetCompanyBySymbol

type GetCompanyBySymbolReq struct {
	Symbol string `uri:"symbol" binding:"required,max=10,ticker"`
}

// share classes are written BRK.B or BF-B
var tickerPattern = regexp.MustCompile(`^[A-Za-z0-9]+([.-][A-Za-z0-9]+)*$`)

// ValidTicker backs the "ticker" validation tag.
func ValidTicker(fl validator.FieldLevel) bool {
	return tickerPattern.MatchString(fl.Field().String())
}

// CompaniesPage is what index.html is rendered with.
type CompaniesPage struct {
	Companies []models.Company
	Count     int
}
