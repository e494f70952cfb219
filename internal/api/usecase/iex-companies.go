package usecase

import (
	"context"
	"errors"
	"iex-companies/internal/api/constant"
	"iex-companies/internal/api/repo"
	"iex-companies/internal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type UsecaseItf interface {
	GetCompanies(context.Context) ([]models.Company, error)
	GetCompanyBySymbol(context.Context, string) (*models.Company, error)
}

type Usecase struct {
	rp repo.RepoItf
}

func NewUsecase(rp repo.RepoItf) *Usecase {
	return &Usecase{rp: rp}
}

// GetCompanies reads the whole collection on every call.
func (uc *Usecase) GetCompanies(ctx context.Context) ([]models.Company, error) {
	return uc.rp.GetCompanies(ctx)
}

func (uc *Usecase) GetCompanyBySymbol(ctx context.Context, symbol string) (*models.Company, error) {
	company, err := uc.rp.GetCompanyBySymbol(ctx, symbol)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, constant.ErrNoCompany
	}
	if err != nil {
		return nil, err
	}
	return company, nil
}
