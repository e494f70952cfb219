package repo

import (
	"context"
	"iex-companies/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type RepoItf interface {
	CountCompanies(context.Context) (int64, error)
	GetCompanies(context.Context) ([]models.Company, error)
	GetCompanyBySymbol(context.Context, string) (*models.Company, error)
	InsertCompany(context.Context, models.Company) (primitive.ObjectID, error)
}

type Repo struct {
	cc *mongo.Collection
}

func NewRepo(companyCollection *mongo.Collection) *Repo {
	return &Repo{cc: companyCollection}
}

func (rp *Repo) CountCompanies(c context.Context) (int64, error) {
	return rp.cc.CountDocuments(c, bson.D{})
}

// GetCompanies returns every stored record in storage order.
func (rp *Repo) GetCompanies(c context.Context) ([]models.Company, error) {
	results, err := rp.cc.Find(c, bson.D{})
	if err != nil {
		return nil, err
	}
	defer results.Close(c)

	var companies []models.Company
	if err = results.All(c, &companies); err != nil {
		return nil, err
	}
	return companies, nil
}

// GetCompanyBySymbol returns mongo.ErrNoDocuments when nothing matches.
func (rp *Repo) GetCompanyBySymbol(c context.Context, symbol string) (*models.Company, error) {
	var company models.Company
	err := rp.cc.FindOne(c, bson.M{"symbol": symbol}).Decode(&company)
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (rp *Repo) InsertCompany(c context.Context, company models.Company) (primitive.ObjectID, error) {
	res, err := rp.cc.InsertOne(c, company)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}
