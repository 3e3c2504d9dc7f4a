package property

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/gan-2/real-estate-api/internal/models"
	"github.com/gan-2/real-estate-api/internal/repository"
)

type PropertyService struct {
	propertyRepo repository.PropertyRepo
}

func NewService(propertyRepo repository.PropertyRepo) *PropertyService {
	return &PropertyService{propertyRepo: propertyRepo}
}

// List all properties in insertion order
// Empty store means empty list, not an error
func (s *PropertyService) List(ctx context.Context) ([]models.Property, error) {
	properties, err := s.propertyRepo.ListProperties(ctx)
	if err != nil {
		return nil, fmt.Errorf("can't list properties. Err: %w", err)
	}

	return properties, nil
}

func (s *PropertyService) Create(ctx context.Context, title string, price decimal.Decimal) (models.Property, error) {
	property, err := s.propertyRepo.CreateProperty(ctx, title, price)
	if err != nil {
		return property, fmt.Errorf("can't create property. Err: %w", err)
	}

	return property, nil
}
