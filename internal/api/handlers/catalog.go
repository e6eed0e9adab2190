package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/okarpenko/listing-gateway/internal/backend"
	domain "github.com/okarpenko/listing-gateway/pkg/types"
)

// CatalogService provides the brand and model reference catalogs.
type CatalogService interface {
	Brands(ctx context.Context) ([]domain.Brand, error)
	Models(ctx context.Context, brandID int) ([]domain.Model, error)
}

// CatalogHandler handles brand and model reference endpoints.
type CatalogHandler struct {
	service CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(s CatalogService) *CatalogHandler {
	return &CatalogHandler{service: s}
}

// ListBrandsOutput is the response for listing brands.
type ListBrandsOutput struct {
	Body struct {
		Brands []domain.Brand `json:"brands"`
	}
}

// ListModelsInput is the input for listing models of one brand.
type ListModelsInput struct {
	BrandID int `path:"id" doc:"Brand ID"`
}

// ListModelsOutput is the response for listing models.
type ListModelsOutput struct {
	Body struct {
		Models []domain.Model `json:"models"`
	}
}

// ListBrands returns the brand reference catalog.
func (h *CatalogHandler) ListBrands(
	ctx context.Context,
	_ *struct{},
) (*ListBrandsOutput, error) {
	brands, err := h.service.Brands(ctx)
	if err != nil {
		return nil, catalogError(err)
	}

	resp := &ListBrandsOutput{}
	resp.Body.Brands = brands
	return resp, nil
}

// ListModels returns the model reference catalog for one brand.
func (h *CatalogHandler) ListModels(
	ctx context.Context,
	input *ListModelsInput,
) (*ListModelsOutput, error) {
	models, err := h.service.Models(ctx, input.BrandID)
	if err != nil {
		return nil, catalogError(err)
	}

	resp := &ListModelsOutput{}
	resp.Body.Models = models
	return resp, nil
}

func catalogError(err error) error {
	switch {
	case errors.Is(err, backend.ErrNotFound):
		return huma.Error404NotFound("brand not found")
	case errors.Is(err, backend.ErrUnavailable):
		return huma.Error502BadGateway("listings backend unavailable")
	default:
		return huma.Error500InternalServerError("catalog fetch failed: " + err.Error())
	}
}

// RegisterCatalogRoutes registers reference catalog endpoints with the Huma API.
func RegisterCatalogRoutes(api huma.API, h *CatalogHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-brands",
		Method:      http.MethodGet,
		Path:        "/api/v1/brands",
		Summary:     "List brands",
		Description: "Returns the brand reference catalog.",
		Tags:        []string{"catalog"},
		Errors:      []int{http.StatusBadGateway},
	}, h.ListBrands)

	huma.Register(api, huma.Operation{
		OperationID: "list-models",
		Method:      http.MethodGet,
		Path:        "/api/v1/brands/{id}/models",
		Summary:     "List models for a brand",
		Description: "Returns the model reference catalog for one brand.",
		Tags:        []string{"catalog"},
		Errors:      []int{http.StatusNotFound, http.StatusBadGateway},
	}, h.ListModels)
}
