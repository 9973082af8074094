package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/realty-service/internal/api/dto"
	"github.com/spec-kit/realty-service/internal/auth"
	"github.com/spec-kit/realty-service/internal/service"
	apperrors "github.com/spec-kit/realty-service/pkg/util"
)

// ListingsHandler exposes listing CRUD endpoints. Reads are public; writes
// sit behind the admin role gate wired in the router.
type ListingsHandler struct {
	listings *service.ListingService
}

// NewListingsHandler constructs the handler.
func NewListingsHandler(listingService *service.ListingService) *ListingsHandler {
	return &ListingsHandler{listings: listingService}
}

// List handles GET /listings with page/per_page query parameters.
func (h *ListingsHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	perPage := c.QueryInt("per_page", 10)

	result, err := h.listings.List(c.Context(), page, perPage)
	if err != nil {
		return apperrors.MapError(err)
	}

	items := make([]dto.ListingResponse, 0, len(result.Items))
	for i := range result.Items {
		items = append(items, dto.NewListingResponse(&result.Items[i]))
	}

	return c.JSON(dto.PaginatedListingsResponse{
		Items:   items,
		Total:   result.Total,
		Page:    result.Page,
		PerPage: result.PerPage,
	})
}

// Get handles GET /listings/:id.
func (h *ListingsHandler) Get(c *fiber.Ctx) error {
	id, err := listingID(c)
	if err != nil {
		return err
	}

	listing, err := h.listings.Get(c.Context(), id)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewListingResponse(listing))
}

// Create handles POST /listings.
func (h *ListingsHandler) Create(c *fiber.Ctx) error {
	var req dto.ListingCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Address == "" || req.City == "" || len(req.State) != 2 {
		return apperrors.NewValidationError("address, city and two-letter state required", nil)
	}

	actor, _ := auth.IdentityFromContext(c)
	listing, err := h.listings.Create(c.Context(), actor, service.ListingCreateInput{
		Price:       req.Price,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Description: req.Description,
		Sqft:        req.Sqft,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		CoverImage:  req.CoverImage,
	})
	if err != nil {
		return apperrors.MapError(err)
	}

	return c.Status(http.StatusCreated).JSON(dto.NewListingResponse(listing))
}

// Update handles PUT /listings/:id.
func (h *ListingsHandler) Update(c *fiber.Ctx) error {
	id, err := listingID(c)
	if err != nil {
		return err
	}

	var req dto.ListingUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	actor, _ := auth.IdentityFromContext(c)
	listing, err := h.listings.Update(c.Context(), actor, id, service.ListingUpdateInput{
		Price:       req.Price,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Description: req.Description,
		Sqft:        req.Sqft,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		CoverImage:  req.CoverImage,
	})
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewListingResponse(listing))
}

// Delete handles DELETE /listings/:id.
func (h *ListingsHandler) Delete(c *fiber.Ctx) error {
	id, err := listingID(c)
	if err != nil {
		return err
	}

	actor, _ := auth.IdentityFromContext(c)
	if err := h.listings.Delete(c.Context(), actor, id); err != nil {
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func listingID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid listing id", nil)
	}
	return id, nil
}
