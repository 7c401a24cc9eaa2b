package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/staff-directory/internal/api/dto"
	"github.com/spec-kit/staff-directory/internal/repository"
	"github.com/spec-kit/staff-directory/internal/service"
	apperrors "github.com/spec-kit/staff-directory/pkg/util"
)

const (
	defaultPage      = 1
	defaultPageSize  = 10
	defaultSortField = "id"
	defaultSortOrder = "asc"
)

// StaffHandlerOptions holds the request limits. Zero values disable a limit.
type StaffHandlerOptions struct {
	MaxPageSize    int
	MaxFieldLength int
}

// StaffHandler exposes the staff directory endpoints.
type StaffHandler struct {
	staffService *service.StaffService
	opts         StaffHandlerOptions
}

// NewStaffHandler constructs handler.
func NewStaffHandler(staffService *service.StaffService, opts StaffHandlerOptions) *StaffHandler {
	return &StaffHandler{staffService: staffService, opts: opts}
}

// ListStaff handles GET /staff.
func (h *StaffHandler) ListStaff(c *fiber.Ctx) error {
	query, err := h.parseListQuery(c)
	if err != nil {
		return err
	}
	list, err := h.staffService.List(c.UserContext(), query)
	if err != nil {
		return err
	}
	resp := make([]dto.StaffResponse, 0, len(list))
	for i := range list {
		resp = append(resp, dto.NewStaffResponse(&list[i]))
	}
	return c.JSON(resp)
}

// GetStaff handles GET /staff/:id.
func (h *StaffHandler) GetStaff(c *fiber.Ctx) error {
	id, err := parseStaffID(c)
	if err != nil {
		return err
	}
	staff, err := h.staffService.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewStaffResponse(staff))
}

// CreateStaff handles POST /staff.
func (h *StaffHandler) CreateStaff(c *fiber.Ctx) error {
	var req dto.StaffRequest
	if err := bindAndValidate(c, &req, h.opts.MaxFieldLength); err != nil {
		return err
	}
	staff, err := h.staffService.Create(c.UserContext(), req.ToPatch())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewStaffResponse(staff))
}

// UpdateStaff handles PUT /staff/:id.
func (h *StaffHandler) UpdateStaff(c *fiber.Ctx) error {
	id, err := parseStaffID(c)
	if err != nil {
		return err
	}
	var req dto.StaffRequest
	if err := bindAndValidate(c, &req, h.opts.MaxFieldLength); err != nil {
		return err
	}
	staff, err := h.staffService.Update(c.UserContext(), id, req.ToPatch())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewStaffResponse(staff))
}

// DeleteStaff handles DELETE /staff/:id.
func (h *StaffHandler) DeleteStaff(c *fiber.Ctx) error {
	id, err := parseStaffID(c)
	if err != nil {
		return err
	}
	if err := h.staffService.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Staff deleted"})
}

func (h *StaffHandler) parseListQuery(c *fiber.Ctx) (repository.ListQuery, error) {
	page, err := parsePositiveIntQuery(c, "page", defaultPage)
	if err != nil {
		return repository.ListQuery{}, err
	}
	pageSize, err := parsePositiveIntQuery(c, "page_size", defaultPageSize)
	if err != nil {
		return repository.ListQuery{}, err
	}
	if h.opts.MaxPageSize > 0 && pageSize > h.opts.MaxPageSize {
		pageSize = h.opts.MaxPageSize
	}
	return repository.ListQuery{
		Page:      page,
		PageSize:  pageSize,
		Search:    c.Query("search"),
		SortBy:    c.Query("sort_by", defaultSortField),
		SortOrder: c.Query("sort_order", defaultSortOrder),
	}, nil
}

func parsePositiveIntQuery(c *fiber.Ctx, key string, defaultVal int) (int, error) {
	val := c.Query(key)
	if val == "" {
		return defaultVal, nil
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed < 1 {
		return 0, apperrors.NewValidationError("invalid query parameter", map[string]any{
			key: "must be a positive integer",
		})
	}
	return parsed, nil
}

func parseStaffID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewValidationError("invalid staff id", map[string]any{
			"id": "must be an integer",
		})
	}
	return id, nil
}
