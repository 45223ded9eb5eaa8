package pagination

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/flowbaker/infomaniak/pkg/domain"
)

const DefaultLimit = 50

// ApplyPagination truncates items to limit unless returnAll is set or limit
// is not positive. The returned slice may share its backing array with items.
func ApplyPagination[T any](items []T, returnAll bool, limit int) []T {
	if returnAll || limit <= 0 {
		return items
	}

	if limit >= len(items) {
		return items
	}

	return items[:limit]
}

// GetPaginationParams resolves the effective limit for a list action.
// Zero means no limit.
func GetPaginationParams(returnAll bool, limit *int, defaultLimit int) int {
	if returnAll {
		return 0
	}

	if limit == nil {
		if defaultLimit <= 0 {
			return DefaultLimit
		}
		return defaultLimit
	}

	return *limit
}

type Handler interface {
	GetType() domain.IntegrationPeekablePaginationType

	BuildRequestParams(params domain.PaginationParams) (map[string]any, error)

	ParseResponseMetadata(response any) (domain.PaginationMetadata, error)

	ValidateParams(params domain.PaginationParams) error
}

// PageHandler drives Infomaniak's page/per_page pagination. The cursor is the
// page number to fetch, starting at 1.
type PageHandler struct {
	DefaultLimit int
	MaxLimit     int
}

func NewPageHandler(config domain.PeekablePaginationConfig) *PageHandler {
	return &PageHandler{
		DefaultLimit: config.DefaultLimit,
		MaxLimit:     config.MaxLimit,
	}
}

func (h *PageHandler) GetType() domain.IntegrationPeekablePaginationType {
	return domain.PeekablePaginationType_Page
}

func (h *PageHandler) BuildRequestParams(params domain.PaginationParams) (map[string]any, error) {
	if err := h.ValidateParams(params); err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit == 0 {
		limit = h.DefaultLimit
	}
	if h.MaxLimit > 0 && limit > h.MaxLimit {
		limit = h.MaxLimit
	}

	page := 1
	if params.Cursor != "" {
		page, _ = strconv.Atoi(params.Cursor)
	}

	reqParams := map[string]any{
		"page": page,
	}

	if limit > 0 {
		reqParams["per_page"] = limit
	}

	return reqParams, nil
}

type pageResponse struct {
	Page  json.Number `json:"page"`
	Pages json.Number `json:"pages"`
	Total json.Number `json:"total"`
}

func (h *PageHandler) ParseResponseMetadata(response any) (domain.PaginationMetadata, error) {
	jsonData, err := json.Marshal(response)
	if err != nil {
		return domain.PaginationMetadata{}, fmt.Errorf("failed to marshal response: %w", err)
	}

	var resp pageResponse
	if err := json.Unmarshal(jsonData, &resp); err != nil {
		return domain.PaginationMetadata{}, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	metadata := domain.PaginationMetadata{}

	if total, err := resp.Total.Int64(); err == nil {
		totalCount := int(total)
		metadata.TotalCount = &totalCount
	}

	page, err := resp.Page.Int64()
	if err != nil {
		return metadata, nil
	}

	pages, err := resp.Pages.Int64()
	if err != nil {
		return metadata, nil
	}

	if page < pages {
		metadata.HasMore = true
		metadata.NextCursor = strconv.FormatInt(page+1, 10)
	}

	return metadata, nil
}

func (h *PageHandler) ValidateParams(params domain.PaginationParams) error {
	if params.Limit < 0 {
		return fmt.Errorf("limit cannot be negative")
	}
	if h.MaxLimit > 0 && params.Limit > h.MaxLimit {
		return fmt.Errorf("limit %d exceeds maximum %d", params.Limit, h.MaxLimit)
	}
	if params.Cursor != "" {
		page, err := strconv.Atoi(params.Cursor)
		if err != nil || page < 1 {
			return fmt.Errorf("invalid page cursor: %s", params.Cursor)
		}
	}
	return nil
}

func NewHandler(paginationType domain.IntegrationPeekablePaginationType, config domain.PeekablePaginationConfig) (Handler, error) {
	switch paginationType {
	case domain.PeekablePaginationType_Page:
		return NewPageHandler(config), nil

	default:
		return nil, fmt.Errorf("unknown pagination type: %s", paginationType)
	}
}
