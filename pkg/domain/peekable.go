package domain

const (
	PeekablePaginationType_Page IntegrationPeekablePaginationType = "page"
)

type PeekablePaginationConfig struct {
	DefaultLimit int
	MaxLimit     int
}

type PaginationParams struct {
	Limit  int    `json:"limit,omitempty"`
	Cursor string `json:"cursor,omitempty"`
}

type PaginationMetadata struct {
	HasMore    bool   `json:"has_more"`
	NextCursor string `json:"next_cursor,omitempty"`
	TotalCount *int   `json:"total_count,omitempty"`
}

type PeekParams struct {
	PeekableType IntegrationPeekableType
	PayloadJSON  []byte
	Pagination   PaginationParams
}

type PeekResult struct {
	ResultJSON []byte             `json:"result_json,omitempty"`
	Result     []PeekResultItem   `json:"result,omitempty"`
	Pagination PaginationMetadata `json:"pagination,omitempty"`
}

type PeekResultItem struct {
	Key     string `json:"key"`
	Value   string `json:"value,omitempty"`
	Content string `json:"content,omitempty"`
}
