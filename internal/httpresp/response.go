package httpresp

import "github.com/gin-gonic/gin"

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

// PageResponse is the cursor-paged variant used by the gallery listing.
// NextCursor is non-nil iff more items remain past this window.
type PageResponse[T any] struct {
	Items      []T     `json:"items"`
	TotalCount int64   `json:"total_count"`
	NextCursor *string `json:"next_cursor"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func List[T any](c *gin.Context, data []T) {
	c.JSON(200, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}

func Page[T any](c *gin.Context, items []T, total int64, next *string) {
	c.JSON(200, PageResponse[T]{
		Items:      items,
		TotalCount: total,
		NextCursor: next,
	})
}
