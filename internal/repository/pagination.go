package repository

// Page represents a simple limit/offset window for listing operations.
// The handler layer derives it from the client's Range header; down here it
// is just LIMIT/OFFSET material.
type Page struct {
	Limit  int
	Offset int
}

// PageResult carries a slice of items and the total count matching the query.
// The total feeds the Content-Range header so clients can see the full size
// without an extra round trip.
type PageResult[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}
