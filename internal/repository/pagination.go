package repository

// Page represents a simple limit/offset window for listing operations.
// I keep it intentionally small; page numbers and navigation belong to pkg/pagination.
type Page struct {
	Limit  uint32
	Offset uint64
}

// PageResult carries a slice of items and the total count matching the query.
// I return the total so clients can compute pagination without an extra round trip.
type PageResult[T any] struct {
	Items []T
	Total uint64
}
