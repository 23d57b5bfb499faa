package pagination

// PaginatedResponse is the list response body: one page of data plus its metadata.
// The caller is responsible for slicing Data to match Pagination.
type PaginatedResponse[T any] struct {
	Data       []T    `json:"data"`
	Pagination Params `json:"pagination"`
}

// NewResponse pairs data with its descriptor. nil data renders as [].
func NewResponse[T any](data []T, p Params) PaginatedResponse[T] {
	if data == nil {
		data = []T{}
	}
	return PaginatedResponse[T]{Data: data, Pagination: p}
}
