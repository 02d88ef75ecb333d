package http

type listResp[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}
