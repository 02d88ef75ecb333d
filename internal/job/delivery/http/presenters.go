package http

import "directory-api/internal/model"

type listResp struct {
	Jobs []model.JobName `json:"jobs"`
}
