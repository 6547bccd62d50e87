package model

import (
	"html/template"

	"github.com/fedejuret/fulltimeforce-github-commits-test/internal/entity"
)

// ErrorResponse is the only body written on a failed request.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// IndexPage is the data handed to the index template.
type IndexPage struct {
	Title   template.HTML
	Owner   string
	Repo    string
	Commits []entity.Commit
}
