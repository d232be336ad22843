package services

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/lehmann314159/vokab/internal/models"
)

const (
	DefaultPageSize   = 10
	DefaultPageNumber = 1

	// ListPath is the route that serves pages; links point back at it
	ListPath = "/words/list"
)

// Paginate slices an already sorted collection. Pages past the end are
// empty, never an error. Non-positive sizes and numbers fall back to the
// defaults.
func Paginate(all []*models.Word, req models.PageRequest, basePath string) *models.Page {
	if req.PageSize < 1 {
		req.PageSize = DefaultPageSize
	}
	if req.PageNumber < 1 {
		req.PageNumber = DefaultPageNumber
	}

	total := len(all)
	totalPages := 0
	if total > 0 {
		totalPages = (total-1)/req.PageSize + 1
	}

	// PageNumber <= totalPages keeps the start offset below total
	words := []*models.Word{}
	if req.PageNumber <= totalPages {
		start := (req.PageNumber - 1) * req.PageSize
		words = lo.Subset(all, start, uint(req.PageSize))
	}

	page := &models.Page{
		Words: words,
		Pagination: models.Pagination{
			CurrentPage: req.PageNumber,
			PageSize:    req.PageSize,
			TotalCount:  total,
		},
	}

	if req.PageNumber < totalPages {
		page.Links.Next = pageLink(basePath, req.PageNumber+1, req.PageSize)
		page.Links.Last = pageLink(basePath, totalPages, req.PageSize)
	}
	if req.PageNumber > 1 {
		page.Links.First = pageLink(basePath, 1, req.PageSize)
		page.Links.Prev = pageLink(basePath, req.PageNumber-1, req.PageSize)
	}

	return page
}

func pageLink(basePath string, number, size int) string {
	return fmt.Sprintf("%s?pageNumber=%d&pageSize=%d", basePath, number, size)
}
