package models

// Page is one slice of the name-sorted collection
type Page struct {
	Words      []*Word    `json:"words"`
	Pagination Pagination `json:"pagination"`
	Links      PageLinks  `json:"links"`
}

// Pagination describes where a page sits in the collection
type Pagination struct {
	CurrentPage int `json:"currentPage"`
	PageSize    int `json:"pageSize"`
	TotalCount  int `json:"totalCount"`
}

// PageLinks holds relative navigation URLs. Absent links are omitted.
type PageLinks struct {
	First string `json:"first,omitempty"`
	Prev  string `json:"prev,omitempty"`
	Next  string `json:"next,omitempty"`
	Last  string `json:"last,omitempty"`
}

// PageRequest carries the parsed paging query parameters
type PageRequest struct {
	PageSize   int
	PageNumber int
}
