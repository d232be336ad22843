package models

// Word represents a dictionary entry
type Word struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Meaning       string   `json:"meaning"`
	Origin        *string  `json:"origin,omitempty"`
	Pronunciation *string  `json:"pronunciation,omitempty"`
	Synonyms      []string `json:"synonyms"`
	Antonyms      []string `json:"antonyms"`
	UsageExamples []string `json:"usageExamples"`
}

// WordRequest is the request body for creating or replacing a word
type WordRequest struct {
	Name          string   `json:"name"`
	Meaning       string   `json:"meaning"`
	Origin        *string  `json:"origin,omitempty"`
	Pronunciation *string  `json:"pronunciation,omitempty"`
	Synonyms      []string `json:"synonyms,omitempty"`
	Antonyms      []string `json:"antonyms,omitempty"`
	UsageExamples []string `json:"usageExamples,omitempty"`
}

// Validate checks the fields every persisted word must carry.
func (r *WordRequest) Validate() error {
	if r.Name == "" {
		return &ValidationError{Field: "name"}
	}
	if r.Meaning == "" {
		return &ValidationError{Field: "meaning"}
	}
	return nil
}

// ToWord builds an unsaved Word from the request. Nil lists become empty.
func (r *WordRequest) ToWord() *Word {
	return &Word{
		Name:          r.Name,
		Meaning:       r.Meaning,
		Origin:        r.Origin,
		Pronunciation: r.Pronunciation,
		Synonyms:      nonNil(r.Synonyms),
		Antonyms:      nonNil(r.Antonyms),
		UsageExamples: nonNil(r.UsageExamples),
	}
}

// Normalize replaces nil lists with empty ones so they encode as [].
func (w *Word) Normalize() {
	w.Synonyms = nonNil(w.Synonyms)
	w.Antonyms = nonNil(w.Antonyms)
	w.UsageExamples = nonNil(w.UsageExamples)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// ListOptions controls how a full-collection read is ordered
type ListOptions struct {
	// SortByName orders by name ascending, ties broken by id.
	// When false the store's native order is used.
	SortByName bool
}

// CountResponse is the body of GET /words/count
type CountResponse struct {
	Count int64 `json:"count"`
}
