package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/lehmann314159/vokab/internal/models"
	"github.com/lehmann314159/vokab/internal/services"
)

// Pinger reports whether the backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler contains all HTTP handlers
type Handler struct {
	wordService *services.WordService
	store       Pinger
	logger      *zap.Logger
}

// NewHandler creates a new handler
func NewHandler(wordService *services.WordService, store Pinger, logger *zap.Logger) *Handler {
	return &Handler{
		wordService: wordService,
		store:       store,
		logger:      logger,
	}
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// fail maps service errors to status codes. Anything outside the
// taxonomy is a store failure and gets logged.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, op string) {
	switch {
	case errors.Is(err, models.ErrInvalidID):
		writeError(w, http.StatusBadRequest, models.ErrInvalidID.Error())
	case errors.Is(err, models.ErrNotFound):
		writeError(w, http.StatusNotFound, models.ErrNotFound.Error())
	case errors.Is(err, models.ErrInvalidWord):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("Store operation failed",
			zap.String("op", op),
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "failed to "+op)
	}
}

// ListWords handles GET /words
//
//	@Summary		Get a list of words.
//	@Description	Get every word from the database in store order.
//	@Tags			Word
//	@Produce		json
//	@Success		200	{array}		models.Word
//	@Failure		500	{object}	ErrorResponse
//	@Router			/ [get]
func (h *Handler) ListWords(w http.ResponseWriter, r *http.Request) {
	words, err := h.wordService.List(r.Context())
	if err != nil {
		h.fail(w, r, err, "list words")
		return
	}
	writeJSON(w, http.StatusOK, words)
}

// GetWord handles GET /words/word/{id}
//
//	@Summary	Get a word by ID.
//	@Tags		Word
//	@Produce	json
//	@Param		id	path		string	true	"Word ID"
//	@Success	200	{object}	models.Word
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/word/{id} [get]
func (h *Handler) GetWord(w http.ResponseWriter, r *http.Request) {
	word, err := h.wordService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err, "get word")
		return
	}
	writeJSON(w, http.StatusOK, word)
}

// GetWordsByName handles GET /words/word?name=
//
//	@Summary		Get words by name.
//	@Description	The name is lower-cased before matching. No match is an empty array.
//	@Tags			Word
//	@Produce		json
//	@Param			name	query		string	true	"Word name"
//	@Success		200		{array}		models.Word
//	@Failure		400		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/word [get]
func (h *Handler) GetWordsByName(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "name query parameter is required")
		return
	}

	words, err := h.wordService.FindByName(r.Context(), name)
	if err != nil {
		h.fail(w, r, err, "find words")
		return
	}
	writeJSON(w, http.StatusOK, words)
}

// ListNames handles GET /words/all
//
//	@Summary	Get all word names.
//	@Tags		Word
//	@Produce	json
//	@Success	200	{array}		string
//	@Failure	500	{object}	ErrorResponse
//	@Router		/all [get]
func (h *Handler) ListNames(w http.ResponseWriter, r *http.Request) {
	names, err := h.wordService.ListNames(r.Context())
	if err != nil {
		h.fail(w, r, err, "list names")
		return
	}
	writeJSON(w, http.StatusOK, names)
}

// CountWords handles GET /words/count
//
//	@Summary	Count words.
//	@Tags		Word
//	@Produce	json
//	@Success	200	{object}	models.CountResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/count [get]
func (h *Handler) CountWords(w http.ResponseWriter, r *http.Request) {
	count, err := h.wordService.Count(r.Context())
	if err != nil {
		h.fail(w, r, err, "count words")
		return
	}
	writeJSON(w, http.StatusOK, models.CountResponse{Count: count})
}

// ListPage handles GET /words/list
//
//	@Summary		Get words by page number.
//	@Description	Words sorted by name, with pagination metadata and navigation links.
//	@Tags			Word
//	@Produce		json
//	@Param			pageSize	query		int	false	"Page size"		default(10)
//	@Param			pageNumber	query		int	false	"Page number"	default(1)
//	@Success		200			{object}	models.Page
//	@Failure		500			{object}	ErrorResponse
//	@Router			/list [get]
func (h *Handler) ListPage(w http.ResponseWriter, r *http.Request) {
	req := models.PageRequest{
		PageSize:   queryInt(r, "pageSize", services.DefaultPageSize),
		PageNumber: queryInt(r, "pageNumber", services.DefaultPageNumber),
	}

	page, err := h.wordService.ListPage(r.Context(), req)
	if err != nil {
		h.fail(w, r, err, "list words")
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// UpdateWord handles PUT /words/word/{id}/update
//
//	@Summary		Update an existing word.
//	@Description	Replace an existing word in the database by its ID.
//	@Tags			Word
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"ID of word to update"
//	@Param			word	body		models.WordRequest	true	"Replacement word"
//	@Success		200		{object}	models.Word
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/word/{id}/update [put]
func (h *Handler) UpdateWord(w http.ResponseWriter, r *http.Request) {
	var req models.WordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	word, err := h.wordService.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.fail(w, r, err, "update word")
		return
	}
	writeJSON(w, http.StatusOK, word)
}

// DeleteWord handles DELETE /words/word/{id}/delete
//
//	@Summary	Delete a word by ID.
//	@Tags		Word
//	@Produce	plain
//	@Param		id	path		string	true	"Word ID"
//	@Success	200	{string}	string	"Word deleted successfully"
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/word/{id}/delete [delete]
func (h *Handler) DeleteWord(w http.ResponseWriter, r *http.Request) {
	err := h.wordService.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err, "delete word")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Word deleted successfully"))
}

// CreateWord handles POST /words/word
//
//	@Summary		Add a new word.
//	@Description	Introduce a new word into the database.
//	@Tags			Word
//	@Accept			json
//	@Produce		json
//	@Param			word	body		models.WordRequest	true	"Word to add"
//	@Success		201		{object}	models.Word
//	@Failure		400		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/word [post]
func (h *Handler) CreateWord(w http.ResponseWriter, r *http.Request) {
	var req models.WordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	word, err := h.wordService.Create(r.Context(), &req)
	if err != nil {
		h.fail(w, r, err, "create word")
		return
	}
	writeJSON(w, http.StatusCreated, word)
}

// CreateWords handles POST /words/words
//
//	@Summary		Add new words.
//	@Description	Introduce several words in one batch. Nothing is stored if any word is invalid.
//	@Tags			Word
//	@Accept			json
//	@Produce		json
//	@Param			words	body		[]models.WordRequest	true	"Words to add"
//	@Success		201		{array}		models.Word
//	@Failure		400		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/words [post]
func (h *Handler) CreateWords(w http.ResponseWriter, r *http.Request) {
	var reqs []*models.WordRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	words, err := h.wordService.CreateMany(r.Context(), reqs)
	if err != nil {
		h.fail(w, r, err, "create words")
		return
	}
	writeJSON(w, http.StatusCreated, words)
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		h.logger.Warn("Health check failed", zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// queryInt reads the leading integer of a query parameter, so "10abc"
// is 10. Missing, non-numeric and non-positive values yield def.
func queryInt(r *http.Request, key string, def int) int {
	raw := strings.TrimSpace(r.URL.Query().Get(key))

	end := 0
	if end < len(raw) && (raw[end] == '+' || raw[end] == '-') {
		end++
	}
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}

	n, err := strconv.Atoi(raw[:end])
	if err != nil || n < 1 {
		return def
	}
	return n
}
