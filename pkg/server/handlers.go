package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sanathkumarkunjithaya/CogniGraph/pkg/query"
)

// QueryRequest is the POST /query payload.
type QueryRequest struct {
	Query string `json:"query"`
}

// QueryResponse is the successful POST /query payload. Fallback answers
// ride the same field as real ones.
type QueryResponse struct {
	Answer string `json:"answer"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// QueryHandler handles question-answering requests
type QueryHandler struct {
	answerer Answerer
}

// NewQueryHandler creates a new query handler
func NewQueryHandler(a Answerer) *QueryHandler {
	return &QueryHandler{answerer: a}
}

// Liveness handles GET / - basic liveness check
func (h *QueryHandler) Liveness(c *gin.Context) {
	c.String(http.StatusOK, "CogniGraph query service is running.")
}

// Query handles POST /query
func (h *QueryHandler) Query(c *gin.Context) {
	var req QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No question provided"})
		return
	}

	if h.answerer == nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "query service is not initialized"})
		return
	}

	answer, err := h.answerer.Answer(c.Request.Context(), req.Query)
	if err != nil {
		if errors.Is(err, query.ErrMissingQuestion) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No question provided"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, QueryResponse{Answer: answer})
}
