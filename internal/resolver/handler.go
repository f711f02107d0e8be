// internal/resolver/handler.go
package resolver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	commonerrors "github.com/jameeshbx/trekking-b2b-sub001/internal/common/errors"
	"github.com/jameeshbx/trekking-b2b-sub001/internal/common/logger"
	"github.com/jameeshbx/trekking-b2b-sub001/internal/common/metrics"
)

// Handler exposes the resolution service over HTTP.
type Handler struct {
	service *Service
	logger  logger.Logger
}

func NewHandler(service *Service, log logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  log.WithFields(map[string]interface{}{"handler": "itinerary"}),
	}
}

// Register mounts the resolver routes on a router group.
func (h *Handler) Register(group *gin.RouterGroup) {
	group.GET("/itinerary", h.GetItinerary)
}

// GetItinerary handles GET /api/itinerary?quoteId=&enquiryId=&location=&startDate=.
func (h *Handler) GetItinerary(c *gin.Context) {
	req := &Request{
		QuoteID:   c.Query("quoteId"),
		EnquiryID: c.Query("enquiryId"),
		Location:  c.Query("location"),
		StartDate: c.Query("startDate"),
	}

	if stdErr := ValidateRequest(req); stdErr != nil {
		metrics.ResolutionsTotal.WithLabelValues("invalid_request", "none").Inc()
		h.writeError(c, stdErr)
		return
	}

	resp, err := h.service.Resolve(c.Request.Context(), req)
	if err != nil {
		stdErr := commonerrors.AsStandardError(err)
		if commonerrors.HTTPStatus(stdErr.Code) == http.StatusInternalServerError {
			h.logger.Error("resolution failed", map[string]interface{}{
				"code":    string(stdErr.Code),
				"details": stdErr.Details,
			})
		}
		h.writeError(c, stdErr)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) writeError(c *gin.Context, stdErr *commonerrors.StandardError) {
	c.JSON(commonerrors.HTTPStatus(stdErr.Code), gin.H{
		"error": gin.H{
			"code":    stdErr.Code,
			"message": stdErr.Message,
			"details": stdErr.Details,
		},
	})
}
