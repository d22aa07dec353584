package section_handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio-content-service/internal/delivery/http/response"
)

type ReorderRequest struct {
	SectionIDs []int64 `json:"section_ids"`
}

func (a *SectionAPI) ReorderSections(c *gin.Context) {
	pageID, err := strconv.ParseInt(c.Param("page_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		a.log.Debug("Invalid reorder payload", slog.String("error", err.Error()))
		response.BadRequest(c, err)
		return
	}

	if err := a.sectionService.Reorder(c.Request.Context(), pageID, req.SectionIDs); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
