package section_handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio-content-service/internal/delivery/http/response"
)

func (a *SectionAPI) ListSections(c *gin.Context) {
	pageID, err := strconv.ParseInt(c.Param("page_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	sections, err := a.sectionService.ListByPage(c.Request.Context(), pageID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, sections)
}
