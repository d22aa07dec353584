package section_handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio-content-service/internal/delivery/http/response"
)

func (a *SectionAPI) DeleteSection(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	if err := a.sectionService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
