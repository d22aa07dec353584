package section_handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio-content-service/internal/delivery/http/response"
)

func (a *SectionAPI) GetSection(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	section, err := a.sectionService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, section)
}
