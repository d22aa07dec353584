package section_handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio-content-service/internal/delivery/http/response"
	"portfolio-content-service/internal/model"
)

func (a *SectionAPI) UpdateSection(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	var dto model.UpdateSectionDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		a.log.Debug("Invalid update section payload", slog.String("error", err.Error()))
		response.BadRequest(c, err)
		return
	}

	section, err := a.sectionService.Update(c.Request.Context(), id, &dto)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, section)
}
