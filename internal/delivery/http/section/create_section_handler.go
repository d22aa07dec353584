package section_handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio-content-service/internal/delivery/http/response"
	"portfolio-content-service/internal/model"
)

func (a *SectionAPI) CreateSection(c *gin.Context) {
	pageID, err := strconv.ParseInt(c.Param("page_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	var dto model.CreateSectionDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		a.log.Debug("Invalid create section payload", slog.String("error", err.Error()))
		response.BadRequest(c, err)
		return
	}

	section, err := a.sectionService.Create(c.Request.Context(), pageID, &dto)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, section)
}
