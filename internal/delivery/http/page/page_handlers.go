package page_handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio-content-service/internal/delivery/http/response"
	"portfolio-content-service/internal/model"
)

func (a *PageAPI) CreatePage(c *gin.Context) {
	var dto model.CreatePageDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		a.log.Debug("Invalid create page payload", slog.String("error", err.Error()))
		response.BadRequest(c, err)
		return
	}

	page, err := a.pageService.Create(c.Request.Context(), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, page)
}

func (a *PageAPI) GetPage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("page_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	page, err := a.pageService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (a *PageAPI) ListPages(c *gin.Context) {
	locale := c.Query("locale")
	if slug := c.Query("slug"); slug != "" {
		page, err := a.pageService.GetBySlug(c.Request.Context(), locale, slug)
		if err != nil {
			response.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, []*model.Page{page})
		return
	}

	pages, err := a.pageService.List(c.Request.Context(), locale)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, pages)
}

func (a *PageAPI) DeletePage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("page_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	if err := a.pageService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
