package page_handler

import (
	"github.com/gin-gonic/gin"

	"portfolio-content-service/internal/logger"
	page_service "portfolio-content-service/internal/service/page"
)

type PageAPI struct {
	pageService page_service.Service
	log         *logger.Logger
}

func NewPageAPI(pageService page_service.Service, log *logger.Logger) *PageAPI {
	return &PageAPI{pageService: pageService, log: log}
}

func (a *PageAPI) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/pages", a.CreatePage)
	r.GET("/pages", a.ListPages)
	r.GET("/pages/:page_id", a.GetPage)
	r.DELETE("/pages/:page_id", a.DeletePage)
}
