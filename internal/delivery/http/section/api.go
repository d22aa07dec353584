package section_handler

import (
	"github.com/gin-gonic/gin"

	"portfolio-content-service/internal/logger"
	section_service "portfolio-content-service/internal/service/section"
)

type SectionAPI struct {
	sectionService section_service.Service
	log            *logger.Logger
}

func NewSectionAPI(sectionService section_service.Service, log *logger.Logger) *SectionAPI {
	return &SectionAPI{sectionService: sectionService, log: log}
}

func (a *SectionAPI) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/pages/:page_id/sections", a.CreateSection)
	r.GET("/pages/:page_id/sections", a.ListSections)
	r.PUT("/pages/:page_id/sections/order", a.ReorderSections)
	r.GET("/sections/:id", a.GetSection)
	r.PATCH("/sections/:id", a.UpdateSection)
	r.DELETE("/sections/:id", a.DeleteSection)
}
