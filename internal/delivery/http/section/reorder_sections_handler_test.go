package section_handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"portfolio-content-service/internal/custom_errors"
	"portfolio-content-service/internal/logger"
	service_mock "portfolio-content-service/mocks/service"
)

func setupSectionRouter(svc *service_mock.SectionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := NewSectionAPI(svc, logger.New("test"))
	api.RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestSectionAPI_ReorderSections(t *testing.T) {
	tests := []struct {
		name       string
		pageID     string
		body       string
		mocks      func(svc *service_mock.SectionService)
		wantStatus int
	}{
		{
			name:   "Success",
			pageID: "1",
			body:   `{"section_ids": [3, 1, 2]}`,
			mocks: func(svc *service_mock.SectionService) {
				svc.On("Reorder", mock.Anything, int64(1), []int64{3, 1, 2}).Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "Invalid page id",
			pageID:     "abc",
			body:       `{"section_ids": [1]}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Malformed body",
			pageID:     "1",
			body:       `{"section_ids": "nope"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "Service failure",
			pageID: "1",
			body:   `{"section_ids": [2, 1]}`,
			mocks: func(svc *service_mock.SectionService) {
				svc.On("Reorder", mock.Anything, int64(1), []int64{2, 1}).Return(custom_errors.ErrSectionReorderFailed)
			},
			wantStatus: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(service_mock.SectionService)
			if tt.mocks != nil {
				tt.mocks(svc)
			}
			router := setupSectionRouter(svc)

			req := httptest.NewRequest(http.MethodPut, "/api/v1/pages/"+tt.pageID+"/sections/order", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestSectionAPI_GetSection_NotFound(t *testing.T) {
	svc := new(service_mock.SectionService)
	svc.On("GetByID", mock.Anything, int64(42)).Return(nil, custom_errors.ErrSectionNotFound)
	router := setupSectionRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sections/42", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	svc.AssertExpectations(t)
}
