package section_service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"portfolio-content-service/internal/custom_errors"
	"portfolio-content-service/internal/logger"
	"portfolio-content-service/internal/metrics"
	"portfolio-content-service/internal/model"
	cache_mock "portfolio-content-service/mocks/cache"
	service_mock "portfolio-content-service/mocks/service"
)

func newDecorator(svc *service_mock.SectionService, c *cache_mock.SectionCache) Service {
	return NewSectionServiceCacheDecorator(svc, c, logger.New("test"), metrics.NewNoopProvider())
}

func TestSectionServiceCacheDecorator_GetByID(t *testing.T) {
	detailed := &model.SectionDetailed{Section: &model.Section{ID: 7, PageID: 1}}

	t.Run("Cache hit skips the service", func(t *testing.T) {
		svc := new(service_mock.SectionService)
		c := new(cache_mock.SectionCache)
		c.On("GetSection", mock.Anything, int64(7)).Return(detailed, nil)

		got, err := newDecorator(svc, c).GetByID(context.Background(), 7)

		assert.NoError(t, err)
		assert.Equal(t, detailed, got)
		svc.AssertNotCalled(t, "GetByID")
		c.AssertExpectations(t)
	})

	t.Run("Cache miss falls through and fills", func(t *testing.T) {
		svc := new(service_mock.SectionService)
		c := new(cache_mock.SectionCache)
		c.On("GetSection", mock.Anything, int64(7)).Return(nil, custom_errors.ErrCacheMiss)
		svc.On("GetByID", mock.Anything, int64(7)).Return(detailed, nil)
		c.On("SetSection", mock.Anything, detailed).Return(nil)

		got, err := newDecorator(svc, c).GetByID(context.Background(), 7)

		assert.NoError(t, err)
		assert.Equal(t, detailed, got)
		svc.AssertExpectations(t)
		c.AssertExpectations(t)
	})

	t.Run("Cache write failure is swallowed", func(t *testing.T) {
		svc := new(service_mock.SectionService)
		c := new(cache_mock.SectionCache)
		c.On("GetSection", mock.Anything, int64(7)).Return(nil, custom_errors.ErrCacheMiss)
		svc.On("GetByID", mock.Anything, int64(7)).Return(detailed, nil)
		c.On("SetSection", mock.Anything, detailed).Return(errors.New("redis down"))

		got, err := newDecorator(svc, c).GetByID(context.Background(), 7)

		assert.NoError(t, err)
		assert.Equal(t, detailed, got)
	})
}

func TestSectionServiceCacheDecorator_Reorder_InvalidatesEntries(t *testing.T) {
	svc := new(service_mock.SectionService)
	c := new(cache_mock.SectionCache)
	svc.On("Reorder", mock.Anything, int64(1), []int64{3, 1, 2}).Return(nil)
	c.On("DeletePageSections", mock.Anything, int64(1)).Return(nil)
	c.On("DeleteSection", mock.Anything, int64(3)).Return(nil)
	c.On("DeleteSection", mock.Anything, int64(1)).Return(nil)
	c.On("DeleteSection", mock.Anything, int64(2)).Return(nil)

	err := newDecorator(svc, c).Reorder(context.Background(), 1, []int64{3, 1, 2})

	assert.NoError(t, err)
	svc.AssertExpectations(t)
	c.AssertExpectations(t)
}

func TestSectionServiceCacheDecorator_Reorder_ServiceErrorSkipsInvalidation(t *testing.T) {
	svc := new(service_mock.SectionService)
	c := new(cache_mock.SectionCache)
	svc.On("Reorder", mock.Anything, int64(1), []int64{2, 1}).Return(custom_errors.ErrSectionReorderFailed)

	err := newDecorator(svc, c).Reorder(context.Background(), 1, []int64{2, 1})

	assert.Error(t, err)
	c.AssertNotCalled(t, "DeletePageSections")
	c.AssertNotCalled(t, "DeleteSection")
}

func TestSectionServiceCacheDecorator_Update_InvalidatesPage(t *testing.T) {
	detailed := &model.SectionDetailed{Section: &model.Section{ID: 7, PageID: 4}}
	svc := new(service_mock.SectionService)
	c := new(cache_mock.SectionCache)
	dto := &model.UpdateSectionDTO{}
	svc.On("Update", mock.Anything, int64(7), dto).Return(detailed, nil)
	c.On("DeletePageSections", mock.Anything, int64(4)).Return(nil)
	c.On("SetSection", mock.Anything, detailed).Return(nil)

	got, err := newDecorator(svc, c).Update(context.Background(), 7, dto)

	assert.NoError(t, err)
	assert.Equal(t, detailed, got)
	svc.AssertExpectations(t)
	c.AssertExpectations(t)
}
