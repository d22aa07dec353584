package page_service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"portfolio-content-service/internal/custom_errors"
	"portfolio-content-service/internal/logger"
	"portfolio-content-service/internal/model"
	attachment_mock "portfolio-content-service/mocks/attachment"
	page_mock "portfolio-content-service/mocks/page"
	postgres_mock "portfolio-content-service/mocks/postgres"
	section_mock "portfolio-content-service/mocks/section"
)

func TestPageService_Create(t *testing.T) {
	log := logger.New("test")
	tests := []struct {
		name        string
		mocks       func(pageRepo *page_mock.Repository)
		dto         *model.CreatePageDTO
		wantErr     bool
		wantErrType error
	}{
		{
			name: "Success",
			mocks: func(pageRepo *page_mock.Repository) {
				pageRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Page) bool {
					return p.Locale == "en" && p.Slug == "home" && p.Title == "Home"
				})).Return(&model.Page{ID: 1, Locale: "en", Slug: "home", Title: "Home"}, nil)
			},
			dto:     &model.CreatePageDTO{Locale: "en", Slug: "home", Title: "Home"},
			wantErr: false,
		},
		{
			name:        "Validation failure",
			dto:         &model.CreatePageDTO{Locale: "e", Slug: "", Title: ""},
			wantErr:     true,
			wantErrType: custom_errors.ErrValidationFailed,
		},
		{
			name: "Duplicate slug",
			mocks: func(pageRepo *page_mock.Repository) {
				pageRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Page")).Return(nil, custom_errors.ErrPageSlugExists)
			},
			dto:         &model.CreatePageDTO{Locale: "en", Slug: "home", Title: "Home"},
			wantErr:     true,
			wantErrType: custom_errors.ErrPageSlugExists,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pageRepo := new(page_mock.Repository)
			sectionRepo := new(section_mock.Repository)
			uow := new(postgres_mock.UnitOfWork)
			if tt.mocks != nil {
				tt.mocks(pageRepo)
			}

			s := NewPageService(pageRepo, sectionRepo, uow, log)
			got, err := s.Create(context.Background(), tt.dto)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				if tt.wantErrType != nil {
					assert.True(t, errors.Is(err, tt.wantErrType), "expected error type %v, got %v", tt.wantErrType, err)
				}
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, got)
			}
			pageRepo.AssertExpectations(t)
		})
	}
}

func TestPageService_Delete(t *testing.T) {
	log := logger.New("test")
	sections := []*model.Section{
		{ID: 10, PageID: 1, Position: 1},
		{ID: 11, PageID: 1, Position: 2},
	}
	tests := []struct {
		name        string
		mocks       func(pageRepo *page_mock.Repository, sectionRepo *section_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction, txPageRepo *page_mock.Repository, txAttachmentRepo *attachment_mock.Repository)
		id          int64
		wantErr     bool
		wantErrType error
	}{
		{
			name: "Success detaches every section's attachments",
			mocks: func(pageRepo *page_mock.Repository, sectionRepo *section_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction, txPageRepo *page_mock.Repository, txAttachmentRepo *attachment_mock.Repository) {
				sectionRepo.On("GetByPage", mock.Anything, int64(1)).Return(sections, nil)
				uow.On("Begin", mock.Anything).Return(tx, nil)
				tx.On("AttachmentRepository").Return(txAttachmentRepo)
				tx.On("PageRepository").Return(txPageRepo)
				txAttachmentRepo.On("DetachAll", mock.Anything, model.AttachmentOwner{Type: model.OwnerTypeSection, ID: 10}).Return(nil)
				txAttachmentRepo.On("DetachAll", mock.Anything, model.AttachmentOwner{Type: model.OwnerTypeSection, ID: 11}).Return(nil)
				txPageRepo.On("Delete", mock.Anything, int64(1)).Return(nil)
				tx.On("Commit", mock.Anything).Return(nil)
			},
			id:      1,
			wantErr: false,
		},
		{
			name: "Page not found",
			mocks: func(pageRepo *page_mock.Repository, sectionRepo *section_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction, txPageRepo *page_mock.Repository, txAttachmentRepo *attachment_mock.Repository) {
				sectionRepo.On("GetByPage", mock.Anything, int64(99)).Return([]*model.Section{}, nil)
				uow.On("Begin", mock.Anything).Return(tx, nil)
				tx.On("AttachmentRepository").Return(txAttachmentRepo)
				tx.On("PageRepository").Return(txPageRepo)
				txPageRepo.On("Delete", mock.Anything, int64(99)).Return(custom_errors.ErrPageNotFound)
				tx.On("Rollback", mock.Anything).Return(nil)
			},
			id:          99,
			wantErr:     true,
			wantErrType: custom_errors.ErrPageNotFound,
		},
		{
			name: "Detach failure rolls back",
			mocks: func(pageRepo *page_mock.Repository, sectionRepo *section_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction, txPageRepo *page_mock.Repository, txAttachmentRepo *attachment_mock.Repository) {
				sectionRepo.On("GetByPage", mock.Anything, int64(1)).Return(sections, nil)
				uow.On("Begin", mock.Anything).Return(tx, nil)
				tx.On("AttachmentRepository").Return(txAttachmentRepo)
				txAttachmentRepo.On("DetachAll", mock.Anything, model.AttachmentOwner{Type: model.OwnerTypeSection, ID: 10}).Return(custom_errors.ErrAttachmentDetachFailed)
				tx.On("Rollback", mock.Anything).Return(nil)
			},
			id:          1,
			wantErr:     true,
			wantErrType: custom_errors.ErrAttachmentDetachFailed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pageRepo := new(page_mock.Repository)
			sectionRepo := new(section_mock.Repository)
			uow := new(postgres_mock.UnitOfWork)
			tx := new(postgres_mock.Transaction)
			txPageRepo := new(page_mock.Repository)
			txAttachmentRepo := new(attachment_mock.Repository)

			if tt.mocks != nil {
				tt.mocks(pageRepo, sectionRepo, uow, tx, txPageRepo, txAttachmentRepo)
			}

			s := NewPageService(pageRepo, sectionRepo, uow, log)
			err := s.Delete(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantErrType != nil {
					assert.True(t, errors.Is(err, tt.wantErrType), "expected error type %v, got %v", tt.wantErrType, err)
				}
			} else {
				assert.NoError(t, err)
			}

			pageRepo.AssertExpectations(t)
			sectionRepo.AssertExpectations(t)
			uow.AssertExpectations(t)
			tx.AssertExpectations(t)
			txPageRepo.AssertExpectations(t)
			txAttachmentRepo.AssertExpectations(t)
		})
	}
}
