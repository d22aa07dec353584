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
	attachment_service "portfolio-content-service/internal/service/attachment"
	"portfolio-content-service/internal/template"
	attachment_mock "portfolio-content-service/mocks/attachment"
	page_mock "portfolio-content-service/mocks/page"
	postgres_mock "portfolio-content-service/mocks/postgres"
	section_mock "portfolio-content-service/mocks/section"
)

func strPtr(s string) *string { return &s }

func testRegistry(log *logger.Logger) template.Registry {
	return template.NewStaticRegistry([]*model.TemplateDefinition{
		{
			Key: "text_block",
			Fields: []model.TemplateField{
				{Name: "title", Type: model.FieldTypeText},
				{Name: "body", Type: model.FieldTypeRichText},
			},
		},
		{
			Key: "hero",
			Fields: []model.TemplateField{
				{Name: "heading", Type: model.FieldTypeText},
				{Name: "background", Type: model.FieldTypeImage},
			},
		},
	}, log)
}

func TestSectionService_Create(t *testing.T) {
	log := logger.New("test")
	type args struct {
		ctx    context.Context
		pageID int64
		dto    *model.CreateSectionDTO
	}
	tests := []struct {
		name        string
		mocks       func(sectionRepo *section_mock.Repository, attachmentRepo *attachment_mock.Repository, pageRepo *page_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction, txSectionRepo *section_mock.Repository, txAttachmentRepo *attachment_mock.Repository)
		args        args
		wantErr     bool
		wantErrType error
	}{
		{
			name: "Success",
			mocks: func(sectionRepo *section_mock.Repository, attachmentRepo *attachment_mock.Repository, pageRepo *page_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction, txSectionRepo *section_mock.Repository, txAttachmentRepo *attachment_mock.Repository) {
				pageRepo.On("GetByID", mock.Anything, int64(1)).Return(&model.Page{ID: 1, Locale: "en", Slug: "home"}, nil)
				uow.On("Begin", mock.Anything).Return(tx, nil)
				tx.On("SectionRepository").Return(txSectionRepo)
				tx.On("AttachmentRepository").Return(txAttachmentRepo)
				txSectionRepo.On("Create", mock.Anything, mock.MatchedBy(func(s *model.Section) bool {
					// Undeclared keys must be dropped before persistence.
					_, leaked := s.Data["unknown"]
					return s.TemplateKey == "text_block" && s.Locale == "en" && !leaked
				})).Return(&model.Section{ID: 7, PageID: 1, TemplateKey: "text_block", Position: 1, Locale: "en"}, nil)
				tx.On("Commit", mock.Anything).Return(nil)
				attachmentRepo.On("GetByOwner", mock.Anything, model.AttachmentOwner{Type: model.OwnerTypeSection, ID: 7}).Return([]*model.ImageAttachment{}, nil)
			},
			args: args{
				ctx:    context.Background(),
				pageID: 1,
				dto: &model.CreateSectionDTO{
					TemplateKey: "text_block",
					Data:        map[string]any{"title": "Hi", "unknown": "dropped"},
				},
			},
			wantErr: false,
		},
		{
			name: "Media data syncs attachments in the same transaction",
			mocks: func(sectionRepo *section_mock.Repository, attachmentRepo *attachment_mock.Repository, pageRepo *page_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction, txSectionRepo *section_mock.Repository, txAttachmentRepo *attachment_mock.Repository) {
				pageRepo.On("GetByID", mock.Anything, int64(1)).Return(&model.Page{ID: 1, Locale: "en", Slug: "home"}, nil)
				uow.On("Begin", mock.Anything).Return(tx, nil)
				tx.On("SectionRepository").Return(txSectionRepo)
				tx.On("AttachmentRepository").Return(txAttachmentRepo)
				txSectionRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Section")).Return(&model.Section{ID: 8, PageID: 1, TemplateKey: "hero", Position: 1, Locale: "en"}, nil)
				txAttachmentRepo.On("GetByOwner", mock.Anything, model.AttachmentOwner{Type: model.OwnerTypeSection, ID: 8}).Return([]*model.ImageAttachment{}, nil)
				txAttachmentRepo.On("Detach", mock.Anything, mock.Anything).Return(nil)
				txAttachmentRepo.On("Upsert", mock.Anything, model.AttachmentOwner{Type: model.OwnerTypeSection, ID: 8}, mock.MatchedBy(func(rows []*model.ImageAttachment) bool {
					return len(rows) == 1 && rows[0].ImageID == 5 && rows[0].Slot == "background" && rows[0].IsCover
				})).Return(nil)
				tx.On("Commit", mock.Anything).Return(nil)
				attachmentRepo.On("GetByOwner", mock.Anything, model.AttachmentOwner{Type: model.OwnerTypeSection, ID: 8}).Return([]*model.ImageAttachment{
					{ID: 1, OwnerType: model.OwnerTypeSection, OwnerID: 8, Slot: "background", ImageID: 5, IsCover: true},
				}, nil)
			},
			args: args{
				ctx:    context.Background(),
				pageID: 1,
				dto: &model.CreateSectionDTO{
					TemplateKey: "hero",
					Data:        map[string]any{"heading": "Hi", "background": float64(5)},
				},
			},
			wantErr: false,
		},
		{
			name:  "Template key required",
			mocks: nil,
			args: args{
				ctx:    context.Background(),
				pageID: 1,
				dto:    &model.CreateSectionDTO{TemplateKey: ""},
			},
			wantErr:     true,
			wantErrType: custom_errors.ErrTemplateRequired,
		},
		{
			name: "Page not found",
			mocks: func(sectionRepo *section_mock.Repository, attachmentRepo *attachment_mock.Repository, pageRepo *page_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction, txSectionRepo *section_mock.Repository, txAttachmentRepo *attachment_mock.Repository) {
				pageRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, custom_errors.ErrPageNotFound)
			},
			args: args{
				ctx:    context.Background(),
				pageID: 99,
				dto:    &model.CreateSectionDTO{TemplateKey: "text_block"},
			},
			wantErr:     true,
			wantErrType: custom_errors.ErrPageNotFound,
		},
		{
			name: "Unknown template",
			mocks: func(sectionRepo *section_mock.Repository, attachmentRepo *attachment_mock.Repository, pageRepo *page_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction, txSectionRepo *section_mock.Repository, txAttachmentRepo *attachment_mock.Repository) {
				pageRepo.On("GetByID", mock.Anything, int64(1)).Return(&model.Page{ID: 1, Locale: "en", Slug: "home"}, nil)
			},
			args: args{
				ctx:    context.Background(),
				pageID: 1,
				dto:    &model.CreateSectionDTO{TemplateKey: "missing"},
			},
			wantErr:     true,
			wantErrType: custom_errors.ErrTemplateNotFound,
		},
		{
			name: "Create failure rolls back",
			mocks: func(sectionRepo *section_mock.Repository, attachmentRepo *attachment_mock.Repository, pageRepo *page_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction, txSectionRepo *section_mock.Repository, txAttachmentRepo *attachment_mock.Repository) {
				pageRepo.On("GetByID", mock.Anything, int64(1)).Return(&model.Page{ID: 1, Locale: "en", Slug: "home"}, nil)
				uow.On("Begin", mock.Anything).Return(tx, nil)
				tx.On("SectionRepository").Return(txSectionRepo)
				txSectionRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Section")).Return(nil, custom_errors.ErrDatabaseQuery)
				tx.On("Rollback", mock.Anything).Return(nil)
			},
			args: args{
				ctx:    context.Background(),
				pageID: 1,
				dto:    &model.CreateSectionDTO{TemplateKey: "text_block"},
			},
			wantErr:     true,
			wantErrType: custom_errors.ErrDatabaseQuery,
		},
		{
			name: "Transaction begin error",
			mocks: func(sectionRepo *section_mock.Repository, attachmentRepo *attachment_mock.Repository, pageRepo *page_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction, txSectionRepo *section_mock.Repository, txAttachmentRepo *attachment_mock.Repository) {
				pageRepo.On("GetByID", mock.Anything, int64(1)).Return(&model.Page{ID: 1, Locale: "en", Slug: "home"}, nil)
				uow.On("Begin", mock.Anything).Return(nil, errors.New("db error"))
			},
			args: args{
				ctx:    context.Background(),
				pageID: 1,
				dto:    &model.CreateSectionDTO{TemplateKey: "text_block"},
			},
			wantErr:     true,
			wantErrType: custom_errors.ErrDatabaseQuery,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sectionRepo := new(section_mock.Repository)
			attachmentRepo := new(attachment_mock.Repository)
			pageRepo := new(page_mock.Repository)
			uow := new(postgres_mock.UnitOfWork)
			tx := new(postgres_mock.Transaction)
			txSectionRepo := new(section_mock.Repository)
			txAttachmentRepo := new(attachment_mock.Repository)

			if tt.mocks != nil {
				tt.mocks(sectionRepo, attachmentRepo, pageRepo, uow, tx, txSectionRepo, txAttachmentRepo)
			}

			s := NewSectionService(
				sectionRepo,
				attachmentRepo,
				pageRepo,
				uow,
				testRegistry(log),
				attachment_service.NewSynchronizer(log, metrics.NewNoopProvider()),
				log,
				metrics.NewNoopProvider(),
			)
			got, err := s.Create(tt.args.ctx, tt.args.pageID, tt.args.dto)

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

			sectionRepo.AssertExpectations(t)
			attachmentRepo.AssertExpectations(t)
			pageRepo.AssertExpectations(t)
			uow.AssertExpectations(t)
			tx.AssertExpectations(t)
			txSectionRepo.AssertExpectations(t)
			txAttachmentRepo.AssertExpectations(t)
		})
	}
}

func TestSectionService_Update(t *testing.T) {
	log := logger.New("test")
	existing := &model.Section{
		ID:          7,
		PageID:      1,
		TemplateKey: "text_block",
		Position:    2,
		Data:        map[string]any{"title": "Old"},
		IsActive:    true,
		Locale:      "en",
	}
	type args struct {
		ctx context.Context
		id  int64
		dto *model.UpdateSectionDTO
	}
	tests := []struct {
		name        string
		mocks       func(sectionRepo *section_mock.Repository, attachmentRepo *attachment_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction, txSectionRepo *section_mock.Repository, txAttachmentRepo *attachment_mock.Repository)
		args        args
		wantErr     bool
		wantErrType error
	}{
		{
			name: "Absent template key keeps the current one",
			mocks: func(sectionRepo *section_mock.Repository, attachmentRepo *attachment_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction, txSectionRepo *section_mock.Repository, txAttachmentRepo *attachment_mock.Repository) {
				current := *existing
				sectionRepo.On("GetByID", mock.Anything, int64(7)).Return(&current, nil)
				uow.On("Begin", mock.Anything).Return(tx, nil)
				tx.On("SectionRepository").Return(txSectionRepo)
				tx.On("AttachmentRepository").Return(txAttachmentRepo)
				txSectionRepo.On("Update", mock.Anything, mock.MatchedBy(func(s *model.Section) bool {
					return s.TemplateKey == "text_block" && s.Data["title"] == "New"
				})).Return(&model.Section{ID: 7, PageID: 1, TemplateKey: "text_block", Position: 2, Data: map[string]any{"title": "New"}, Locale: "en"}, nil)
				tx.On("Commit", mock.Anything).Return(nil)
				attachmentRepo.On("GetByOwner", mock.Anything, model.AttachmentOwner{Type: model.OwnerTypeSection, ID: 7}).Return([]*model.ImageAttachment{}, nil)
			},
			args: args{
				ctx: context.Background(),
				id:  7,
				dto: &model.UpdateSectionDTO{Data: map[string]any{"title": "New"}},
			},
			wantErr: false,
		},
		{
			name: "Absent data is re-normalized from the stored payload",
			mocks: func(sectionRepo *section_mock.Repository, attachmentRepo *attachment_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction, txSectionRepo *section_mock.Repository, txAttachmentRepo *attachment_mock.Repository) {
				current := *existing
				sectionRepo.On("GetByID", mock.Anything, int64(7)).Return(&current, nil)
				uow.On("Begin", mock.Anything).Return(tx, nil)
				tx.On("SectionRepository").Return(txSectionRepo)
				tx.On("AttachmentRepository").Return(txAttachmentRepo)
				txSectionRepo.On("Update", mock.Anything, mock.MatchedBy(func(s *model.Section) bool {
					return s.Data["title"] == "Old" && s.NavLabel != nil && *s.NavLabel == "About"
				})).Return(&model.Section{ID: 7, PageID: 1, TemplateKey: "text_block", Position: 2, Data: map[string]any{"title": "Old"}, Locale: "en"}, nil)
				tx.On("Commit", mock.Anything).Return(nil)
				attachmentRepo.On("GetByOwner", mock.Anything, model.AttachmentOwner{Type: model.OwnerTypeSection, ID: 7}).Return([]*model.ImageAttachment{}, nil)
			},
			args: args{
				ctx: context.Background(),
				id:  7,
				dto: &model.UpdateSectionDTO{NavLabel: strPtr("About")},
			},
			wantErr: false,
		},
		{
			name: "Section not found",
			mocks: func(sectionRepo *section_mock.Repository, attachmentRepo *attachment_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction, txSectionRepo *section_mock.Repository, txAttachmentRepo *attachment_mock.Repository) {
				sectionRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, custom_errors.ErrSectionNotFound)
			},
			args: args{
				ctx: context.Background(),
				id:  99,
				dto: &model.UpdateSectionDTO{Data: map[string]any{"title": "New"}},
			},
			wantErr:     true,
			wantErrType: custom_errors.ErrSectionNotFound,
		},
		{
			name: "Unknown template",
			mocks: func(sectionRepo *section_mock.Repository, attachmentRepo *attachment_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction, txSectionRepo *section_mock.Repository, txAttachmentRepo *attachment_mock.Repository) {
				current := *existing
				sectionRepo.On("GetByID", mock.Anything, int64(7)).Return(&current, nil)
			},
			args: args{
				ctx: context.Background(),
				id:  7,
				dto: &model.UpdateSectionDTO{TemplateKey: strPtr("missing")},
			},
			wantErr:     true,
			wantErrType: custom_errors.ErrTemplateNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sectionRepo := new(section_mock.Repository)
			attachmentRepo := new(attachment_mock.Repository)
			pageRepo := new(page_mock.Repository)
			uow := new(postgres_mock.UnitOfWork)
			tx := new(postgres_mock.Transaction)
			txSectionRepo := new(section_mock.Repository)
			txAttachmentRepo := new(attachment_mock.Repository)

			if tt.mocks != nil {
				tt.mocks(sectionRepo, attachmentRepo, uow, tx, txSectionRepo, txAttachmentRepo)
			}

			s := NewSectionService(
				sectionRepo,
				attachmentRepo,
				pageRepo,
				uow,
				testRegistry(log),
				attachment_service.NewSynchronizer(log, metrics.NewNoopProvider()),
				log,
				metrics.NewNoopProvider(),
			)
			got, err := s.Update(tt.args.ctx, tt.args.id, tt.args.dto)

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

			sectionRepo.AssertExpectations(t)
			attachmentRepo.AssertExpectations(t)
			uow.AssertExpectations(t)
			tx.AssertExpectations(t)
			txSectionRepo.AssertExpectations(t)
			txAttachmentRepo.AssertExpectations(t)
		})
	}
}

func TestSectionService_Delete(t *testing.T) {
	log := logger.New("test")
	tests := []struct {
		name        string
		mocks       func(uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction, txSectionRepo *section_mock.Repository, txAttachmentRepo *attachment_mock.Repository)
		id          int64
		wantErr     bool
		wantErrType error
	}{
		{
			name: "Success detaches attachments first",
			mocks: func(uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction, txSectionRepo *section_mock.Repository, txAttachmentRepo *attachment_mock.Repository) {
				uow.On("Begin", mock.Anything).Return(tx, nil)
				tx.On("AttachmentRepository").Return(txAttachmentRepo)
				tx.On("SectionRepository").Return(txSectionRepo)
				txAttachmentRepo.On("DetachAll", mock.Anything, model.AttachmentOwner{Type: model.OwnerTypeSection, ID: 7}).Return(nil)
				txSectionRepo.On("Delete", mock.Anything, int64(7)).Return(nil)
				tx.On("Commit", mock.Anything).Return(nil)
			},
			id:      7,
			wantErr: false,
		},
		{
			name: "Section not found",
			mocks: func(uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction, txSectionRepo *section_mock.Repository, txAttachmentRepo *attachment_mock.Repository) {
				uow.On("Begin", mock.Anything).Return(tx, nil)
				tx.On("AttachmentRepository").Return(txAttachmentRepo)
				tx.On("SectionRepository").Return(txSectionRepo)
				txAttachmentRepo.On("DetachAll", mock.Anything, model.AttachmentOwner{Type: model.OwnerTypeSection, ID: 99}).Return(nil)
				txSectionRepo.On("Delete", mock.Anything, int64(99)).Return(custom_errors.ErrSectionNotFound)
				tx.On("Rollback", mock.Anything).Return(nil)
			},
			id:          99,
			wantErr:     true,
			wantErrType: custom_errors.ErrSectionNotFound,
		},
		{
			name: "Detach failure rolls back",
			mocks: func(uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction, txSectionRepo *section_mock.Repository, txAttachmentRepo *attachment_mock.Repository) {
				uow.On("Begin", mock.Anything).Return(tx, nil)
				tx.On("AttachmentRepository").Return(txAttachmentRepo)
				txAttachmentRepo.On("DetachAll", mock.Anything, model.AttachmentOwner{Type: model.OwnerTypeSection, ID: 7}).Return(custom_errors.ErrAttachmentDetachFailed)
				tx.On("Rollback", mock.Anything).Return(nil)
			},
			id:          7,
			wantErr:     true,
			wantErrType: custom_errors.ErrAttachmentDetachFailed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sectionRepo := new(section_mock.Repository)
			attachmentRepo := new(attachment_mock.Repository)
			pageRepo := new(page_mock.Repository)
			uow := new(postgres_mock.UnitOfWork)
			tx := new(postgres_mock.Transaction)
			txSectionRepo := new(section_mock.Repository)
			txAttachmentRepo := new(attachment_mock.Repository)

			if tt.mocks != nil {
				tt.mocks(uow, tx, txSectionRepo, txAttachmentRepo)
			}

			s := NewSectionService(
				sectionRepo,
				attachmentRepo,
				pageRepo,
				uow,
				testRegistry(log),
				attachment_service.NewSynchronizer(log, metrics.NewNoopProvider()),
				log,
				metrics.NewNoopProvider(),
			)
			err := s.Delete(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantErrType != nil {
					assert.True(t, errors.Is(err, tt.wantErrType), "expected error type %v, got %v", tt.wantErrType, err)
				}
			} else {
				assert.NoError(t, err)
			}

			uow.AssertExpectations(t)
			tx.AssertExpectations(t)
			txSectionRepo.AssertExpectations(t)
			txAttachmentRepo.AssertExpectations(t)
		})
	}
}
