package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/documents"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/infrastructure/persistence/models"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/pkg/logger"
)

type gormDocumentRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormDocumentRepository creates a new GORM-based DocumentRepository implementation
func NewGormDocumentRepository(db *gorm.DB, logger logger.Logger) (documents.DocumentRepository, error) {
	return &gormDocumentRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormDocumentRepository) Create(ctx context.Context, doc *documents.Document) error {
	if err := doc.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.DocumentModel{}
	model.FromDomain(doc)

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return translate(err, "create", "document", doc.ID)
	}

	r.logger.Info("Created document", "id", doc.ID, "kind", doc.Kind, "version", doc.Version)
	return nil
}

func (r *gormDocumentRepository) GetByID(ctx context.Context, id string) (*documents.Document, error) {
	var model models.DocumentModel
	if err := conn(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		return nil, translate(err, "fetch", "document", id)
	}
	return model.ToDomain(), nil
}

func (r *gormDocumentRepository) GetActive(ctx context.Context, kind documents.Kind) (*documents.Document, error) {
	var model models.DocumentModel
	err := conn(ctx, r.db).
		Where("kind = ? AND active = ?", string(kind), true).
		Order("version desc").
		First(&model).Error
	if err != nil {
		return nil, translate(err, "fetch", "active document", string(kind))
	}
	return model.ToDomain(), nil
}

func (r *gormDocumentRepository) LatestVersion(ctx context.Context, kind documents.Kind) (int, error) {
	var version int
	err := conn(ctx, r.db).Model(&models.DocumentModel{}).
		Where("kind = ?", string(kind)).
		Select("COALESCE(MAX(version), 0)").
		Scan(&version).Error
	if err != nil {
		return 0, fmt.Errorf("failed to fetch latest document version: %w", err)
	}
	return version, nil
}

func (r *gormDocumentRepository) DeactivateKind(ctx context.Context, kind documents.Kind) error {
	err := conn(ctx, r.db).Model(&models.DocumentModel{}).
		Where("kind = ? AND active = ?", string(kind), true).
		Update("active", false).Error
	if err != nil {
		return fmt.Errorf("failed to deactivate documents: %w", err)
	}
	return nil
}
