package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/documents"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/infrastructure/persistence/models"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/pkg/logger"
)

type gormSignatureRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormSignatureRepository creates a new GORM-based SignatureRepository implementation
func NewGormSignatureRepository(db *gorm.DB, logger logger.Logger) (documents.SignatureRepository, error) {
	return &gormSignatureRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormSignatureRepository) Create(ctx context.Context, sig *documents.Signature) error {
	if err := sig.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.SignatureModel{}
	model.FromDomain(sig)

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return translate(err, "create", "signature", sig.DocumentID)
	}

	r.logger.Info("Recorded signature", "id", sig.ID, "document_id", sig.DocumentID, "profile_id", sig.ProfileID)
	return nil
}

func (r *gormSignatureRepository) ListByProfile(ctx context.Context, profileID string) ([]*documents.Signature, error) {
	var modelList []*models.SignatureModel
	err := conn(ctx, r.db).
		Where("profile_id = ?", profileID).
		Order("date_time_signed desc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch signatures: %w", err)
	}

	domainList := make([]*documents.Signature, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormSignatureRepository) Exists(ctx context.Context, documentID, profileID string) (bool, error) {
	var count int64
	err := conn(ctx, r.db).Model(&models.SignatureModel{}).
		Where("document_id = ? AND profile_id = ?", documentID, profileID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check signature: %w", err)
	}
	return count > 0, nil
}
