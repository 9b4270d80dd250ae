package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/apperrors"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/documents"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/profiles"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/pkg/logger"
)

// documentService implements the DocumentService interface
type documentService struct {
	documentRepo  documents.DocumentRepository
	signatureRepo documents.SignatureRepository
	profileRepo   profiles.ProfileRepository
	transactor    Transactor
	logger        logger.Logger
	now           func() time.Time
}

// NewDocumentService creates a new instance of DocumentService
func NewDocumentService(
	documentRepo documents.DocumentRepository,
	signatureRepo documents.SignatureRepository,
	profileRepo profiles.ProfileRepository,
	transactor Transactor,
	logger logger.Logger,
) (documents.DocumentService, error) {
	return &documentService{
		documentRepo:  documentRepo,
		signatureRepo: signatureRepo,
		profileRepo:   profileRepo,
		transactor:    transactor,
		logger:        logger,
		now:           time.Now,
	}, nil
}

func (s *documentService) GetActive(ctx context.Context, kind documents.Kind) (*documents.Document, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown document kind %q", apperrors.ErrValidation, kind)
	}
	return s.documentRepo.GetActive(ctx, kind)
}

// Publish stores content as the next version of kind. Earlier versions stay
// in place for the signatures that reference them but become inactive.
func (s *documentService) Publish(ctx context.Context, adminID string, kind documents.Kind, title, content string) (*documents.Document, error) {
	if _, err := requireAdmin(ctx, s.profileRepo, adminID); err != nil {
		return nil, err
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown document kind %q", apperrors.ErrValidation, kind)
	}

	var published *documents.Document
	err := s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		latest, err := s.documentRepo.LatestVersion(ctx, kind)
		if err != nil {
			return err
		}
		if err := s.documentRepo.DeactivateKind(ctx, kind); err != nil {
			return err
		}

		doc := &documents.Document{
			ID:              uuid.NewString(),
			Kind:            kind,
			Title:           title,
			Version:         latest + 1,
			Content:         content,
			Active:          true,
			CreatedBy:       adminID,
			DateTimeCreated: s.now().UTC(),
		}
		if err := s.documentRepo.Create(ctx, doc); err != nil {
			return err
		}
		published = doc
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to publish %s: %w", kind, err)
	}

	s.logger.Info("Published document", "id", published.ID, "kind", kind, "version", published.Version)
	return published, nil
}

// Sign records the signature and advances the signer in one transaction, so a
// signature never exists without the matching status change.
func (s *documentService) Sign(ctx context.Context, req documents.SignRequest) (*documents.Signature, error) {
	var signature *documents.Signature
	err := s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		doc, err := s.documentRepo.GetByID(ctx, req.DocumentID)
		if err != nil {
			return err
		}
		if !doc.Active {
			return fmt.Errorf("%w: %s version %d has been superseded", apperrors.ErrConflict, doc.Kind, doc.Version)
		}

		profile, err := s.profileRepo.GetByID(ctx, req.ProfileID)
		if err != nil {
			return err
		}

		signed, err := s.signatureRepo.Exists(ctx, doc.ID, profile.ID)
		if err != nil {
			return err
		}
		if signed {
			return fmt.Errorf("%w: %s already signed", apperrors.ErrConflict, doc.Kind)
		}

		required := doc.Kind.RequiredStatus()
		if profile.Status != required {
			return fmt.Errorf("%w: signing the %s requires status %s, profile is %s",
				apperrors.ErrInvalidTransition, doc.Kind, required, profile.Status)
		}

		sig := &documents.Signature{
			ID:             uuid.NewString(),
			DocumentID:     doc.ID,
			DocumentKind:   doc.Kind,
			ProfileID:      profile.ID,
			SignerName:     req.SignerName,
			IPAddress:      req.IPAddress,
			UserAgent:      req.UserAgent,
			DateTimeSigned: s.now().UTC(),
		}
		if err := s.signatureRepo.Create(ctx, sig); err != nil {
			return err
		}

		if _, err := s.profileRepo.TransitionStatus(ctx, profile.ID, required, doc.Kind.StatusAfterSigning()); err != nil {
			return err
		}
		signature = sig
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Document signed", "document_id", signature.DocumentID, "kind", signature.DocumentKind, "profile_id", signature.ProfileID)
	return signature, nil
}

func (s *documentService) ListSignatures(ctx context.Context, profileID string) ([]*documents.Signature, error) {
	return s.signatureRepo.ListByProfile(ctx, profileID)
}
