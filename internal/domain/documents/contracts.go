package documents

import (
	"context"
)

// SignRequest carries what the member typed and where the request came from.
type SignRequest struct {
	ProfileID  string
	DocumentID string
	SignerName string
	IPAddress  string
	UserAgent  string
}

// DocumentService serves agreements and records signatures.
type DocumentService interface {
	// GetActive returns the active document of kind.
	GetActive(ctx context.Context, kind Kind) (*Document, error)

	// Publish stores a new version of kind and makes it the only active one. Admin only.
	Publish(ctx context.Context, adminID string, kind Kind, title, content string) (*Document, error)

	// Sign records a signature and advances the signer's profile status.
	Sign(ctx context.Context, req SignRequest) (*Signature, error)

	// ListSignatures returns every signature made by profileID, newest first.
	ListSignatures(ctx context.Context, profileID string) ([]*Signature, error)
}

// DocumentRepository persists documents.
type DocumentRepository interface {
	Create(ctx context.Context, doc *Document) error
	GetByID(ctx context.Context, id string) (*Document, error)
	GetActive(ctx context.Context, kind Kind) (*Document, error)
	LatestVersion(ctx context.Context, kind Kind) (int, error)
	DeactivateKind(ctx context.Context, kind Kind) error
}

// SignatureRepository persists signatures. A (document, profile) pair is unique.
type SignatureRepository interface {
	Create(ctx context.Context, sig *Signature) error
	ListByProfile(ctx context.Context, profileID string) ([]*Signature, error)
	Exists(ctx context.Context, documentID, profileID string) (bool, error)
}
