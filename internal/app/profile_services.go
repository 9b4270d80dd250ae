package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/apperrors"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/profiles"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/pkg/logger"
)

// profileService implements the ProfileService interface
type profileService struct {
	profileRepo profiles.ProfileRepository
	transactor  Transactor
	logger      logger.Logger
	now         func() time.Time
}

// NewProfileService creates a new instance of ProfileService
func NewProfileService(profileRepo profiles.ProfileRepository, transactor Transactor, logger logger.Logger) (profiles.ProfileService, error) {
	return &profileService{
		profileRepo: profileRepo,
		transactor:  transactor,
		logger:      logger,
		now:         time.Now,
	}, nil
}

// Register returns the profile for id, creating it on first sign-in.
func (s *profileService) Register(ctx context.Context, id, email, fullName string) (*profiles.Profile, error) {
	existing, err := s.profileRepo.GetByID(ctx, id)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	profile := profiles.NewProfile(id, email, fullName, s.now().UTC())
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		// lost a race with a concurrent first request for the same subject
		if errors.Is(err, apperrors.ErrConflict) {
			return s.profileRepo.GetByID(ctx, id)
		}
		return nil, fmt.Errorf("failed to register profile: %w", err)
	}

	s.logger.Info("Registered profile", "id", id)
	return profile, nil
}

func (s *profileService) GetByID(ctx context.Context, id string) (*profiles.Profile, error) {
	return s.profileRepo.GetByID(ctx, id)
}

func (s *profileService) UpdateContact(ctx context.Context, id string, update profiles.ContactUpdate) (*profiles.Profile, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}
	return s.profileRepo.UpdateContact(ctx, id, update, s.now().UTC())
}

func (s *profileService) List(ctx context.Context, adminID string, query *profiles.ProfileQuery) ([]*profiles.Profile, error) {
	if _, err := requireAdmin(ctx, s.profileRepo, adminID); err != nil {
		return nil, err
	}
	if query == nil {
		query = profiles.NewProfileQuery()
	}
	return s.profileRepo.List(ctx, query)
}

func (s *profileService) Approve(ctx context.Context, adminID, id string) (*profiles.Profile, error) {
	if _, err := requireAdmin(ctx, s.profileRepo, adminID); err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.TransitionStatus(ctx, id, profiles.StatusPendingApproval, profiles.StatusPendingContract)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Profile approved", "id", id, "admin_id", adminID)
	return profile, nil
}

func (s *profileService) Reject(ctx context.Context, adminID, id, reason string) (*profiles.Profile, error) {
	if _, err := requireAdmin(ctx, s.profileRepo, adminID); err != nil {
		return nil, err
	}

	var rejected *profiles.Profile
	err := s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.profileRepo.TransitionStatus(ctx, id, profiles.StatusPendingApproval, profiles.StatusRejected); err != nil {
			return err
		}
		profile, err := s.profileRepo.SetRejectionReason(ctx, id, reason, s.now().UTC())
		if err != nil {
			return err
		}
		rejected = profile
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Profile rejected", "id", id, "admin_id", adminID)
	return rejected, nil
}

func (s *profileService) SetRole(ctx context.Context, id string, role profiles.Role) (*profiles.Profile, error) {
	if role != profiles.RoleAdmin && role != profiles.RoleMember {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, role)
	}

	profile, err := s.profileRepo.UpdateRole(ctx, id, role, s.now().UTC())
	if err != nil {
		return nil, err
	}

	s.logger.Info("Profile role changed", "id", id, "role", role)
	return profile, nil
}
