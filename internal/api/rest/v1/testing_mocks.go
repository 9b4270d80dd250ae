//go:build unit
// +build unit

package v1

import (
	"context"
	"time"

	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/bookings"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/documents"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/profiles"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/scheduling"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/infrastructure/auth"

	"github.com/stretchr/testify/mock"
)

// MockProfileService is a mock implementation of ProfileService
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) Register(ctx context.Context, id, email, fullName string) (*profiles.Profile, error) {
	args := m.Called(ctx, id, email, fullName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profiles.Profile), args.Error(1)
}

func (m *MockProfileService) GetByID(ctx context.Context, id string) (*profiles.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profiles.Profile), args.Error(1)
}

func (m *MockProfileService) UpdateContact(ctx context.Context, id string, update profiles.ContactUpdate) (*profiles.Profile, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profiles.Profile), args.Error(1)
}

func (m *MockProfileService) List(ctx context.Context, adminID string, query *profiles.ProfileQuery) ([]*profiles.Profile, error) {
	args := m.Called(ctx, adminID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*profiles.Profile), args.Error(1)
}

func (m *MockProfileService) Approve(ctx context.Context, adminID, id string) (*profiles.Profile, error) {
	args := m.Called(ctx, adminID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profiles.Profile), args.Error(1)
}

func (m *MockProfileService) Reject(ctx context.Context, adminID, id, reason string) (*profiles.Profile, error) {
	args := m.Called(ctx, adminID, id, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profiles.Profile), args.Error(1)
}

func (m *MockProfileService) SetRole(ctx context.Context, id string, role profiles.Role) (*profiles.Profile, error) {
	args := m.Called(ctx, id, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profiles.Profile), args.Error(1)
}

// MockDocumentService is a mock implementation of DocumentService
type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) GetActive(ctx context.Context, kind documents.Kind) (*documents.Document, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*documents.Document), args.Error(1)
}

func (m *MockDocumentService) Publish(ctx context.Context, adminID string, kind documents.Kind, title, content string) (*documents.Document, error) {
	args := m.Called(ctx, adminID, kind, title, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*documents.Document), args.Error(1)
}

func (m *MockDocumentService) Sign(ctx context.Context, req documents.SignRequest) (*documents.Signature, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*documents.Signature), args.Error(1)
}

func (m *MockDocumentService) ListSignatures(ctx context.Context, profileID string) ([]*documents.Signature, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*documents.Signature), args.Error(1)
}

// MockAvailabilityService is a mock implementation of AvailabilityService
type MockAvailabilityService struct {
	mock.Mock
}

func (m *MockAvailabilityService) Slots(ctx context.Context, from, to time.Time) ([]scheduling.Interval, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]scheduling.Interval), args.Error(1)
}

func (m *MockAvailabilityService) Rules() scheduling.Rules {
	args := m.Called()
	return args.Get(0).(scheduling.Rules)
}

// MockBookingService is a mock implementation of BookingService
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) Book(ctx context.Context, profileID string, start time.Time, notes string) (*bookings.Booking, error) {
	args := m.Called(ctx, profileID, start, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.Booking), args.Error(1)
}

func (m *MockBookingService) ListByProfile(ctx context.Context, profileID string) ([]*bookings.Booking, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*bookings.Booking), args.Error(1)
}

func (m *MockBookingService) Cancel(ctx context.Context, profileID, bookingID string) (*bookings.Booking, error) {
	args := m.Called(ctx, profileID, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.Booking), args.Error(1)
}

func (m *MockBookingService) CompletePast(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

// MockTokenVerifier is a mock implementation of TokenVerifier
type MockTokenVerifier struct {
	mock.Mock
}

func (m *MockTokenVerifier) Verify(ctx context.Context, rawToken string) (*auth.Principal, error) {
	args := m.Called(ctx, rawToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Principal), args.Error(1)
}
