//go:build unit
// +build unit

package v1

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/apperrors"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/documents"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/profiles"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/infrastructure/auth"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/pkg/testutil"
)

var testAdmin = &auth.Principal{Subject: "auth0|admin-1", Email: "coach@example.com"}

func TestAdminHandler_ListProfiles_ParsesQuery(t *testing.T) {
	mockProfileService := new(MockProfileService)
	handler := NewAdminHandler(mockProfileService, new(MockDocumentService), testutil.SetupTestLogger(t))

	mockProfileService.On("List", mock.Anything, testAdmin.Subject, mock.MatchedBy(func(q *profiles.ProfileQuery) bool {
		return q.Status == profiles.StatusPendingApproval && q.Limit == 10 && q.Offset == 20 &&
			q.SortBy == profiles.SortByEmail && q.SortOrder == "asc"
	})).Return([]*profiles.Profile{testProfile(profiles.StatusPendingApproval)}, nil)

	c, w := newTestContext(t, http.MethodGet,
		"/api/v1/sf/admin/profiles?status=pending_approval&limit=10&offset=20&sortBy=email&sortOrder=asc", nil, testAdmin)
	handler.ListProfiles(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []ProfileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
	mockProfileService.AssertExpectations(t)
}

func TestAdminHandler_ListProfiles_Defaults(t *testing.T) {
	mockProfileService := new(MockProfileService)
	handler := NewAdminHandler(mockProfileService, new(MockDocumentService), testutil.SetupTestLogger(t))

	mockProfileService.On("List", mock.Anything, testAdmin.Subject, profiles.NewProfileQuery()).Return([]*profiles.Profile{}, nil)

	c, w := newTestContext(t, http.MethodGet, "/api/v1/sf/admin/profiles", nil, testAdmin)
	handler.ListProfiles(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestAdminHandler_ListProfiles_BadLimit(t *testing.T) {
	mockProfileService := new(MockProfileService)
	handler := NewAdminHandler(mockProfileService, new(MockDocumentService), testutil.SetupTestLogger(t))

	c, w := newTestContext(t, http.MethodGet, "/api/v1/sf/admin/profiles?limit=ten", nil, testAdmin)
	handler.ListProfiles(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockProfileService.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminHandler_Approve(t *testing.T) {
	t.Run("approved", func(t *testing.T) {
		mockProfileService := new(MockProfileService)
		handler := NewAdminHandler(mockProfileService, new(MockDocumentService), testutil.SetupTestLogger(t))
		mockProfileService.On("Approve", mock.Anything, testAdmin.Subject, testPrincipal.Subject).
			Return(testProfile(profiles.StatusPendingContract), nil)

		c, w := newTestContext(t, http.MethodPost, "/api/v1/sf/admin/profiles/x/approve", nil, testAdmin)
		c.Params = gin.Params{{Key: "id", Value: testPrincipal.Subject}}
		handler.Approve(c)

		require.Equal(t, http.StatusOK, w.Code)
		var resp ProfileResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "pending_contract", resp.Status)
	})

	t.Run("wrong stage", func(t *testing.T) {
		mockProfileService := new(MockProfileService)
		handler := NewAdminHandler(mockProfileService, new(MockDocumentService), testutil.SetupTestLogger(t))
		mockProfileService.On("Approve", mock.Anything, testAdmin.Subject, testPrincipal.Subject).
			Return(nil, apperrors.ErrInvalidTransition)

		c, w := newTestContext(t, http.MethodPost, "/api/v1/sf/admin/profiles/x/approve", nil, testAdmin)
		c.Params = gin.Params{{Key: "id", Value: testPrincipal.Subject}}
		handler.Approve(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestAdminHandler_Reject(t *testing.T) {
	mockProfileService := new(MockProfileService)
	handler := NewAdminHandler(mockProfileService, new(MockDocumentService), testutil.SetupTestLogger(t))

	rejected := testProfile(profiles.StatusRejected)
	rejected.RejectionReason = "schedule mismatch"
	mockProfileService.On("Reject", mock.Anything, testAdmin.Subject, testPrincipal.Subject, "schedule mismatch").Return(rejected, nil)

	c, w := newTestContext(t, http.MethodPost, "/api/v1/sf/admin/profiles/x/reject", RejectProfileRequest{Reason: "schedule mismatch"}, testAdmin)
	c.Params = gin.Params{{Key: "id", Value: testPrincipal.Subject}}
	handler.Reject(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp ProfileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "rejected", resp.Status)
	assert.Equal(t, "schedule mismatch", resp.RejectionReason)
}

func TestAdminHandler_Reject_MissingReason(t *testing.T) {
	mockProfileService := new(MockProfileService)
	handler := NewAdminHandler(mockProfileService, new(MockDocumentService), testutil.SetupTestLogger(t))

	c, w := newTestContext(t, http.MethodPost, "/api/v1/sf/admin/profiles/x/reject", RejectProfileRequest{}, testAdmin)
	c.Params = gin.Params{{Key: "id", Value: testPrincipal.Subject}}
	handler.Reject(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminHandler_PublishDocument(t *testing.T) {
	mockDocumentService := new(MockDocumentService)
	handler := NewAdminHandler(new(MockProfileService), mockDocumentService, testutil.SetupTestLogger(t))

	doc := &documents.Document{ID: "doc-3", Kind: documents.KindContract, Title: "Membership", Version: 3, Content: "terms", Active: true}
	mockDocumentService.On("Publish", mock.Anything, testAdmin.Subject, documents.KindContract, "Membership", "terms").Return(doc, nil)

	c, w := newTestContext(t, http.MethodPost, "/api/v1/sf/admin/documents",
		PublishDocumentRequest{Kind: "contract", Title: "Membership", Content: "terms"}, testAdmin)
	handler.PublishDocument(c)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp DocumentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Version)
	mockDocumentService.AssertExpectations(t)
}

func TestAdminHandler_PublishDocument_Forbidden(t *testing.T) {
	mockDocumentService := new(MockDocumentService)
	handler := NewAdminHandler(new(MockProfileService), mockDocumentService, testutil.SetupTestLogger(t))
	mockDocumentService.On("Publish", mock.Anything, testPrincipal.Subject, documents.KindNDA, "NDA", "terms").Return(nil, apperrors.ErrForbidden)

	c, w := newTestContext(t, http.MethodPost, "/api/v1/sf/admin/documents",
		PublishDocumentRequest{Kind: "nda", Title: "NDA", Content: "terms"}, testPrincipal)
	handler.PublishDocument(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
