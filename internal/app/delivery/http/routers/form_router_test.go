package routers

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"forms-service/internal/app/config"
	"forms-service/internal/app/contracts"
	"forms-service/internal/app/delivery/http/middlewares"
	"forms-service/internal/app/services/core/submissions"
	"forms-service/internal/pkg/exceptions"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockSubmissionUsecase struct {
	mock.Mock
}

func (m *MockSubmissionUsecase) SubmitForm(ctx context.Context, formKind string, fields map[string]string) (*contracts.SubmissionResult, error) {
	args := m.Called(ctx, formKind, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contracts.SubmissionResult), args.Error(1)
}

func (m *MockSubmissionUsecase) SubmitSuggestion(ctx context.Context, fields map[string]string) (*contracts.SubmissionResult, error) {
	args := m.Called(ctx, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contracts.SubmissionResult), args.Error(1)
}

func (m *MockSubmissionUsecase) ListEntries(ctx context.Context, formKind, token string) ([]map[string]interface{}, error) {
	args := m.Called(ctx, formKind, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]map[string]interface{}), args.Error(1)
}

func newTestRouter(mockUsecase *MockSubmissionUsecase) *chi.Mux {
	logger := zap.NewNop()
	middlewareInstance := middlewares.NewMiddlewares(logger, &config.InternalConfig{})
	submissionController := submissions.NewSubmissionController(logger, mockUsecase)

	router := chi.NewRouter()
	SetupRoutes(router, middlewareInstance, submissionController)
	return router
}

func TestHeartbeatEndpoint(t *testing.T) {
	router := newTestRouter(new(MockSubmissionUsecase))

	req := httptest.NewRequest("GET", "/heartbeat/", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, 200, rr.Code)
	assert.Empty(t, rr.Body.String(), "heartbeat should have no body")
	assert.Equal(t, "SAMEORIGIN", rr.Header().Get("X-Frame-Options"))
	assert.Equal(t, "1; mode=block", rr.Header().Get("X-XSS-Protection"))
}

func TestUnknownPath(t *testing.T) {
	router := newTestRouter(new(MockSubmissionUsecase))

	req := httptest.NewRequest("GET", "/no/such/path/", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, 404, rr.Code)
	assert.Empty(t, rr.Body.String(), "unknown paths should render a bare 404")
}

func TestWriteFormEndpoint(t *testing.T) {
	t.Run("Accepted Submission Renders Success Page With Back Link", func(t *testing.T) {
		mockUsecase := new(MockSubmissionUsecase)
		mockUsecase.On("SubmitForm", mock.Anything, "add_biobank", mock.Anything).
			Return(&contracts.SubmissionResult{OriginURL: "http://portal/form"}, nil)
		router := newTestRouter(mockUsecase)

		body := strings.NewReader("token=secret&name=North&originUrl=http%3A%2F%2Fportal%2Fform")
		req := httptest.NewRequest("POST", "/forms/add_biobank/", body)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, 200, rr.Code)
		assert.Contains(t, rr.Body.String(), `<a href="http://portal/form">`)
		assert.Contains(t, rr.Body.String(), "Data successfully added.")
		mockUsecase.AssertExpectations(t)
	})

	t.Run("GET Submission Is Accepted Too", func(t *testing.T) {
		mockUsecase := new(MockSubmissionUsecase)
		mockUsecase.On("SubmitForm", mock.Anything, "add_collection", mock.Anything).
			Return(&contracts.SubmissionResult{}, nil)
		router := newTestRouter(mockUsecase)

		req := httptest.NewRequest("GET", "/forms/add_collection/?token=secret&name=North", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, 200, rr.Code)
		assert.NotContains(t, rr.Body.String(), "<a ", "no back link without an origin URL")
	})

	t.Run("Invalid Token Renders Failure Page With 401", func(t *testing.T) {
		mockUsecase := new(MockSubmissionUsecase)
		mockUsecase.On("SubmitForm", mock.Anything, "add_biobank", mock.Anything).
			Return(nil, exceptions.ErrFormTokenInvalid(nil))
		router := newTestRouter(mockUsecase)

		req := httptest.NewRequest("GET", "/forms/add_biobank/?name=North", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, 401, rr.Code)
		assert.Contains(t, rr.Body.String(), "Data could not be added.")
	})

	t.Run("Storage Failure Is An Opaque Server Error", func(t *testing.T) {
		mockUsecase := new(MockSubmissionUsecase)
		mockUsecase.On("SubmitForm", mock.Anything, "add_biobank", mock.Anything).
			Return(nil, exceptions.ErrMongoDBInsertDocument(assert.AnError))
		router := newTestRouter(mockUsecase)

		req := httptest.NewRequest("GET", "/forms/add_biobank/?token=secret", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, 500, rr.Code)
		assert.NotContains(t, rr.Body.String(), assert.AnError.Error(), "internal detail must not reach the client")
	})
}

func TestSuggestionEndpoint(t *testing.T) {
	t.Run("Failed Verification Is A Bare 400", func(t *testing.T) {
		mockUsecase := new(MockSubmissionUsecase)
		mockUsecase.On("SubmitSuggestion", mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrCaptchaRejected(nil))
		router := newTestRouter(mockUsecase)

		body := strings.NewReader("g-recaptcha-response=bad")
		req := httptest.NewRequest("POST", "/forms/suggestion/", body)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, 400, rr.Code)
		assert.Empty(t, rr.Body.String(), "authorization failures render no body")
	})

	t.Run("Accepted Suggestion Renders Success Page", func(t *testing.T) {
		mockUsecase := new(MockSubmissionUsecase)
		mockUsecase.On("SubmitSuggestion", mock.Anything, mock.Anything).
			Return(&contracts.SubmissionResult{OriginURL: "http://portal"}, nil)
		router := newTestRouter(mockUsecase)

		body := strings.NewReader("g-recaptcha-response=good&origin=portal")
		req := httptest.NewRequest("POST", "/forms/suggestion/", body)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, 200, rr.Code)
		assert.Contains(t, rr.Body.String(), `<a href="http://portal">`)
	})
}

func TestListEndpoint(t *testing.T) {
	t.Run("Authorized Listing Returns JSON Array", func(t *testing.T) {
		records := []map[string]interface{}{
			{"name": "Northern Biobank"},
		}
		mockUsecase := new(MockSubmissionUsecase)
		mockUsecase.On("ListEntries", mock.Anything, "add_biobank", "read-token").Return(records, nil)
		router := newTestRouter(mockUsecase)

		req := httptest.NewRequest("GET", "/forms/add_biobank/list/?token=read-token", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, 200, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		assert.JSONEq(t, `[{"name":"Northern Biobank"}]`, rr.Body.String())
	})

	t.Run("Empty Collection Returns Empty Array", func(t *testing.T) {
		mockUsecase := new(MockSubmissionUsecase)
		mockUsecase.On("ListEntries", mock.Anything, "suggestion", "read-token").
			Return([]map[string]interface{}{}, nil)
		router := newTestRouter(mockUsecase)

		req := httptest.NewRequest("GET", "/forms/suggestion/list/?token=read-token", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, 200, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("Wrong Token Is A Bare 401", func(t *testing.T) {
		mockUsecase := new(MockSubmissionUsecase)
		mockUsecase.On("ListEntries", mock.Anything, "add_biobank", "wrong").
			Return(nil, exceptions.ErrReadTokenInvalid(nil))
		router := newTestRouter(mockUsecase)

		req := httptest.NewRequest("GET", "/forms/add_biobank/list/?token=wrong", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, 401, rr.Code)
		assert.Empty(t, rr.Body.String())
	})

	t.Run("Unknown Kind Is A Bare 404", func(t *testing.T) {
		mockUsecase := new(MockSubmissionUsecase)
		mockUsecase.On("ListEntries", mock.Anything, "add_unicorn", "read-token").
			Return(nil, exceptions.ErrFormKindNotFound(nil))
		router := newTestRouter(mockUsecase)

		req := httptest.NewRequest("GET", "/forms/add_unicorn/list/?token=read-token", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, 404, rr.Code)
		assert.Empty(t, rr.Body.String())
	})
}
