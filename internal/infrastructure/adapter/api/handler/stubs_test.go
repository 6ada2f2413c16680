package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/fintrack-app/fintrack/internal/domain/entity"
	"github.com/fintrack-app/fintrack/internal/domain/port/core"
	"github.com/fintrack-app/fintrack/internal/domain/port/usecase"
	"github.com/fintrack-app/fintrack/web"
)

// stubAuthUseCase returns canned values and records what it was called with
type stubAuthUseCase struct {
	user    *entity.User
	session *entity.Session

	signUpErr error
	signInErr error
	authErr   error
	changeErr error

	signedOutToken string
	keptToken      string
}

func (s *stubAuthUseCase) SignUp(_ context.Context, username, _ string) (*entity.User, error) {
	if s.signUpErr != nil {
		return nil, s.signUpErr
	}
	user := *s.user
	user.Username = username
	return &user, nil
}

func (s *stubAuthUseCase) SignIn(_ context.Context, _, _ string) (*entity.User, *entity.Session, error) {
	if s.signInErr != nil {
		return nil, nil, s.signInErr
	}
	return s.user, s.session, nil
}

func (s *stubAuthUseCase) Authenticate(_ context.Context, _ string) (*entity.User, *entity.Session, error) {
	if s.authErr != nil {
		return nil, nil, s.authErr
	}
	return s.user, s.session, nil
}

func (s *stubAuthUseCase) SignOut(_ context.Context, token string) error {
	s.signedOutToken = token
	return nil
}

func (s *stubAuthUseCase) ChangePasscode(_ context.Context, _ uint64, _, _, keepToken string) error {
	if s.changeErr != nil {
		return s.changeErr
	}
	s.keptToken = keepToken
	return nil
}

// stubLedgerUseCase serves fixed entries and remembers the last mutation
type stubLedgerUseCase struct {
	entries []entity.Transaction
	export  *usecase.CSVExport

	recordErr error
	listErr   error
	deleteErr error

	recorded  *usecase.RecordInput
	deletedID uint64
	cleared   bool
}

func (s *stubLedgerUseCase) Record(_ context.Context, _ uint64, input usecase.RecordInput) (*entity.Transaction, error) {
	if s.recordErr != nil {
		return nil, s.recordErr
	}
	s.recorded = &input
	return &entity.Transaction{ID: 1}, nil
}

func (s *stubLedgerUseCase) List(_ context.Context, _ uint64, _ entity.ListFilter) ([]entity.Transaction, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.entries, nil
}

func (s *stubLedgerUseCase) Delete(_ context.Context, _, transactionID uint64) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deletedID = transactionID
	return nil
}

func (s *stubLedgerUseCase) Clear(_ context.Context, _ uint64) (int64, error) {
	s.cleared = true
	return int64(len(s.entries)), nil
}

func (s *stubLedgerUseCase) ExportCSV(_ context.Context, _ uint64, _ string, _ entity.ListFilter) (*usecase.CSVExport, error) {
	if s.export == nil {
		return nil, s.listErr
	}
	return s.export, nil
}

// stubReportUseCase serves a fixed overview
type stubReportUseCase struct {
	overview    *entity.Overview
	overviewErr error
}

func (s *stubReportUseCase) Summarize(_ context.Context, _ uint64, _ entity.ListFilter) (*entity.Summary, error) {
	if s.overviewErr != nil {
		return nil, s.overviewErr
	}
	summary := s.overview.Summary
	return &summary, nil
}

func (s *stubReportUseCase) ByCategory(_ context.Context, _ uint64, _ entity.ListFilter) ([]entity.CategoryTotal, error) {
	if s.overviewErr != nil {
		return nil, s.overviewErr
	}
	return s.overview.ByCategory, nil
}

func (s *stubReportUseCase) ByMonth(_ context.Context, _ uint64, _ entity.ListFilter) ([]entity.MonthlyTotal, error) {
	if s.overviewErr != nil {
		return nil, s.overviewErr
	}
	return s.overview.ByMonth, nil
}

func (s *stubReportUseCase) Overview(_ context.Context, _ uint64, _ entity.ListFilter) (*entity.Overview, error) {
	if s.overviewErr != nil {
		return nil, s.overviewErr
	}
	return s.overview, nil
}

// fixedClock pins Now so date defaults in pages are predictable
type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

func (c *fixedClock) Since(t time.Time) core.Duration { return core.Duration(c.now.Sub(t)) }

type nopLogger struct{}

func (nopLogger) SetLevel(core.LogLevel)       {}
func (nopLogger) Debug(string, map[string]any) {}
func (nopLogger) Info(string, map[string]any)  {}
func (nopLogger) Warn(string, map[string]any)  {}
func (nopLogger) Error(string, map[string]any) {}
func (nopLogger) Flush() error                 { return nil }

// Fixtures shared by the handler tests

const testCookieName = "fintrack_session"

func testUser() *entity.User {
	return &entity.User{
		ID:        7,
		Username:  "alice",
		CreatedAt: time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
	}
}

func testSession() *entity.Session {
	return &entity.Session{
		Token:     "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		UserID:    7,
		ExpiresAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func testClock() *fixedClock {
	return &fixedClock{now: time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)}
}

// newTestRouter builds a gin engine with the real page templates, so the
// data each handler passes is checked against what the pages reference
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	templates, err := web.Templates()
	require.NoError(t, err)

	router := gin.New()
	router.SetHTMLTemplate(templates)
	return router
}

// perform runs one request through the router and captures the response
func perform(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

// withSessionCookie attaches the stub session's cookie to the request
func withSessionCookie(req *http.Request) *http.Request {
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: testSession().Token})
	return req
}
