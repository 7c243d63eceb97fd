package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nutrifit/internal/delivery/http/middleware"
	"nutrifit/internal/delivery/http/validator"
	"nutrifit/internal/domain/entity"
	"nutrifit/internal/domain/repository"
	mockRepo "nutrifit/internal/mocks/repository"
	"nutrifit/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDailyEntryTestServer(repo *mockRepo.MockDailyEntryRepository) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	h := NewDailyEntryHandler(impl.NewDailyEntryService(repo, logger), logger)
	h.now = func() time.Time { return time.Date(2024, 5, 17, 12, 0, 0, 0, time.UTC) }

	e.POST("/api/daily_entries/:userId/entries", h.CreateEntry)
	e.PUT("/api/daily_entries/:userId/entries/:date", h.UpdateEntry)

	return e
}

func TestCreateEntry_EmptyBodyCreatesZeroedEntry(t *testing.T) {
	repo := new(mockRepo.MockDailyEntryRepository)
	repo.On("Create", mock.Anything, "user-1", "2024-05-17", mock.MatchedBy(func(entry *entity.DailyEntry) bool {
		return entry.Calories == 0 && entry.Steps == 0
	})).Return(nil)

	e := newDailyEntryTestServer(repo)

	req := httptest.NewRequest(http.MethodPost, "/api/daily_entries/user-1/entries", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "2024-05-17")
	repo.AssertExpectations(t)
}

func TestCreateEntry_BodyCountersReachStore(t *testing.T) {
	repo := new(mockRepo.MockDailyEntryRepository)
	repo.On("Create", mock.Anything, "user-1", "2024-05-17", mock.MatchedBy(func(entry *entity.DailyEntry) bool {
		return entry.Calories == 1800 && entry.Steps == 4200
	})).Return(nil)

	e := newDailyEntryTestServer(repo)

	rec := postJSON(e, "/api/daily_entries/user-1/entries", `{"calories":1800,"steps":4200}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	repo.AssertExpectations(t)
}

func TestUpdateEntry_EmptyBodyMergesNothing(t *testing.T) {
	repo := new(mockRepo.MockDailyEntryRepository)
	repo.On("Update", mock.Anything, "user-1", "2024-05-17", mock.MatchedBy(func(update *repository.DailyEntryUpdate) bool {
		return update.Calories == nil && update.Steps == nil
	})).Return(nil)

	e := newDailyEntryTestServer(repo)

	req := httptest.NewRequest(http.MethodPut, "/api/daily_entries/user-1/entries/2024-05-17", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	repo.AssertExpectations(t)
}
