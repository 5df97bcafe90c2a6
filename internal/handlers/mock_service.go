package handlers

import (
	"context"
	"net/http"
	"time"

	"babytrack/internal/models"
	"babytrack/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockRecords struct {
	feeding     models.FeedingRecord
	feedings    []models.FeedingRecord
	stoolRec    models.StoolRecord
	stoolList   []models.StoolRecord
	growthRec   models.GrowthRecord
	growthList  []models.GrowthRecord
	addErr      error
	listErr     error
	deleteErr   error
	lastUserID  int
	lastDelID   string
	deleteCalls int
}

func (m *mockRecords) AddFeeding(ctx context.Context, rec models.FeedingRecord) (models.FeedingRecord, error) {
	m.lastUserID = rec.UserID
	if m.addErr != nil {
		return models.FeedingRecord{}, m.addErr
	}
	return m.feeding, nil
}
func (m *mockRecords) ListFeedings(ctx context.Context, userID int, from, to time.Time) ([]models.FeedingRecord, error) {
	m.lastUserID = userID
	return m.feedings, m.listErr
}
func (m *mockRecords) DeleteFeeding(ctx context.Context, userID int, id string) error {
	m.lastUserID, m.lastDelID = userID, id
	m.deleteCalls++
	return m.deleteErr
}
func (m *mockRecords) AddStool(ctx context.Context, rec models.StoolRecord) (models.StoolRecord, error) {
	m.lastUserID = rec.UserID
	if m.addErr != nil {
		return models.StoolRecord{}, m.addErr
	}
	return m.stoolRec, nil
}
func (m *mockRecords) ListStool(ctx context.Context, userID int, from, to string) ([]models.StoolRecord, error) {
	m.lastUserID = userID
	return m.stoolList, m.listErr
}
func (m *mockRecords) DeleteStool(ctx context.Context, userID int, id string) error {
	m.lastUserID, m.lastDelID = userID, id
	m.deleteCalls++
	return m.deleteErr
}
func (m *mockRecords) AddGrowth(ctx context.Context, rec models.GrowthRecord) (models.GrowthRecord, error) {
	m.lastUserID = rec.UserID
	if m.addErr != nil {
		return models.GrowthRecord{}, m.addErr
	}
	return m.growthRec, nil
}
func (m *mockRecords) ListGrowth(ctx context.Context, userID int, from, to string) ([]models.GrowthRecord, error) {
	m.lastUserID = userID
	return m.growthList, m.listErr
}
func (m *mockRecords) DeleteGrowth(ctx context.Context, userID int, id string) error {
	m.lastUserID, m.lastDelID = userID, id
	m.deleteCalls++
	return m.deleteErr
}

type mockAnalysis struct {
	result    service.AnalysisResult
	err       error
	lastQuery service.AnalysisQuery
	lastUser  int
	calls     int
}

func (m *mockAnalysis) Analyze(ctx context.Context, userID int, q service.AnalysisQuery) (service.AnalysisResult, error) {
	m.calls++
	m.lastUser = userID
	m.lastQuery = q
	return m.result, m.err
}

type mockReminders struct {
	reminder  models.Reminder
	upcoming  []models.UpcomingReminder
	addErr    error
	listErr   error
	deleteErr error
	lastDelID string
}

func (m *mockReminders) AddReminder(ctx context.Context, r models.Reminder) (models.Reminder, error) {
	if m.addErr != nil {
		return models.Reminder{}, m.addErr
	}
	return m.reminder, nil
}
func (m *mockReminders) ListReminders(ctx context.Context, userID int, now time.Time) ([]models.UpcomingReminder, error) {
	return m.upcoming, m.listErr
}
func (m *mockReminders) DeleteReminder(ctx context.Context, userID int, id string) error {
	m.lastDelID = id
	return m.deleteErr
}

type mockProviders struct {
	page       service.ProviderPage
	err        error
	lastFilter service.ProviderFilter
}

func (m *mockProviders) ListProviders(ctx context.Context, f service.ProviderFilter) (service.ProviderPage, error) {
	m.lastFilter = f
	return m.page, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
