package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/pocket_ledger/cmd/docs"
	"github.com/SscSPs/pocket_ledger/internal/apperrors"
	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/SscSPs/pocket_ledger/internal/dto"
	"github.com/SscSPs/pocket_ledger/internal/handlers"
	"github.com/SscSPs/pocket_ledger/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock services ---
type MockEntryService struct {
	mock.Mock
}

func (m *MockEntryService) GetEntry(ctx context.Context, kind domain.EntryKind, id string) (*domain.Entry, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *MockEntryService) GroupUsage(ctx context.Context, kind domain.EntryKind) ([]domain.GroupUsage, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GroupUsage), args.Error(1)
}

func (m *MockEntryService) CreateEntry(ctx context.Context, kind domain.EntryKind, req dto.CreateEntryRequest) (*domain.Entry, error) {
	args := m.Called(ctx, kind, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *MockEntryService) UpdateEntry(ctx context.Context, kind domain.EntryKind, id string, req dto.UpdateEntryRequest) (*domain.Entry, error) {
	args := m.Called(ctx, kind, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *MockEntryService) TrashEntry(ctx context.Context, kind domain.EntryKind, id string) error {
	return m.Called(ctx, kind, id).Error(0)
}

func (m *MockEntryService) TrashGroup(ctx context.Context, kind domain.EntryKind, group string) (int64, error) {
	args := m.Called(ctx, kind, group)
	return args.Get(0).(int64), args.Error(1)
}

type MockMonthService struct {
	mock.Mock
}

func (m *MockMonthService) AvailableMonths(ctx context.Context, kind domain.EntryKind) ([]domain.MonthAvailability, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthAvailability), args.Error(1)
}

func (m *MockMonthService) MonthPage(ctx context.Context, kind domain.EntryKind, offsetMonth int) (*domain.MonthPage, error) {
	args := m.Called(ctx, kind, offsetMonth)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthPage), args.Error(1)
}

type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) PeriodStats(ctx context.Context, kind domain.EntryKind, period domain.Period) (*domain.PeriodStats, error) {
	args := m.Called(ctx, kind, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PeriodStats), args.Error(1)
}

type MockOverviewService struct {
	mock.Mock
}

func (m *MockOverviewService) FinancialOverview(ctx context.Context, period domain.Period) (*domain.FinancialOverview, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialOverview), args.Error(1)
}

type MockBackupService struct {
	mock.Mock
}

func (m *MockBackupService) ExportSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Snapshot), args.Error(1)
}

func (m *MockBackupService) RestoreSnapshot(ctx context.Context, req dto.RestoreRequest) (*domain.Snapshot, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Snapshot), args.Error(1)
}

type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) ListCategories(ctx context.Context, kind domain.EntryKind, q dto.CategoryListQuery) ([]domain.Category, error) {
	args := m.Called(ctx, kind, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryService) CreateCategory(ctx context.Context, kind domain.EntryKind, req dto.CreateCategoryRequest) (*domain.Category, error) {
	args := m.Called(ctx, kind, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryService) UpdateCategory(ctx context.Context, kind domain.EntryKind, name string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	args := m.Called(ctx, kind, name, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryService) DeleteCategory(ctx context.Context, kind domain.EntryKind, name string) (int64, error) {
	args := m.Called(ctx, kind, name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCategoryService) SeedDefaults(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// --- Test suite ---
type HandlersTestSuite struct {
	suite.Suite
	router   *gin.Engine
	entries  *MockEntryService
	months   *MockMonthService
	stats    *MockStatsService
	overview   *MockOverviewService
	backup     *MockBackupService
	categories *MockCategoryService
}

func (suite *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.entries = new(MockEntryService)
	suite.months = new(MockMonthService)
	suite.stats = new(MockStatsService)
	suite.overview = new(MockOverviewService)
	suite.backup = new(MockBackupService)
	suite.categories = new(MockCategoryService)

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, &config.Config{IsProduction: true}, &portssvc.ServiceContainer{
		Entries:    suite.entries,
		Months:     suite.months,
		Stats:      suite.stats,
		Overview:   suite.overview,
		Backup:     suite.backup,
		Categories: suite.categories,
	})
}

func (suite *HandlersTestSuite) TearDownTest() {
	suite.entries.AssertExpectations(suite.T())
	suite.months.AssertExpectations(suite.T())
	suite.stats.AssertExpectations(suite.T())
	suite.overview.AssertExpectations(suite.T())
	suite.backup.AssertExpectations(suite.T())
	suite.categories.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlersTestSuite) decode(w *httptest.ResponseRecorder, out any) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), out))
}

var when = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

func (suite *HandlersTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlersTestSuite) TestCreateExpense() {
	entry := &domain.Entry{ID: 1, Kind: domain.KindExpense, Amount: decimal.RequireFromString("150.5"), DateTime: when, Group: "Food", Currency: "INR"}
	suite.entries.On("CreateEntry", mock.Anything, domain.KindExpense, mock.MatchedBy(func(r dto.CreateEntryRequest) bool {
		return r.Category == "Food" && r.Amount.Equal(decimal.RequireFromString("150.5"))
	})).Return(entry, nil)

	w := suite.do(http.MethodPost, "/api/v1/expenses", map[string]any{
		"amount":   "150.5",
		"dateTime": when,
		"category": "Food",
	})

	suite.Equal(http.StatusCreated, w.Code)
	var res dto.EntryResponse
	suite.decode(w, &res)
	suite.Equal(int64(1), res.ID)
	suite.Equal("Food", res.Category)
	suite.Empty(res.Source)
}

func (suite *HandlersTestSuite) TestCreateBindingErrors() {
	w := suite.do(http.MethodPost, "/api/v1/incomes", map[string]any{"amount": "10", "source": "Salary"})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "DateTime is required")

	w = suite.do(http.MethodPost, "/api/v1/expenses", map[string]any{
		"amount": "10", "dateTime": when, "category": "Food", "paymentMethod": "cheque",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "PaymentMethod must be one of")
	suite.entries.AssertNotCalled(suite.T(), "CreateEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestServiceErrorsMapToStatus() {
	cases := []struct {
		id     string
		err    error
		status int
	}{
		{"abc", apperrors.NewValidationError("invalid id \"abc\""), http.StatusBadRequest},
		{"9", apperrors.NewNotFoundError("expense 9 not found"), http.StatusNotFound},
		{"7", assert.AnError, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		suite.entries.On("GetEntry", mock.Anything, domain.KindExpense, tc.id).Return(nil, tc.err).Once()
		w := suite.do(http.MethodGet, "/api/v1/expenses/"+tc.id, nil)
		suite.Equal(tc.status, w.Code, tc.id)
	}
}

func (suite *HandlersTestSuite) TestInternalErrorIsNotLeaked() {
	suite.entries.On("GetEntry", mock.Anything, domain.KindIncome, "3").Return(nil, assert.AnError)

	w := suite.do(http.MethodGet, "/api/v1/incomes/3", nil)
	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.NotContains(w.Body.String(), assert.AnError.Error())
}

func (suite *HandlersTestSuite) TestUpdateNoChangeIsConflict() {
	suite.entries.On("UpdateEntry", mock.Anything, domain.KindExpense, "4", mock.Anything).
		Return(nil, apperrors.NewNoChangeError("expense 4 is unchanged"))

	w := suite.do(http.MethodPut, "/api/v1/expenses/4", map[string]any{"amount": "10", "dateTime": when, "category": "Food"})
	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(w.Body.String(), "unchanged")
}

func (suite *HandlersTestSuite) TestTrashEntry() {
	suite.entries.On("TrashEntry", mock.Anything, domain.KindIncome, "2").Return(nil).Once()
	suite.entries.On("TrashEntry", mock.Anything, domain.KindIncome, "2").Return(apperrors.NewNotFoundError("income 2 not found or already deleted")).Once()

	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/api/v1/incomes/2", nil).Code)
	suite.Equal(http.StatusNotFound, suite.do(http.MethodDelete, "/api/v1/incomes/2", nil).Code)
}

func (suite *HandlersTestSuite) TestTrashGroup() {
	suite.entries.On("TrashGroup", mock.Anything, domain.KindExpense, "Food").Return(int64(3), nil)

	w := suite.do(http.MethodDelete, "/api/v1/expenses/groups/Food", nil)
	suite.Equal(http.StatusOK, w.Code)
	var res dto.TrashGroupResponse
	suite.decode(w, &res)
	suite.Equal(dto.TrashGroupResponse{Group: "Food", Trashed: 3}, res)
}

func (suite *HandlersTestSuite) TestGroupUsage() {
	suite.entries.On("GroupUsage", mock.Anything, domain.KindIncome).Return([]domain.GroupUsage{{Key: "Salary", Count: 12}}, nil)

	w := suite.do(http.MethodGet, "/api/v1/incomes/groups/usage", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"groups":[{"key":"Salary","count":12}]}`, w.Body.String())
}

func (suite *HandlersTestSuite) TestListMonths() {
	suite.months.On("AvailableMonths", mock.Anything, domain.KindExpense).Return([]domain.MonthAvailability{
		{OffsetMonth: 0, Label: "March 2024", Count: 2},
		{OffsetMonth: 5, Label: "October 2023", Count: 1},
	}, nil)

	w := suite.do(http.MethodGet, "/api/v1/expenses/months", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"kind":"expense","months":[
		{"offsetMonth":0,"month":"March 2024","count":2},
		{"offsetMonth":5,"month":"October 2023","count":1}]}`, w.Body.String())
}

func (suite *HandlersTestSuite) TestMonthPage() {
	suite.months.On("MonthPage", mock.Anything, domain.KindExpense, 5).Return(&domain.MonthPage{
		Entries:     []domain.Entry{{ID: 9, Kind: domain.KindExpense, Amount: decimal.NewFromInt(30), DateTime: when, Group: "Rent"}},
		HasMore:     false,
		OffsetMonth: 5,
		MonthLabel:  "October 2023",
	}, nil)

	w := suite.do(http.MethodGet, "/api/v1/expenses/months/5", nil)
	suite.Equal(http.StatusOK, w.Code)
	var res dto.MonthPageResponse
	suite.decode(w, &res)
	suite.Equal("October 2023", res.Month)
	suite.False(res.HasMore)
	suite.Require().Len(res.Entries, 1)
	suite.Equal("Rent", res.Entries[0].Category)

	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/api/v1/expenses/months/latest", nil).Code)
}

func (suite *HandlersTestSuite) TestStatsDefaultsToCurrentMonth() {
	top := "Food"
	suite.stats.On("PeriodStats", mock.Anything, domain.KindExpense, domain.Period{Type: domain.PeriodMonth}).Return(&domain.PeriodStats{
		Kind:      domain.KindExpense,
		Period:    domain.Period{Type: domain.PeriodMonth},
		Total:     decimal.NewFromInt(150),
		Count:     1,
		AvgPerDay: decimal.RequireFromString("4.84"),
		TopGroup:  &top,
		Days:      31,
	}, nil)

	w := suite.do(http.MethodGet, "/api/v1/expenses/stats", nil)
	suite.Equal(http.StatusOK, w.Code)
	var res dto.PeriodStatsResponse
	suite.decode(w, &res)
	suite.Equal("month", res.Period)
	suite.Equal(31, res.Days)
	suite.Equal("4.84", res.AvgPerDay.String())
}

func (suite *HandlersTestSuite) TestStatsRejectsBadQuery() {
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/api/v1/incomes/stats?period=fortnight", nil).Code)
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/api/v1/incomes/stats?period=week&offset=-1", nil).Code)
}

func (suite *HandlersTestSuite) TestOverview() {
	period := domain.Period{Type: domain.PeriodYear, Offset: 1}
	suite.overview.On("FinancialOverview", mock.Anything, period).Return(&domain.FinancialOverview{
		Period:      period,
		Expenses:    domain.PeriodStats{Kind: domain.KindExpense, Period: period},
		Incomes:     domain.PeriodStats{Kind: domain.KindIncome, Period: period},
		NetIncome:   decimal.NewFromInt(500),
		SavingsRate: decimal.RequireFromString("41.67"),
	}, nil)

	w := suite.do(http.MethodGet, "/api/v1/overview?period=year&offset=1", nil)
	suite.Equal(http.StatusOK, w.Code)
	var res dto.FinancialOverviewResponse
	suite.decode(w, &res)
	suite.Equal("41.67", res.SavingsRate.String())
	suite.Equal("income", res.Incomes.Kind)
}

func (suite *HandlersTestSuite) TestBackupExportAndRestore() {
	suite.backup.On("ExportSnapshot", mock.Anything).Return(&domain.Snapshot{
		TakenAt:  when,
		Expenses: []domain.Entry{{ID: 1, Kind: domain.KindExpense, Amount: decimal.NewFromInt(5), DateTime: when, Group: "Food"}},
		Incomes:  []domain.Entry{},
	}, nil)
	suite.backup.On("RestoreSnapshot", mock.Anything, mock.MatchedBy(func(r dto.RestoreRequest) bool {
		return len(r.Expenses) == 1 && len(r.Incomes) == 0
	})).Return(&domain.Snapshot{Expenses: []domain.Entry{{}}, Incomes: []domain.Entry{}}, nil)

	w := suite.do(http.MethodGet, "/api/v1/backup", nil)
	suite.Equal(http.StatusOK, w.Code)
	var exported dto.BackupResponse
	suite.decode(w, &exported)
	suite.Len(exported.Expenses, 1)

	w = suite.do(http.MethodPost, "/api/v1/backup/restore", map[string]any{
		"expenses": []map[string]any{{"amount": "5", "dateTime": when, "category": "Food"}},
		"incomes":  []map[string]any{},
	})
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"expenses":1,"incomes":0,"categories":0}`, w.Body.String())
}

func (suite *HandlersTestSuite) TestRestoreRejectsInvalidRow() {
	w := suite.do(http.MethodPost, "/api/v1/backup/restore", map[string]any{
		"expenses": []map[string]any{{"amount": "5", "category": "Food"}},
	})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Expenses[0].DateTime is required")
}

func (suite *HandlersTestSuite) TestCreateAcceptsLowercaseCurrency() {
	suite.entries.On("CreateEntry", mock.Anything, domain.KindExpense, mock.MatchedBy(func(r dto.CreateEntryRequest) bool {
		return r.Currency == "usd"
	})).Return(&domain.Entry{ID: 2, Kind: domain.KindExpense, Amount: decimal.NewFromInt(3), DateTime: when, Group: "Food", Currency: "USD"}, nil)

	w := suite.do(http.MethodPost, "/api/v1/expenses", map[string]any{
		"amount": "3", "dateTime": when, "category": "Food", "currency": "usd",
	})

	suite.Equal(http.StatusCreated, w.Code)
	var res dto.EntryResponse
	suite.decode(w, &res)
	suite.Equal("USD", res.Currency)
}

func (suite *HandlersTestSuite) TestRestoreRejectsInvalidCategory() {
	w := suite.do(http.MethodPost, "/api/v1/backup/restore", map[string]any{
		"categories": []map[string]any{{"kind": "savings", "name": "pets"}},
	})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Categories[0].Kind must be one of")
	suite.backup.AssertNotCalled(suite.T(), "RestoreSnapshot", mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestListCategories() {
	suite.categories.On("ListCategories", mock.Anything, domain.KindIncome, dto.CategoryListQuery{IncludeDisabled: true, Sort: "usage"}).
		Return([]domain.Category{{Kind: domain.KindIncome, Name: "salary", Label: "Salary", Enabled: true}}, nil)

	w := suite.do(http.MethodGet, "/api/v1/incomes/categories?includeDisabled=true&sort=usage", nil)

	suite.Equal(http.StatusOK, w.Code)
	var res []dto.CategoryResponse
	suite.decode(w, &res)
	suite.Require().Len(res, 1)
	suite.Equal("salary", res[0].Name)
	suite.Equal("income", res[0].Kind)
}

func (suite *HandlersTestSuite) TestListCategoriesDefaultsAndBadSort() {
	suite.categories.On("ListCategories", mock.Anything, domain.KindExpense, dto.CategoryListQuery{Sort: "name"}).
		Return([]domain.Category{}, nil)

	w := suite.do(http.MethodGet, "/api/v1/expenses/categories", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())

	w = suite.do(http.MethodGet, "/api/v1/expenses/categories?sort=color", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Sort must be one of")
}

func (suite *HandlersTestSuite) TestCreateCategory() {
	suite.categories.On("CreateCategory", mock.Anything, domain.KindExpense, dto.CreateCategoryRequest{Name: "pets", Color: "#112233"}).
		Return(&domain.Category{Kind: domain.KindExpense, Name: "pets", Label: "pets", Color: "#112233", Enabled: true, IsCustom: true}, nil)

	w := suite.do(http.MethodPost, "/api/v1/expenses/categories", map[string]any{"name": "pets", "color": "#112233"})
	suite.Equal(http.StatusCreated, w.Code)
	var res dto.CategoryResponse
	suite.decode(w, &res)
	suite.True(res.IsCustom)

	w = suite.do(http.MethodPost, "/api/v1/expenses/categories", map[string]any{"name": "pets", "color": "blue"})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Color must be a hex color")
}

func (suite *HandlersTestSuite) TestCreateCategoryDuplicateIsConflict() {
	suite.categories.On("CreateCategory", mock.Anything, domain.KindIncome, mock.Anything).
		Return(nil, apperrors.NewDuplicateError(`source "gift" already exists`))

	w := suite.do(http.MethodPost, "/api/v1/incomes/categories", map[string]any{"name": "gift"})
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlersTestSuite) TestDisableCategory() {
	disabled := false
	suite.categories.On("UpdateCategory", mock.Anything, domain.KindExpense, "food", dto.UpdateCategoryRequest{Enabled: &disabled}).
		Return(&domain.Category{Kind: domain.KindExpense, Name: "food", Label: "Food"}, nil)

	w := suite.do(http.MethodPatch, "/api/v1/expenses/categories/food", map[string]any{"enabled": false})
	suite.Equal(http.StatusOK, w.Code)
	var res dto.CategoryResponse
	suite.decode(w, &res)
	suite.False(res.Enabled)
}

func (suite *HandlersTestSuite) TestDeleteCategory() {
	suite.categories.On("DeleteCategory", mock.Anything, domain.KindExpense, "pets").Return(int64(4), nil)
	suite.categories.On("DeleteCategory", mock.Anything, domain.KindExpense, "food").
		Return(int64(0), apperrors.NewValidationError(`built-in category "food" can only be disabled`))

	w := suite.do(http.MethodDelete, "/api/v1/expenses/categories/pets", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"kind":"expense","name":"pets","trashed":4}`, w.Body.String())

	w = suite.do(http.MethodDelete, "/api/v1/expenses/categories/food", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

// Every API route must be described in the generated swagger document.
func (suite *HandlersTestSuite) TestRoutesAreDocumented() {
	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	suite.Require().NoError(json.Unmarshal([]byte(docs.SwaggerInfo.ReadDoc()), &doc))

	kindPrefix := regexp.MustCompile(`^/(expenses|incomes)(/|$)`)
	param := regexp.MustCompile(`:([A-Za-z]+)`)

	checked := 0
	for _, route := range suite.router.Routes() {
		path, ok := strings.CutPrefix(route.Path, "/api/v1")
		if !ok {
			continue
		}
		path = kindPrefix.ReplaceAllString(path, "/{kind}$2")
		path = param.ReplaceAllString(path, "{$1}")

		ops, ok := doc.Paths[path]
		if suite.Truef(ok, "%s %s is missing from the swagger paths", route.Method, path) {
			suite.Containsf(ops, strings.ToLower(route.Method), "%s %s is missing from the swagger paths", route.Method, path)
		}
		checked++
	}
	suite.Positive(checked)
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
