package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/gold-reports-api/internal/api/handler/router"
	"github.com/vfg2006/gold-reports-api/internal/config"
	"github.com/vfg2006/gold-reports-api/internal/domain"
	"github.com/vfg2006/gold-reports-api/internal/usecases/authenticating"
	"github.com/vfg2006/gold-reports-api/internal/usecases/reporting"
	"github.com/vfg2006/gold-reports-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/gold-reports-api/pkg/log"
	"github.com/vfg2006/gold-reports-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func init() {
	log.SetupTestLogger()
}

func newReportsHandler(service reporting.Reporter) http.Handler {
	rt := router.New(router.WithRoutes(Reports(service)...))
	// sem AUTH_SECRET o middleware injeta um usuário anônimo
	return middleware.AuthMiddleware(authenticating.NewService(config.Auth{}))(rt)
}

func strPtr(s string) *string { return &s }

func keyPtr(k int64) *int64 { return &k }

func TestGetProductReport(t *testing.T) {
	asOf := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	rows := []*domain.ProductReport{
		{
			ProductKey:     keyPtr(10),
			ProductName:    strPtr("Road Bike"),
			Category:       strPtr("Bikes"),
			ProductSegment: domain.ProductSegmentHighPerformer,
			TotalOrders:    2,
			TotalSales:     60000,
		},
	}

	tests := []struct {
		name         string
		query        string
		setupMock    func(m *mocks.MockReporter)
		wantStatus   int
		wantContains []string
		wantType     string
	}{
		{
			name:  "json com filtros",
			query: "?segment=High-Performer&category=Bikes&as_of=2024-06-15",
			setupMock: func(m *mocks.MockReporter) {
				m.EXPECT().
					GetProductReport(gomock.Any(), domain.ReportFilters{AsOf: &asOf, Segment: "High-Performer", Category: "Bikes"}).
					Return(rows, nil)
			},
			wantStatus:   http.StatusOK,
			wantContains: []string{`"product_key": 10`, `"product_segment": "High-Performer"`},
			wantType:     "application/json",
		},
		{
			name:  "csv",
			query: "?format=csv",
			setupMock: func(m *mocks.MockReporter) {
				m.EXPECT().GetProductReport(gomock.Any(), domain.ReportFilters{}).Return(rows, nil)
			},
			wantStatus:   http.StatusOK,
			wantContains: []string{"product_key,product_name", "10,Road Bike,Bikes"},
			wantType:     "text/csv",
		},
		{
			name:         "as_of inválido",
			query:        "?as_of=15/06/2024",
			setupMock:    func(m *mocks.MockReporter) {},
			wantStatus:   http.StatusBadRequest,
			wantContains: []string{"VAL_003"},
		},
		{
			name:         "formato table não é aceito pela API",
			query:        "?format=table",
			setupMock:    func(m *mocks.MockReporter) {},
			wantStatus:   http.StatusBadRequest,
			wantContains: []string{"VAL_003"},
		},
		{
			name:  "segmento inválido",
			query: "?segment=Gold",
			setupMock: func(m *mocks.MockReporter) {
				m.EXPECT().GetProductReport(gomock.Any(), gomock.Any()).Return(nil, reporting.ErrInvalidFilter)
			},
			wantStatus:   http.StatusBadRequest,
			wantContains: []string{"VAL_001"},
		},
		{
			name:  "falha na fonte de dados",
			query: "",
			setupMock: func(m *mocks.MockReporter) {
				m.EXPECT().GetProductReport(gomock.Any(), gomock.Any()).Return(nil, reporting.ErrDataSource)
			},
			wantStatus:   http.StatusInternalServerError,
			wantContains: []string{"SRV_002"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockReporter := mocks.NewMockReporter(ctrl)
			tt.setupMock(mockReporter)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/v1/reports/products"+tt.query, nil)
			newReportsHandler(mockReporter).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			for _, s := range tt.wantContains {
				assert.Contains(t, rec.Body.String(), s)
			}
			if tt.wantType != "" {
				assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), tt.wantType))
			}
		})
	}
}

func TestGetProductReportByKey(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setupMock  func(m *mocks.MockReporter)
		wantStatus int
		wantCode   string
	}{
		{
			name: "encontrado",
			path: "/v1/reports/products/10",
			setupMock: func(m *mocks.MockReporter) {
				m.EXPECT().GetProductReportByKey(gomock.Any(), int64(10), domain.ReportFilters{}).
					Return(&domain.ProductReport{ProductKey: keyPtr(10)}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "ausente do relatório",
			path: "/v1/reports/products/99",
			setupMock: func(m *mocks.MockReporter) {
				m.EXPECT().GetProductReportByKey(gomock.Any(), int64(99), gomock.Any()).
					Return(nil, reporting.ErrReportNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "REP_001",
		},
		{
			name:       "chave não numérica",
			path:       "/v1/reports/products/abc",
			setupMock:  func(m *mocks.MockReporter) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VAL_003",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockReporter := mocks.NewMockReporter(ctrl)
			tt.setupMock(mockReporter)

			rec := httptest.NewRecorder()
			newReportsHandler(mockReporter).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Contains(t, rec.Body.String(), tt.wantCode)
			}
		})
	}
}

func TestGetCustomerReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockReporter := mocks.NewMockReporter(ctrl)

	age := 34
	mockReporter.EXPECT().
		GetCustomerReport(gomock.Any(), domain.ReportFilters{Segment: "VIP", AgeGroup: "30-39"}).
		Return([]*domain.CustomerReport{
			{
				CustomerKey:     keyPtr(1),
				CustomerName:    strPtr("Ana Souza"),
				Age:             &age,
				AgeGroup:        domain.AgeGroup30To39,
				CustomerSegment: domain.CustomerSegmentVIP,
			},
		}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/reports/customers?segment=VIP&age_group=30-39", nil)
	newReportsHandler(mockReporter).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"customer_name": "Ana Souza"`)
	assert.Contains(t, rec.Body.String(), `"age_group": "30-39"`)
}

func TestGetCustomerReportByKey_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockReporter := mocks.NewMockReporter(ctrl)

	mockReporter.EXPECT().
		GetCustomerReportByKey(gomock.Any(), int64(7), gomock.Any()).
		Return(nil, reporting.ErrReportNotFound)

	rec := httptest.NewRecorder()
	newReportsHandler(mockReporter).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/reports/customers/7", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetSegmentSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockReporter := mocks.NewMockReporter(ctrl)

	mockReporter.EXPECT().
		GetSegmentSummary(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filters domain.ReportFilters) (*domain.SegmentSummary, error) {
			require.NotNil(t, filters.AsOf)
			return &domain.SegmentSummary{
				AsOf:           domain.NewDate(*filters.AsOf),
				Products:       map[string]int{domain.ProductSegmentHighPerformer: 1},
				Customers:      map[string]int{domain.CustomerSegmentNew: 2},
				TotalProducts:  1,
				TotalCustomers: 2,
			}, nil
		})

	rec := httptest.NewRecorder()
	newReportsHandler(mockReporter).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/reports/summary?as_of=2024-06-15", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"as_of": "2024-06-15"`)
	assert.Contains(t, rec.Body.String(), `"total_customers": 2`)
}

func TestWriteReportError_UnknownErrorIsServerError(t *testing.T) {
	rec := httptest.NewRecorder()
	writeReportError(rec, log.ForContext(context.Background()), errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
