package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/gold-reports-api/internal/domain"
	"github.com/vfg2006/gold-reports-api/internal/export"
	"github.com/vfg2006/gold-reports-api/internal/usecases/reporting"
	"github.com/vfg2006/gold-reports-api/pkg/apiErrors"
	"github.com/vfg2006/gold-reports-api/pkg/log"
	"github.com/vfg2006/gold-reports-api/pkg/utils"
)

// GetProductReport retorna o relatório report_products
func GetProductReport(service reporting.ProductReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context()).WithField("report", reporting.ReportProducts)

		filters, format, ok := parseReportQuery(w, r)
		if !ok {
			return
		}
		filters.Segment = r.URL.Query().Get("segment")
		filters.Category = r.URL.Query().Get("category")

		rows, err := service.GetProductReport(r.Context(), filters)
		if err != nil {
			writeReportError(w, logger, err)
			return
		}

		logger.WithField("rows", len(rows)).Info("reports: relatório de produtos gerado")
		writeReport(w, logger, format, "report_products", rows)
	}
}

func GetProductReportByKey(service reporting.ProductReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context()).WithField("report", reporting.ReportProducts)

		key, ok := parseKey(w, r)
		if !ok {
			return
		}

		filters, format, ok := parseReportQuery(w, r)
		if !ok {
			return
		}

		row, err := service.GetProductReportByKey(r.Context(), key, filters)
		if err != nil {
			writeReportError(w, logger, err)
			return
		}

		writeReport(w, logger, format, fmt.Sprintf("report_products_%d", key), row)
	}
}

// GetCustomerReport retorna o relatório report_customers
func GetCustomerReport(service reporting.CustomerReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context()).WithField("report", reporting.ReportCustomers)

		filters, format, ok := parseReportQuery(w, r)
		if !ok {
			return
		}
		filters.Segment = r.URL.Query().Get("segment")
		filters.AgeGroup = r.URL.Query().Get("age_group")

		rows, err := service.GetCustomerReport(r.Context(), filters)
		if err != nil {
			writeReportError(w, logger, err)
			return
		}

		logger.WithField("rows", len(rows)).Info("reports: relatório de clientes gerado")
		writeReport(w, logger, format, "report_customers", rows)
	}
}

func GetCustomerReportByKey(service reporting.CustomerReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context()).WithField("report", reporting.ReportCustomers)

		key, ok := parseKey(w, r)
		if !ok {
			return
		}

		filters, format, ok := parseReportQuery(w, r)
		if !ok {
			return
		}

		row, err := service.GetCustomerReportByKey(r.Context(), key, filters)
		if err != nil {
			writeReportError(w, logger, err)
			return
		}

		writeReport(w, logger, format, fmt.Sprintf("report_customers_%d", key), row)
	}
}

// GetSegmentSummary retorna a contagem por segmento dos dois relatórios
func GetSegmentSummary(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context()).WithField("report", "summary")

		filters, format, ok := parseReportQuery(w, r)
		if !ok {
			return
		}

		summary, err := service.GetSegmentSummary(r.Context(), filters)
		if err != nil {
			writeReportError(w, logger, err)
			return
		}

		writeReport(w, logger, format, "report_summary", summary)
	}
}

// parseReportQuery lê os parâmetros comuns as_of e format
func parseReportQuery(w http.ResponseWriter, r *http.Request) (domain.ReportFilters, export.Format, bool) {
	query := r.URL.Query()

	asOf, err := utils.ParseOptionalDate(query.Get("as_of"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "as_of deve estar no formato YYYY-MM-DD", map[string]string{"as_of": query.Get("as_of")})
		return domain.ReportFilters{}, "", false
	}

	format, err := export.ParseFormat(query.Get("format"))
	if err != nil || format == export.FormatTable {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "format deve ser json ou csv", map[string]string{"format": query.Get("format")})
		return domain.ReportFilters{}, "", false
	}

	return domain.ReportFilters{AsOf: asOf}, format, true
}

func parseKey(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName("key")

	key, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "key deve ser um inteiro", map[string]string{"key": raw})
		return 0, false
	}

	return key, true
}

func writeReportError(w http.ResponseWriter, logger log.Logger, err error) {
	if !reporting.IsClientError(err) {
		logger.WithError(err).Error("reports: falha ao gerar relatório")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gerar relatório", nil)
		return
	}

	code := apiErrors.ErrReportNotFound
	if errors.Is(err, reporting.ErrInvalidFilter) {
		code = apiErrors.ErrInvalidRequest
		logger.WithError(err).Warn("reports: filtro inválido")
	}

	apiErr := apiErrors.FromError(err, code)
	apiErrors.WriteError(w, apiErr.Code, apiErr.Message, nil)
}

func writeReport(w http.ResponseWriter, logger log.Logger, format export.Format, name string, data any) {
	w.Header().Set("Content-Type", format.ContentType())
	if format == export.FormatCSV {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name+".csv"))
	}

	if err := export.Write(w, format, data); err != nil {
		logger.WithError(err).Error("reports: erro ao enviar resposta")
	}
}
