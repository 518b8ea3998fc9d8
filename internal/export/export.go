// Package export serializa os relatórios em JSON, CSV ou tabela de texto.
package export

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/gold-reports-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Format string

const (
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
	FormatTable Format = "table"
)

var contentTypes = map[Format]string{
	FormatJSON:  "application/json",
	FormatCSV:   "text/csv; charset=utf-8",
	FormatTable: "text/plain; charset=utf-8",
}

var ErrUnsupportedFormat = errors.New("formato não suportado")

// ParseFormat aceita json, csv ou table. Vazio vira json.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return FormatJSON, nil
	}
	if _, ok := contentTypes[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
	return f, nil
}

func (f Format) ContentType() string {
	return contentTypes[f]
}

// SegmentCount é a linha CSV do resumo por segmento
type SegmentCount struct {
	Report   string `csv:"report"`
	Segment  string `csv:"segment"`
	Entities int    `csv:"entities"`
}

// Write aceita []*domain.ProductReport, []*domain.CustomerReport,
// *domain.ProductReport, *domain.CustomerReport ou *domain.SegmentSummary
func Write(w io.Writer, format Format, data any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case FormatCSV:
		return writeCSV(w, data)
	case FormatTable:
		return writeTable(w, data)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func writeCSV(w io.Writer, data any) error {
	switch v := data.(type) {
	case *domain.ProductReport:
		data = []*domain.ProductReport{v}
	case *domain.CustomerReport:
		data = []*domain.CustomerReport{v}
	case *domain.SegmentSummary:
		data = SegmentCounts(v)
	}

	if err := gocsv.Marshal(data, w); err != nil {
		return fmt.Errorf("erro ao gerar csv: %w", err)
	}
	return nil
}

// SegmentCounts achata o resumo em linhas na ordem canônica dos segmentos
func SegmentCounts(summary *domain.SegmentSummary) []SegmentCount {
	rows := make([]SegmentCount, 0, len(domain.ProductSegments)+len(domain.CustomerSegments))
	for _, segment := range domain.ProductSegments {
		rows = append(rows, SegmentCount{Report: "products", Segment: segment, Entities: summary.Products[segment]})
	}
	for _, segment := range domain.CustomerSegments {
		rows = append(rows, SegmentCount{Report: "customers", Segment: segment, Entities: summary.Customers[segment]})
	}
	return rows
}
