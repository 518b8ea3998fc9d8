package export

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/vfg2006/gold-reports-api/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var productColumns = []string{
	"KEY", "NAME", "CATEGORY", "SUBCATEGORY", "COST", "LAST SALE", "RECENCY", "SEGMENT", "LIFESPAN",
	"ORDERS", "SALES", "QTY", "CUSTOMERS", "AVG PRICE", "AVG ORDER", "AVG MONTHLY",
}

var customerColumns = []string{
	"KEY", "NUMBER", "NAME", "AGE", "AGE GROUP", "SEGMENT", "LAST ORDER", "RECENCY",
	"ORDERS", "SALES", "QTY", "PRODUCTS", "LIFESPAN", "AVG ORDER", "AVG MONTHLY",
}

func writeTable(w io.Writer, data any) error {
	p := message.NewPrinter(language.English)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	var lines [][]string
	switch v := data.(type) {
	case []*domain.ProductReport:
		lines = append(lines, productColumns)
		for _, r := range v {
			lines = append(lines, productLine(p, r))
		}
	case *domain.ProductReport:
		lines = [][]string{productColumns, productLine(p, v)}
	case []*domain.CustomerReport:
		lines = append(lines, customerColumns)
		for _, r := range v {
			lines = append(lines, customerLine(p, r))
		}
	case *domain.CustomerReport:
		lines = [][]string{customerColumns, customerLine(p, v)}
	case *domain.SegmentSummary:
		lines = append(lines, []string{"REPORT", "SEGMENT", "ENTITIES"})
		for _, c := range SegmentCounts(v) {
			lines = append(lines, []string{c.Report, c.Segment, p.Sprintf("%d", c.Entities)})
		}
	default:
		return fmt.Errorf("%w: tabela para %T", ErrUnsupportedFormat, data)
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(tw, strings.Join(line, "\t")); err != nil {
			return err
		}
	}

	return tw.Flush()
}

func productLine(p *message.Printer, r *domain.ProductReport) []string {
	return []string{
		key(p, r.ProductKey),
		str(r.ProductName),
		str(r.Category),
		str(r.Subcategory),
		money(p, r.Cost),
		r.LastSaleDate.String(),
		p.Sprintf("%d", r.RecencyInMonths),
		r.ProductSegment,
		p.Sprintf("%d", r.Lifespan),
		p.Sprintf("%d", r.TotalOrders),
		p.Sprintf("%.2f", r.TotalSales),
		p.Sprintf("%d", r.TotalQuantity),
		p.Sprintf("%d", r.TotalCustomers),
		money(p, r.AvgSellingPrice),
		p.Sprintf("%.2f", r.AvgOrderRevenue),
		p.Sprintf("%.2f", r.AvgMonthlyRevenue),
	}
}

func customerLine(p *message.Printer, r *domain.CustomerReport) []string {
	age := "-"
	if r.Age != nil {
		age = p.Sprintf("%d", *r.Age)
	}

	return []string{
		key(p, r.CustomerKey),
		str(r.CustomerNumber),
		str(r.CustomerName),
		age,
		r.AgeGroup,
		r.CustomerSegment,
		r.LastOrderDate.String(),
		p.Sprintf("%d", r.Recency),
		p.Sprintf("%d", r.TotalOrders),
		p.Sprintf("%.2f", r.TotalSales),
		p.Sprintf("%d", r.TotalQuantity),
		p.Sprintf("%d", r.TotalProducts),
		p.Sprintf("%d", r.Lifespan),
		p.Sprintf("%.2f", r.AvgOrderValue),
		p.Sprintf("%.2f", r.AvgMonthlySpend),
	}
}

func str(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func money(p *message.Printer, f *float64) string {
	if f == nil {
		return "-"
	}
	return p.Sprintf("%.2f", *f)
}

func key(p *message.Printer, k *int64) string {
	if k == nil {
		return "-"
	}
	return p.Sprintf("%d", *k)
}
