package reporting

import (
	"fmt"
	"strings"

	"github.com/vfg2006/gold-reports-api/internal/domain"
)

// canonical devolve o valor da lista que corresponde a value ignorando caixa
func canonical(value string, allowed []string) (string, bool) {
	for _, a := range allowed {
		if strings.EqualFold(a, value) {
			return a, true
		}
	}
	return "", false
}

func normalizeProductFilters(filters domain.ReportFilters) (domain.ReportFilters, error) {
	if filters.AgeGroup != "" {
		return filters, fmt.Errorf("%w: age_group não se aplica ao relatório de produtos", ErrInvalidFilter)
	}

	if filters.Segment != "" {
		segment, ok := canonical(filters.Segment, domain.ProductSegments)
		if !ok {
			return filters, fmt.Errorf("%w: segmento de produto %q", ErrInvalidFilter, filters.Segment)
		}
		filters.Segment = segment
	}

	filters.Category = strings.TrimSpace(filters.Category)

	return filters, nil
}

func normalizeCustomerFilters(filters domain.ReportFilters) (domain.ReportFilters, error) {
	if filters.Category != "" {
		return filters, fmt.Errorf("%w: category não se aplica ao relatório de clientes", ErrInvalidFilter)
	}

	if filters.Segment != "" {
		segment, ok := canonical(filters.Segment, domain.CustomerSegments)
		if !ok {
			return filters, fmt.Errorf("%w: segmento de cliente %q", ErrInvalidFilter, filters.Segment)
		}
		filters.Segment = segment
	}

	if filters.AgeGroup != "" {
		group, ok := canonical(filters.AgeGroup, domain.AgeGroups)
		if !ok {
			return filters, fmt.Errorf("%w: faixa etária %q", ErrInvalidFilter, filters.AgeGroup)
		}
		filters.AgeGroup = group
	}

	return filters, nil
}

func matchProduct(r *domain.ProductReport, filters domain.ReportFilters) bool {
	if filters.Segment != "" && r.ProductSegment != filters.Segment {
		return false
	}
	if filters.Category != "" && (r.Category == nil || !strings.EqualFold(*r.Category, filters.Category)) {
		return false
	}
	return true
}

func matchCustomer(r *domain.CustomerReport, filters domain.ReportFilters) bool {
	if filters.Segment != "" && r.CustomerSegment != filters.Segment {
		return false
	}
	if filters.AgeGroup != "" && r.AgeGroup != filters.AgeGroup {
		return false
	}
	return true
}
