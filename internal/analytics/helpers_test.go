package analytics

import (
	"time"

	"github.com/vfg2006/gold-reports-api/internal/domain"
)

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func stringPtr(s string) *string {
	return &s
}

func floatPtr(f float64) *float64 {
	return &f
}

func intPtr(i int) *int {
	return &i
}

func int64Ptr(i int64) *int64 {
	return &i
}

func sale(order string, product, customer int64, date *time.Time, amount float64, quantity int64) *domain.Sale {
	return &domain.Sale{
		OrderNumber: order,
		ProductKey:  int64Ptr(product),
		CustomerKey: int64Ptr(customer),
		OrderDate:   date,
		SalesAmount: floatPtr(amount),
		Quantity:    quantity,
	}
}
