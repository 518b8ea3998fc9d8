package domain

import "time"

// ReportFilters parâmetros aceitos pelos relatórios
type ReportFilters struct {
	// AsOf substitui a data corrente usada em recência e idade
	AsOf     *time.Time `json:"as_of,omitempty"`
	Segment  string     `json:"segment,omitempty"`
	Category string     `json:"category,omitempty"`
	AgeGroup string     `json:"age_group,omitempty"`
}

// SegmentSummary contagem de entidades por segmento de cada relatório
type SegmentSummary struct {
	AsOf             Date           `json:"as_of"`
	Products         map[string]int `json:"products"`
	Customers        map[string]int `json:"customers"`
	TotalProducts    int            `json:"total_products"`
	TotalCustomers   int            `json:"total_customers"`
	ProductsRevenue  float64        `json:"products_revenue"`
	CustomersRevenue float64        `json:"customers_revenue"`
}
