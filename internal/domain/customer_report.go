package domain

const (
	CustomerSegmentVIP     = "VIP"
	CustomerSegmentRegular = "Regular"
	CustomerSegmentNew     = "New"
)

var CustomerSegments = []string{
	CustomerSegmentVIP,
	CustomerSegmentRegular,
	CustomerSegmentNew,
}

const (
	AgeGroupUnder20    = "Under 20"
	AgeGroup20To29     = "20-29"
	AgeGroup30To39     = "30-39"
	AgeGroup40To49     = "40-49"
	AgeGroup50AndAbove = "50 and above"
)

var AgeGroups = []string{
	AgeGroupUnder20,
	AgeGroup20To29,
	AgeGroup30To39,
	AgeGroup40To49,
	AgeGroup50AndAbove,
}

// CustomerReport é uma linha do relatório report_customers
type CustomerReport struct {
	CustomerKey     *int64  `json:"customer_key" csv:"customer_key"`
	CustomerNumber  *string `json:"customer_number" csv:"customer_number"`
	CustomerName    *string `json:"customer_name" csv:"customer_name"`
	Age             *int    `json:"age" csv:"age"`
	AgeGroup        string  `json:"age_group" csv:"age_group"`
	CustomerSegment string  `json:"customer_segment" csv:"customer_segment"`
	LastOrderDate   Date    `json:"last_order_date" csv:"last_order_date"`
	Recency         int     `json:"recency" csv:"recency"`
	TotalOrders     int     `json:"total_orders" csv:"total_orders"`
	TotalSales      float64 `json:"total_sales" csv:"total_sales"`
	TotalQuantity   int64   `json:"total_quantity" csv:"total_quantity"`
	TotalProducts   int     `json:"total_products" csv:"total_products"`
	Lifespan        int     `json:"lifespan" csv:"lifespan"`
	AvgOrderValue   float64 `json:"avg_order_value" csv:"avg_order_value"`
	AvgMonthlySpend float64 `json:"avg_monthly_spend" csv:"avg_monthly_spend"`
}
