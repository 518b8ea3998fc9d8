package domain

const (
	ProductSegmentHighPerformer = "High-Performer"
	ProductSegmentMidRange      = "Mid-Range"
	ProductSegmentLowPerformer  = "Low-Performer"
)

var ProductSegments = []string{
	ProductSegmentHighPerformer,
	ProductSegmentMidRange,
	ProductSegmentLowPerformer,
}

// ProductReport é uma linha do relatório report_products
type ProductReport struct {
	ProductKey        *int64   `json:"product_key" csv:"product_key"`
	ProductName       *string  `json:"product_name" csv:"product_name"`
	Category          *string  `json:"category" csv:"category"`
	Subcategory       *string  `json:"subcategory" csv:"subcategory"`
	Cost              *float64 `json:"cost" csv:"cost"`
	LastSaleDate      Date     `json:"last_sale_date" csv:"last_sale_date"`
	RecencyInMonths   int      `json:"recency_in_months" csv:"recency_in_months"`
	ProductSegment    string   `json:"product_segment" csv:"product_segment"`
	Lifespan          int      `json:"lifespan" csv:"lifespan"`
	TotalOrders       int      `json:"total_orders" csv:"total_orders"`
	TotalSales        float64  `json:"total_sales" csv:"total_sales"`
	TotalQuantity     int64    `json:"total_quantity" csv:"total_quantity"`
	TotalCustomers    int      `json:"total_customers" csv:"total_customers"`
	AvgSellingPrice   *float64 `json:"avg_selling_price" csv:"avg_selling_price"`
	AvgOrderRevenue   float64  `json:"avg_order_revenue" csv:"avg_order_revenue"`
	AvgMonthlyRevenue float64  `json:"avg_monthly_revenue" csv:"avg_monthly_revenue"`
}
