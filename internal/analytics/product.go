package analytics

import (
	"sort"
	"time"

	"github.com/vfg2006/gold-reports-api/internal/domain"
	"github.com/vfg2006/gold-reports-api/pkg/utils"
)

// ProductSaleRow é uma venda válida já unida à dimensão de produtos
type ProductSaleRow struct {
	OrderNumber string
	ProductKey  *int64
	CustomerKey *int64
	OrderDate   time.Time
	SalesAmount *float64
	Quantity    int64
	// Product é nil quando a dimensão não tem o produto
	Product *domain.Product
}

type productAggregate struct {
	key           entityKey
	product       *domain.Product
	orders        map[string]struct{}
	customers     map[int64]struct{}
	totalSales    float64
	totalQuantity int64
	firstSale     time.Time
	lastSale      time.Time
	priceSum      float64
	priceCount    int
}

// ProjectProductRows faz o left join das vendas com os produtos e descarta vendas sem data
func ProjectProductRows(sales []*domain.Sale, products []*domain.Product) []ProductSaleRow {
	byKey := make(map[int64]*domain.Product, len(products))
	for _, product := range products {
		byKey[product.ProductKey] = product
	}

	rows := make([]ProductSaleRow, 0, len(sales))
	for _, sale := range sales {
		if sale == nil || sale.OrderDate == nil {
			continue
		}

		// chave NULL nunca casa com a dimensão
		var product *domain.Product
		if sale.ProductKey != nil {
			product = byKey[*sale.ProductKey]
		}

		rows = append(rows, ProductSaleRow{
			OrderNumber: sale.OrderNumber,
			ProductKey:  sale.ProductKey,
			CustomerKey: sale.CustomerKey,
			OrderDate:   *sale.OrderDate,
			SalesAmount: sale.SalesAmount,
			Quantity:    sale.Quantity,
			Product:     product,
		})
	}

	return rows
}

func aggregateProducts(rows []ProductSaleRow) []*productAggregate {
	byKey := make(map[entityKey]*productAggregate)
	aggregates := make([]*productAggregate, 0)

	for _, row := range rows {
		key := keyOf(row.ProductKey)
		agg, exists := byKey[key]
		if !exists {
			agg = &productAggregate{
				key:       key,
				product:   row.Product,
				orders:    make(map[string]struct{}),
				customers: make(map[int64]struct{}),
				firstSale: row.OrderDate,
				lastSale:  row.OrderDate,
			}
			byKey[key] = agg
			aggregates = append(aggregates, agg)
		}

		if row.OrderNumber != "" {
			agg.orders[row.OrderNumber] = struct{}{}
		}
		addDistinct(agg.customers, row.CustomerKey)
		agg.totalSales = sumNullable(agg.totalSales, row.SalesAmount)
		agg.totalQuantity += row.Quantity

		if row.OrderDate.Before(agg.firstSale) {
			agg.firstSale = row.OrderDate
		}
		if row.OrderDate.After(agg.lastSale) {
			agg.lastSale = row.OrderDate
		}

		// quantidade zero ou valor nulo geram razão nula, que fica fora da média
		if row.Quantity != 0 && row.SalesAmount != nil {
			agg.priceSum += *row.SalesAmount / float64(row.Quantity)
			agg.priceCount++
		}
	}

	sort.Slice(aggregates, func(i, j int) bool {
		return aggregates[i].key.less(aggregates[j].key)
	})

	return aggregates
}

func deriveProductReport(agg *productAggregate, asOf time.Time) *domain.ProductReport {
	lifespan := MonthsBetween(agg.firstSale, agg.lastSale)
	totalOrders := len(agg.orders)

	report := &domain.ProductReport{
		ProductKey:        agg.key.ptr(),
		LastSaleDate:      domain.NewDate(agg.lastSale),
		RecencyInMonths:   MonthsBetween(agg.lastSale, asOf),
		ProductSegment:    ProductSegment(agg.totalSales),
		Lifespan:          lifespan,
		TotalOrders:       totalOrders,
		TotalSales:        agg.totalSales,
		TotalQuantity:     agg.totalQuantity,
		TotalCustomers:    len(agg.customers),
		AvgOrderRevenue:   0,
		AvgMonthlyRevenue: agg.totalSales,
	}

	if agg.product != nil {
		report.ProductName = agg.product.ProductName
		report.Category = agg.product.Category
		report.Subcategory = agg.product.Subcategory
		report.Cost = agg.product.Cost
	}

	if agg.priceCount > 0 {
		price := utils.Round(agg.priceSum/float64(agg.priceCount), 1)
		report.AvgSellingPrice = &price
	}

	if totalOrders != 0 {
		report.AvgOrderRevenue = agg.totalSales / float64(totalOrders)
	}

	if lifespan != 0 {
		report.AvgMonthlyRevenue = agg.totalSales / float64(lifespan)
	}

	return report
}

// BuildProductReport executa o pipeline completo do relatório de produtos.
// O resultado tem uma linha por produto com vendas válidas, ordenado por ProductKey
// com o grupo de chave nula primeiro.
func BuildProductReport(sales []*domain.Sale, products []*domain.Product, asOf time.Time) []*domain.ProductReport {
	aggregates := aggregateProducts(ProjectProductRows(sales, products))

	reports := make([]*domain.ProductReport, 0, len(aggregates))
	for _, agg := range aggregates {
		reports = append(reports, deriveProductReport(agg, asOf))
	}

	return reports
}
