package analytics

import (
	"sort"
	"time"

	"github.com/vfg2006/gold-reports-api/internal/domain"
)

// CustomerSaleRow é uma venda válida já unida à dimensão de clientes
type CustomerSaleRow struct {
	OrderNumber    string
	ProductKey     *int64
	OrderDate      time.Time
	SalesAmount    *float64
	Quantity       int64
	CustomerKey    *int64
	CustomerNumber *string
	CustomerName   *string
	Age            *int
}

type customerAggregate struct {
	key            entityKey
	customerNumber *string
	customerName   *string
	age            *int
	orders         map[string]struct{}
	products       map[int64]struct{}
	totalSales     float64
	totalQuantity  int64
	firstOrder     time.Time
	lastOrder      time.Time
}

// ProjectCustomerRows faz o left join das vendas com os clientes, descarta vendas sem data
// e calcula nome e idade de cada linha em relação a asOf
func ProjectCustomerRows(sales []*domain.Sale, customers []*domain.Customer, asOf time.Time) []CustomerSaleRow {
	byKey := make(map[int64]*domain.Customer, len(customers))
	for _, customer := range customers {
		byKey[customer.CustomerKey] = customer
	}

	rows := make([]CustomerSaleRow, 0, len(sales))
	for _, sale := range sales {
		if sale == nil || sale.OrderDate == nil {
			continue
		}

		row := CustomerSaleRow{
			OrderNumber: sale.OrderNumber,
			ProductKey:  sale.ProductKey,
			OrderDate:   *sale.OrderDate,
			SalesAmount: sale.SalesAmount,
			Quantity:    sale.Quantity,
			CustomerKey: sale.CustomerKey,
		}

		var customer *domain.Customer
		if sale.CustomerKey != nil {
			customer = byKey[*sale.CustomerKey]
		}

		if customer != nil {
			row.CustomerNumber = customer.CustomerNumber
			row.CustomerName = customerName(customer)
			if customer.BirthDate != nil {
				age := YearsBetween(*customer.BirthDate, asOf)
				row.Age = &age
			}
		}

		rows = append(rows, row)
	}

	return rows
}

// customerName concatena nome e sobrenome; partes nulas viram texto vazio, como CONCAT
func customerName(customer *domain.Customer) *string {
	var first, last string
	if customer.FirstName != nil {
		first = *customer.FirstName
	}
	if customer.LastName != nil {
		last = *customer.LastName
	}

	name := first + " " + last
	return &name
}

func aggregateCustomers(rows []CustomerSaleRow) []*customerAggregate {
	byKey := make(map[entityKey]*customerAggregate)
	aggregates := make([]*customerAggregate, 0)

	for _, row := range rows {
		key := keyOf(row.CustomerKey)
		agg, exists := byKey[key]
		if !exists {
			agg = &customerAggregate{
				key:            key,
				customerNumber: row.CustomerNumber,
				customerName:   row.CustomerName,
				age:            row.Age,
				orders:         make(map[string]struct{}),
				products:       make(map[int64]struct{}),
				firstOrder:     row.OrderDate,
				lastOrder:      row.OrderDate,
			}
			byKey[key] = agg
			aggregates = append(aggregates, agg)
		}

		if row.OrderNumber != "" {
			agg.orders[row.OrderNumber] = struct{}{}
		}
		addDistinct(agg.products, row.ProductKey)
		agg.totalSales = sumNullable(agg.totalSales, row.SalesAmount)
		agg.totalQuantity += row.Quantity

		if row.OrderDate.Before(agg.firstOrder) {
			agg.firstOrder = row.OrderDate
		}
		if row.OrderDate.After(agg.lastOrder) {
			agg.lastOrder = row.OrderDate
		}
	}

	sort.Slice(aggregates, func(i, j int) bool {
		return aggregates[i].key.less(aggregates[j].key)
	})

	return aggregates
}

func deriveCustomerReport(agg *customerAggregate, asOf time.Time) *domain.CustomerReport {
	lifespan := MonthsBetween(agg.firstOrder, agg.lastOrder)
	totalOrders := len(agg.orders)

	report := &domain.CustomerReport{
		CustomerKey:     agg.key.ptr(),
		CustomerNumber:  agg.customerNumber,
		CustomerName:    agg.customerName,
		Age:             agg.age,
		AgeGroup:        AgeGroup(agg.age),
		CustomerSegment: CustomerSegment(lifespan, agg.totalSales),
		LastOrderDate:   domain.NewDate(agg.lastOrder),
		Recency:         MonthsBetween(agg.lastOrder, asOf),
		TotalOrders:     totalOrders,
		TotalSales:      agg.totalSales,
		TotalQuantity:   agg.totalQuantity,
		TotalProducts:   len(agg.products),
		Lifespan:        lifespan,
		AvgOrderValue:   0,
		AvgMonthlySpend: agg.totalSales,
	}

	if totalOrders != 0 && agg.totalSales != 0 {
		report.AvgOrderValue = agg.totalSales / float64(totalOrders)
	}

	if lifespan != 0 {
		report.AvgMonthlySpend = agg.totalSales / float64(lifespan)
	}

	return report
}

// BuildCustomerReport executa o pipeline completo do relatório de clientes.
// O resultado tem uma linha por cliente com vendas válidas, ordenado por CustomerKey
// com o grupo de chave nula primeiro.
func BuildCustomerReport(sales []*domain.Sale, customers []*domain.Customer, asOf time.Time) []*domain.CustomerReport {
	aggregates := aggregateCustomers(ProjectCustomerRows(sales, customers, asOf))

	reports := make([]*domain.CustomerReport, 0, len(aggregates))
	for _, agg := range aggregates {
		reports = append(reports, deriveCustomerReport(agg, asOf))
	}

	return reports
}
