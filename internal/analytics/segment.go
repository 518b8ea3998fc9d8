package analytics

import "github.com/vfg2006/gold-reports-api/internal/domain"

const (
	highPerformerSalesThreshold = 50000
	midRangeSalesThreshold      = 10000

	vipLifespanMonths = 12
	vipSalesThreshold = 5000
)

// ProductSegment classifica o produto pela receita total
func ProductSegment(totalSales float64) string {
	switch {
	case totalSales > highPerformerSalesThreshold:
		return domain.ProductSegmentHighPerformer
	case totalSales >= midRangeSalesThreshold && totalSales <= highPerformerSalesThreshold:
		return domain.ProductSegmentMidRange
	default:
		return domain.ProductSegmentLowPerformer
	}
}

// CustomerSegment classifica o cliente pelo tempo de relacionamento e pela receita total
func CustomerSegment(lifespan int, totalSales float64) string {
	switch {
	case lifespan >= vipLifespanMonths && totalSales > vipSalesThreshold:
		return domain.CustomerSegmentVIP
	case lifespan >= vipLifespanMonths && totalSales <= vipSalesThreshold:
		return domain.CustomerSegmentRegular
	default:
		return domain.CustomerSegmentNew
	}
}

// AgeGroup retorna a faixa etária. Idade desconhecida cai em "50 and above",
// pois NULL não satisfaz nenhuma das comparações anteriores.
func AgeGroup(age *int) string {
	switch {
	case age == nil:
		return domain.AgeGroup50AndAbove
	case *age < 20:
		return domain.AgeGroupUnder20
	case *age >= 20 && *age <= 29:
		return domain.AgeGroup20To29
	case *age >= 30 && *age <= 39:
		return domain.AgeGroup30To39
	case *age >= 40 && *age <= 49:
		return domain.AgeGroup40To49
	default:
		return domain.AgeGroup50AndAbove
	}
}
