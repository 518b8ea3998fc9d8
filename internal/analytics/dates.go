// Package analytics implementa os relatórios de produtos e clientes sobre a camada Gold.
//
// Cada relatório é um pipeline de três etapas executado em memória:
// projeção das linhas (left join fato x dimensão, descartando vendas sem data),
// agregação por entidade e cálculo das métricas derivadas (segmentos e KPIs).
// A data corrente é sempre recebida como parâmetro.
package analytics

import "time"

// MonthsBetween conta as fronteiras de mês entre from e to, como DATEDIFF(month, from, to)
func MonthsBetween(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}

// YearsBetween conta as fronteiras de ano entre from e to, como DATEDIFF(year, from, to)
func YearsBetween(from, to time.Time) int {
	return to.Year() - from.Year()
}
