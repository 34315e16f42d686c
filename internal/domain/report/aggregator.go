package report

import (
	"sort"
	"time"

	"github.com/brunovales/erp-assistencia/internal/domain/payment"
	"github.com/brunovales/erp-assistencia/internal/domain/product"
	"github.com/brunovales/erp-assistencia/internal/domain/sale"
	"github.com/shopspring/decimal"
)

// saoPaulo é o mesmo fuso civil fixo do fechamento de caixa
var saoPaulo = time.FixedZone("America/Sao_Paulo", -3*60*60)

// ProductStat acumula receita, custo e lucro de um produto no período.
// A chave de agrupamento é o ID do produto; linhas de serviço (sem produto)
// são agrupadas pela descrição do item.
type ProductStat struct {
	ProductID string          `json:"product_id,omitempty"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Revenue   decimal.Decimal `json:"revenue"`
	Cost      decimal.Decimal `json:"cost"`
	Profit    decimal.Decimal `json:"profit"`
}

// DayStat é o total bruto de um dia civil
type DayStat struct {
	Date  string          `json:"date"` // formato AAAA-MM-DD
	Total decimal.Decimal `json:"total"`
}

// PaymentRank é o total bruto de uma forma de pagamento no período
type PaymentRank struct {
	Method payment.Method  `json:"method"`
	Total  decimal.Decimal `json:"total"`
}

// Report é o resultado da agregação de vendas de um período
type Report struct {
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	TotalCost      decimal.Decimal `json:"total_cost"`
	TotalProfit    decimal.Decimal `json:"total_profit"`
	Margin         decimal.Decimal `json:"margin"` // lucro/receita em %, 0 quando receita é 0
	SaleCount      int             `json:"sale_count"`
	TopProducts    []ProductStat   `json:"top_products"`
	PaymentRanking []PaymentRank   `json:"payment_ranking"`
	DailyTotals    []DayStat       `json:"daily_totals"`
	BestDay        *DayStat        `json:"best_day"`
	WorstDay       *DayStat        `json:"worst_day"`
}

// dayKey deriva o balde de dia civil deslocando o timestamp em -3h,
// aproximação do fuso de São Paulo usada em toda a agregação
func dayKey(ts time.Time) string {
	return ts.UTC().Add(-3 * time.Hour).Format("2006-01-02")
}

// Build agrega vendas COMPLETED em um relatório financeiro. O custo de cada
// item vem do cadastro atual do produto; itens cujo produto foi excluído
// entram com custo zero.
func Build(sales []*sale.Sale, products map[string]*product.Product) Report {
	r := Report{
		TotalRevenue: decimal.Zero,
		TotalCost:    decimal.Zero,
		TotalProfit:  decimal.Zero,
		Margin:       decimal.Zero,
	}

	byProduct := make(map[string]*ProductStat)
	byDay := make(map[string]decimal.Decimal)
	byMethod := make(map[payment.Method]decimal.Decimal)

	for _, v := range sales {
		if !v.IsCompleted() {
			continue
		}

		r.TotalRevenue = r.TotalRevenue.Add(v.Total)
		r.SaleCount++

		day := dayKey(v.CreatedAt)
		byDay[day] = byDay[day].Add(v.Total)

		method := v.NormalizedMethod()
		byMethod[method] = byMethod[method].Add(v.Total)

		for _, item := range v.Items {
			qty := decimal.NewFromInt(int64(item.Quantity))
			revenue := qty.Mul(item.UnitPrice)

			cost := decimal.Zero
			key := "servico:" + item.Description
			name := item.Description
			if item.ProductID != nil {
				key = *item.ProductID
				if p, ok := products[*item.ProductID]; ok {
					cost = qty.Mul(p.CostPrice)
					name = p.Name
				}
			}

			stat, ok := byProduct[key]
			if !ok {
				stat = &ProductStat{Name: name, Revenue: decimal.Zero, Cost: decimal.Zero, Profit: decimal.Zero}
				if item.ProductID != nil {
					stat.ProductID = *item.ProductID
				}
				byProduct[key] = stat
			}
			stat.Quantity += item.Quantity
			stat.Revenue = stat.Revenue.Add(revenue)
			stat.Cost = stat.Cost.Add(cost)
			stat.Profit = stat.Profit.Add(revenue.Sub(cost))

			r.TotalCost = r.TotalCost.Add(cost)
		}
	}

	r.TotalProfit = r.TotalRevenue.Sub(r.TotalCost)
	if r.TotalRevenue.IsPositive() {
		r.Margin = r.TotalProfit.Div(r.TotalRevenue).Mul(decimal.NewFromInt(100)).Round(2)
	}

	r.TopProducts = topByProfit(byProduct, 5)
	r.PaymentRanking = rankPayments(byMethod)
	r.DailyTotals, r.BestDay, r.WorstDay = dayStats(byDay)

	return r
}

// topByProfit ordena os produtos por lucro decrescente e corta os n primeiros
func topByProfit(byProduct map[string]*ProductStat, n int) []ProductStat {
	stats := make([]ProductStat, 0, len(byProduct))
	for _, s := range byProduct {
		stats = append(stats, *s)
	}
	sort.Slice(stats, func(i, j int) bool {
		if !stats[i].Profit.Equal(stats[j].Profit) {
			return stats[i].Profit.GreaterThan(stats[j].Profit)
		}
		return stats[i].Name < stats[j].Name
	})
	if len(stats) > n {
		stats = stats[:n]
	}
	return stats
}

// rankPayments ordena as formas de pagamento por total decrescente,
// descartando formas sem movimento
func rankPayments(byMethod map[payment.Method]decimal.Decimal) []PaymentRank {
	ranking := make([]PaymentRank, 0, len(byMethod))
	for m, total := range byMethod {
		if total.IsZero() {
			continue
		}
		ranking = append(ranking, PaymentRank{Method: m, Total: total})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if !ranking[i].Total.Equal(ranking[j].Total) {
			return ranking[i].Total.GreaterThan(ranking[j].Total)
		}
		return ranking[i].Method < ranking[j].Method
	})
	return ranking
}

// dayStats ordena os baldes diários e identifica melhor e pior dia
func dayStats(byDay map[string]decimal.Decimal) ([]DayStat, *DayStat, *DayStat) {
	days := make([]DayStat, 0, len(byDay))
	for d, total := range byDay {
		days = append(days, DayStat{Date: d, Total: total})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	if len(days) == 0 {
		return days, nil, nil
	}

	best, worst := days[0], days[0]
	for _, d := range days[1:] {
		if d.Total.GreaterThan(best.Total) {
			best = d
		}
		if d.Total.LessThan(worst.Total) {
			worst = d
		}
	}
	return days, &best, &worst
}

// StockStats é a fotografia de valorização do estoque atual, independente
// das vendas do período
type StockStats struct {
	StockValue          decimal.Decimal `json:"stock_value"`           // Σ estoque × custo
	StockProfitEstimate decimal.Decimal `json:"stock_profit_estimate"` // Σ estoque × (venda - custo)
	TotalStockItems     int             `json:"total_stock_items"`     // Σ estoque
	ProductCount        int             `json:"product_count"`
	BelowMinimum        int             `json:"below_minimum"` // Produtos no alerta de reposição
}

// StockSnapshot calcula a valorização do estoque a partir do cadastro atual
func StockSnapshot(products []*product.Product) StockStats {
	s := StockStats{
		StockValue:          decimal.Zero,
		StockProfitEstimate: decimal.Zero,
	}
	for _, p := range products {
		s.StockValue = s.StockValue.Add(p.StockValue())
		s.StockProfitEstimate = s.StockProfitEstimate.Add(p.StockProfitEstimate())
		if p.Stock > 0 {
			s.TotalStockItems += p.Stock
		}
		if p.NeedsRestock() {
			s.BelowMinimum++
		}
		s.ProductCount++
	}
	return s
}

// Windows retorna os inícios das janelas do dashboard (hoje, semana e mês)
// no fuso de São Paulo. A semana começa no domingo.
func Windows(now time.Time) (today, week, month time.Time) {
	n := now.In(saoPaulo)
	today = time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, saoPaulo)
	week = today.AddDate(0, 0, -int(today.Weekday()))
	month = time.Date(n.Year(), n.Month(), 1, 0, 0, 0, 0, saoPaulo)
	return today, week, month
}
