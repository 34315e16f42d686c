package controller

import (
	"net/http"
	"time"

	"github.com/brunovales/erp-assistencia/internal/adapter/api/dto"
	closingdomain "github.com/brunovales/erp-assistencia/internal/domain/closing"
	customerdomain "github.com/brunovales/erp-assistencia/internal/domain/customer"
	"github.com/brunovales/erp-assistencia/internal/domain/payment"
	productdomain "github.com/brunovales/erp-assistencia/internal/domain/product"
	"github.com/brunovales/erp-assistencia/internal/domain/report"
	saledomain "github.com/brunovales/erp-assistencia/internal/domain/sale"
	sodomain "github.com/brunovales/erp-assistencia/internal/domain/serviceorder"
	"github.com/brunovales/erp-assistencia/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ReportController gerencia os relatórios financeiros e o painel
type ReportController struct {
	saleRepo     saledomain.Repository
	productRepo  productdomain.Repository
	customerRepo customerdomain.Repository
	orderRepo    sodomain.Repository
	logger       logger.Logger
}

// NewReportController cria uma nova instância de ReportController
func NewReportController(saleRepo saledomain.Repository, productRepo productdomain.Repository, customerRepo customerdomain.Repository, orderRepo sodomain.Repository, logger logger.Logger) *ReportController {
	return &ReportController{
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		logger:       logger,
	}
}

// parseRange interpreta o intervalo da query; sem parâmetros o intervalo é
// o mês corrente
func parseRange(ctx *gin.Context) (from, to time.Time, ok bool) {
	fromStr := ctx.Query("from")
	toStr := ctx.Query("to")

	if fromStr == "" && toStr == "" {
		now := time.Now()
		_, _, monthStart := report.Windows(now)
		return monthStart, now, true
	}

	from, err1 := closingdomain.ParseDate(fromStr)
	to, err2 := closingdomain.ParseDate(toStr)
	if err1 != nil || err2 != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "intervalo de datas inválido", "use o formato AAAA-MM-DD"))
		return time.Time{}, time.Time{}, false
	}
	return from, to.AddDate(0, 0, 1), true
}

// buildReport monta o relatório do período a partir das vendas concluídas e
// do cadastro atual de produtos
func (c *ReportController) buildReport(ctx *gin.Context, companyID string, from, to time.Time) (report.Report, error) {
	sales, err := c.saleRepo.FindCompletedByPeriod(ctx, companyID, from, to)
	if err != nil {
		return report.Report{}, err
	}

	products, err := c.productRepo.ListAll(ctx, companyID)
	if err != nil {
		return report.Report{}, err
	}
	byID := make(map[string]*productdomain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	return report.Build(sales, byID), nil
}

// Range retorna o relatório financeiro de um período
// @Summary Relatório do período
// @Description Retorna receita, custo, lucro, margem e rankings do período
// @Tags reports
// @Produce json
// @Param from query string false "Data inicial (AAAA-MM-DD)"
// @Param to query string false "Data final (AAAA-MM-DD)"
// @Success 200 {object} dto.ReportResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports [get]
func (c *ReportController) Range(ctx *gin.Context) {
	companyID := ctx.GetString("company_id")

	from, to, ok := parseRange(ctx)
	if !ok {
		return
	}

	r, err := c.buildReport(ctx, companyID, from, to)
	if err != nil {
		c.logger.Error("erro ao montar relatório", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao montar relatório", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ReportResponse{
		From:   from.Format("2006-01-02"),
		To:     to.AddDate(0, 0, -1).Format("2006-01-02"),
		Report: r,
	})
}

// Stats retorna a fotografia do estoque e contadores de cadastro
// @Summary Estatísticas rápidas
// @Description Retorna a valorização do estoque e contadores gerais
// @Tags reports
// @Produce json
// @Success 200 {object} report.StockStats
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/stats [get]
func (c *ReportController) Stats(ctx *gin.Context) {
	companyID := ctx.GetString("company_id")

	products, err := c.productRepo.ListAll(ctx, companyID)
	if err != nil {
		c.logger.Error("erro ao listar produtos para estatísticas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao montar estatísticas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, report.StockSnapshot(products))
}

// Full retorna o relatório completo: período + estoque
// @Summary Relatório completo
// @Description Retorna o relatório do período junto com a fotografia do estoque
// @Tags reports
// @Produce json
// @Param from query string false "Data inicial (AAAA-MM-DD)"
// @Param to query string false "Data final (AAAA-MM-DD)"
// @Success 200 {object} dto.FullReportResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/full [get]
func (c *ReportController) Full(ctx *gin.Context) {
	companyID := ctx.GetString("company_id")

	from, to, ok := parseRange(ctx)
	if !ok {
		return
	}

	r, err := c.buildReport(ctx, companyID, from, to)
	if err != nil {
		c.logger.Error("erro ao montar relatório completo", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao montar relatório", err.Error()))
		return
	}

	products, err := c.productRepo.ListAll(ctx, companyID)
	if err != nil {
		c.logger.Error("erro ao listar produtos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao montar relatório", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.FullReportResponse{
		From:   from.Format("2006-01-02"),
		To:     to.AddDate(0, 0, -1).Format("2006-01-02"),
		Report: r,
		Stock:  report.StockSnapshot(products),
	})
}

// Performance retorna a performance diária do período
// @Summary Performance do período
// @Description Retorna os totais por dia com melhor e pior dia do período
// @Tags reports
// @Produce json
// @Param from query string false "Data inicial (AAAA-MM-DD)"
// @Param to query string false "Data final (AAAA-MM-DD)"
// @Success 200 {object} dto.ReportResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/performance [get]
func (c *ReportController) Performance(ctx *gin.Context) {
	// Mesma agregação do relatório do período; o cliente usa os campos
	// daily_totals, best_day e worst_day
	c.Range(ctx)
}

// CardSales retorna as vendas no cartão por tipo
// @Summary Vendas no cartão
// @Description Retorna as vendas pagas com cartão separadas por débito e crédito
// @Tags reports
// @Produce json
// @Param from query string false "Data inicial (AAAA-MM-DD)"
// @Param to query string false "Data final (AAAA-MM-DD)"
// @Success 200 {object} dto.CardSalesResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/card-sales [get]
func (c *ReportController) CardSales(ctx *gin.Context) {
	companyID := ctx.GetString("company_id")

	from, to, ok := parseRange(ctx)
	if !ok {
		return
	}

	sales, err := c.saleRepo.FindCompletedByPeriod(ctx, companyID, from, to)
	if err != nil {
		c.logger.Error("erro ao buscar vendas no cartão", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao montar relatório", err.Error()))
		return
	}

	resp := dto.CardSalesResponse{
		From:  from.Format("2006-01-02"),
		To:    to.AddDate(0, 0, -1).Format("2006-01-02"),
		Total: decimal.Zero,
		Fees:  decimal.Zero,
		Net:   decimal.Zero,
	}
	byType := make(map[string]*dto.CardTypeBreakdown)

	for _, s := range sales {
		if s.PaymentMethod != payment.StoredCartao {
			continue
		}

		key := string(s.CardType)
		b, okType := byType[key]
		if !okType {
			b = &dto.CardTypeBreakdown{
				CardType: key,
				Total:    decimal.Zero,
				Fees:     decimal.Zero,
				Net:      decimal.Zero,
			}
			byType[key] = b
		}

		b.Total = b.Total.Add(s.Total)
		b.Fees = b.Fees.Add(s.FeeAmount)
		b.Net = b.Net.Add(s.NetAmount)
		b.Count++

		resp.Total = resp.Total.Add(s.Total)
		resp.Fees = resp.Fees.Add(s.FeeAmount)
		resp.Net = resp.Net.Add(s.NetAmount)
		resp.Count++
	}

	// Débito antes de crédito, ordem estável para o cliente
	for _, key := range []string{string(payment.CardDebito), string(payment.CardCredito)} {
		if b, okType := byType[key]; okType {
			resp.ByType = append(resp.ByType, *b)
		}
	}

	ctx.JSON(http.StatusOK, resp)
}

// Dashboard retorna a visão geral do painel
// @Summary Painel
// @Description Retorna os resumos de hoje, semana e mês, contadores e estoque
// @Tags reports
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard [get]
func (c *ReportController) Dashboard(ctx *gin.Context) {
	companyID := ctx.GetString("company_id")
	now := time.Now()

	todayStart, weekStart, monthStart := report.Windows(now)

	products, err := c.productRepo.ListAll(ctx, companyID)
	if err != nil {
		c.logger.Error("erro ao listar produtos para o painel", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao montar painel", err.Error()))
		return
	}
	byID := make(map[string]*productdomain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	// A janela mais larga (mês) cobre as outras duas; uma consulta basta
	monthSales, err := c.saleRepo.FindCompletedByPeriod(ctx, companyID, monthStart, now)
	if err != nil {
		c.logger.Error("erro ao buscar vendas do mês", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao montar painel", err.Error()))
		return
	}

	var todaySales, weekSales []*saledomain.Sale
	for _, s := range monthSales {
		if !s.CreatedAt.Before(weekStart) {
			weekSales = append(weekSales, s)
		}
		if !s.CreatedAt.Before(todayStart) {
			todaySales = append(todaySales, s)
		}
	}

	customerCount, err := c.customerRepo.CountByCompany(ctx, companyID)
	if err != nil {
		c.logger.Error("erro ao contar clientes para o painel", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao montar painel", err.Error()))
		return
	}

	orderCount, err := c.orderRepo.CountByCompany(ctx, companyID)
	if err != nil {
		c.logger.Error("erro ao contar O.S. para o painel", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao montar painel", err.Error()))
		return
	}

	saleCount, err := c.saleRepo.CountByCompany(ctx, companyID)
	if err != nil {
		c.logger.Error("erro ao contar vendas para o painel", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao montar painel", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.DashboardResponse{
		Today:         report.Build(todaySales, byID),
		Week:          report.Build(weekSales, byID),
		Month:         report.Build(monthSales, byID),
		Stock:         report.StockSnapshot(products),
		CustomerCount: customerCount,
		ProductCount:  len(products),
		OrderCount:    orderCount,
		SaleCount:     saleCount,
	})
}
