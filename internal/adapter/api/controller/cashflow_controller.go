package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/brunovales/erp-assistencia/internal/adapter/api/dto"
	closingdomain "github.com/brunovales/erp-assistencia/internal/domain/closing"
	companydomain "github.com/brunovales/erp-assistencia/internal/domain/company"
	saledomain "github.com/brunovales/erp-assistencia/internal/domain/sale"
	"github.com/brunovales/erp-assistencia/pkg/logger"
	"github.com/gin-gonic/gin"
)

// CashFlowController gerencia o movimento do caixa e os fechamentos diários
type CashFlowController struct {
	saleRepo    saledomain.Repository
	closingRepo closingdomain.Repository
	companyRepo companydomain.Repository
	logger      logger.Logger
}

// NewCashFlowController cria uma nova instância de CashFlowController
func NewCashFlowController(saleRepo saledomain.Repository, closingRepo closingdomain.Repository, companyRepo companydomain.Repository, logger logger.Logger) *CashFlowController {
	return &CashFlowController{
		saleRepo:    saleRepo,
		closingRepo: closingRepo,
		companyRepo: companyRepo,
		logger:      logger,
	}
}

// summarizeDay recomputa o resumo do dia a partir das vendas de origem
func (c *CashFlowController) summarizeDay(ctx *gin.Context, companyID string, date time.Time) (closingdomain.Summary, error) {
	comp, err := c.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		return closingdomain.Summary{}, err
	}

	start, end := closingdomain.DayWindow(date)
	sales, err := c.saleRepo.FindByPeriod(ctx, companyID, start, end)
	if err != nil {
		return closingdomain.Summary{}, err
	}

	return closingdomain.Summarize(sales, comp.Rates()), nil
}

// Today retorna o movimento do dia ao vivo
// @Summary Movimento de hoje
// @Description Retorna o resumo do caixa de hoje recalculado das vendas, sem persistir nada
// @Tags cash
// @Produce json
// @Success 200 {object} dto.CashFlowResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /cash-flow/today [get]
func (c *CashFlowController) Today(ctx *gin.Context) {
	companyID := ctx.GetString("company_id")
	now := time.Now()

	summary, err := c.summarizeDay(ctx, companyID, now)
	if err != nil {
		c.logger.Error("erro ao resumir o dia", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao resumir o movimento", err.Error()))
		return
	}

	start, _ := closingdomain.DayWindow(now)
	ctx.JSON(http.StatusOK, dto.ToCashFlowResponse(start, summary))
}

// Close fecha o caixa do dia
// @Summary Fechar caixa
// @Description Recalcula os totais do dia no servidor e grava o fechamento; refechar o mesmo dia sobrescreve
// @Tags cash
// @Produce json
// @Param date query string false "Data do fechamento (AAAA-MM-DD, padrão hoje)"
// @Success 200 {object} dto.ClosingResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /cash-register/close [post]
func (c *CashFlowController) Close(ctx *gin.Context) {
	companyID := ctx.GetString("company_id")

	date := time.Now()
	if dateStr := ctx.Query("date"); dateStr != "" {
		parsed, err := closingdomain.ParseDate(dateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "data inválida", "use o formato AAAA-MM-DD"))
			return
		}
		date = parsed
	}

	summary, err := c.summarizeDay(ctx, companyID, date)
	if err != nil {
		c.logger.Error("erro ao resumir o dia para fechamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao calcular o fechamento", err.Error()))
		return
	}

	dc := closingdomain.NewDailyClosing(companyID, date, summary)
	if err := c.closingRepo.Upsert(ctx, dc); err != nil {
		c.logger.Error("erro ao gravar fechamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gravar fechamento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClosingResponse(dc))
}

// History retorna o histórico de fechamentos
// @Summary Histórico de fechamentos
// @Description Retorna os fechamentos de caixa mais recentes
// @Tags cash
// @Produce json
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Success 200 {object} dto.ClosingListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /cash-register/history [get]
func (c *CashFlowController) History(ctx *gin.Context) {
	companyID := ctx.GetString("company_id")

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "30"))
	pagination := dto.GetPagination(page, size)

	closings, err := c.closingRepo.List(ctx, companyID, pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar fechamentos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar fechamentos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClosingListResponse(closings))
}
