package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/brunovales/erp-assistencia/internal/adapter/api/dto"
	"github.com/brunovales/erp-assistencia/internal/adapter/repository"
	closingdomain "github.com/brunovales/erp-assistencia/internal/domain/closing"
	companydomain "github.com/brunovales/erp-assistencia/internal/domain/company"
	saledomain "github.com/brunovales/erp-assistencia/internal/domain/sale"
	"github.com/brunovales/erp-assistencia/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// SaleController gerencia as requisições do ponto de venda
type SaleController struct {
	saleRepo    saledomain.Repository
	companyRepo companydomain.Repository
	logger      logger.Logger
}

// NewSaleController cria uma nova instância de SaleController
func NewSaleController(saleRepo saledomain.Repository, companyRepo companydomain.Repository, logger logger.Logger) *SaleController {
	return &SaleController{
		saleRepo:    saleRepo,
		companyRepo: companyRepo,
		logger:      logger,
	}
}

// Create registra uma venda
// @Summary Registrar venda
// @Description Registra uma venda com baixa de estoque; o total e as taxas são calculados no servidor
// @Tags sales
// @Accept json
// @Produce json
// @Param sale body dto.SaleRequest true "Dados da venda"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [post]
func (c *SaleController) Create(ctx *gin.Context) {
	var req dto.SaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	companyID := ctx.GetString("company_id")

	comp, err := c.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		c.logger.Error("erro ao buscar taxas da empresa", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar configuração", err.Error()))
		return
	}

	// O total é sempre a soma dos itens; nunca se aceita total do cliente
	gross := decimal.Zero
	for _, it := range req.Items {
		gross = gross.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}

	s, err := saledomain.NewSale(companyID, dto.ToItemInputs(req.Items), req.PaymentMethod, gross, comp.Rates(), nil)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao montar venda", err.Error()))
		return
	}

	if err := c.saleRepo.Create(ctx, s); err != nil {
		switch {
		case errors.Is(err, repository.ErrInsufficientStock):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "estoque insuficiente", err.Error()))
		case errors.Is(err, repository.ErrSaleProductMissing):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "produto da venda não existe", err.Error()))
		default:
			c.logger.Error("erro ao registrar venda", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao registrar venda", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSaleResponse(s))
}

// Get retorna uma venda pelo ID
// @Summary Buscar venda
// @Description Retorna uma venda com seus itens
// @Tags sales
// @Produce json
// @Param id path string true "ID da venda"
// @Success 200 {object} dto.SaleResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id} [get]
func (c *SaleController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	s, err := c.saleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", ""))
			return
		}
		c.logger.Error("erro ao buscar venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar venda", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(s))
}

// List retorna a lista de vendas
// @Summary Listar vendas
// @Description Retorna as vendas paginadas; aceita intervalo de datas (AAAA-MM-DD)
// @Tags sales
// @Produce json
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Param from query string false "Data inicial"
// @Param to query string false "Data final"
// @Success 200 {object} dto.SaleListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [get]
func (c *SaleController) List(ctx *gin.Context) {
	companyID := ctx.GetString("company_id")

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "20"))
	pagination := dto.GetPagination(page, size)

	fromStr := ctx.Query("from")
	toStr := ctx.Query("to")
	if fromStr != "" && toStr != "" {
		from, err1 := closingdomain.ParseDate(fromStr)
		to, err2 := closingdomain.ParseDate(toStr)
		if err1 != nil || err2 != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "intervalo de datas inválido", "use o formato AAAA-MM-DD"))
			return
		}
		sales, err := c.saleRepo.FindByPeriod(ctx, companyID, from, to.AddDate(0, 0, 1))
		if err != nil {
			c.logger.Error("erro ao buscar vendas do período", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar vendas", err.Error()))
			return
		}
		ctx.JSON(http.StatusOK, dto.ToSaleListResponse(sales, len(sales), 1, len(sales)))
		return
	}

	sales, err := c.saleRepo.List(ctx, companyID, pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar vendas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar vendas", err.Error()))
		return
	}

	total, err := c.saleRepo.CountByCompany(ctx, companyID)
	if err != nil {
		c.logger.Error("erro ao contar vendas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar vendas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(sales, total, pagination.Page, pagination.PageSize))
}

// Refund estorna uma venda
// @Summary Estornar venda
// @Description Marca a venda como estornada e devolve o estoque dos itens
// @Tags sales
// @Accept json
// @Produce json
// @Param id path string true "ID da venda"
// @Param refund body dto.RefundRequest false "Motivo do estorno"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id}/refund [post]
func (c *SaleController) Refund(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.RefundRequest
	// Corpo opcional; sem corpo o motivo fica vazio
	_ = ctx.ShouldBindJSON(&req)

	c.reverse(ctx, id, saledomain.ReverseRefund, req.Reason, "venda estornada")
}

// Delete remove uma venda lançada por engano
// @Summary Excluir venda
// @Description Remove a venda e os itens definitivamente, devolvendo o estoque
// @Tags sales
// @Produce json
// @Param id path string true "ID da venda"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id} [delete]
func (c *SaleController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")
	c.reverse(ctx, id, saledomain.ReverseDelete, "", "venda excluída")
}

// reverse concentra o tratamento comum de estorno e exclusão
func (c *SaleController) reverse(ctx *gin.Context, id string, mode saledomain.ReverseMode, reason, successMsg string) {
	if err := c.saleRepo.Reverse(ctx, id, mode, reason); err != nil {
		switch {
		case errors.Is(err, repository.ErrSaleNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", ""))
		case errors.Is(err, repository.ErrSaleAlreadyReversed):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "venda já foi estornada", ""))
		default:
			c.logger.Error("erro ao estornar venda", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao estornar venda", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(successMsg, nil))
}
