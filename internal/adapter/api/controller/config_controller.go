package controller

import (
	"errors"
	"net/http"

	"github.com/brunovales/erp-assistencia/internal/adapter/api/dto"
	"github.com/brunovales/erp-assistencia/internal/adapter/repository"
	companydomain "github.com/brunovales/erp-assistencia/internal/domain/company"
	"github.com/brunovales/erp-assistencia/pkg/logger"
	"github.com/gin-gonic/gin"
)

// ConfigController gerencia a configuração da empresa (dados e taxas)
type ConfigController struct {
	companyRepo companydomain.Repository
	logger      logger.Logger
}

// NewConfigController cria uma nova instância de ConfigController
func NewConfigController(companyRepo companydomain.Repository, logger logger.Logger) *ConfigController {
	return &ConfigController{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

// Get retorna a configuração da empresa
// @Summary Buscar configuração
// @Description Retorna os dados da empresa e as taxas de pagamento configuradas
// @Tags config
// @Produce json
// @Success 200 {object} dto.ConfigResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /config [get]
func (c *ConfigController) Get(ctx *gin.Context) {
	companyID := ctx.GetString("company_id")

	comp, err := c.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "empresa não encontrada", ""))
			return
		}
		c.logger.Error("erro ao buscar configuração", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar configuração", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToConfigResponse(comp))
}

// Update atualiza a configuração da empresa
// @Summary Atualizar configuração
// @Description Atualiza os dados da empresa; taxas ausentes mantêm o valor atual
// @Tags config
// @Accept json
// @Produce json
// @Param config body dto.ConfigRequest true "Configuração"
// @Success 200 {object} dto.ConfigResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /config [put]
func (c *ConfigController) Update(ctx *gin.Context) {
	var req dto.ConfigRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	companyID := ctx.GetString("company_id")

	comp, err := c.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "empresa não encontrada", ""))
			return
		}
		c.logger.Error("erro ao buscar configuração", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar configuração", err.Error()))
		return
	}

	if err := comp.UpdateInfo(req.Name, req.Document, req.Phone, req.Address); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao atualizar configuração", err.Error()))
		return
	}

	debitRate := comp.DebitRate
	creditRate := comp.CreditRate
	taxCash := comp.TaxCash
	taxPix := comp.TaxPix
	if req.DebitRate != nil {
		debitRate = *req.DebitRate
	}
	if req.CreditRate != nil {
		creditRate = *req.CreditRate
	}
	if req.TaxCash != nil {
		taxCash = *req.TaxCash
	}
	if req.TaxPix != nil {
		taxPix = *req.TaxPix
	}
	comp.UpdateRates(debitRate, creditRate, taxCash, taxPix)

	if err := c.companyRepo.Update(ctx, comp); err != nil {
		c.logger.Error("erro ao salvar configuração", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar configuração", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToConfigResponse(comp))
}

// UpdateRates atualiza apenas as taxas de pagamento
// @Summary Atualizar taxas
// @Description Atualiza as taxas de pagamento sem tocar nos dados da empresa; taxas ausentes mantêm o valor atual. Restrito a administradores
// @Tags config
// @Accept json
// @Produce json
// @Param rates body dto.RatesRequest true "Taxas"
// @Success 200 {object} dto.ConfigResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /config/rates [put]
func (c *ConfigController) UpdateRates(ctx *gin.Context) {
	var req dto.RatesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	companyID := ctx.GetString("company_id")

	comp, err := c.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "empresa não encontrada", ""))
			return
		}
		c.logger.Error("erro ao buscar configuração", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar configuração", err.Error()))
		return
	}

	debitRate := comp.DebitRate
	creditRate := comp.CreditRate
	taxCash := comp.TaxCash
	taxPix := comp.TaxPix
	if req.DebitRate != nil {
		debitRate = *req.DebitRate
	}
	if req.CreditRate != nil {
		creditRate = *req.CreditRate
	}
	if req.TaxCash != nil {
		taxCash = *req.TaxCash
	}
	if req.TaxPix != nil {
		taxPix = *req.TaxPix
	}
	comp.UpdateRates(debitRate, creditRate, taxCash, taxPix)

	if err := c.companyRepo.Update(ctx, comp); err != nil {
		c.logger.Error("erro ao salvar taxas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar taxas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToConfigResponse(comp))
}
