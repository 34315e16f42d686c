package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/brunovales/erp-assistencia/internal/adapter/api/dto"
	"github.com/brunovales/erp-assistencia/internal/adapter/repository"
	companydomain "github.com/brunovales/erp-assistencia/internal/domain/company"
	customerdomain "github.com/brunovales/erp-assistencia/internal/domain/customer"
	saledomain "github.com/brunovales/erp-assistencia/internal/domain/sale"
	sodomain "github.com/brunovales/erp-assistencia/internal/domain/serviceorder"
	"github.com/brunovales/erp-assistencia/pkg/logger"
	"github.com/gin-gonic/gin"
)

// ServiceOrderController gerencia as requisições relacionadas a ordens de serviço
type ServiceOrderController struct {
	orderRepo    sodomain.Repository
	customerRepo customerdomain.Repository
	companyRepo  companydomain.Repository
	logger       logger.Logger
}

// NewServiceOrderController cria uma nova instância de ServiceOrderController
func NewServiceOrderController(orderRepo sodomain.Repository, customerRepo customerdomain.Repository, companyRepo companydomain.Repository, logger logger.Logger) *ServiceOrderController {
	return &ServiceOrderController{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		companyRepo:  companyRepo,
		logger:       logger,
	}
}

// Create abre uma nova O.S.
// @Summary Abrir O.S.
// @Description Abre uma ordem de serviço; cliente informado por nome/telefone é reaproveitado ou criado
// @Tags service-orders
// @Accept json
// @Produce json
// @Param order body dto.ServiceOrderRequest true "Dados da O.S."
// @Success 201 {object} dto.ServiceOrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /service-orders [post]
func (c *ServiceOrderController) Create(ctx *gin.Context) {
	var req dto.ServiceOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	companyID := ctx.GetString("company_id")

	customerID := req.CustomerID
	if customerID == nil && req.CustomerName != "" {
		id, err := c.resolveCustomer(ctx, companyID, req.CustomerName, req.CustomerPhone)
		if err != nil {
			c.logger.Error("erro ao resolver cliente da O.S.", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao vincular cliente", err.Error()))
			return
		}
		customerID = &id
	}

	order, err := sodomain.NewServiceOrder(companyID, customerID, req.DeviceBrand,
		req.DeviceModel, req.DeviceSerial, req.DevicePasscode, req.Problem, req.Checklist)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao abrir O.S.", err.Error()))
		return
	}

	if err := c.orderRepo.Create(ctx, order); err != nil {
		c.logger.Error("erro ao criar O.S. no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar O.S.", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToServiceOrderResponse(order))
}

// resolveCustomer reaproveita um cliente existente pelo telefone ou cria um
// novo cadastro mínimo
func (c *ServiceOrderController) resolveCustomer(ctx *gin.Context, companyID, name, phone string) (string, error) {
	if phone != "" {
		existing, err := c.customerRepo.FindByDocumentOrPhone(ctx, companyID, "", phone)
		if err == nil {
			return existing.ID, nil
		}
		if !errors.Is(err, repository.ErrCustomerNotFound) {
			return "", err
		}
	}

	cust, err := customerdomain.NewCustomer(companyID, name, phone, "", "")
	if err != nil {
		return "", err
	}
	if err := c.customerRepo.Create(ctx, cust); err != nil {
		return "", err
	}
	return cust.ID, nil
}

// Get retorna uma O.S. pelo ID
// @Summary Buscar O.S.
// @Description Retorna os dados completos de uma ordem de serviço
// @Tags service-orders
// @Produce json
// @Param id path string true "ID da O.S."
// @Success 200 {object} dto.ServiceOrderResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /service-orders/{id} [get]
func (c *ServiceOrderController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	order, err := c.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrServiceOrderNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "O.S. não encontrada", ""))
			return
		}
		c.logger.Error("erro ao buscar O.S.", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar O.S.", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToServiceOrderResponse(order))
}

// List retorna a lista de O.S.
// @Summary Listar O.S.
// @Description Retorna as ordens de serviço paginadas; aceita filtro por status
// @Tags service-orders
// @Produce json
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Param status query string false "Filtro por status"
// @Success 200 {object} dto.ServiceOrderListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /service-orders [get]
func (c *ServiceOrderController) List(ctx *gin.Context) {
	companyID := ctx.GetString("company_id")

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "20"))
	pagination := dto.GetPagination(page, size)

	var (
		orders []*sodomain.ServiceOrder
		err    error
	)
	if statusParam := ctx.Query("status"); statusParam != "" {
		status := sodomain.Status(statusParam)
		if !sodomain.ValidStatus(status) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "status inválido", statusParam))
			return
		}
		orders, err = c.orderRepo.FindByStatus(ctx, companyID, status, pagination.PageSize, pagination.Offset())
	} else {
		orders, err = c.orderRepo.List(ctx, companyID, pagination.PageSize, pagination.Offset())
	}
	if err != nil {
		c.logger.Error("erro ao listar O.S.", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar O.S.", err.Error()))
		return
	}

	total, err := c.orderRepo.CountByCompany(ctx, companyID)
	if err != nil {
		c.logger.Error("erro ao contar O.S.", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar O.S.", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToServiceOrderListResponse(orders, total, pagination.Page, pagination.PageSize))
}

// Update atualiza parcialmente uma O.S.
// @Summary Atualizar O.S.
// @Description Atualiza campos da O.S.; mudança de status respeita o fluxo permitido
// @Tags service-orders
// @Accept json
// @Produce json
// @Param id path string true "ID da O.S."
// @Param order body dto.ServiceOrderUpdateRequest true "Campos a atualizar"
// @Success 200 {object} dto.ServiceOrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /service-orders/{id} [patch]
func (c *ServiceOrderController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.ServiceOrderUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	order, err := c.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrServiceOrderNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "O.S. não encontrada", ""))
			return
		}
		c.logger.Error("erro ao buscar O.S.", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar O.S.", err.Error()))
		return
	}

	if req.Problem != nil {
		order.Problem = *req.Problem
	}
	if req.DeviceBrand != nil {
		order.DeviceBrand = *req.DeviceBrand
	}
	if req.DeviceModel != nil {
		order.DeviceModel = *req.DeviceModel
	}
	if req.DeviceSerial != nil {
		order.DeviceSerial = *req.DeviceSerial
	}
	if req.DevicePasscode != nil {
		order.DevicePasscode = *req.DevicePasscode
	}
	if len(req.Checklist) > 0 {
		order.Checklist = req.Checklist
	}
	if req.TotalPrice != nil || req.CostPrice != nil {
		total := order.TotalPrice
		cost := order.CostPrice
		if req.TotalPrice != nil {
			total = *req.TotalPrice
		}
		if req.CostPrice != nil {
			cost = *req.CostPrice
		}
		order.SetPrices(total, cost)
	}
	if req.Status != nil {
		if err := order.ChangeStatus(*req.Status); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "transição de status não permitida", err.Error()))
			return
		}
	}

	if err := c.orderRepo.Update(ctx, order); err != nil {
		c.logger.Error("erro ao atualizar O.S. no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar O.S.", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToServiceOrderResponse(order))
}

// Finalize finaliza uma O.S. e registra a venda vinculada
// @Summary Finalizar O.S.
// @Description Finaliza a O.S. com a forma de pagamento e cria a venda vinculada na mesma transação
// @Tags service-orders
// @Accept json
// @Produce json
// @Param id path string true "ID da O.S."
// @Param payment body dto.FinalizeOrderRequest true "Pagamento"
// @Success 200 {object} dto.ServiceOrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /service-orders/{id}/finalize [post]
func (c *ServiceOrderController) Finalize(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.FinalizeOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	order, err := c.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrServiceOrderNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "O.S. não encontrada", ""))
			return
		}
		c.logger.Error("erro ao buscar O.S.", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar O.S.", err.Error()))
		return
	}

	if req.TotalPrice != nil || req.CostPrice != nil {
		total := order.TotalPrice
		cost := order.CostPrice
		if req.TotalPrice != nil {
			total = *req.TotalPrice
		}
		if req.CostPrice != nil {
			cost = *req.CostPrice
		}
		order.SetPrices(total, cost)
	}

	if err := order.Finalize(req.PaymentMethod); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "não foi possível finalizar a O.S.", err.Error()))
		return
	}

	comp, err := c.companyRepo.FindByID(ctx, order.CompanyID)
	if err != nil {
		c.logger.Error("erro ao buscar taxas da empresa", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar configuração", err.Error()))
		return
	}

	// A venda vinculada entra como uma linha de serviço, sem produto
	items := []saledomain.ItemInput{{
		Quantity:    1,
		UnitPrice:   order.TotalPrice,
		Description: fmt.Sprintf("O.S. #%d - %s %s", order.OSNumber, order.DeviceBrand, order.DeviceModel),
	}}
	linkedSale, err := saledomain.NewSale(order.CompanyID, items, req.PaymentMethod, order.TotalPrice, comp.Rates(), &order.ID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao montar venda da O.S.", err.Error()))
		return
	}

	if err := c.orderRepo.Finalize(ctx, order, linkedSale); err != nil {
		c.logger.Error("erro ao finalizar O.S.", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao finalizar O.S.", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToServiceOrderResponse(order))
}

// PublicStatus retorna o status público de uma O.S. pelo número
// @Summary Consulta pública de O.S.
// @Description Retorna o status de uma O.S. pelo número, sem autenticação e sem dados internos
// @Tags public
// @Produce json
// @Param osNumber path int true "Número da O.S."
// @Success 200 {object} dto.PublicOrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /public/service-orders/{osNumber} [get]
func (c *ServiceOrderController) PublicStatus(ctx *gin.Context) {
	osNumber, err := strconv.ParseInt(ctx.Param("osNumber"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "número de O.S. inválido", ""))
		return
	}

	companyID := ctx.GetString("company_id")

	order, err := c.orderRepo.FindByOSNumber(ctx, companyID, osNumber)
	if err != nil {
		if errors.Is(err, repository.ErrServiceOrderNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "O.S. não encontrada", ""))
			return
		}
		c.logger.Error("erro ao buscar O.S. pública", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar O.S.", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPublicOrderResponse(order))
}
