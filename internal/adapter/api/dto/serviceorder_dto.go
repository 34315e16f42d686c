package dto

import (
	"encoding/json"
	"time"

	"github.com/brunovales/erp-assistencia/internal/domain/serviceorder"
	"github.com/shopspring/decimal"
)

// ServiceOrderRequest representa a requisição de abertura de O.S.
type ServiceOrderRequest struct {
	CustomerID     *string         `json:"customer_id"`
	CustomerName   string          `json:"customer_name"`
	CustomerPhone  string          `json:"customer_phone"`
	DeviceBrand    string          `json:"device_brand"`
	DeviceModel    string          `json:"device_model"`
	DeviceSerial   string          `json:"device_serial"`
	DevicePasscode string          `json:"device_passcode"`
	Problem        string          `json:"problem" binding:"required"`
	Checklist      json.RawMessage `json:"checklist"`
}

// ServiceOrderUpdateRequest representa a atualização parcial de uma O.S.
// Campos nulos não são alterados.
type ServiceOrderUpdateRequest struct {
	Status         *serviceorder.Status `json:"status"`
	Problem        *string              `json:"problem"`
	DeviceBrand    *string              `json:"device_brand"`
	DeviceModel    *string              `json:"device_model"`
	DeviceSerial   *string              `json:"device_serial"`
	DevicePasscode *string              `json:"device_passcode"`
	Checklist      json.RawMessage      `json:"checklist"`
	TotalPrice     *decimal.Decimal     `json:"total_price"`
	CostPrice      *decimal.Decimal     `json:"cost_price"`
}

// FinalizeOrderRequest representa a finalização de uma O.S. com pagamento
type FinalizeOrderRequest struct {
	PaymentMethod string           `json:"payment_method" binding:"required"`
	TotalPrice    *decimal.Decimal `json:"total_price"`
	CostPrice     *decimal.Decimal `json:"cost_price"`
}

// ServiceOrderResponse representa a resposta completa de O.S.
type ServiceOrderResponse struct {
	ID             string              `json:"id"`
	OSNumber       int64               `json:"os_number"`
	CompanyID      string              `json:"company_id"`
	CustomerID     *string             `json:"customer_id"`
	DeviceBrand    string              `json:"device_brand"`
	DeviceModel    string              `json:"device_model"`
	DeviceSerial   string              `json:"device_serial"`
	DevicePasscode string              `json:"device_passcode"`
	Problem        string              `json:"problem"`
	Checklist      json.RawMessage     `json:"checklist"`
	Status         serviceorder.Status `json:"status"`
	TotalPrice     decimal.Decimal     `json:"total_price"`
	CostPrice      decimal.Decimal     `json:"cost_price"`
	ServicePrice   decimal.Decimal     `json:"service_price"`
	PaymentMethod  string              `json:"payment_method"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// PublicOrderResponse é a resposta da consulta pública de status. Expõe
// apenas o que o cliente final pode ver: nada de senha do aparelho, custo
// ou dados internos.
type PublicOrderResponse struct {
	OSNumber    int64               `json:"os_number"`
	DeviceBrand string              `json:"device_brand"`
	DeviceModel string              `json:"device_model"`
	Status      serviceorder.Status `json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// ServiceOrderListResponse representa a resposta de lista de O.S.
type ServiceOrderListResponse struct {
	Items      []ServiceOrderResponse `json:"items"`
	Total      int                    `json:"total"`
	Page       int                    `json:"page"`
	Size       int                    `json:"size"`
	TotalPages int                    `json:"total_pages"`
}

// ToServiceOrderResponse converte uma O.S. de domínio para o DTO de resposta
func ToServiceOrderResponse(o *serviceorder.ServiceOrder) ServiceOrderResponse {
	return ServiceOrderResponse{
		ID:             o.ID,
		OSNumber:       o.OSNumber,
		CompanyID:      o.CompanyID,
		CustomerID:     o.CustomerID,
		DeviceBrand:    o.DeviceBrand,
		DeviceModel:    o.DeviceModel,
		DeviceSerial:   o.DeviceSerial,
		DevicePasscode: o.DevicePasscode,
		Problem:        o.Problem,
		Checklist:      o.Checklist,
		Status:         o.Status,
		TotalPrice:     o.TotalPrice,
		CostPrice:      o.CostPrice,
		ServicePrice:   o.ServicePrice,
		PaymentMethod:  o.PaymentMethod,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

// ToPublicOrderResponse converte uma O.S. para a visão pública de status
func ToPublicOrderResponse(o *serviceorder.ServiceOrder) PublicOrderResponse {
	return PublicOrderResponse{
		OSNumber:    o.OSNumber,
		DeviceBrand: o.DeviceBrand,
		DeviceModel: o.DeviceModel,
		Status:      o.Status,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

// ToServiceOrderListResponse monta a resposta paginada de O.S.
func ToServiceOrderListResponse(orders []*serviceorder.ServiceOrder, total, page, size int) ServiceOrderListResponse {
	items := make([]ServiceOrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, ToServiceOrderResponse(o))
	}
	return ServiceOrderListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: calculateTotalPages(total, size),
	}
}
