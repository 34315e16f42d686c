package dto

import (
	"time"

	"github.com/brunovales/erp-assistencia/internal/domain/product"
	"github.com/shopspring/decimal"
)

// ProductRequest representa a requisição de criação/atualização de produto
type ProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Category    string          `json:"category"`
	Stock       int             `json:"stock"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	SalePrice   decimal.Decimal `json:"sale_price"`
	MinQuantity int             `json:"min_quantity"`
	SupplierID  *string         `json:"supplier_id"`
}

// BatchRequest representa a entrada de um lote de reposição de estoque
type BatchRequest struct {
	Quantity  int             `json:"quantity" binding:"required"`
	CostPrice decimal.Decimal `json:"cost_price"`
	SalePrice decimal.Decimal `json:"sale_price"`
}

// ProductResponse representa a resposta de produto
type ProductResponse struct {
	ID           string          `json:"id"`
	CompanyID    string          `json:"company_id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Stock        int             `json:"stock"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SalePrice    decimal.Decimal `json:"sale_price"`
	MinQuantity  int             `json:"min_quantity"`
	SupplierID   *string         `json:"supplier_id"`
	NeedsRestock bool            `json:"needs_restock"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// BatchResponse representa a resposta de um lote registrado
type BatchResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	CostPrice decimal.Decimal `json:"cost_price"`
	SalePrice decimal.Decimal `json:"sale_price"`
	CreatedAt time.Time       `json:"created_at"`
}

// ProductListResponse representa a resposta de lista de produtos
type ProductListResponse struct {
	Items      []ProductResponse `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	Size       int               `json:"size"`
	TotalPages int               `json:"total_pages"`
}

// ToProductResponse converte um produto de domínio para o DTO de resposta
func ToProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		CompanyID:    p.CompanyID,
		Name:         p.Name,
		Category:     p.Category,
		Stock:        p.Stock,
		CostPrice:    p.CostPrice,
		SalePrice:    p.SalePrice,
		MinQuantity:  p.MinQuantity,
		SupplierID:   p.SupplierID,
		NeedsRestock: p.NeedsRestock(),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// ToBatchResponse converte um lote de domínio para o DTO de resposta
func ToBatchResponse(b *product.Batch) BatchResponse {
	return BatchResponse{
		ID:        b.ID,
		ProductID: b.ProductID,
		Quantity:  b.Quantity,
		CostPrice: b.CostPrice,
		SalePrice: b.SalePrice,
		CreatedAt: b.CreatedAt,
	}
}

// ToProductListResponse monta a resposta paginada de produtos
func ToProductListResponse(products []*product.Product, total, page, size int) ProductListResponse {
	items := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, ToProductResponse(p))
	}
	return ProductListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: calculateTotalPages(total, size),
	}
}
