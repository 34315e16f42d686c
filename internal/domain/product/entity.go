package product

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName       = errors.New("nome do produto não pode ser vazio")
	ErrInvalidQuantity = errors.New("quantidade deve ser maior que zero")
	ErrNegativePrice   = errors.New("preço não pode ser negativo")
)

// Product representa um produto do estoque (peças e acessórios)
type Product struct {
	ID          string          `json:"id"`           // ID do Produto
	CompanyID   string          `json:"company_id"`   // ID da Empresa
	Name        string          `json:"name"`         // Nome do Produto
	Category    string          `json:"category"`     // Categoria (capa, película, peça...)
	Stock       int             `json:"stock"`        // Quantidade em estoque
	CostPrice   decimal.Decimal `json:"cost_price"`   // Preço de custo
	SalePrice   decimal.Decimal `json:"sale_price"`   // Preço de venda
	MinQuantity int             `json:"min_quantity"` // Estoque mínimo para alerta de reposição
	SupplierID  *string         `json:"supplier_id"`  // Fornecedor (opcional)
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Batch representa um lote de reposição de estoque. Registro imutável,
// criado junto com a atualização do produto.
type Batch struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`   // Quantidade recebida no lote
	CostPrice decimal.Decimal `json:"cost_price"` // Custo unitário no momento do lote
	SalePrice decimal.Decimal `json:"sale_price"` // Preço de venda praticado no momento
	CreatedAt time.Time       `json:"created_at"`
}

// NewProduct cria um novo produto
func NewProduct(companyID, name, category string, stock int, costPrice, salePrice decimal.Decimal, minQuantity int, supplierID *string) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if costPrice.IsNegative() || salePrice.IsNegative() {
		return nil, ErrNegativePrice
	}

	now := time.Now()
	return &Product{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Name:        name,
		Category:    category,
		Stock:       stock,
		CostPrice:   costPrice,
		SalePrice:   salePrice,
		MinQuantity: minQuantity,
		SupplierID:  supplierID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Update atualiza os dados cadastrais do produto
func (p *Product) Update(name, category string, costPrice, salePrice decimal.Decimal, minQuantity int, supplierID *string) error {
	if name == "" {
		return ErrEmptyName
	}
	if costPrice.IsNegative() || salePrice.IsNegative() {
		return ErrNegativePrice
	}

	p.Name = name
	p.Category = category
	p.CostPrice = costPrice
	p.SalePrice = salePrice
	p.MinQuantity = minQuantity
	p.SupplierID = supplierID
	p.UpdatedAt = time.Now()
	return nil
}

// ApplyBatch aplica um lote de reposição ao produto: soma a quantidade ao
// estoque e recalcula o custo como média ponderada entre o estoque atual e
// o lote recebido. Retorna o registro do lote para ser persistido junto.
//
// novoCusto = (estoqueAtual*custoAtual + qtdLote*custoLote) / (estoqueAtual + qtdLote)
func (p *Product) ApplyBatch(quantity int, costPrice, salePrice decimal.Decimal) (*Batch, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if costPrice.IsNegative() || salePrice.IsNegative() {
		return nil, ErrNegativePrice
	}

	currentStock := p.Stock
	if currentStock < 0 {
		// Estoque negativo por venda concorrente não entra na média
		currentStock = 0
	}

	currentValue := decimal.NewFromInt(int64(currentStock)).Mul(p.CostPrice)
	batchValue := decimal.NewFromInt(int64(quantity)).Mul(costPrice)
	totalUnits := decimal.NewFromInt(int64(currentStock + quantity))

	p.CostPrice = currentValue.Add(batchValue).Div(totalUnits).Round(2)
	p.SalePrice = salePrice
	p.Stock += quantity
	p.UpdatedAt = time.Now()

	return &Batch{
		ID:        uuid.New().String(),
		ProductID: p.ID,
		Quantity:  quantity,
		CostPrice: costPrice,
		SalePrice: salePrice,
		CreatedAt: time.Now(),
	}, nil
}

// NeedsRestock verifica se o produto atingiu o estoque mínimo
func (p *Product) NeedsRestock() bool {
	return p.Stock <= p.MinQuantity
}

// StockValue retorna o valor do estoque a preço de custo
func (p *Product) StockValue() decimal.Decimal {
	if p.Stock <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(p.Stock)).Mul(p.CostPrice)
}

// StockProfitEstimate retorna o lucro estimado se todo o estoque for vendido
func (p *Product) StockProfitEstimate() decimal.Decimal {
	if p.Stock <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(p.Stock)).Mul(p.SalePrice.Sub(p.CostPrice))
}
