package payment

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Method representa a forma de pagamento normalizada usada nos cálculos
type Method string

// Constantes para Method
const (
	MethodDinheiro Method = "DINHEIRO" // Pagamento em espécie
	MethodPix      Method = "PIX"      // Transferência instantânea
	MethodDebito   Method = "DEBITO"   // Cartão de débito
	MethodCredito  Method = "CREDITO"  // Cartão de crédito
)

// StoredMethod representa a forma de pagamento como é gravada na venda.
// DEBITO e CREDITO são agrupados em CARTAO, com o subtipo em CardType.
type StoredMethod string

// Constantes para StoredMethod
const (
	StoredDinheiro StoredMethod = "DINHEIRO"
	StoredPix      StoredMethod = "PIX"
	StoredCartao   StoredMethod = "CARTAO"
)

// CardType representa o subtipo do cartão quando a forma é CARTAO
type CardType string

// Constantes para CardType
const (
	CardDebito  CardType = "DEBITO"
	CardCredito CardType = "CREDITO"
	CardNone    CardType = "" // Vendas que não são em cartão
)

// Rates contém as taxas percentuais configuradas pela empresa
type Rates struct {
	TaxCash    decimal.Decimal // Taxa sobre dinheiro (normalmente zero)
	TaxPix     decimal.Decimal // Taxa sobre PIX (normalmente zero)
	DebitRate  decimal.Decimal // Taxa da operadora para débito
	CreditRate decimal.Decimal // Taxa da operadora para crédito
}

// DefaultRates retorna as taxas padrão quando a empresa não tem configuração:
// débito 1,99%, crédito 3,99%, dinheiro e PIX sem taxa.
func DefaultRates() Rates {
	return Rates{
		TaxCash:    decimal.Zero,
		TaxPix:     decimal.Zero,
		DebitRate:  decimal.NewFromFloat(1.99),
		CreditRate: decimal.NewFromFloat(3.99),
	}
}

// Breakdown é o resultado do cálculo de taxa sobre um valor bruto
type Breakdown struct {
	Gross        decimal.Decimal // Valor bruto da venda
	Fee          decimal.Decimal // Taxa retida pela operadora
	Net          decimal.Decimal // Valor líquido (bruto - taxa)
	Method       Method          // Forma normalizada usada no cálculo
	StoredMethod StoredMethod    // Forma gravada na venda
	CardType     CardType        // Subtipo quando StoredMethod é CARTAO
}

// Normalize converte uma string livre de forma de pagamento para a forma
// canônica. A comparação é por substring, sem diferenciar maiúsculas.
// Formas não reconhecidas são tratadas como CREDITO (taxa de crédito) —
// política única para todo o sistema.
func Normalize(raw string) Method {
	s := strings.ToUpper(strings.TrimSpace(raw))
	switch {
	case strings.Contains(s, "DINHEIRO"), strings.Contains(s, "CASH"), strings.Contains(s, "ESPECIE"):
		return MethodDinheiro
	case strings.Contains(s, "PIX"):
		return MethodPix
	case strings.Contains(s, "DEB"):
		return MethodDebito
	default:
		// CARTAO sem subtipo e qualquer forma desconhecida caem na taxa de crédito
		return MethodCredito
	}
}

// RateFor retorna a taxa percentual aplicável à forma de pagamento
func (r Rates) RateFor(method Method) decimal.Decimal {
	switch method {
	case MethodDinheiro:
		return r.TaxCash
	case MethodPix:
		return r.TaxPix
	case MethodDebito:
		return r.DebitRate
	default:
		return r.CreditRate
	}
}

// Calculate calcula taxa e valor líquido de um valor bruto.
// A taxa é arredondada para 2 casas; o líquido é bruto - taxa, de modo que
// líquido + taxa == bruto sempre fecha exato.
func Calculate(gross decimal.Decimal, rawMethod string, rates Rates) Breakdown {
	method := Normalize(rawMethod)
	rate := rates.RateFor(method)

	fee := gross.Mul(rate).Div(decimal.NewFromInt(100)).Round(2)
	net := gross.Sub(fee)

	stored := StoredDinheiro
	cardType := CardNone
	switch method {
	case MethodDinheiro:
		stored = StoredDinheiro
	case MethodPix:
		stored = StoredPix
	case MethodDebito:
		stored = StoredCartao
		cardType = CardDebito
	case MethodCredito:
		stored = StoredCartao
		cardType = CardCredito
	}

	return Breakdown{
		Gross:        gross,
		Fee:          fee,
		Net:          net,
		Method:       method,
		StoredMethod: stored,
		CardType:     cardType,
	}
}
