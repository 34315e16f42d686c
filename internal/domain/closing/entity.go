package closing

import (
	"time"

	"github.com/brunovales/erp-assistencia/internal/domain/payment"
	"github.com/brunovales/erp-assistencia/internal/domain/sale"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status representa o estado do fechamento de caixa
type Status string

// Constantes para Status
const (
	StatusOpen   Status = "OPEN"
	StatusClosed Status = "CLOSED"
)

// saoPaulo é o fuso civil fixo usado para delimitar o dia de operação.
// America/Sao_Paulo não tem mais horário de verão, então UTC-3 fixo basta.
var saoPaulo = time.FixedZone("America/Sao_Paulo", -3*60*60)

// DailyClosing representa o fechamento de caixa de um dia. Único por
// (empresa, data); refechar o mesmo dia sobrescreve os totais.
type DailyClosing struct {
	ID            string          `json:"id"`
	CompanyID     string          `json:"company_id"`
	ClosingDate   time.Time       `json:"closing_date"` // Data civil do fechamento
	TotalDinheiro decimal.Decimal `json:"total_dinheiro"`
	TotalPix      decimal.Decimal `json:"total_pix"`
	TotalDebito   decimal.Decimal `json:"total_debito"`
	TotalCredito  decimal.Decimal `json:"total_credito"`
	TotalGross    decimal.Decimal `json:"total_gross"`
	TotalFees     decimal.Decimal `json:"total_fees"`
	TotalNet      decimal.Decimal `json:"total_net"`
	SaleCount     int             `json:"sale_count"`
	Status        Status          `json:"status"`
	ClosedAt      *time.Time      `json:"closed_at"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Summary é o resultado da agregação de um dia de vendas
type Summary struct {
	TotalDinheiro decimal.Decimal `json:"total_dinheiro"`
	TotalPix      decimal.Decimal `json:"total_pix"`
	TotalDebito   decimal.Decimal `json:"total_debito"`
	TotalCredito  decimal.Decimal `json:"total_credito"`
	TotalGross    decimal.Decimal `json:"total_gross"`
	TotalFees     decimal.Decimal `json:"total_fees"`
	TotalNet      decimal.Decimal `json:"total_net"`
	SaleCount     int             `json:"sale_count"`
}

// DayWindow retorna os limites do dia civil em America/Sao_Paulo:
// [00:00:00, 23:59:59.999] do dia informado, inclusivo nas duas pontas.
func DayWindow(date time.Time) (time.Time, time.Time) {
	d := date.In(saoPaulo)
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, saoPaulo)
	end := time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 999_000_000, saoPaulo)
	return start, end
}

// ParseDate interpreta uma data AAAA-MM-DD como dia civil do caixa, no
// mesmo fuso usado por DayWindow. Um parse em UTC cairia no dia civil
// anterior ao convertê-lo para o fuso local.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", value, saoPaulo)
}

// Summarize agrega as vendas de um dia por forma de pagamento e recalcula
// as taxas a partir das taxas configuradas. Os totais são sempre
// recomputados das vendas de origem; nunca se aceita total pré-calculado
// pelo chamador. Vendas estornadas não entram.
func Summarize(sales []*sale.Sale, rates payment.Rates) Summary {
	s := Summary{
		TotalDinheiro: decimal.Zero,
		TotalPix:      decimal.Zero,
		TotalDebito:   decimal.Zero,
		TotalCredito:  decimal.Zero,
		TotalGross:    decimal.Zero,
		TotalFees:     decimal.Zero,
		TotalNet:      decimal.Zero,
	}

	for _, v := range sales {
		if !v.IsCompleted() {
			continue
		}

		method := v.NormalizedMethod()
		switch method {
		case payment.MethodDinheiro:
			s.TotalDinheiro = s.TotalDinheiro.Add(v.Total)
		case payment.MethodPix:
			s.TotalPix = s.TotalPix.Add(v.Total)
		case payment.MethodDebito:
			s.TotalDebito = s.TotalDebito.Add(v.Total)
		default:
			s.TotalCredito = s.TotalCredito.Add(v.Total)
		}

		b := payment.Calculate(v.Total, string(method), rates)
		s.TotalGross = s.TotalGross.Add(v.Total)
		s.TotalFees = s.TotalFees.Add(b.Fee)
		s.SaleCount++
	}

	s.TotalNet = s.TotalGross.Sub(s.TotalFees)
	return s
}

// NewDailyClosing monta um fechamento CLOSED a partir de um resumo do dia
func NewDailyClosing(companyID string, date time.Time, s Summary) *DailyClosing {
	start, _ := DayWindow(date)
	now := time.Now()
	return &DailyClosing{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		ClosingDate:   start,
		TotalDinheiro: s.TotalDinheiro,
		TotalPix:      s.TotalPix,
		TotalDebito:   s.TotalDebito,
		TotalCredito:  s.TotalCredito,
		TotalGross:    s.TotalGross,
		TotalFees:     s.TotalFees,
		TotalNet:      s.TotalNet,
		SaleCount:     s.SaleCount,
		Status:        StatusClosed,
		ClosedAt:      &now,
		CreatedAt:     now,
	}
}
