package closing

import (
	"testing"
	"time"

	"github.com/brunovales/erp-assistencia/internal/domain/payment"
	"github.com/brunovales/erp-assistencia/internal/domain/sale"
	"github.com/shopspring/decimal"
)

func mkSale(t *testing.T, method string, total float64) *sale.Sale {
	t.Helper()
	items := []sale.ItemInput{{Quantity: 1, UnitPrice: decimal.NewFromFloat(total), Description: "item"}}
	s, err := sale.NewSale("empresa-1", items, method, decimal.NewFromFloat(total), payment.DefaultRates(), nil)
	if err != nil {
		t.Fatalf("erro ao criar venda: %v", err)
	}
	return s
}

func TestSummarizeSeparaPorForma(t *testing.T) {
	sales := []*sale.Sale{
		mkSale(t, "DINHEIRO", 100.00),
		mkSale(t, "PIX", 50.00),
		mkSale(t, "DEBITO", 200.00),
		mkSale(t, "CREDITO", 100.00),
	}

	s := Summarize(sales, payment.DefaultRates())

	if !s.TotalDinheiro.Equal(decimal.NewFromFloat(100.00)) {
		t.Errorf("dinheiro = %s, esperado 100.00", s.TotalDinheiro)
	}
	if !s.TotalPix.Equal(decimal.NewFromFloat(50.00)) {
		t.Errorf("pix = %s, esperado 50.00", s.TotalPix)
	}
	if !s.TotalDebito.Equal(decimal.NewFromFloat(200.00)) {
		t.Errorf("debito = %s, esperado 200.00", s.TotalDebito)
	}
	if !s.TotalCredito.Equal(decimal.NewFromFloat(100.00)) {
		t.Errorf("credito = %s, esperado 100.00", s.TotalCredito)
	}
	if !s.TotalGross.Equal(decimal.NewFromFloat(450.00)) {
		t.Errorf("bruto = %s, esperado 450.00", s.TotalGross)
	}

	// taxas: debito 200*1.99% = 3.98, credito 100*3.99% = 3.99
	if !s.TotalFees.Equal(decimal.NewFromFloat(7.97)) {
		t.Errorf("taxas = %s, esperado 7.97", s.TotalFees)
	}
	if !s.TotalNet.Equal(decimal.NewFromFloat(442.03)) {
		t.Errorf("liquido = %s, esperado 442.03", s.TotalNet)
	}
	if s.SaleCount != 4 {
		t.Errorf("contagem = %d, esperado 4", s.SaleCount)
	}
}

func TestSummarizeIgnoraEstornadas(t *testing.T) {
	v := mkSale(t, "PIX", 80.00)
	if err := v.Refund("defeito"); err != nil {
		t.Fatalf("estorno falhou: %v", err)
	}

	s := Summarize([]*sale.Sale{v, mkSale(t, "PIX", 20.00)}, payment.DefaultRates())
	if !s.TotalGross.Equal(decimal.NewFromFloat(20.00)) {
		t.Errorf("bruto = %s, esperado 20.00 (estornada fora)", s.TotalGross)
	}
	if s.SaleCount != 1 {
		t.Errorf("contagem = %d, esperado 1", s.SaleCount)
	}
}

func TestSummarizeIdempotente(t *testing.T) {
	sales := []*sale.Sale{mkSale(t, "CREDITO", 123.45), mkSale(t, "DINHEIRO", 10.00)}

	a := Summarize(sales, payment.DefaultRates())
	b := Summarize(sales, payment.DefaultRates())

	if !a.TotalGross.Equal(b.TotalGross) || !a.TotalFees.Equal(b.TotalFees) || !a.TotalNet.Equal(b.TotalNet) {
		t.Errorf("resumos divergentes para a mesma entrada: %+v vs %+v", a, b)
	}
}

func TestParseDateFechaODiaPedido(t *testing.T) {
	d, err := ParseDate("2026-08-29")
	if err != nil {
		t.Fatalf("erro ao interpretar data: %v", err)
	}

	start, end := DayWindow(d)
	if start.Year() != 2026 || start.Month() != time.August || start.Day() != 29 {
		t.Errorf("início da janela em %s, esperado dia 29", start)
	}
	if end.Day() != 29 {
		t.Errorf("fim da janela em %s, esperado dia 29", end)
	}

	// Um parse em UTC da mesma string cai no dia 28 após a conversão
	utc, _ := time.Parse("2006-01-02", "2026-08-29")
	wrongStart, _ := DayWindow(utc)
	if wrongStart.Day() == start.Day() {
		t.Errorf("parse em UTC deveria cair no dia anterior, janela em %s", wrongStart)
	}
}

func TestParseDateInvalida(t *testing.T) {
	if _, err := ParseDate("29/08/2026"); err == nil {
		t.Error("esperado erro para formato de data inválido")
	}
}

func TestDayWindow(t *testing.T) {
	// 2024-03-10 15:30 UTC cai em 2024-03-10 12:30 em São Paulo
	ref := time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC)
	start, end := DayWindow(ref)

	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 {
		t.Errorf("início do dia incorreto: %s", start)
	}
	if end.Hour() != 23 || end.Minute() != 59 || end.Second() != 59 {
		t.Errorf("fim do dia incorreto: %s", end)
	}
	if !start.Equal(time.Date(2024, 3, 10, 3, 0, 0, 0, time.UTC)) {
		t.Errorf("início em UTC incorreto: %s", start.UTC())
	}
	if end.Sub(start) != 24*time.Hour-time.Millisecond {
		t.Errorf("janela com duração incorreta: %s", end.Sub(start))
	}
}
