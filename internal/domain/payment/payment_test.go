package payment

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		raw  string
		want Method
	}{
		{"DINHEIRO", MethodDinheiro},
		{"dinheiro", MethodDinheiro},
		{"Pagamento em Dinheiro", MethodDinheiro},
		{"cash", MethodDinheiro},
		{"PIX", MethodPix},
		{"pix parcelado", MethodPix},
		{"DEBITO", MethodDebito},
		{"cartao de debito", MethodDebito},
		{"CREDITO", MethodCredito},
		{"cartao de credito", MethodCredito},
		{"CARTAO", MethodCredito},
		{"", MethodCredito},
		{"boleto", MethodCredito},
		{"fiado", MethodCredito},
	}

	for _, c := range cases {
		if got := Normalize(c.raw); got != c.want {
			t.Errorf("Normalize(%q) = %s, esperado %s", c.raw, got, c.want)
		}
	}
}

func TestCalculateCredito(t *testing.T) {
	b := Calculate(decimal.NewFromFloat(100.00), "CREDITO", DefaultRates())

	if !b.Fee.Equal(decimal.NewFromFloat(3.99)) {
		t.Errorf("taxa = %s, esperado 3.99", b.Fee)
	}
	if !b.Net.Equal(decimal.NewFromFloat(96.01)) {
		t.Errorf("liquido = %s, esperado 96.01", b.Net)
	}
	if b.StoredMethod != StoredCartao {
		t.Errorf("forma gravada = %s, esperado CARTAO", b.StoredMethod)
	}
	if b.CardType != CardCredito {
		t.Errorf("subtipo = %s, esperado CREDITO", b.CardType)
	}
}

func TestCalculateDebitoDefault(t *testing.T) {
	b := Calculate(decimal.NewFromFloat(200.00), "DEBITO", DefaultRates())

	if !b.Fee.Equal(decimal.NewFromFloat(3.98)) {
		t.Errorf("taxa = %s, esperado 3.98", b.Fee)
	}
	if !b.Net.Equal(decimal.NewFromFloat(196.02)) {
		t.Errorf("liquido = %s, esperado 196.02", b.Net)
	}
	if b.CardType != CardDebito {
		t.Errorf("subtipo = %s, esperado DEBITO", b.CardType)
	}
}

func TestCalculateSemTaxa(t *testing.T) {
	for _, raw := range []string{"DINHEIRO", "PIX"} {
		b := Calculate(decimal.NewFromFloat(59.90), raw, DefaultRates())
		if !b.Fee.IsZero() {
			t.Errorf("%s: taxa = %s, esperado 0", raw, b.Fee)
		}
		if !b.Net.Equal(decimal.NewFromFloat(59.90)) {
			t.Errorf("%s: liquido = %s, esperado 59.90", raw, b.Net)
		}
		if b.CardType != CardNone {
			t.Errorf("%s: subtipo = %q, esperado vazio", raw, b.CardType)
		}
	}
}

func TestCalculateFechaExato(t *testing.T) {
	// liquido + taxa deve reconstruir o bruto mesmo com arredondamento
	rates := Rates{
		TaxCash:    decimal.Zero,
		TaxPix:     decimal.Zero,
		DebitRate:  decimal.NewFromFloat(1.37),
		CreditRate: decimal.NewFromFloat(4.73),
	}

	grosses := []float64{0.01, 1.00, 33.33, 99.99, 123.45, 1000.00, 9999.99}
	for _, g := range grosses {
		for _, method := range []string{"DINHEIRO", "PIX", "DEBITO", "CREDITO"} {
			gross := decimal.NewFromFloat(g)
			b := Calculate(gross, method, rates)
			if !b.Net.Add(b.Fee).Equal(gross) {
				t.Errorf("%s %v: liquido %s + taxa %s != bruto %s", method, g, b.Net, b.Fee, gross)
			}
			if b.Fee.Exponent() < -2 {
				t.Errorf("%s %v: taxa %s com mais de 2 casas", method, g, b.Fee)
			}
		}
	}
}

func TestCalculateFormaDesconhecidaUsaCredito(t *testing.T) {
	b := Calculate(decimal.NewFromFloat(100.00), "vale-refeicao", DefaultRates())
	if !b.Fee.Equal(decimal.NewFromFloat(3.99)) {
		t.Errorf("taxa = %s, esperado taxa de credito 3.99", b.Fee)
	}
}
