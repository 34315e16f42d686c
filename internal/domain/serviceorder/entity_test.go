package serviceorder

import (
	"testing"

	"github.com/shopspring/decimal"
)

func newTestOrder(t *testing.T) *ServiceOrder {
	t.Helper()
	o, err := NewServiceOrder("empresa-1", nil, "Samsung", "A52", "R58M123", "1234", "tela quebrada", nil)
	if err != nil {
		t.Fatalf("erro ao criar O.S.: %v", err)
	}
	return o
}

func TestNewServiceOrderComecaAberta(t *testing.T) {
	o := newTestOrder(t)
	if o.Status != StatusAberto {
		t.Errorf("status inicial = %s, esperado ABERTO", o.Status)
	}
	if string(o.Checklist) != "{}" {
		t.Errorf("checklist vazio deveria virar objeto vazio, obtido %s", o.Checklist)
	}
}

func TestNewServiceOrderSemProblema(t *testing.T) {
	if _, err := NewServiceOrder("empresa-1", nil, "Samsung", "A52", "", "", "", nil); err != ErrEmptyProblem {
		t.Errorf("esperado ErrEmptyProblem, obtido %v", err)
	}
}

func TestFluxoDeStatus(t *testing.T) {
	o := newTestOrder(t)

	passos := []Status{StatusEmReparo, StatusAguardandoPeca, StatusEmReparo, StatusPronto}
	for _, s := range passos {
		if err := o.ChangeStatus(s); err != nil {
			t.Fatalf("transição para %s falhou: %v", s, err)
		}
	}

	// PRONTO não pode voltar para ABERTO
	if err := o.ChangeStatus(StatusAberto); err != ErrInvalidTransition {
		t.Errorf("esperado ErrInvalidTransition, obtido %v", err)
	}

	// status desconhecido
	if err := o.ChangeStatus(Status("CANCELADO")); err != ErrInvalidStatus {
		t.Errorf("esperado ErrInvalidStatus, obtido %v", err)
	}
}

func TestSetPricesDerivaMaoDeObra(t *testing.T) {
	o := newTestOrder(t)
	o.SetPrices(decimal.NewFromFloat(350.00), decimal.NewFromFloat(120.00))

	if !o.ServicePrice.Equal(decimal.NewFromFloat(230.00)) {
		t.Errorf("mão de obra = %s, esperado 230.00", o.ServicePrice)
	}
}

func TestFinalize(t *testing.T) {
	o := newTestOrder(t)

	// não pode finalizar antes de PRONTO
	if err := o.Finalize("PIX"); err != ErrNotReady {
		t.Errorf("esperado ErrNotReady, obtido %v", err)
	}

	if err := o.ChangeStatus(StatusPronto); err != nil {
		t.Fatalf("transição para PRONTO falhou: %v", err)
	}
	if err := o.Finalize("PIX"); err != nil {
		t.Fatalf("finalização falhou: %v", err)
	}
	if o.Status != StatusFinalizado || o.PaymentMethod != "PIX" {
		t.Errorf("O.S. finalizada incorreta: status=%s pagamento=%s", o.Status, o.PaymentMethod)
	}

	// finalizar duas vezes é rejeitado
	if err := o.Finalize("PIX"); err != ErrAlreadyFinalized {
		t.Errorf("esperado ErrAlreadyFinalized, obtido %v", err)
	}
}
