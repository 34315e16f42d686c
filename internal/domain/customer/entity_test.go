package customer

import "testing"

func TestNewCustomer(t *testing.T) {
	c, err := NewCustomer("empresa-1", "Maria Silva", "11988887777", "12345678900", "Padaria Central")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if c.ID == "" {
		t.Error("ID não foi gerado")
	}
	if c.Name != "Maria Silva" || c.Phone != "11988887777" || c.Employer != "Padaria Central" {
		t.Error("dados do cliente não foram preenchidos")
	}
}

func TestNewCustomerEmptyName(t *testing.T) {
	if _, err := NewCustomer("empresa-1", "", "", "", ""); err != ErrEmptyName {
		t.Errorf("erro = %v, esperado ErrEmptyName", err)
	}
}

func TestUpdate(t *testing.T) {
	c, _ := NewCustomer("empresa-1", "Maria", "", "", "")

	if err := c.Update("Maria Souza", "11977776666", "98765432100", "Escola Azul"); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if c.Name != "Maria Souza" || c.Document != "98765432100" {
		t.Error("dados não foram atualizados")
	}

	if err := c.Update("", "", "", ""); err != ErrEmptyName {
		t.Errorf("erro = %v, esperado ErrEmptyName", err)
	}
}
