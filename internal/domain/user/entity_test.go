package user

import "testing"

func TestNewUserHashesPassword(t *testing.T) {
	u, err := NewUser("empresa-1", "Bruno", "bruno@loja.com", "segredo123", RoleAdmin)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if u.Password == "segredo123" {
		t.Error("senha não pode ser armazenada em texto puro")
	}
	if !u.CheckPassword("segredo123") {
		t.Error("CheckPassword deveria aceitar a senha correta")
	}
	if u.CheckPassword("errada") {
		t.Error("CheckPassword deveria rejeitar senha incorreta")
	}
}

func TestNewUserValidation(t *testing.T) {
	cases := []struct {
		name     string
		userName string
		email    string
		password string
	}{
		{"nome vazio", "", "a@b.com", "12345678"},
		{"email vazio", "Bruno", "", "12345678"},
		{"senha vazia", "Bruno", "a@b.com", ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := NewUser("empresa-1", c.userName, c.email, c.password, RoleStaff); err == nil {
				t.Error("esperado erro de validação")
			}
		})
	}
}

func TestIsAdmin(t *testing.T) {
	admin, _ := NewUser("empresa-1", "Dono", "dono@loja.com", "segredo123", RoleAdmin)
	staff, _ := NewUser("empresa-1", "Atendente", "staff@loja.com", "segredo123", RoleStaff)

	if !admin.IsAdmin() {
		t.Error("admin deveria ser administrador")
	}
	if staff.IsAdmin() {
		t.Error("staff não deveria ser administrador")
	}
}
