package main

// @title           ERP Assistência API
// @version         1.0
// @description     API para gestão de assistência técnica e loja: O.S., PDV, estoque e caixa

// @contact.name   Suporte
// @contact.email  suporte@erp-assistencia.com.br

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Cabeçalho de autenticação JWT usando o esquema Bearer. A API também aceita o cookie de sessão erp_session.
