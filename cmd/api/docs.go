package main

// @title           PDV Varejo API
// @version         1.0
// @description     API de gestão de loja e ponto de venda com emissão de NFC-e

// @contact.name   Suporte
// @contact.email  suporte@viamercado.com.br

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: "Bearer {token}"
