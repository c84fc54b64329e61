package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/viamercado/pdv-varejo/internal/infrastructure/database"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	cfg := database.NewPostgresConfigFromEnv()
	if err := database.RunMigrations(cfg); err != nil {
		log.Fatalf("Erro ao executar migrações: %v", err)
	}

	log.Println("Migrações executadas com sucesso!")
}
