package emulador

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/t21arenapark/painel/internal/config"
)

// Conectar abre o banco do emulador conforme MOCK_DB_DRIVER.
func Conectar(cfg *config.Emulador) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.PostgresDSN())
	case "sqlite":
		dialector = sqlite.Open(cfg.DBDSN)
	default:
		return nil, fmt.Errorf("driver de banco desconhecido: %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar no banco: %w", err)
	}
	return db, nil
}

// Migrar cria ou atualiza as tabelas.
func Migrar(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&Endereco{},
		&Organizacao{},
		&Usuario{},
		&Atleta{},
		&Responsavel{},
		&Secao{},
		&Pergunta{},
		&Anamnese{},
		&Resposta{},
	); err != nil {
		return fmt.Errorf("erro no AutoMigrate: %w", err)
	}
	return nil
}
