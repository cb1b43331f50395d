package sandbox

import (
	"app/internal/config"
	"app/internal/domain/model"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect はDBに接続して *gorm.DB を返す。
// DATABASE_URL があればPostgres、無ければ組み込みSQLite
// （パス未指定ならインメモリ）。e2eは外部DB無しで動く。
func Connect(cfg config.SandboxConfig) (*gorm.DB, error) {
	gcfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	if cfg.DatabaseURL != "" {
		return gorm.Open(postgres.Open(cfg.DatabaseURL), gcfg)
	}

	path := cfg.SQLitePath
	if path == "" {
		path = "file::memory:?cache=shared"
	}
	return gorm.Open(sqlite.Open(path), gcfg)
}

// Migrate はスキーマを作る。
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Workshop{},
		&model.Registration{},
		&model.Cart{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
	)
}
