package database

import (
	"StarEstate/internal/api/config"
	"StarEstate/internal/pkg/consts"
	"StarEstate/internal/pkg/logger"
	"StarEstate/internal/pkg/redis"
	"fmt"
	log "log/slog"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewGormDB 初始化并返回 *gorm.DB 实例，处理连接池配置
func NewGormDB(cfg *config.DBConfig) (*gorm.DB, error) {
	dialector := mysql.Open(withClientFoundRows(cfg.DSN))

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:      logger.NewGormLogger(),
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	registerCallCounter(db)

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdle)
	sqlDB.SetMaxOpenConns(cfg.MaxOpen)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Minute)

	if err = sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database connection check failed: %w", err)
	}

	log.Info("Database connection established successfully.")
	return db, nil
}

// withClientFoundRows 让 MySQL 按匹配行数而不是变更行数上报
// RowsAffected，同值更新才不会被当成记录缺失
func withClientFoundRows(dsn string) string {
	if strings.Contains(dsn, "clientFoundRows") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "clientFoundRows=true"
}

// registerCallCounter 每条 SQL 执行后累加当日 MySQL 调用计数
func registerCallCounter(db *gorm.DB) {
	counter := func(tx *gorm.DB) {
		redis.CountCall(tx.Statement.Context, consts.CallCountMySQLKey)
	}
	_ = db.Callback().Create().After("gorm:create").Register("stat:call_counter", counter)
	_ = db.Callback().Query().After("gorm:query").Register("stat:call_counter", counter)
	_ = db.Callback().Update().After("gorm:update").Register("stat:call_counter", counter)
	_ = db.Callback().Delete().After("gorm:delete").Register("stat:call_counter", counter)
	_ = db.Callback().Row().After("gorm:row").Register("stat:call_counter", counter)
	_ = db.Callback().Raw().After("gorm:raw").Register("stat:call_counter", counter)
}
