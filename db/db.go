// db/db.go
package db

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/idatumhimanshu-alt/syscomply-app-sub001/config"
	logger "github.com/idatumhimanshu-alt/syscomply-app-sub001/logging"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/model"
)

var DB *gorm.DB

func InitPostgres() error {
	dsn := config.GetString("postgres.dsn")
	logger.Info("Connecting to Postgres")

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("failed to open Postgres connection: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	logger.Info("Successfully connected to Postgres")
	return nil
}

func ClosePostgres() {
	if DB == nil {
		return
	}
	sqlDB, err := DB.DB()
	if err != nil {
		logger.Error("Error accessing connection pool on close", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing Postgres connection", zap.Error(err))
	} else {
		logger.Info("Postgres connection closed successfully")
	}
}

// AutoMigrate creates or updates the schema for every entity.
func AutoMigrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&model.Company{},
		&model.Department{},
		&model.User{},
		&model.Role{},
		&model.Permission{},
		&model.Module{},
		&model.Task{},
		&model.Iteration{},
		&model.TaskAssignment{},
		&model.Comment{},
		&model.Document{},
		&model.Notification{},
	)
}

// Seed inserts the fixed module registry and the System Super Admin
// role. Both are idempotent upserts keyed by primary key.
func Seed(gdb *gorm.DB) error {
	for _, m := range model.Modules() {
		if err := gdb.Where(model.Module{ID: m.ID}).FirstOrCreate(&m).Error; err != nil {
			return fmt.Errorf("failed to seed module %s: %w", m.Name, err)
		}
	}

	superAdmin := model.Role{
		ID:          SystemSuperAdminRoleID,
		Name:        "System Super Admin",
		Description: "Company-unscoped operator role",
		Tier:        model.TierSystemSuperAdmin,
	}
	if err := gdb.Where(model.Role{ID: superAdmin.ID}).FirstOrCreate(&superAdmin).Error; err != nil {
		return fmt.Errorf("failed to seed super admin role: %w", err)
	}

	logger.Info("Database seeded", zap.Int("modules", len(model.Modules())))
	return nil
}

// SystemSuperAdminRoleID is the well-known primary key of the seeded
// System Super Admin role.
const SystemSuperAdminRoleID = "c5360799-e6fd-47c8-25ff-19b8e706351c"
