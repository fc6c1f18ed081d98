// Package db opens the relational database that backs the product catalog.
package db

import (
	"fmt"
	"log"
	"time"

	gmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	productadapters "tienda_backend/internal/feature/product/adapters"
	"tienda_backend/internal/platform/config"
)

// Opener abstracts gorm.Open so the retry loop can be tested without a
// real database.
type Opener func(dsn string) (*gorm.DB, error)

// BuildDSN assembles the MySQL DSN from the configuration.
func BuildDSN(cfg config.Config) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		cfg.MySQLUser, cfg.MySQLPassword, cfg.MySQLHost, cfg.MySQLPort, cfg.MySQLDatabase)
}

// ConnectWithRetry keeps trying to open the database until it succeeds or
// the timeout elapses.
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}
}

// OpenDB connects to MySQL with a retry window and optionally runs the
// schema migrations. It exits the process when the database stays
// unreachable, the catalog cannot serve without it.
func OpenDB(cfg config.Config) *gorm.DB {
	db, err := ConnectWithRetry(BuildDSN(cfg), 60*time.Second, func(dsn string) (*gorm.DB, error) {
		return gorm.Open(gmysql.Open(dsn), &gorm.Config{})
	})
	if err != nil {
		log.Fatalf("%v", err)
	}

	if cfg.RunMigrations {
		if err := db.AutoMigrate(&productadapters.ProductModel{}); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
