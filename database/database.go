package database

import (
	"log"
	"os"

	"dinehub/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func InitDatabase() {
	var err error

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost user=postgres password=postgres dbname=dinehub port=5432 sslmode=disable"
	}

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatalf("Failed to get database handle: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("Database is unreachable: %v", err)
	}

	err = DB.AutoMigrate(
		&model.Restaurant{},
		&model.RestaurantPhone{},
		&model.User{},
		&model.MenuCategory{},
		&model.MenuItem{},
		&model.ModifierGroup{},
		&model.ModifierOption{},
		&model.Table{},
		&model.DineInSession{},
		&model.SessionCartItem{},
		&model.Order{},
		&model.OrderItem{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Database connected and migrated")
}
