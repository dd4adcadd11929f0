package config

import (
	migration "Recipe-Share-Backend/cmd/database/migrate"
	"Recipe-Share-Backend/internal/utils"
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const reconnectDelay = 5 * time.Second

// ConnectDB opens the database handle without pinging, so the process can
// start serving (in a degraded, erroring state) before the database is
// reachable. Connectivity is supervised by WaitForDB.
func ConnectDB() (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable connect_timeout=5",
		utils.GetConfig("DB_HOST"),
		utils.GetConfig("DB_USER"),
		utils.GetConfig("DB_PASSWORD"),
		utils.GetConfig("DB_NAME"),
		utils.GetConfig("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableAutomaticPing: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// WaitForDB pings in a loop with a fixed delay until the database answers,
// then runs migrations once. It never gives up; the process keeps serving
// requests (which fail with 500s) while the database is away.
func WaitForDB(db *gorm.DB) {
	for {
		if err := PingDB(db); err != nil {
			log.Printf("Database connection error: %v (retrying in %s)", err, reconnectDelay)
			time.Sleep(reconnectDelay)
			continue
		}

		log.Println("Database connected successfully")
		if err := migration.Migrate(db); err != nil {
			log.Printf("Database migration error: %v (retrying in %s)", err, reconnectDelay)
			time.Sleep(reconnectDelay)
			continue
		}
		return
	}
}

func PingDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return sqlDB.PingContext(ctx)
}
