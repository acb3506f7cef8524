package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB opens the shared database handle. A non-empty postgres DSN wins,
// otherwise the local sqlite file is used.
func InitDB(dsn, sqlitePath string) {
	var err error

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	}

	if dsn != "" {
		pgConfig := postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}
		DB, err = gorm.Open(postgres.New(pgConfig), gormConfig)
	} else {
		DB, err = gorm.Open(sqlite.Open(sqlitePath), gormConfig)
	}
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatal("Failed to get database instance:", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Database connected successfully!")
}

func GetDB() *gorm.DB {
	return DB
}

func MigrateDatabase(models ...interface{}) error {
	for _, model := range models {
		if !DB.Migrator().HasTable(model) {
			if err := DB.Migrator().CreateTable(model); err != nil {
				return err
			}
			log.Printf("Created table for %T\n", model)
		} else {
			if err := DB.Migrator().AutoMigrate(model); err != nil {
				return err
			}
			log.Printf("Updated table for %T\n", model)
		}
	}
	return nil
}
