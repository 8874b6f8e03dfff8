// file: database/connect.go
package database

import (
	"log"
	"time"

	"github.com/gabimolocea/frvv-admin/config"
	"github.com/gabimolocea/frvv-admin/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect() {
	var err error
	DB, err = gorm.Open(mysql.Open(config.C.MySQLDSN), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// 配置数据库连接池，避免 MySQL wait_timeout 导致连接失效
	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatal("Failed to get underlying sql.DB:", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Database connection successfully established and connection pool configured.")
}

// MigrateTables 自动迁移全部表结构
func MigrateTables() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.City{},
		&models.Title{},
		&models.FederationRole{},
		&models.Grade{},
		&models.Club{},
		&models.ClubCoach{},
		&models.Athlete{},
		&models.GradeHistory{},
		&models.MedicalVisa{},
		&models.AnnualVisa{},
		&models.TrainingSeminar{},
		&models.SeminarAthlete{},
		&models.Competition{},
		&models.Category{},
		&models.CategoryAthlete{},
		&models.CategoryTeam{},
		&models.Team{},
		&models.TeamMember{},
		&models.Match{},
		&models.MatchReferee{},
		&models.RefereeScore{},
		&models.CategoryAthleteScore{},
		&models.CategoryTeamScore{},
		&models.NewsPost{},
		&models.LandingEvent{},
		&models.AboutSection{},
		&models.ContactMessage{},
		&models.ContactInfo{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
	log.Println("Database migration completed.")
}
