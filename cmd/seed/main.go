package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm/clause"

	"github.com/abir-25/doctors-portal-server/internal/database"
	"github.com/abir-25/doctors-portal-server/internal/domain"
	"github.com/abir-25/doctors-portal-server/internal/repository"
)

var defaultSlots = []string{
	"08.00 AM - 08.30 AM",
	"08.30 AM - 09.00 AM",
	"09.00 AM - 09.30 AM",
	"09.30 AM - 10.00 AM",
	"10.00 AM - 10.30 AM",
	"10.30 AM - 11.00 AM",
	"11.00 AM - 11.30 AM",
	"11.30 AM - 12.00 PM",
	"01.00 PM - 01.30 PM",
	"01.30 PM - 02.00 PM",
	"02.00 PM - 02.30 PM",
	"02.30 PM - 03.00 PM",
}

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "doctors_portal.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed: ", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.Service{},
		&domain.Booking{},
		&domain.User{},
		&domain.Doctor{},
		&domain.Payment{},
	); err != nil {
		log.Fatal("AutoMigrate failed: ", err)
	}

	ctx := context.Background()
	services := repository.NewServiceRepository(db)

	catalog := []domain.Service{
		{Name: "Teeth Orthodontics", Slots: defaultSlots, Price: 80},
		{Name: "Cosmetic Dentistry", Slots: defaultSlots, Price: 120},
		{Name: "Teeth Cleaning", Slots: defaultSlots, Price: 60},
		{Name: "Cavity Protection", Slots: defaultSlots, Price: 90},
		{Name: "Pediatric Dental", Slots: defaultSlots, Price: 70},
		{Name: "Oral Surgery", Slots: defaultSlots, Price: 250},
	}

	for i := range catalog {
		if err := services.Upsert(ctx, &catalog[i]); err != nil {
			log.Fatalf("seed service %q: %v", catalog[i].Name, err)
		}
		log.Printf("seeded service %q (id=%d)", catalog[i].Name, catalog[i].ID)
	}

	// repository.UserRepository.Upsert refuses to write roles, so the one
	// bootstrap admin is written directly here.
	if admin := os.Getenv("SEED_ADMIN_EMAIL"); admin != "" {
		u := domain.User{Email: admin, Name: "Portal Admin", Role: domain.RoleAdmin}
		tx := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"role"}),
		}).Create(&u)
		if tx.Error != nil {
			log.Fatal("seed admin: ", tx.Error)
		}
		log.Printf("seeded admin %s", admin)
	}

	log.Println("Seed complete")
}
