package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"stayhub/internal/database"
	"stayhub/internal/domain"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "stayhub.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.City{},
		&domain.PropertyCategory{},
		&domain.Property{},
		&domain.PropertyPicture{},
		&domain.Room{},
		&domain.RoomPicture{},
		&domain.Booking{},
		&domain.RoomUnavailability{},
		&domain.PeakSeasonRate{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM peak_season_rates")
	db.Exec("DELETE FROM room_unavailabilities")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM room_pictures")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM property_pictures")
	db.Exec("DELETE FROM properties")
	db.Exec("DELETE FROM property_categories")
	db.Exec("DELETE FROM cities")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	tenantHash, _ := bcrypt.GenerateFromPassword([]byte("tenant123"), bcrypt.DefaultCost)
	tenant := domain.User{
		Email:        "tenant@stayhub.dev",
		PasswordHash: string(tenantHash),
		Name:         "Demo Tenant",
		Role:         domain.RoleTenant,
	}
	db.Create(&tenant)
	log.Println("Tenant created: tenant@stayhub.dev / tenant123")

	travelerHash, _ := bcrypt.GenerateFromPassword([]byte("traveler123"), bcrypt.DefaultCost)
	traveler := domain.User{
		Email:        "traveler@stayhub.dev",
		PasswordHash: string(travelerHash),
		Name:         "Demo Traveler",
		Role:         domain.RoleTraveler,
	}
	db.Create(&traveler)

	// ================== CITIES ==================
	log.Println("Creating cities...")
	cities := []domain.City{
		{Name: "Denpasar", Type: "city"},
		{Name: "Bandung", Type: "city"},
		{Name: "Yogyakarta", Type: "city"},
	}
	for i := range cities {
		db.Create(&cities[i])
	}

	// ================== CATEGORIES ==================
	log.Println("Creating categories...")
	categories := []domain.PropertyCategory{
		{Name: "Villa"},
		{Name: "Hotel"},
		{Name: "Guesthouse"},
	}
	for i := range categories {
		db.Create(&categories[i])
	}

	// ================== PROPERTIES & ROOMS ==================
	log.Println("Creating properties...")
	names := []string{"Seaside Villa", "Mountain Lodge", "City Central Hotel"}
	for i, name := range names {
		prop := domain.Property{
			TenantID:    tenant.ID,
			Name:        name,
			Description: fmt.Sprintf("%s with a view", name),
			Location:    fmt.Sprintf("Street %d", i+1),
			CategoryID:  &categories[i%len(categories)].ID,
			CityID:      cities[i%len(cities)].ID,
		}
		db.Create(&prop)
		db.Create(&domain.PropertyPicture{
			PropertyID: prop.ID,
			FilePath:   fmt.Sprintf("/uploads/properties/%d/main.jpg", prop.ID),
			IsMain:     true,
		})

		for j := 0; j < 2; j++ {
			room := domain.Room{
				PropertyID: prop.ID,
				Name:       fmt.Sprintf("Room Type %d", j+1),
				Price:      int64(400000 + 150000*j + 50000*i),
				MaxGuests:  2 + 2*j,
				Quantity:   2 + j,
			}
			db.Create(&room)
			db.Create(&domain.RoomPicture{
				RoomID:   room.ID,
				FilePath: fmt.Sprintf("/uploads/rooms/%d/1.jpg", room.ID),
			})

			if j == 0 {
				// a booking two weeks out
				checkIn := time.Now().AddDate(0, 0, 14).Truncate(24 * time.Hour)
				db.Create(&domain.Booking{
					RoomID:   room.ID,
					CheckIn:  checkIn,
					CheckOut: checkIn.AddDate(0, 0, 3),
					StatusID: domain.BookingStatusConfirmed,
				})
			} else {
				// a weekend peak rate next month
				start := time.Now().AddDate(0, 1, 0).Truncate(24 * time.Hour)
				db.Create(&domain.PeakSeasonRate{
					RoomID:    room.ID,
					Type:      domain.RatePercentage,
					Value:     25,
					StartDate: start,
					EndDate:   start.AddDate(0, 0, 10),
				})
			}
		}
	}

	log.Println("Seed complete.")
}
