// Package domain holds the carpool entities and the error taxonomy shared by
// the repository ports, the cache decorators, and the HTTP layer. Entities
// carry no behaviour here; their lifecycle belongs to the persistence layer.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role separates plain passengers from users with a driver profile.
type Role string

const (
	RolePassenger Role = "passenger"
	RoleDriver    Role = "driver"
	RoleAdmin     Role = "admin"
)

type User struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Role       Role      `json:"role"`
	Anonymized bool      `json:"anonymized"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Driver is the driving profile attached to a user account.
type Driver struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"userId"`
	LicenseNumber string    `json:"licenseNumber"`
	Verified      bool      `json:"verified"`
}

// Session is a refresh-token session; its cache entries live under the auth
// namespace.
type Session struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"userId"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

type Brand struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type CarModel struct {
	ID      uuid.UUID `json:"id"`
	BrandID uuid.UUID `json:"brandId"`
	Name    string    `json:"name"`
}

type Car struct {
	ID       uuid.UUID `json:"id"`
	DriverID uuid.UUID `json:"driverId"`
	ModelID  uuid.UUID `json:"modelId"`
	Plate    string    `json:"plate"`
	Color    string    `json:"color"`
	Seats    int       `json:"seats"`
}

type City struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Region string    `json:"region"`
}

type TravelStatus string

const (
	TravelOpen      TravelStatus = "open"
	TravelFull      TravelStatus = "full"
	TravelCancelled TravelStatus = "cancelled"
	TravelCompleted TravelStatus = "completed"
)

// Travel is a published city-to-city trip. SeatsFree is derived from the
// travel's inscriptions, which is why inscription writes invalidate the
// travel cache namespace as well.
type Travel struct {
	ID            uuid.UUID    `json:"id"`
	DriverID      uuid.UUID    `json:"driverId"`
	CarID         uuid.UUID    `json:"carId"`
	OriginID      uuid.UUID    `json:"originId"`
	DestinationID uuid.UUID    `json:"destinationId"`
	DepartureAt   time.Time    `json:"departureAt"`
	PricePerSeat  int64        `json:"pricePerSeat"` // minor currency units
	SeatsTotal    int          `json:"seatsTotal"`
	SeatsFree     int          `json:"seatsFree"`
	Status        TravelStatus `json:"status"`
}

type InscriptionStatus string

const (
	InscriptionPending   InscriptionStatus = "pending"
	InscriptionConfirmed InscriptionStatus = "confirmed"
	InscriptionCancelled InscriptionStatus = "cancelled"
)

// Inscription is a passenger's booking on a travel.
type Inscription struct {
	ID          uuid.UUID         `json:"id"`
	TravelID    uuid.UUID         `json:"travelId"`
	PassengerID uuid.UUID         `json:"passengerId"`
	Seats       int               `json:"seats"`
	Status      InscriptionStatus `json:"status"`
	CreatedAt   time.Time         `json:"createdAt"`
}
