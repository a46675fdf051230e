package models

import "time"

// CampusFacility represents a facility available on campus.
type CampusFacility struct {
	ID          int64  `json:"id" db:"facility_id"`
	Name        string `json:"name" db:"facility_name"`
	Description string `json:"description" db:"description"`
}

// Accommodation represents a hostel room option.
type Accommodation struct {
	ID             int64   `json:"id" db:"accommodation_id"`
	HostelName     string  `json:"hostelName" db:"hostel_name"`
	RoomType       string  `json:"roomType" db:"room_type"`
	MonthlyFee     float64 `json:"monthlyFee" db:"monthly_fee"`
	AvailableSlots int     `json:"availableSlots" db:"available_slots"`
}

// StudentClub represents a registered student club or society.
type StudentClub struct {
	ID       int64  `json:"id" db:"club_id"`
	Name     string `json:"name" db:"club_name"`
	Category string `json:"category" db:"category"`
}

// Event represents a scheduled campus event.
type Event struct {
	ID       int64     `json:"id" db:"event_id"`
	Name     string    `json:"name" db:"event_name"`
	Date     time.Time `json:"date" db:"event_date"`
	Location string    `json:"location" db:"location"`
}
