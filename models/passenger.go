package models

import "time"

type PassengerType string

const (
	PassengerAdult  PassengerType = "adult"
	PassengerChild  PassengerType = "child"
	PassengerInfant PassengerType = "infant"
)

// PassportInfo is the optional travel-document record for a passenger.
type PassportInfo struct {
	Number      string    `json:"number" bson:"number"`
	Nationality string    `json:"nationality" bson:"nationality"`
	ExpiryDate  time.Time `json:"expiryDate" bson:"expiry_date"`
}

// ContactInfo is the booking contact, carried by the primary passenger only.
type ContactInfo struct {
	Email       string `json:"email" bson:"email"`
	Phone       string `json:"phone" bson:"phone"`
	CountryCode string `json:"countryCode" bson:"country_code"`
}

// PassengerInfo is one traveller on the booking.
type PassengerInfo struct {
	ID        string        `json:"id" bson:"id"`
	Type      PassengerType `json:"type" bson:"type"`
	FirstName string        `json:"firstName" bson:"first_name"`
	LastName  string        `json:"lastName" bson:"last_name"`
	BirthDate time.Time     `json:"birthDate" bson:"birth_date"`
	Gender    string        `json:"gender" bson:"gender"`
	Passport  *PassportInfo `json:"passport,omitempty" bson:"passport,omitempty"`
	Contact   *ContactInfo  `json:"contact,omitempty" bson:"contact,omitempty"`
}
