package models

import (
	"time"

	"buspass/internal/domain/pass"
)

// BookingRecord is one row of the bookings table. Dates are YYYY-MM-DD.
type BookingRecord struct {
	BookingID    int64  `json:"booking_id"`
	UserName     string `json:"user_name"`
	AadharNumber string `json:"aadhar_number"`
	Address      string `json:"address"`
	PassID       int    `json:"pass_id"`
	BookingDate  string `json:"booking_date"`
	ExpiryDate   string `json:"expiry_date"`
}

// BookingRequest is the POST /book-pass body. Every field is required.
type BookingRequest struct {
	UserName     string `json:"user_name" binding:"required"`
	AadharNumber string `json:"aadhar_number" binding:"required,len=12"`
	Address      string `json:"address" binding:"required"`
	PassID       int    `json:"pass_id" binding:"required,gt=0"`
	BookingDate  string `json:"booking_date" binding:"required,datetime=2006-01-02"`
	ExpiryDate   string `json:"expiry_date" binding:"required,datetime=2006-01-02"`
}

// BookingCreated is the 201 body of POST /book-pass.
type BookingCreated struct {
	Message   string `json:"message"`
	BookingID int64  `json:"bookingId"`
}

// PersonalInfoForm is what the applicant fills in before submitting.
type PersonalInfoForm struct {
	UserName     string `json:"userName" binding:"required,min=2"`
	AadharNumber string `json:"aadharNumber" binding:"required,len=12"`
	Address      string `json:"address" binding:"required,min=5"`
	Area         string `json:"area" binding:"required,min=2"`
	PhotoURL     string `json:"photoUrl,omitempty"`
	BonafideURL  string `json:"bonafideUrl,omitempty"`
}

// ClientPassInfo is the pass record kept in the session between the apply, payment and
// pass-generated steps. PassNumber, PhotoURL and BonafideURL never reach the database.
type ClientPassInfo struct {
	PassType     pass.Kind `json:"passType"`
	BookingID    int64     `json:"bookingId"`
	PassID       int       `json:"passId"`
	UserName     string    `json:"userName"`
	AadharNumber string    `json:"aadharNumber"`
	Address      string    `json:"address"`
	Area         string    `json:"area"`
	Date         time.Time `json:"date"`
	BookingDate  string    `json:"bookingDate"`
	ExpiryDate   string    `json:"expiryDate"`
	PassNumber   string    `json:"passNumber"`
	PhotoURL     string    `json:"photoUrl,omitempty"`
	BonafideURL  string    `json:"bonafideUrl,omitempty"`
	PaymentRef   string    `json:"paymentRef,omitempty"`
}
