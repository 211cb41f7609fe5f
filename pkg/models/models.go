package models

import (
	"time"
)

// StationType distinguishes the kinds of stations on the floor.
type StationType string

const (
	BILLIARD StationType = "billiard"
	PS4      StationType = "ps4"
)

// StationStatus defines the possible states of a station.
type StationStatus string

const (
	AVAILABLE   StationStatus = "available"
	OCCUPIED    StationStatus = "occupied"
	MAINTENANCE StationStatus = "maintenance"
)

// PaymentStatus defines the possible states of a session's payment.
type PaymentStatus string

const (
	PENDING        PaymentStatus = "pending"
	PAID           PaymentStatus = "paid"
	CREDIT         PaymentStatus = "credit"
	PARTIALLY_PAID PaymentStatus = "partially_paid"
)

// CreditStatus defines the possible states of a customer credit.
type CreditStatus string

const (
	UNPAID     CreditStatus = "unpaid"
	CREDITPAID CreditStatus = "paid"
)

// PaymentMethod records how money changed hands.
type PaymentMethod string

const (
	CASH       PaymentMethod = "cash"
	ON_ACCOUNT PaymentMethod = "credit"
)

// PaymentMode is the payment instrument recorded on a session. PENDING_MODE
// until the session closes; a partial cash payment records CASH_MODE.
type PaymentMode string

const (
	PENDING_MODE PaymentMode = "pending"
	CASH_MODE    PaymentMode = "cash"
	CREDIT_MODE  PaymentMode = "credit"
)

// Station represents a physical station (billiard table or console seat).
// It includes dynamodbav tags for marshalling.
type Station struct {
	Id         string        `json:"id" dynamodbav:"id"`
	Name       string        `json:"name" dynamodbav:"name"`
	Type       StationType   `json:"type" dynamodbav:"type"`
	Status     StationStatus `json:"status" dynamodbav:"status"`
	HourlyRate float64       `json:"hourly_rate" dynamodbav:"hourly_rate"`
}

// Session represents a timed play session on a station, from start through
// payment. Amounts are whole currency units.
type Session struct {
	Id              string        `json:"id" dynamodbav:"id"`
	StationId       string        `json:"station_id" dynamodbav:"station_id"`
	StationName     string        `json:"station_name" dynamodbav:"station_name"`
	StartTime       time.Time     `json:"start_time" dynamodbav:"start_time"`
	EndTime         *time.Time    `json:"end_time,omitempty" dynamodbav:"end_time,omitempty"`
	SuggestedAmount int64         `json:"suggested_amount" dynamodbav:"suggested_amount"`
	PaidAmount      int64         `json:"paid_amount" dynamodbav:"paid_amount"`
	Balance         int64         `json:"balance" dynamodbav:"balance"`
	PaymentType     PaymentMode   `json:"payment_type" dynamodbav:"payment_type"`
	CustomerName    string        `json:"customer_name,omitempty" dynamodbav:"customer_name,omitempty"`
	PaymentStatus   PaymentStatus `json:"payment_status" dynamodbav:"payment_status"`
}

// Active reports whether the session is still open.
func (s *Session) Active() bool {
	return s.PaymentStatus == PENDING
}

// Credit represents an outstanding customer balance created when a session
// closed with money still owed.
type Credit struct {
	Id           string       `json:"id" dynamodbav:"id"`
	CustomerName string       `json:"customer_name" dynamodbav:"customer_name"`
	Amount       int64        `json:"amount" dynamodbav:"amount"`
	Status       CreditStatus `json:"status" dynamodbav:"status"`
	CreatedAt    time.Time    `json:"created_at" dynamodbav:"created_at"`
	SessionId    string       `json:"session_id,omitempty" dynamodbav:"session_id,omitempty"`
}

// Payment is a single entry in the append-only payment log. Entries are never
// updated or deleted.
type Payment struct {
	Id        string        `json:"id" dynamodbav:"id"`
	Date      time.Time     `json:"date" dynamodbav:"date"`
	Amount    int64         `json:"amount" dynamodbav:"amount"`
	Method    PaymentMethod `json:"method" dynamodbav:"method"`
	SessionId string        `json:"session_id" dynamodbav:"session_id"`
}
