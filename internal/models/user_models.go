package models

import (
	"encoding/json"
	"strings"
	"time"
)

// GoalsDelimiter joins the goals list into the single TEXT column it is
// stored in. Goal strings themselves must not contain it.
const GoalsDelimiter = ","

// User represents a lead/customer captured from the signup form.
// A user is identified by email; repeated submissions overwrite the record.
type User struct {
	ID             int64     `json:"id" db:"id"`
	Email          string    `json:"email" db:"email"`
	Name           string    `json:"name" db:"name"`
	Phone          string    `json:"phone" db:"phone"`
	Age            *int64    `json:"age,omitempty" db:"age"`
	Profession     *string   `json:"profession,omitempty" db:"profession"`
	Goals          []string  `json:"goals" db:"goals"`
	Experience     *string   `json:"experience,omitempty" db:"experience"`
	AdditionalInfo *string   `json:"additional_info,omitempty" db:"additional_info"`
	PaymentMethod  *string   `json:"payment_method,omitempty" db:"payment_method"`
	PaymentAmount  *float64  `json:"payment_amount,omitempty" db:"payment_amount"`
	PaymentStatus  string    `json:"payment_status" db:"payment_status"`
	PaymentID      *string   `json:"payment_id,omitempty" db:"payment_id"`
	OrderID        *string   `json:"order_id,omitempty" db:"order_id"`
	Signature      *string   `json:"signature,omitempty" db:"signature"`
	SessionBooked  bool      `json:"session_booked" db:"session_booked"`
	SessionID      *string   `json:"session_id,omitempty" db:"session_id"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// StringList accepts either a JSON array of strings or a single delimited
// string, which is how the signup form has historically sent the goals field.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *StringList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*l = list
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	if single == "" {
		*l = nil
		return nil
	}
	*l = strings.Split(single, GoalsDelimiter)
	return nil
}
