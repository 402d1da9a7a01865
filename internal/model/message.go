package model

import "time"

// Message is a contact-form submission.
type Message struct {
	ID     int64
	Name   string
	Email  string
	Phone  string // optional
	Body   string
	SentAt time.Time
}
