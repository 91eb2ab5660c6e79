package domain

import "time"

// Message is a direct message between two users. ReadAt is nil until the
// recipient marks it read; after that it never changes.
type Message struct {
	ID           int64
	FromUsername string
	ToUsername   string
	Body         string
	SentAt       time.Time
	ReadAt       *time.Time
}

// MessageDetail is a message joined with both participant profiles.
type MessageDetail struct {
	ID     int64
	Body   string
	SentAt time.Time
	ReadAt *time.Time
	From   UserSummary
	To     UserSummary
}

// InboxMessage is a received message joined with the sender's profile.
type InboxMessage struct {
	ID     int64
	Body   string
	SentAt time.Time
	ReadAt *time.Time
	From   UserSummary
}

// OutboxMessage is a sent message joined with the recipient's profile.
type OutboxMessage struct {
	ID     int64
	Body   string
	SentAt time.Time
	ReadAt *time.Time
	To     UserSummary
}
