package domain

import "time"

// User is an end-user who submits tickets.
type User struct {
	ID               int64
	FullName         string
	Email            string
	RegistrationDate *time.Time
}
