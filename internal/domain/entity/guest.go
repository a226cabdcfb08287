package entity

import "time"

// Guest huésped registrado. El motor de reportes solo lo usa para conteos.
type Guest struct {
	ID        string
	FullName  string
	Email     string
	Document  string
	BranchID  string
	CreatedAt time.Time // cero si el origen no lo informa
}
