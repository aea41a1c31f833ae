package entity

import "time"

// Employment vincula un User con una Company y un departamento. A lo sumo un
// Employment por par (User, Company); lo respalda un índice único.
type Employment struct {
	ID         string
	UserID     string
	CompanyID  string
	Department string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
