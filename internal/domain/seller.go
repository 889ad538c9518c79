package domain

import "time"

type SellerStatus string

const (
	SellerStatusActive   SellerStatus = "active"
	SellerStatusInactive SellerStatus = "inactive"
)

type Team struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type TeamInput struct {
	Name        string  `json:"name" validate:"required,max=120"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

type Seller struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Status    SellerStatus `json:"status"`
	TeamID    *string      `json:"team_id"`
	Team      *Team        `json:"team,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

type SellerInput struct {
	Name   string       `json:"name" validate:"required,max=120"`
	Email  string       `json:"email" validate:"required,email"`
	Status SellerStatus `json:"status" validate:"omitempty,oneof=active inactive"`
	TeamID *string      `json:"team_id"`
}
