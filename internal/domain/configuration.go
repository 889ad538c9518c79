package domain

import "time"

const DefaultDashboardTitle = "Dashboard de Vendas"

type Configuration struct {
	ID             string    `json:"id"`
	DashboardTitle string    `json:"dashboard_title"`
	CompanyLogo    *string   `json:"company_logo"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type ConfigurationInput struct {
	DashboardTitle string `json:"dashboard_title" validate:"required,max=120"`
}
