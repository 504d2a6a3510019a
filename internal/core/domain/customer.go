package domain

import "time"

// Customer is the ERP customer record as seen by the facade.
type Customer struct {
	CustomerID          string     `json:"customerID"`
	CustomerName        string     `json:"customerName"`
	CustomerGroup       string     `json:"customerGroup"`
	DefaultPriceList    string     `json:"defaultPriceList"`
	ContractStartDate   *time.Time `json:"contractStartDate"`
	FoodLicenseNumber   string     `json:"foodLicenseNumber"`
	FoodLicenseValidity *time.Time `json:"foodLicenseValidity"`
	Disabled            bool       `json:"disabled"`
}

// PortalUser is a mobile-app login linked to a customer.
type PortalUser struct {
	Email        string     `json:"email"`
	FullName     string     `json:"fullName"`
	Gender       string     `json:"gender"`
	BirthDate    *time.Time `json:"birthDate"`
	Image        string     `json:"image"`
	PasswordHash string     `json:"-"`
	CustomerID   string     `json:"customerID"`
	Enabled      bool       `json:"-"`
}
