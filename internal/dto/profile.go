package dto

import (
	"time"

	"github.com/BDF-Tech/BDF-Mobile/internal/core/domain"
	"github.com/BDF-Tech/BDF-Mobile/internal/utils/daterange"
	"github.com/shopspring/decimal"
)

// ProfileResponse is the portal user's profile, with customer contract and
// license details when a customer is linked.
type ProfileResponse struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Gender          string `json:"gender,omitempty"`
	DOB             string `json:"dob,omitempty"`
	Image           string `json:"image,omitempty"`
	CustomerID      string `json:"customerID,omitempty"`
	ContractDate    string `json:"contractDate,omitempty"`
	LicenseNo       string `json:"licenseNo,omitempty"`
	LicenseValidity string `json:"licenseValidity,omitempty"`
}

// DashboardResponse summarises the customer's standing.
type DashboardResponse struct {
	UserName   string `json:"userName"`
	CustomerID string `json:"customerID"`
	Stats      struct {
		BillingThisYear decimal.Decimal `json:"billingThisYear"`
		TotalUnpaid     decimal.Decimal `json:"totalUnpaid"`
		OpenOrders      int             `json:"openOrders"`
	} `json:"stats"`
}

// ToProfileResponse merges the portal user with customer details, when present.
func ToProfileResponse(user *domain.PortalUser, customer *domain.Customer) ProfileResponse {
	response := ProfileResponse{
		FullName: user.FullName,
		Email:    user.Email,
		Gender:   user.Gender,
		DOB:      formatDatePtr(user.BirthDate),
		Image:    user.Image,
	}
	if customer != nil {
		response.CustomerID = customer.CustomerID
		response.ContractDate = formatDatePtr(customer.ContractStartDate)
		response.LicenseNo = customer.FoodLicenseNumber
		response.LicenseValidity = formatDatePtr(customer.FoodLicenseValidity)
	}
	return response
}

// ToDashboardResponse builds the dashboard payload.
func ToDashboardResponse(userName, customerID string, stats *domain.DashboardStats) DashboardResponse {
	response := DashboardResponse{
		UserName:   userName,
		CustomerID: customerID,
	}
	response.Stats.BillingThisYear = stats.BillingThisYear
	response.Stats.TotalUnpaid = stats.TotalUnpaid
	response.Stats.OpenOrders = stats.OpenOrders
	return response
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(daterange.DateFormat)
}
