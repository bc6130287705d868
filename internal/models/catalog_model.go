package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ============================================
// Service Catalog DTOs
// ============================================

type ProcessStep struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type ServiceRequest struct {
	Title       string        `json:"title" binding:"required,min=2"`
	Description string        `json:"description"`
	Icon        string        `json:"icon"`
	Features    []string      `json:"features"`
	Process     []ProcessStep `json:"process"`
	Benefits    []string      `json:"benefits"`
	FAQ         []FAQItem     `json:"faq"`
}

type ServiceResponse struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Slug        string        `json:"slug"`
	Description string        `json:"description"`
	Icon        string        `json:"icon"`
	Features    []string      `json:"features"`
	Process     []ProcessStep `json:"process"`
	Benefits    []string      `json:"benefits"`
	FAQ         []FAQItem     `json:"faq"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// ============================================
// Payment DTOs
// ============================================

type RecordPaymentRequest struct {
	ClientID    *string         `json:"clientId,omitempty"`
	Reference   string          `json:"reference" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Currency    string          `json:"currency" binding:"omitempty,len=3"`
	Description *string         `json:"description,omitempty"`
}

type PaymentResponse struct {
	ID          string          `json:"id"`
	ClientID    *string         `json:"clientId,omitempty"`
	Reference   string          `json:"reference"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Description *string         `json:"description,omitempty"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ============================================
// Dashboard DTOs
// ============================================

type MonthlyPointResponse struct {
	Month time.Time       `json:"month"`
	Value decimal.Decimal `json:"value"`
}

type DashboardResponse struct {
	TotalProjects    int                    `json:"totalProjects"`
	NewProjects      int                    `json:"newProjects"`
	ActiveClients    int                    `json:"activeClients"`
	NewClients       int                    `json:"newClients"`
	PendingInquiries int                    `json:"pendingInquiries"`
	Revenue          decimal.Decimal        `json:"revenue"`
	MonthlyRevenue   []MonthlyPointResponse `json:"monthlyRevenue"`
	MonthlyProjects  []MonthlyPointResponse `json:"monthlyProjects"`
}
