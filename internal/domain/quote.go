package domain

import (
	"encoding/json"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ServicesSeparator joins the requested services into the services column
const ServicesSeparator = ", "

// QuoteRequest represents a stored quote request. Rows are append-only.
type QuoteRequest struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"size:100;not null" json:"name"`
	Email       string         `gorm:"size:120;not null;index" json:"email"`
	Phone       string         `gorm:"size:20;not null" json:"phone"`
	Company     *string        `gorm:"size:100" json:"company"`
	Services    string         `gorm:"size:200;not null" json:"services"`
	ServiceList datatypes.JSON `json:"service_list"`
	Message     string         `gorm:"type:text;not null" json:"message"`
	CreatedAt   time.Time      `gorm:"not null" json:"created_at"`
}

// TableName specifies the table name for QuoteRequest
func (QuoteRequest) TableName() string {
	return "quote_requests"
}

// BeforeCreate hook. created_at always comes from the store clock.
func (q *QuoteRequest) BeforeCreate(tx *gorm.DB) error {
	q.CreatedAt = tx.NowFunc().UTC()
	return nil
}

// QuoteSubmission is the validated form payload. It lives for one request.
type QuoteSubmission struct {
	Name     string   `json:"name" validate:"required"`
	Email    string   `json:"email" validate:"required"`
	Phone    string   `json:"phone" validate:"required"`
	Company  *string  `json:"company,omitempty"`
	Services []string `json:"services" validate:"required,min=1,dive,required"`
	Message  string   `json:"message" validate:"required"`
}

// CompanyOrEmpty returns the company or "" when absent
func (s *QuoteSubmission) CompanyOrEmpty() string {
	if s.Company == nil {
		return ""
	}
	return *s.Company
}

// NewQuoteRequest builds the row for s. Blank company becomes NULL.
func NewQuoteRequest(s *QuoteSubmission) (*QuoteRequest, error) {
	list, err := json.Marshal(s.Services)
	if err != nil {
		return nil, err
	}

	req := &QuoteRequest{
		Name:        s.Name,
		Email:       s.Email,
		Phone:       s.Phone,
		Services:    JoinServices(s.Services),
		ServiceList: datatypes.JSON(list),
		Message:     s.Message,
	}
	if s.Company != nil && strings.TrimSpace(*s.Company) != "" {
		company := *s.Company
		req.Company = &company
	}
	return req, nil
}

// ServiceNames decodes the JSON service list, falling back to splitting
// the joined column for rows written before the list existed.
func (q *QuoteRequest) ServiceNames() []string {
	var names []string
	if len(q.ServiceList) > 0 && json.Unmarshal(q.ServiceList, &names) == nil {
		return names
	}
	return SplitServices(q.Services)
}

// JoinServices joins services with ServicesSeparator
func JoinServices(services []string) string {
	return strings.Join(services, ServicesSeparator)
}

// SplitServices is the inverse of JoinServices as long as no service name
// contains ServicesSeparator.
func SplitServices(joined string) []string {
	if joined == "" {
		return []string{}
	}
	return strings.Split(joined, ServicesSeparator)
}
