package models

import (
	"time"

	"github.com/lib/pq"
)

// Announcement is a categorized resource advertisement.
type Announcement struct {
	ID          int        `db:"id" json:"id"`
	SellerID    int        `db:"seller_id" json:"seller_id"`
	Category    string     `db:"category" json:"category"`
	Subcategory string     `db:"subcategory" json:"subcategory"`
	Title       string     `db:"title" json:"title"`
	Description string     `db:"description" json:"description"`
	Icon        string     `db:"icon" json:"icon"`
	Details     string     `db:"details" json:"details"`
	AdType      string     `db:"ad_type" json:"ad_type"`
	Status      string     `db:"status" json:"status"`
	StartDate   time.Time  `db:"start_date" json:"start_date"`
	EndDate     *time.Time `db:"end_date" json:"end_date,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// Product is a construction product listing.
type Product struct {
	ID          int       `db:"id" json:"id"`
	SellerID    int       `db:"seller_id" json:"seller_id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Price       string    `db:"price" json:"price"`
	Image       *string   `db:"image" json:"image,omitempty"`
	Category    string    `db:"category" json:"category"`
	BrandName   *string   `db:"brand_name" json:"brand_name,omitempty"`
	Model       *string   `db:"model" json:"model,omitempty"`
	Status      string    `db:"status" json:"status"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Tender is an engineering tender notice.
type Tender struct {
	ID                  int            `db:"id" json:"id"`
	UserID              int            `db:"user_id" json:"user_id"`
	UPCRef              string         `db:"upc_ref" json:"upc_ref"`
	EngineeringCategory string         `db:"engineering_category" json:"engineering_category"`
	Specialization      string         `db:"specialization" json:"specialization"`
	TenderName          string         `db:"tender_name" json:"tender_name"`
	Location            string         `db:"location" json:"location"`
	Scope               string         `db:"scope" json:"scope"`
	EstimatedValue      string         `db:"estimated_value" json:"estimated_value"`
	CollectionDate      time.Time      `db:"collection_date" json:"collection_date"`
	SubmissionDate      time.Time      `db:"submission_date" json:"submission_date"`
	ContactName         string         `db:"contact_name" json:"contact_name"`
	ContactNumber       string         `db:"contact_number" json:"contact_number"`
	ContactEmail        string         `db:"contact_email" json:"contact_email"`
	Address             string         `db:"address" json:"address"`
	DocumentURLs        pq.StringArray `db:"document_urls" json:"document_urls"`
	Status              string         `db:"status" json:"status"`
	CreatedAt           time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time      `db:"updated_at" json:"updated_at"`
}

// LandListing is a land sale or lease listing.
type LandListing struct {
	ID           int            `db:"id" json:"id"`
	UserID       int            `db:"user_id" json:"user_id"`
	Title        string         `db:"title" json:"title"`
	Location     string         `db:"location" json:"location"`
	Area         string         `db:"area" json:"area"`
	Price        string         `db:"price" json:"price"`
	LandType     string         `db:"land_type" json:"land_type"`
	Description  string         `db:"description" json:"description"`
	ImageURLs    pq.StringArray `db:"image_urls" json:"image_urls"`
	DocumentURLs pq.StringArray `db:"document_urls" json:"document_urls"`
	Status       string         `db:"status" json:"status"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at" json:"updated_at"`
}

// Machine is a construction machine listing.
type Machine struct {
	ID           int            `db:"id" json:"id"`
	UserID       int            `db:"user_id" json:"user_id"`
	Title        string         `db:"title" json:"title"`
	Type         string         `db:"type" json:"type"`
	Brand        string         `db:"brand" json:"brand"`
	Model        string         `db:"model" json:"model"`
	Year         int            `db:"year" json:"year"`
	Condition    string         `db:"condition" json:"condition"`
	Price        string         `db:"price" json:"price"`
	Location     string         `db:"location" json:"location"`
	Description  string         `db:"description" json:"description"`
	ImageURLs    pq.StringArray `db:"image_urls" json:"image_urls"`
	DocumentURLs pq.StringArray `db:"document_urls" json:"document_urls"`
	Status       string         `db:"status" json:"status"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at" json:"updated_at"`
}

// Material is a building material listing.
type Material struct {
	ID              int            `db:"id" json:"id"`
	UserID          int            `db:"user_id" json:"user_id"`
	Title           string         `db:"title" json:"title"`
	Type            string         `db:"type" json:"type"`
	Quantity        string         `db:"quantity" json:"quantity"`
	Unit            string         `db:"unit" json:"unit"`
	Price           string         `db:"price" json:"price"`
	Grade           *string        `db:"grade" json:"grade,omitempty"`
	Location        string         `db:"location" json:"location"`
	Delivery        string         `db:"delivery" json:"delivery"`
	Description     string         `db:"description" json:"description"`
	ImageURLs       pq.StringArray `db:"image_urls" json:"image_urls"`
	CertificateURLs pq.StringArray `db:"certificate_urls" json:"certificate_urls"`
	Status          string         `db:"status" json:"status"`
	CreatedAt       time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at" json:"updated_at"`
}

// Job is a construction-industry job posting.
type Job struct {
	ID           int            `db:"id" json:"id"`
	UserID       int            `db:"user_id" json:"user_id"`
	Title        string         `db:"title" json:"title"`
	Company      string         `db:"company" json:"company"`
	Description  string         `db:"description" json:"description"`
	Requirements string         `db:"requirements" json:"requirements"`
	Salary       *string        `db:"salary" json:"salary,omitempty"`
	Location     string         `db:"location" json:"location"`
	JobType      string         `db:"job_type" json:"job_type"`
	Experience   string         `db:"experience" json:"experience"`
	Industry     string         `db:"industry" json:"industry"`
	DocumentURLs pq.StringArray `db:"document_urls" json:"document_urls"`
	Status       string         `db:"status" json:"status"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at" json:"updated_at"`
}
