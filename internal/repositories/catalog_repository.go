package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"deals-room-service/internal/models"
)

// CatalogRepository covers the resource-catalog tables. Each list method
// returns active rows, optionally narrowed by that table's filter column.
type CatalogRepository interface {
	ListAnnouncements(ctx context.Context, category string) ([]models.Announcement, error)
	CreateAnnouncement(ctx context.Context, a models.Announcement) (models.Announcement, error)
	ListProducts(ctx context.Context, category string) ([]models.Product, error)
	CreateProduct(ctx context.Context, p models.Product) (models.Product, error)
	ListTenders(ctx context.Context, engineeringCategory string) ([]models.Tender, error)
	CreateTender(ctx context.Context, t models.Tender) (models.Tender, error)
	ListLandListings(ctx context.Context, landType string) ([]models.LandListing, error)
	CreateLandListing(ctx context.Context, l models.LandListing) (models.LandListing, error)
	ListMachines(ctx context.Context, brand string) ([]models.Machine, error)
	CreateMachine(ctx context.Context, m models.Machine) (models.Machine, error)
	ListMaterials(ctx context.Context, materialType string) ([]models.Material, error)
	CreateMaterial(ctx context.Context, m models.Material) (models.Material, error)
	ListJobs(ctx context.Context, jobType string) ([]models.Job, error)
	CreateJob(ctx context.Context, j models.Job) (models.Job, error)
}

// CatalogRepo is a sqlx implementation of CatalogRepository.
type CatalogRepo struct {
	db *sqlx.DB
}

// NewCatalogRepo constructs a CatalogRepo.
func NewCatalogRepo(db *sqlx.DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

// ListAnnouncements returns active announcements whose display window covers
// now, optionally narrowed by category.
func (r *CatalogRepo) ListAnnouncements(ctx context.Context, category string) ([]models.Announcement, error) {
	query := `SELECT * FROM announcements
        WHERE status='active' AND start_date <= NOW()
        AND (end_date IS NULL OR end_date >= NOW())
        AND ($1 = '' OR category=$1)
        ORDER BY created_at DESC`
	var items []models.Announcement
	err := r.db.SelectContext(ctx, &items, query, category)
	return items, err
}

func (r *CatalogRepo) CreateAnnouncement(ctx context.Context, a models.Announcement) (models.Announcement, error) {
	var created models.Announcement
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO announcements (seller_id, category, subcategory, title, description, icon, details, ad_type, status, start_date, end_date)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING *`,
		a.SellerID, a.Category, a.Subcategory, a.Title, a.Description, a.Icon, a.Details, a.AdType, a.Status, a.StartDate, a.EndDate).
		StructScan(&created)
	return created, err
}

func (r *CatalogRepo) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	var items []models.Product
	err := r.db.SelectContext(ctx, &items,
		`SELECT * FROM products WHERE status='active' AND ($1 = '' OR category=$1) ORDER BY created_at DESC`, category)
	return items, err
}

func (r *CatalogRepo) CreateProduct(ctx context.Context, p models.Product) (models.Product, error) {
	var created models.Product
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO products (seller_id, name, description, price, image, category, brand_name, model, status)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING *`,
		p.SellerID, p.Name, p.Description, p.Price, p.Image, p.Category, p.BrandName, p.Model, p.Status).
		StructScan(&created)
	return created, err
}

// ListTenders returns active tenders still open for submission.
func (r *CatalogRepo) ListTenders(ctx context.Context, engineeringCategory string) ([]models.Tender, error) {
	var items []models.Tender
	err := r.db.SelectContext(ctx, &items,
		`SELECT * FROM tenders
         WHERE status='active' AND submission_date >= NOW()
         AND ($1 = '' OR engineering_category=$1)
         ORDER BY submission_date ASC`, engineeringCategory)
	return items, err
}

func (r *CatalogRepo) CreateTender(ctx context.Context, t models.Tender) (models.Tender, error) {
	var created models.Tender
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO tenders (user_id, upc_ref, engineering_category, specialization, tender_name, location, scope, estimated_value, collection_date, submission_date, contact_name, contact_number, contact_email, address, document_urls, status)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16) RETURNING *`,
		t.UserID, t.UPCRef, t.EngineeringCategory, t.Specialization, t.TenderName, t.Location, t.Scope, t.EstimatedValue,
		t.CollectionDate, t.SubmissionDate, t.ContactName, t.ContactNumber, t.ContactEmail, t.Address,
		pq.StringArray(t.DocumentURLs), t.Status).
		StructScan(&created)
	return created, err
}

func (r *CatalogRepo) ListLandListings(ctx context.Context, landType string) ([]models.LandListing, error) {
	var items []models.LandListing
	err := r.db.SelectContext(ctx, &items,
		`SELECT * FROM land_listings WHERE status='active' AND ($1 = '' OR land_type=$1) ORDER BY created_at DESC`, landType)
	return items, err
}

func (r *CatalogRepo) CreateLandListing(ctx context.Context, l models.LandListing) (models.LandListing, error) {
	var created models.LandListing
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO land_listings (user_id, title, location, area, price, land_type, description, image_urls, document_urls, status)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING *`,
		l.UserID, l.Title, l.Location, l.Area, l.Price, l.LandType, l.Description,
		pq.StringArray(l.ImageURLs), pq.StringArray(l.DocumentURLs), l.Status).
		StructScan(&created)
	return created, err
}

func (r *CatalogRepo) ListMachines(ctx context.Context, brand string) ([]models.Machine, error) {
	var items []models.Machine
	err := r.db.SelectContext(ctx, &items,
		`SELECT * FROM machines WHERE status='active' AND ($1 = '' OR brand=$1) ORDER BY created_at DESC`, brand)
	return items, err
}

func (r *CatalogRepo) CreateMachine(ctx context.Context, m models.Machine) (models.Machine, error) {
	var created models.Machine
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO machines (user_id, title, type, brand, model, year, condition, price, location, description, image_urls, document_urls, status)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING *`,
		m.UserID, m.Title, m.Type, m.Brand, m.Model, m.Year, m.Condition, m.Price, m.Location, m.Description,
		pq.StringArray(m.ImageURLs), pq.StringArray(m.DocumentURLs), m.Status).
		StructScan(&created)
	return created, err
}

func (r *CatalogRepo) ListMaterials(ctx context.Context, materialType string) ([]models.Material, error) {
	var items []models.Material
	err := r.db.SelectContext(ctx, &items,
		`SELECT * FROM materials WHERE status='active' AND ($1 = '' OR type=$1) ORDER BY created_at DESC`, materialType)
	return items, err
}

func (r *CatalogRepo) CreateMaterial(ctx context.Context, m models.Material) (models.Material, error) {
	var created models.Material
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO materials (user_id, title, type, quantity, unit, price, grade, location, delivery, description, image_urls, certificate_urls, status)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING *`,
		m.UserID, m.Title, m.Type, m.Quantity, m.Unit, m.Price, m.Grade, m.Location, m.Delivery, m.Description,
		pq.StringArray(m.ImageURLs), pq.StringArray(m.CertificateURLs), m.Status).
		StructScan(&created)
	return created, err
}

func (r *CatalogRepo) ListJobs(ctx context.Context, jobType string) ([]models.Job, error) {
	var items []models.Job
	err := r.db.SelectContext(ctx, &items,
		`SELECT * FROM jobs WHERE status='active' AND ($1 = '' OR job_type=$1) ORDER BY created_at DESC`, jobType)
	return items, err
}

func (r *CatalogRepo) CreateJob(ctx context.Context, j models.Job) (models.Job, error) {
	var created models.Job
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO jobs (user_id, title, company, description, requirements, salary, location, job_type, experience, industry, document_urls, status)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING *`,
		j.UserID, j.Title, j.Company, j.Description, j.Requirements, j.Salary, j.Location, j.JobType, j.Experience, j.Industry,
		pq.StringArray(j.DocumentURLs), j.Status).
		StructScan(&created)
	return created, err
}
