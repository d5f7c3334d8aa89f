package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"deals-room-service/internal/models"
)

type UserRepositoryMock struct {
	mock.Mock
}

func (m *UserRepositoryMock) CreateUser(ctx context.Context, name, email, passwordHash string, resources, primaryResource []string) (models.User, error) {
	args := m.Called(ctx, name, email, passwordHash, resources, primaryResource)
	var user models.User
	if val := args.Get(0); val != nil {
		user = val.(models.User)
	}
	return user, args.Error(1)
}

func (m *UserRepositoryMock) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	args := m.Called(ctx, email)
	var user models.User
	if val := args.Get(0); val != nil {
		user = val.(models.User)
	}
	return user, args.Error(1)
}

func (m *UserRepositoryMock) GetUserByID(ctx context.Context, userID int) (models.User, error) {
	args := m.Called(ctx, userID)
	var user models.User
	if val := args.Get(0); val != nil {
		user = val.(models.User)
	}
	return user, args.Error(1)
}

func (m *UserRepositoryMock) ListUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	var users []models.User
	if val := args.Get(0); val != nil {
		users = val.([]models.User)
	}
	return users, args.Error(1)
}

type SessionRepositoryMock struct {
	mock.Mock
}

func (m *SessionRepositoryMock) CreateSession(ctx context.Context, user models.User) (models.Session, error) {
	args := m.Called(ctx, user)
	var session models.Session
	if val := args.Get(0); val != nil {
		session = val.(models.Session)
	}
	return session, args.Error(1)
}

func (m *SessionRepositoryMock) GetSession(ctx context.Context, token string) (models.Session, error) {
	args := m.Called(ctx, token)
	var session models.Session
	if val := args.Get(0); val != nil {
		session = val.(models.Session)
	}
	return session, args.Error(1)
}

func (m *SessionRepositoryMock) DeleteSession(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

type DealRepositoryMock struct {
	mock.Mock
}

func (m *DealRepositoryMock) CreateDeal(ctx context.Context, senderID int, title, description, category string) (models.Deal, error) {
	args := m.Called(ctx, senderID, title, description, category)
	var deal models.Deal
	if val := args.Get(0); val != nil {
		deal = val.(models.Deal)
	}
	return deal, args.Error(1)
}

func (m *DealRepositoryMock) GetDeal(ctx context.Context, dealID int) (models.Deal, error) {
	args := m.Called(ctx, dealID)
	var deal models.Deal
	if val := args.Get(0); val != nil {
		deal = val.(models.Deal)
	}
	return deal, args.Error(1)
}

func (m *DealRepositoryMock) ListDeals(ctx context.Context, category, status string) ([]models.Deal, error) {
	args := m.Called(ctx, category, status)
	var deals []models.Deal
	if val := args.Get(0); val != nil {
		deals = val.([]models.Deal)
	}
	return deals, args.Error(1)
}

type DMRepositoryMock struct {
	mock.Mock
}

func (m *DMRepositoryMock) CreateDM(ctx context.Context, senderID, receiverID int, message string, dealID *int) (models.DM, error) {
	args := m.Called(ctx, senderID, receiverID, message, dealID)
	var dm models.DM
	if val := args.Get(0); val != nil {
		dm = val.(models.DM)
	}
	return dm, args.Error(1)
}

func (m *DMRepositoryMock) ListForUser(ctx context.Context, userID int) ([]models.DM, error) {
	args := m.Called(ctx, userID)
	var msgs []models.DM
	if val := args.Get(0); val != nil {
		msgs = val.([]models.DM)
	}
	return msgs, args.Error(1)
}

func (m *DMRepositoryMock) ListConversation(ctx context.Context, userID, partnerID int) ([]models.DM, error) {
	args := m.Called(ctx, userID, partnerID)
	var msgs []models.DM
	if val := args.Get(0); val != nil {
		msgs = val.([]models.DM)
	}
	return msgs, args.Error(1)
}

func (m *DMRepositoryMock) MarkRead(ctx context.Context, messageID int) (models.DM, error) {
	args := m.Called(ctx, messageID)
	var dm models.DM
	if val := args.Get(0); val != nil {
		dm = val.(models.DM)
	}
	return dm, args.Error(1)
}

type NotificationRepositoryMock struct {
	mock.Mock
}

func (m *NotificationRepositoryMock) CreateNotification(ctx context.Context, n models.Notification) (models.Notification, error) {
	args := m.Called(ctx, n)
	var notif models.Notification
	if val := args.Get(0); val != nil {
		notif = val.(models.Notification)
	}
	return notif, args.Error(1)
}

func (m *NotificationRepositoryMock) ListForUser(ctx context.Context, userID int) ([]models.Notification, error) {
	args := m.Called(ctx, userID)
	var notifs []models.Notification
	if val := args.Get(0); val != nil {
		notifs = val.([]models.Notification)
	}
	return notifs, args.Error(1)
}

func (m *NotificationRepositoryMock) ListUnread(ctx context.Context, userID int) ([]models.Notification, error) {
	args := m.Called(ctx, userID)
	var notifs []models.Notification
	if val := args.Get(0); val != nil {
		notifs = val.([]models.Notification)
	}
	return notifs, args.Error(1)
}

func (m *NotificationRepositoryMock) ListUnreadFromSender(ctx context.Context, userID, senderID int) ([]models.Notification, error) {
	args := m.Called(ctx, userID, senderID)
	var notifs []models.Notification
	if val := args.Get(0); val != nil {
		notifs = val.([]models.Notification)
	}
	return notifs, args.Error(1)
}

func (m *NotificationRepositoryMock) UnreadCount(ctx context.Context, userID int) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *NotificationRepositoryMock) MarkNotificationRead(ctx context.Context, notificationID, userID int) (models.Notification, error) {
	args := m.Called(ctx, notificationID, userID)
	var notif models.Notification
	if val := args.Get(0); val != nil {
		notif = val.(models.Notification)
	}
	return notif, args.Error(1)
}

func (m *NotificationRepositoryMock) MarkAllRead(ctx context.Context, userID int) ([]models.Notification, error) {
	args := m.Called(ctx, userID)
	var notifs []models.Notification
	if val := args.Get(0); val != nil {
		notifs = val.([]models.Notification)
	}
	return notifs, args.Error(1)
}

type CatalogRepositoryMock struct {
	mock.Mock
}

func (m *CatalogRepositoryMock) ListAnnouncements(ctx context.Context, category string) ([]models.Announcement, error) {
	args := m.Called(ctx, category)
	var items []models.Announcement
	if val := args.Get(0); val != nil {
		items = val.([]models.Announcement)
	}
	return items, args.Error(1)
}

func (m *CatalogRepositoryMock) CreateAnnouncement(ctx context.Context, a models.Announcement) (models.Announcement, error) {
	args := m.Called(ctx, a)
	var item models.Announcement
	if val := args.Get(0); val != nil {
		item = val.(models.Announcement)
	}
	return item, args.Error(1)
}

func (m *CatalogRepositoryMock) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	args := m.Called(ctx, category)
	var items []models.Product
	if val := args.Get(0); val != nil {
		items = val.([]models.Product)
	}
	return items, args.Error(1)
}

func (m *CatalogRepositoryMock) CreateProduct(ctx context.Context, p models.Product) (models.Product, error) {
	args := m.Called(ctx, p)
	var item models.Product
	if val := args.Get(0); val != nil {
		item = val.(models.Product)
	}
	return item, args.Error(1)
}

func (m *CatalogRepositoryMock) ListTenders(ctx context.Context, engineeringCategory string) ([]models.Tender, error) {
	args := m.Called(ctx, engineeringCategory)
	var items []models.Tender
	if val := args.Get(0); val != nil {
		items = val.([]models.Tender)
	}
	return items, args.Error(1)
}

func (m *CatalogRepositoryMock) CreateTender(ctx context.Context, t models.Tender) (models.Tender, error) {
	args := m.Called(ctx, t)
	var item models.Tender
	if val := args.Get(0); val != nil {
		item = val.(models.Tender)
	}
	return item, args.Error(1)
}

func (m *CatalogRepositoryMock) ListLandListings(ctx context.Context, landType string) ([]models.LandListing, error) {
	args := m.Called(ctx, landType)
	var items []models.LandListing
	if val := args.Get(0); val != nil {
		items = val.([]models.LandListing)
	}
	return items, args.Error(1)
}

func (m *CatalogRepositoryMock) CreateLandListing(ctx context.Context, l models.LandListing) (models.LandListing, error) {
	args := m.Called(ctx, l)
	var item models.LandListing
	if val := args.Get(0); val != nil {
		item = val.(models.LandListing)
	}
	return item, args.Error(1)
}

func (m *CatalogRepositoryMock) ListMachines(ctx context.Context, brand string) ([]models.Machine, error) {
	args := m.Called(ctx, brand)
	var items []models.Machine
	if val := args.Get(0); val != nil {
		items = val.([]models.Machine)
	}
	return items, args.Error(1)
}

func (m *CatalogRepositoryMock) CreateMachine(ctx context.Context, mm models.Machine) (models.Machine, error) {
	args := m.Called(ctx, mm)
	var item models.Machine
	if val := args.Get(0); val != nil {
		item = val.(models.Machine)
	}
	return item, args.Error(1)
}

func (m *CatalogRepositoryMock) ListMaterials(ctx context.Context, materialType string) ([]models.Material, error) {
	args := m.Called(ctx, materialType)
	var items []models.Material
	if val := args.Get(0); val != nil {
		items = val.([]models.Material)
	}
	return items, args.Error(1)
}

func (m *CatalogRepositoryMock) CreateMaterial(ctx context.Context, mm models.Material) (models.Material, error) {
	args := m.Called(ctx, mm)
	var item models.Material
	if val := args.Get(0); val != nil {
		item = val.(models.Material)
	}
	return item, args.Error(1)
}

func (m *CatalogRepositoryMock) ListJobs(ctx context.Context, jobType string) ([]models.Job, error) {
	args := m.Called(ctx, jobType)
	var items []models.Job
	if val := args.Get(0); val != nil {
		items = val.([]models.Job)
	}
	return items, args.Error(1)
}

func (m *CatalogRepositoryMock) CreateJob(ctx context.Context, j models.Job) (models.Job, error) {
	args := m.Called(ctx, j)
	var item models.Job
	if val := args.Get(0); val != nil {
		item = val.(models.Job)
	}
	return item, args.Error(1)
}
