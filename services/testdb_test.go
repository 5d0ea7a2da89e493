package services

import (
	"fmt"
	"testing"
	"time"

	"legal_archive_go/models"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a uniquely named in-memory database so parallel test
// packages never share state. Shared cache keeps all pooled connections on
// the same database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	testDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	err = testDB.AutoMigrate(
		&models.Client{},
		&models.Case{},
		&models.PhysicalFile{},
		&models.Payment{},
		&models.AccessEvent{},
		&models.Comment{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return testDB
}

// searchFixture holds the records seeded for search and suggestion tests
type searchFixture struct {
	jane    models.Client
	mark    models.Client
	famCase models.Case
	file    models.PhysicalFile
	payment models.Payment
	access  models.AccessEvent
	comment models.Comment
	private models.Comment
}

// seedSearchFixture creates a small but realistic data set: one family law
// matter for Jane Doe with a physical file tagged "custody", plus a second
// client sharing her last name
func seedSearchFixture(t *testing.T, testDB *gorm.DB) searchFixture {
	t.Helper()
	now := time.Now()

	fx := searchFixture{}

	fx.jane = models.Client{
		ID:               uuid.New().String(),
		FirstName:        "Jane",
		LastName:         "Doe",
		Email:            "j.d@example.com",
		Phone:            "555-0101",
		ClientType:       models.ClientTypeIndividual,
		Status:           models.ClientStatusActive,
		RegistrationDate: now.AddDate(-1, 0, 0),
	}
	fx.mark = models.Client{
		ID:               uuid.New().String(),
		FirstName:        "Mark",
		LastName:         "Doe",
		Email:            "m.d@example.com",
		ClientType:       models.ClientTypeIndividual,
		Status:           models.ClientStatusActive,
		RegistrationDate: now.AddDate(0, -6, 0),
	}
	if err := testDB.Create(&fx.jane).Error; err != nil {
		t.Fatalf("seeding client: %v", err)
	}
	if err := testDB.Create(&fx.mark).Error; err != nil {
		t.Fatalf("seeding client: %v", err)
	}

	fx.famCase = models.Case{
		ID:              uuid.New().String(),
		ClientID:        fx.jane.ID,
		ReferenceNumber: "FAM-001",
		CaseType:        "Family Law",
		Description:     "Divorce proceedings",
		Status:          models.CaseStatusOpen,
		Priority:        "High",
		AssignedLawyer:  "Robert Miles",
		EstimatedValue:  25000,
	}
	if err := testDB.Create(&fx.famCase).Error; err != nil {
		t.Fatalf("seeding case: %v", err)
	}

	fx.file = models.PhysicalFile{
		ID:                   uuid.New().String(),
		CaseID:               fx.famCase.ID,
		ClientID:             fx.jane.ID,
		ReferenceNumber:      "FILE-00001",
		FileType:             "Evidence",
		DocumentCategory:     "Court Filings",
		FileDescription:      "Parenting plan exhibits",
		WarehouseLocation:    "Warehouse A",
		ShelfNumber:          "S-12",
		BoxNumber:            "B-034",
		StorageStatus:        "Active",
		ConfidentialityLevel: "Internal",
		LastAccessed:         now.AddDate(0, 0, -2),
	}
	fx.file.SetKeywords([]string{"custody", "settlement"})
	if err := testDB.Create(&fx.file).Error; err != nil {
		t.Fatalf("seeding file: %v", err)
	}

	fx.payment = models.Payment{
		ID:            uuid.New().String(),
		CaseID:        fx.famCase.ID,
		ClientID:      fx.jane.ID,
		Amount:        1500,
		PaymentMethod: models.PaymentMethodCreditCard,
		Status:        models.PaymentStatusPaid,
		InvoiceNumber: "INV-00001",
		Description:   "Retainer installment",
		PaymentDate:   now.AddDate(0, 0, -10),
	}
	if err := testDB.Create(&fx.payment).Error; err != nil {
		t.Fatalf("seeding payment: %v", err)
	}

	fx.access = models.AccessEvent{
		ID:              uuid.New().String(),
		FileID:          fx.file.ID,
		UserName:        "John Smith",
		UserRole:        "Paralegal",
		AccessType:      models.AccessTypeView,
		AccessTimestamp: now.AddDate(0, 0, -1),
		IPAddress:       "192.168.1.20",
	}
	if err := testDB.Create(&fx.access).Error; err != nil {
		t.Fatalf("seeding access event: %v", err)
	}

	fx.comment = models.Comment{
		ID:          uuid.New().String(),
		EntityType:  models.CommentEntityFile,
		EntityID:    fx.file.ID,
		UserName:    "Sarah Johnson",
		UserRole:    "Attorney",
		CommentText: "Reviewed the custody agreement draft",
		IsPrivate:   false,
	}
	fx.private = models.Comment{
		ID:          uuid.New().String(),
		EntityType:  models.CommentEntityFile,
		EntityID:    fx.file.ID,
		UserName:    "Sarah Johnson",
		UserRole:    "Attorney",
		CommentText: "Internal note on custody strategy",
		IsPrivate:   true,
	}
	if err := testDB.Create(&fx.comment).Error; err != nil {
		t.Fatalf("seeding comment: %v", err)
	}
	if err := testDB.Create(&fx.private).Error; err != nil {
		t.Fatalf("seeding comment: %v", err)
	}

	return fx
}
