package handlers

import (
	"fmt"
	"testing"
	"time"

	"legal_archive_go/config"
	"legal_archive_go/db"
	"legal_archive_go/models"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB wires a fresh in-memory database into the handler package's
// service globals. Each test gets a uniquely named database so state never
// leaks between tests.
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

	// Set the global DB variable used by the handlers
	db.DB = testDB

	cfg := &config.Config{
		SearchResultLimit:     10,
		MatchDetailLimit:      6,
		SuggestionLimit:       10,
		SuggestionSectionCap:  4,
		CorrectionMaxDistance: 2,
		RecentSearchRetention: 50,
		SurfacedHistoryCount:  5,
	}
	InitSearchServices(cfg)
	InitSuggestionService(cfg)
	InitAccessLogService()
	InitRecommendationService()

	return testDB
}

// handlerFixture is one client with a case, a file and a payment
type handlerFixture struct {
	client  models.Client
	matter  models.Case
	file    models.PhysicalFile
	payment models.Payment
}

func seedHandlerFixture(t *testing.T, testDB *gorm.DB) handlerFixture {
	t.Helper()
	fx := handlerFixture{}

	fx.client = models.Client{
		ID:               uuid.New().String(),
		FirstName:        "Jane",
		LastName:         "Doe",
		Email:            "j.d@example.com",
		ClientType:       models.ClientTypeIndividual,
		Status:           models.ClientStatusActive,
		RegistrationDate: time.Now().AddDate(-1, 0, 0),
	}
	if err := testDB.Create(&fx.client).Error; err != nil {
		t.Fatalf("seeding client: %v", err)
	}

	fx.matter = models.Case{
		ID:              uuid.New().String(),
		ClientID:        fx.client.ID,
		ReferenceNumber: "FAM-001",
		CaseType:        "Family Law",
		Status:          models.CaseStatusOpen,
		Priority:        "High",
		AssignedLawyer:  "Robert Miles",
	}
	if err := testDB.Create(&fx.matter).Error; err != nil {
		t.Fatalf("seeding case: %v", err)
	}

	fx.file = models.PhysicalFile{
		ID:                   uuid.New().String(),
		CaseID:               fx.matter.ID,
		ClientID:             fx.client.ID,
		ReferenceNumber:      "FILE-00001",
		FileType:             "Evidence",
		WarehouseLocation:    "Warehouse A",
		StorageStatus:        "Active",
		ConfidentialityLevel: "Internal",
		LastAccessed:         time.Now().AddDate(0, 0, -1),
	}
	fx.file.SetKeywords([]string{"custody"})
	if err := testDB.Create(&fx.file).Error; err != nil {
		t.Fatalf("seeding file: %v", err)
	}

	fx.payment = models.Payment{
		ID:            uuid.New().String(),
		CaseID:        fx.matter.ID,
		ClientID:      fx.client.ID,
		Amount:        1500,
		PaymentMethod: models.PaymentMethodCreditCard,
		Status:        models.PaymentStatusPaid,
		InvoiceNumber: "INV-00001",
		PaymentDate:   time.Now().AddDate(0, 0, -10),
	}
	if err := testDB.Create(&fx.payment).Error; err != nil {
		t.Fatalf("seeding payment: %v", err)
	}

	return fx
}
