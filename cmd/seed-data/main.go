package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"legal_archive_go/config"
	"legal_archive_go/db"
	"legal_archive_go/models"
)

var (
	firstNames = []string{
		"James", "Mary", "John", "Patricia", "Robert", "Jennifer", "Michael",
		"Linda", "William", "Elizabeth", "David", "Barbara", "Richard", "Susan",
		"Joseph", "Jessica", "Thomas", "Sarah", "Carlos", "Maria",
	}
	lastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
		"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Wilson",
		"Anderson", "Taylor", "Thomas", "Moore", "Jackson", "Martin", "Lee",
	}
	organizations = []string{
		"Acme Holdings", "Northwind Traders", "Sterling Industries",
		"Harbor Foundation", "Meridian Group", "Cascade Partners",
	}
	lawyers = []string{
		"John Smith", "Sarah Johnson", "Michael Brown", "Emily Davis",
		"Robert Wilson", "Jennifer Miller", "David Anderson", "Lisa Taylor",
	}
	staff = []struct {
		name string
		role string
	}{
		{"John Smith", "Partner"}, {"Sarah Johnson", "Associate"},
		{"Michael Brown", "Paralegal"}, {"Emily Davis", "Partner"},
		{"Robert Wilson", "Associate"}, {"Jennifer Miller", "Clerk"},
		{"David Anderson", "Paralegal"}, {"Lisa Taylor", "Partner"},
		{"James Wilson", "Associate"}, {"Maria Garcia", "Paralegal"},
	}
	fileTypes = []string{
		"Contract", "Evidence", "Correspondence", "Court Filing", "Research", "Client Records",
	}
	documentCategories = []string{
		"Legal Documents", "Financial Records", "Personal Documents", "Court Records",
		"Evidence Files", "Correspondence", "Research Materials", "Administrative",
	}
	fileSizes = []string{
		"Small (< 1 inch)", "Medium (1-3 inches)", "Large (3-6 inches)", "Extra Large (6+ inches)",
	}
	keywordPool = []string{
		"custody", "settlement", "deposition", "testimony", "damages", "liability",
		"appeal", "discovery", "motion", "hearing", "verdict", "mediation",
		"arbitration", "compliance", "negligence", "injunction",
	}
	commentTemplates = []string{
		"Reviewed this %s. Everything looks in order.",
		"Need to follow up on this %s next week.",
		"Client requested additional information regarding this %s.",
		"Important: This %s requires urgent attention.",
		"Meeting scheduled to discuss this %s further.",
		"Documents are complete and ready for review.",
		"Review completed. No issues found.",
		"Deadline extended per client request.",
	}
	clientTypes        = []string{models.ClientTypeIndividual, models.ClientTypeCorporation, models.ClientTypeNonProfit, models.ClientTypeGovernment}
	clientStatuses     = []string{models.ClientStatusActive, models.ClientStatusInactive, models.ClientStatusSuspended}
	caseStatuses       = []string{models.CaseStatusOpen, models.CaseStatusClosed, models.CaseStatusOnHold, models.CaseStatusUnderReview, models.CaseStatusSettled}
	priorities         = []string{models.CasePriorityLow, models.CasePriorityMedium, models.CasePriorityHigh, models.CasePriorityCritical}
	storageStatuses    = []string{models.StorageStatusActive, models.StorageStatusArchived, models.StorageStatusPendingReview, models.StorageStatusDestruction}
	confidentialities  = []string{models.ConfidentialityPublic, models.ConfidentialityInternal, models.ConfidentialityConfidential, models.ConfidentialityHighest}
	paymentMethods     = []string{models.PaymentMethodCheck, models.PaymentMethodCreditCard, models.PaymentMethodTransfer, models.PaymentMethodCash, models.PaymentMethodMoneyOrder}
	paymentStatuses    = []string{models.PaymentStatusPaid, models.PaymentStatusPending, models.PaymentStatusOverdue}
	accessTypes        = []string{models.AccessTypeView, models.AccessTypeSearch, models.AccessTypeDownload}
	warehouseLocations = []string{"Warehouse A", "Warehouse B", "Warehouse C"}
	ipAddresses        = []string{"192.168.1.100", "192.168.1.101", "192.168.1.102", "192.168.1.103", "10.0.0.50"}
)

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed (set for reproducible data)")
	flag.Parse()
	rng := rand.New(rand.NewSource(*seed))

	cfg := config.Load()

	if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(
		&models.Client{},
		&models.Case{},
		&models.PhysicalFile{},
		&models.Payment{},
		&models.AccessEvent{},
		&models.Comment{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	now := time.Now()
	pick := func(values []string) string { return values[rng.Intn(len(values))] }
	daysAgo := func(max int) time.Time { return now.AddDate(0, 0, -rng.Intn(max)) }

	// Clients
	clients := make([]models.Client, 0, 50)
	for i := 0; i < 50; i++ {
		first := pick(firstNames)
		last := pick(lastNames)
		client := models.Client{
			FirstName:        first,
			LastName:         last,
			Email:            fmt.Sprintf("%s.%s%d@example.com", lower(first), lower(last), i),
			Phone:            fmt.Sprintf("555-%04d", rng.Intn(10000)),
			Address:          fmt.Sprintf("%d Main Street, Springfield", 100+rng.Intn(900)),
			ClientType:       pick(clientTypes),
			Status:           pick(clientStatuses),
			RegistrationDate: daysAgo(5 * 365),
		}
		if client.ClientType != models.ClientTypeIndividual {
			client.OrganizationName = pick(organizations)
		}
		clients = append(clients, client)
	}
	if err := db.DB.Create(&clients).Error; err != nil {
		log.Fatalf("Failed to seed clients: %v", err)
	}

	// Cases
	cases := make([]models.Case, 0, 100)
	for i := 0; i < 100; i++ {
		client := clients[rng.Intn(len(clients))]
		cases = append(cases, models.Case{
			ClientID:        client.ID,
			ReferenceNumber: fmt.Sprintf("REF-%06d", 100000+rng.Intn(900000)),
			CaseType:        pick(models.CaseTypes),
			Status:          pick(caseStatuses),
			Priority:        pick(priorities),
			AssignedLawyer:  pick(lawyers),
			EstimatedValue:  1000 + rng.Float64()*499000,
			Description:     fmt.Sprintf("Matter regarding %s representation for %s.", lower(pick(models.CaseTypes)), client.FullName()),
		})
	}
	if err := db.DB.Create(&cases).Error; err != nil {
		log.Fatalf("Failed to seed cases: %v", err)
	}

	// Physical files
	files := make([]models.PhysicalFile, 0, 200)
	for i := 0; i < 200; i++ {
		cs := cases[rng.Intn(len(cases))]
		file := models.PhysicalFile{
			CaseID:               cs.ID,
			ClientID:             cs.ClientID,
			ReferenceNumber:      fmt.Sprintf("FILE-%05d", i+1),
			FileType:             pick(fileTypes),
			DocumentCategory:     pick(documentCategories),
			FileDescription:      fmt.Sprintf("Physical records for case %s (%s).", cs.ReferenceNumber, cs.CaseType),
			WarehouseLocation:    pick(warehouseLocations),
			ShelfNumber:          fmt.Sprintf("S%02d", 1+rng.Intn(50)),
			BoxNumber:            fmt.Sprintf("B%03d", 1+rng.Intn(200)),
			FileSize:             pick(fileSizes),
			StorageStatus:        pick(storageStatuses),
			ConfidentialityLevel: pick(confidentialities),
			LastAccessed:         daysAgo(180),
			LastModified:         daysAgo(365),
		}
		keywords := []string{snakeCase(cs.CaseType)}
		for k := 0; k < 2+rng.Intn(4); k++ {
			keywords = append(keywords, pick(keywordPool))
		}
		file.SetKeywords(keywords)
		files = append(files, file)
	}
	if err := db.DB.Create(&files).Error; err != nil {
		log.Fatalf("Failed to seed files: %v", err)
	}

	// Payments
	payments := make([]models.Payment, 0, 150)
	for i := 0; i < 150; i++ {
		cs := cases[rng.Intn(len(cases))]
		payments = append(payments, models.Payment{
			CaseID:        cs.ID,
			ClientID:      cs.ClientID,
			Amount:        100 + rng.Float64()*49900,
			PaymentMethod: pick(paymentMethods),
			Status:        pick(paymentStatuses),
			InvoiceNumber: fmt.Sprintf("INV-%05d", i+1),
			Description:   fmt.Sprintf("Payment for %s services.", lower(cs.CaseType)),
			PaymentDate:   daysAgo(365),
		})
	}
	if err := db.DB.Create(&payments).Error; err != nil {
		log.Fatalf("Failed to seed payments: %v", err)
	}

	// Access history: 3-8 events per file
	var accessEvents []models.AccessEvent
	for _, file := range files {
		for k := 0; k < 3+rng.Intn(6); k++ {
			user := staff[rng.Intn(len(staff))]
			event := models.AccessEvent{
				FileID:          file.ID,
				UserName:        user.name,
				UserRole:        user.role,
				AccessType:      pick(accessTypes),
				AccessTimestamp: daysAgo(180),
				IPAddress:       pick(ipAddresses),
				UserAgent:       "Mozilla/5.0 (Windows NT 10.0; Win64; x64)",
			}
			if rng.Float64() > 0.3 {
				duration := 30 + rng.Intn(870)
				event.SessionDuration = &duration
			}
			accessEvents = append(accessEvents, event)
		}
	}
	if err := db.DB.CreateInBatches(&accessEvents, 500).Error; err != nil {
		log.Fatalf("Failed to seed access events: %v", err)
	}

	// Comments on a subset of files, clients and cases
	var comments []models.Comment
	addComments := func(entityType, entityID string, count int, privateChance float64) {
		for k := 0; k < count; k++ {
			user := staff[rng.Intn(len(staff))]
			text := commentTemplates[rng.Intn(len(commentTemplates))]
			if strings.Contains(text, "%s") {
				text = fmt.Sprintf(text, entityType)
			}
			comments = append(comments, models.Comment{
				EntityType:  entityType,
				EntityID:    entityID,
				UserName:    user.name,
				UserRole:    user.role,
				CommentText: text,
				IsPrivate:   rng.Float64() < privateChance,
			})
		}
	}
	for _, file := range files[:100] {
		addComments(models.CommentEntityFile, file.ID, 1+rng.Intn(4), 0.2)
	}
	for _, client := range clients[:30] {
		addComments(models.CommentEntityClient, client.ID, rng.Intn(3), 0.3)
	}
	for _, cs := range cases[:50] {
		addComments(models.CommentEntityCase, cs.ID, 1+rng.Intn(3), 0.15)
	}
	if err := db.DB.CreateInBatches(&comments, 500).Error; err != nil {
		log.Fatalf("Failed to seed comments: %v", err)
	}

	log.Printf("Seeded %d clients, %d cases, %d files, %d payments, %d access events, %d comments (seed %d)",
		len(clients), len(cases), len(files), len(payments), len(accessEvents), len(comments), *seed)
}

func lower(s string) string {
	return strings.ToLower(s)
}

func snakeCase(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "_")
}
