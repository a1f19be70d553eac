package service

import (
	"fmt"
	"testing"

	"github.com/jipgi-intake/internal/models"
	"github.com/jipgi-intake/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

type serviceTestEnv struct {
	db          *gorm.DB
	requestRepo *repository.GormRequestRepository
	routingRepo *repository.GormRoutingRuleRepository
	archiveRepo *repository.GormArchiveRepository
	statsRepo   *repository.GormStatsRepository
	resolver    *ResolverService
	notify      *NotifyService
}

func setupServiceTest(t *testing.T) *serviceTestEnv {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Request{},
		&models.RoutingRule{},
		&models.ArchivedRequest{},
		&models.VendorAccount{},
		&models.AdminCredential{},
	); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	routingRepo := repository.NewRoutingRuleRepository(db)
	return &serviceTestEnv{
		db:          db,
		requestRepo: repository.NewRequestRepository(db),
		routingRepo: routingRepo,
		archiveRepo: repository.NewArchiveRepository(db),
		statsRepo:   repository.NewStatsRepository(db),
		resolver:    NewResolverService(routingRepo),
		notify:      NewNotifyService(nil, LogNotifier{}),
	}
}

func (e *serviceTestEnv) seedRule(t *testing.T, department, region, salesTeam, vendor string) {
	t.Helper()
	if err := e.routingRepo.UpsertOne(department, region, salesTeam, vendor); err != nil {
		t.Fatalf("seed routing rule failed: %v", err)
	}
}

func (e *serviceTestEnv) intakeService(strict bool) *IntakeService {
	return NewIntakeService(e.requestRepo, e.resolver, strict)
}

func (e *serviceTestEnv) processService() *ProcessService {
	return NewProcessService(e.requestRepo, e.notify)
}

func (e *serviceTestEnv) routingAdminService() *RoutingAdminService {
	return NewRoutingAdminService(e.routingRepo, e.requestRepo, e.archiveRepo)
}
