package provider

import (
	"github.com/jipgi-intake/internal/cache"
	"github.com/jipgi-intake/internal/config"
	"github.com/jipgi-intake/internal/logger"
	"github.com/jipgi-intake/internal/models"
	"github.com/jipgi-intake/internal/queue"
	"github.com/jipgi-intake/internal/repository"
	"github.com/jipgi-intake/internal/service"
)

// Container 의존성 주입 컨테이너
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	RequestRepo         repository.RequestRepository
	RoutingRuleRepo     repository.RoutingRuleRepository
	ArchiveRepo         repository.ArchiveRepository
	VendorAccountRepo   repository.VendorAccountRepository
	AdminCredentialRepo repository.AdminCredentialRepository
	StatsRepo           repository.StatsRepository

	// Services
	AuthService         *service.AuthService
	ResolverService     *service.ResolverService
	IntakeService       *service.IntakeService
	ProcessService      *service.ProcessService
	RoutingAdminService *service.RoutingAdminService
	StatsService        *service.StatsService
	NotifyService       *service.NotifyService
}

// NewContainer 컨테이너 초기화
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}
	c.initRepositories()
	c.initServices()
	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.RequestRepo = repository.NewRequestRepository(db)
	c.RoutingRuleRepo = repository.NewRoutingRuleRepository(db)
	c.ArchiveRepo = repository.NewArchiveRepository(db)
	c.VendorAccountRepo = repository.NewVendorAccountRepository(db)
	c.AdminCredentialRepo = repository.NewAdminCredentialRepository(db)
	c.StatsRepo = repository.NewStatsRepository(db)
}

func (c *Container) initServices() {
	cfg := c.Config
	notifier := service.NewNotifierFromConfig(cfg.Notify)

	c.AuthService = service.NewAuthService(cfg, c.VendorAccountRepo, c.AdminCredentialRepo)
	c.ResolverService = service.NewResolverService(c.RoutingRuleRepo)
	c.NotifyService = service.NewNotifyService(c.QueueClient, notifier)
	c.IntakeService = service.NewIntakeService(c.RequestRepo, c.ResolverService, cfg.Intake.StrictValidation)
	c.ProcessService = service.NewProcessService(c.RequestRepo, c.NotifyService)
	c.RoutingAdminService = service.NewRoutingAdminService(c.RoutingRuleRepo, c.RequestRepo, c.ArchiveRepo)
	c.StatsService = service.NewStatsService(c.StatsRepo)
}
