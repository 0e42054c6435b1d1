package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"synergysphere/internal/pkg/config"
	"synergysphere/internal/repository"
)

// Scheduler 调度器, 负责通知清理等后台任务
type Scheduler struct {
	cron          *cron.Cron
	logger        *zap.Logger
	notifyRepo    repository.NotificationRepository
	retentionDays int
	cronSchedules map[string]cron.EntryID // 存储任务ID，便于管理
}

// NewScheduler 创建调度器
func NewScheduler(db *gorm.DB, logger *zap.Logger, cfg *config.Config) *Scheduler {
	// 创建 cron 实例（带秒级支持）
	c := cron.New(cron.WithSeconds())

	retention := cfg.Notifications.RetentionDays
	if retention <= 0 {
		retention = config.DefaultRetentionDays
	}

	return &Scheduler{
		cron:          c,
		logger:        logger,
		notifyRepo:    repository.NewNotificationRepository(db),
		retentionDays: retention,
		cronSchedules: make(map[string]cron.EntryID),
	}
}

// Start 启动调度器
func (s *Scheduler) Start(cfg *config.Config) error {
	log := s.logger.Sugar()

	log.Info("启动定时任务调度器...")

	// cron 表达式格式: 秒 分 时 日 月 周
	cronExpr := cfg.Notifications.CleanupCron
	if cronExpr == "" {
		cronExpr = "0 0 2 * * *" // 默认: 每天凌晨2点
		log.Warn("未配置notifications.cleanup_cron，使用默认值", zap.String("cron", cronExpr))
	}

	entryID, err := s.cron.AddFunc(cronExpr, func() {
		log.Info("执行定时任务: 清理已读通知")
		if err := s.CleanupNotifications(); err != nil {
			log.Errorf("通知清理任务执行失败: %v", err)
		}
	})

	if err != nil {
		log.Errorf("注册通知清理任务失败: %v cron=%v", err, cronExpr)
		return err
	}

	s.cronSchedules["notification_cleanup"] = entryID
	log.Infof("通知清理任务已注册: %s entry_id=%d", cronExpr, entryID)

	// 启动 cron
	s.cron.Start()
	log.Info("定时任务调度器启动成功")

	return nil
}

// Stop 停止调度器
func (s *Scheduler) Stop() {
	s.logger.Info("正在停止定时任务调度器...")

	// 停止 cron（等待正在执行的任务完成）
	ctx := s.cron.Stop()
	<-ctx.Done()

	s.logger.Info("定时任务调度器已停止")
}

// CleanupNotifications 删除超过保留期的已读通知（定时任务或手动触发）
func (s *Scheduler) CleanupNotifications() error {
	cutoff := time.Now().AddDate(0, 0, -s.retentionDays)
	deleted, err := s.notifyRepo.DeleteReadBefore(cutoff)
	if err != nil {
		return err
	}
	s.logger.Info("已读通知清理完成",
		zap.Int64("deleted", deleted),
		zap.Time("cutoff", cutoff))
	return nil
}
