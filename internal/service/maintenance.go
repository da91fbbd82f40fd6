package service

import (
	"github.com/hameda9795/farsi-dutch-bot/internal/repository"

	"go.uber.org/zap"
)

// MaintenanceService runs the data-retention sweep
type MaintenanceService struct {
	wordRepo      repository.WordRepository
	retentionDays int
	logger        *zap.Logger
}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService(wordRepo repository.WordRepository, retentionDays int, logger *zap.Logger) *MaintenanceService {
	return &MaintenanceService{
		wordRepo:      wordRepo,
		retentionDays: retentionDays,
		logger:        logger,
	}
}

// CleanupOldData removes words older than the retention window
func (s *MaintenanceService) CleanupOldData() error {
	s.logger.Info("Starting cleanup of old words", zap.Int("retention_days", s.retentionDays))

	err := s.wordRepo.CleanOldWords(s.retentionDays)
	if err != nil {
		s.logger.Error("Failed to cleanup old words", zap.Error(err))
		return err
	}

	s.logger.Info("Cleanup completed successfully")
	return nil
}
