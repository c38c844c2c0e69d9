package notification

import (
	"context"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain"
	"github.com/google/uuid"
)

// GetSettings creates the all-true defaults on first access.
func (uc *DefaultNotificationUsecase) GetSettings(ctx context.Context, userID string) (*domain.NotificationSettings, error) {
	settings, err := uc.SettingsRepo.GetSettings(ctx, userID)
	if err != nil {
		return nil, err
	}
	if settings != nil {
		return settings, nil
	}

	defaults := domain.DefaultNotificationSettings(userID)
	defaults.ID = uuid.New().String()
	if err := uc.SettingsRepo.CreateSettings(ctx, defaults); err != nil {
		return nil, err
	}

	// Параллельный запрос мог создать строку раньше нас
	settings, err = uc.SettingsRepo.GetSettings(ctx, userID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return defaults, nil
	}
	return settings, nil
}

func (uc *DefaultNotificationUsecase) UpdateSettings(ctx context.Context, userID string, patch domain.NotificationSettingsPatch) (*domain.NotificationSettings, error) {
	settings, err := uc.GetSettings(ctx, userID)
	if err != nil {
		return nil, err
	}
	patch.Apply(settings)
	if err := uc.SettingsRepo.SaveSettings(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
