package impl

import (
	"context"
	"log/slog"

	deliverycontext "nutrifit/internal/delivery/context"
	"nutrifit/internal/domain/entity"
	domainerrors "nutrifit/internal/domain/errors"
	"nutrifit/internal/domain/repository"
	"nutrifit/internal/usecase"

	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface. It is the
// energy-balance engine: profile writes and the calorie target always move
// together.
type profileService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(userRepo repository.UserRepository, logger *slog.Logger) usecase.ProfileUsecase {
	return &profileService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UpdateProfile overwrites the six profile fields and recomputes the daily
// calorie target. The request succeeds only when both writes succeed.
func (srv *profileService) UpdateProfile(ctx context.Context, input *usecase.UpdateProfileInput) (*usecase.UpdateProfileOutput, error) {
	level := entity.ActivityLevel(input.ActivityLevel)
	objective := entity.Objective(input.Objective)

	if !level.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown activity level " + input.ActivityLevel)
	}
	if !objective.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown objective " + input.Objective)
	}

	srv.log(ctx).Info("Updating profile", slog.String("userID", input.UserID))

	profile := &entity.Profile{
		Age:           *input.Age,
		WeightKg:      *input.WeightKg,
		HeightCm:      *input.HeightCm,
		IsMale:        *input.IsMale,
		ActivityLevel: level,
		Objective:     objective,
	}

	if err := srv.userRepo.UpdateProfile(ctx, input.UserID, profile); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("profile update for unknown user")
		}

		return nil, errors.Wrap(err, "failed to update profile")
	}

	target, err := srv.ComputeAndStoreDailyCalorieTarget(ctx,
		input.UserID, profile.WeightKg, profile.HeightCm, profile.Age, profile.IsMale, level, objective)
	if err != nil {
		return nil, err
	}

	return &usecase.UpdateProfileOutput{DailyCalorieTarget: target}, nil
}

// ComputeAndStoreDailyCalorieTarget evaluates the pure calorie formula and
// persists the result. Nothing is written when the computation fails.
func (srv *profileService) ComputeAndStoreDailyCalorieTarget(ctx context.Context, userID string, weightKg, heightCm float64, age int, isMale bool, level entity.ActivityLevel, objective entity.Objective) (float64, error) {
	target, err := entity.DailyCalorieTarget(weightKg, heightCm, age, isMale, level, objective)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	if err := srv.userRepo.SetDailyCalorieTarget(ctx, userID, target); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return 0, domainerrors.ErrUserNotFound.WrapMessage("calorie target for unknown user")
		}

		return 0, errors.Wrap(err, "failed to store daily calorie target")
	}

	srv.log(ctx).Debug("Stored daily calorie target",
		slog.String("userID", userID), slog.Float64("target", target))

	return target, nil
}

// GetProfile returns the full user record including profile fields.
func (srv *profileService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("get profile for unknown user")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}
