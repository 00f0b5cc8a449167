package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"artdesk.app/api/internal/model"
	"artdesk.app/api/internal/store"
)

var ErrUserNotFound = errors.New("user not found")

type UserService interface {
	Get(ctx context.Context, userID int64) (*model.User, error)
	// PlanFor derives the user's plan tier from their latest
	// subscription at the given instant.
	PlanFor(ctx context.Context, userID int64, now time.Time) (model.Plan, error)
	// Delete soft-deletes the account and cascades over everything the
	// user owns: memberships, subscriptions, assigned tasks, comments
	// and feedback.
	Delete(ctx context.Context, userID int64) error
}

type userService struct {
	userStore         store.UserStore
	subscriptionStore store.SubscriptionStore
	txRunner          TxRunner
	cascader          *Cascader
}

func NewUserService(
	userStore store.UserStore,
	subscriptionStore store.SubscriptionStore,
	txRunner TxRunner,
	cascader *Cascader,
) UserService {
	return &userService{
		userStore:         userStore,
		subscriptionStore: subscriptionStore,
		txRunner:          txRunner,
		cascader:          cascader,
	}
}

func (s *userService) Get(ctx context.Context, userID int64) (*model.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return user, nil
}

func (s *userService) PlanFor(ctx context.Context, userID int64, now time.Time) (model.Plan, error) {
	sub, err := s.subscriptionStore.GetLatestByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.PlanFree, nil
		}
		return "", fmt.Errorf("getting subscription: %w", err)
	}
	if sub.ActiveAt(now) {
		return model.PlanPremium, nil
	}
	return model.PlanFree, nil
}

func (s *userService) Delete(ctx context.Context, userID int64) error {
	if _, err := s.Get(ctx, userID); err != nil {
		return err
	}

	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		return s.cascader.SoftDelete(ctx, stores, KindUser, userID)
	})
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}

	slog.InfoContext(ctx, "user soft-deleted", "user_id", userID)
	return nil
}
