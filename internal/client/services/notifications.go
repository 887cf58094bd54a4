package services

import (
	"context"
	"time"

	"github.com/azhukov/campus-navigator/internal/client/api"
	"github.com/azhukov/campus-navigator/internal/client/guard"
	"github.com/azhukov/campus-navigator/internal/client/models"
	"github.com/azhukov/campus-navigator/internal/client/poll"
)

// NotificationService covers the per-user notification feed and its
// background refresh loop.
type NotificationService interface {
	List(ctx context.Context) ([]models.Notification, error)
	MarkRead(ctx context.Context, id int64) error
	MarkAllRead(ctx context.Context) error
	// Watch polls the feed at interval and invokes onUpdate with each
	// listing until the returned subscription is stopped. Unreachable
	// servers are retried on the next tick, not surfaced to onUpdate.
	Watch(ctx context.Context, interval time.Duration, onUpdate func([]models.Notification)) *poll.Subscription
}

type notificationService struct {
	api    api.NotificationAPI
	tokens TokenSource
	guard  *guard.Guard
	poller *poll.Poller
}

func NewNotificationService(a api.NotificationAPI, tokens TokenSource, g *guard.Guard, p *poll.Poller) NotificationService {
	return &notificationService{api: a, tokens: tokens, guard: g, poller: p}
}

func (s *notificationService) List(ctx context.Context) ([]models.Notification, error) {
	if _, err := s.guard.RequireLogin(); err != nil {
		return nil, err
	}
	return s.api.ListNotifications(ctx, s.tokens.Token())
}

func (s *notificationService) MarkRead(ctx context.Context, id int64) error {
	if _, err := s.guard.RequireLogin(); err != nil {
		return err
	}
	return s.api.MarkNotificationRead(ctx, s.tokens.Token(), id)
}

func (s *notificationService) MarkAllRead(ctx context.Context) error {
	if _, err := s.guard.RequireLogin(); err != nil {
		return err
	}
	return s.api.MarkAllNotificationsRead(ctx, s.tokens.Token())
}

func (s *notificationService) Watch(ctx context.Context, interval time.Duration, onUpdate func([]models.Notification)) *poll.Subscription {
	return s.poller.Subscribe(ctx, "notifications", interval, func(ctx context.Context) error {
		items, err := s.List(ctx)
		if err != nil {
			return err
		}
		onUpdate(items)
		return nil
	})
}

// Unread counts the unread items in a listing.
func Unread(items []models.Notification) int {
	n := 0
	for _, item := range items {
		if !item.Read {
			n++
		}
	}
	return n
}
