package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azhukov/campus-navigator/internal/client/guard"
	"github.com/azhukov/campus-navigator/internal/client/models"
	"github.com/azhukov/campus-navigator/internal/client/poll"
)

type fakeNotificationAPI struct {
	mu    sync.Mutex
	items []models.Notification
	read  []int64
	all   int
}

func (f *fakeNotificationAPI) ListNotifications(ctx context.Context, token string) ([]models.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.items, nil
}

func (f *fakeNotificationAPI) MarkNotificationRead(ctx context.Context, token string, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.read = append(f.read, id)
	return nil
}

func (f *fakeNotificationAPI) MarkAllNotificationsRead(ctx context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.all++
	return nil
}

func newNotificationService(api *fakeNotificationAPI) NotificationService {
	return NewNotificationService(api, staticTokens("tok"), guardFor(models.RoleStudent), poll.New(nil))
}

func TestNotificationList_RequiresLogin(t *testing.T) {
	s := NewNotificationService(&fakeNotificationAPI{}, staticTokens(""), guardAnon(), poll.New(nil))

	_, err := s.List(context.Background())
	assert.ErrorIs(t, err, guard.ErrNotLoggedIn)
}

func TestNotificationMarkRead(t *testing.T) {
	fapi := &fakeNotificationAPI{}
	s := newNotificationService(fapi)

	require.NoError(t, s.MarkRead(context.Background(), 12))
	require.NoError(t, s.MarkAllRead(context.Background()))

	assert.Equal(t, []int64{12}, fapi.read)
	assert.Equal(t, 1, fapi.all)
}

func TestNotificationWatch_DeliversListings(t *testing.T) {
	fapi := &fakeNotificationAPI{items: []models.Notification{{ID: 1, Title: "New fault assigned"}}}
	s := newNotificationService(fapi)

	var mu sync.Mutex
	var got [][]models.Notification

	sub := s.Watch(context.Background(), 10*time.Millisecond, func(items []models.Notification) {
		mu.Lock()
		got = append(got, items)
		mu.Unlock()
	})
	defer sub.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for {
		mu.Lock()
		n := len(got)
		mu.Unlock()
		if n >= 2 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("watcher never delivered listings")
		}
		time.Sleep(5 * time.Millisecond)
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, int64(1), got[0][0].ID)
}

func TestUnread(t *testing.T) {
	items := []models.Notification{
		{ID: 1, Read: true},
		{ID: 2},
		{ID: 3},
	}
	assert.Equal(t, 2, Unread(items))
	assert.Equal(t, 0, Unread(nil))
}
