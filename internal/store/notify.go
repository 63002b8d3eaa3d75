package store

import (
	"time"

	"github.com/zhiqi-health/wellness-client/internal/models"
)

// Notify inserts a notification at the front of the queue and schedules
// its automatic removal after the configured TTL. A zero ID is replaced
// with the current timestamp. Notifications are never persisted.
func (s *Store) Notify(n models.Notification) int64 {
	s.mu.Lock()
	if n.ID == 0 {
		n.ID = time.Now().UnixMilli()
		// Two notifications in the same millisecond must not share
		// an id, or one timer would cancel the other.
		for _, exists := s.timers[n.ID]; exists; _, exists = s.timers[n.ID] {
			n.ID++
		}
	}
	s.notifications = append([]models.Notification{n}, s.notifications...)

	id := n.ID
	// A caller-supplied id may collide with a live notification; the
	// old timer must not fire early against the shared id.
	if t, ok := s.timers[id]; ok {
		t.Stop()
	}
	s.timers[id] = time.AfterFunc(s.noticeTTL, func() {
		s.RemoveNotification(id)
	})
	s.mu.Unlock()

	return id
}

// RemoveNotification drops the notification with the given id and
// cancels its pending expiry timer. Removal is idempotent: unknown ids
// are a no-op, so a timer firing after a manual removal does nothing.
func (s *Store) RemoveNotification(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeNotificationLocked(id)
}

func (s *Store) removeNotificationLocked(id int64) {
	if t, ok := s.timers[id]; ok {
		t.Stop()
		delete(s.timers, id)
	}
	kept := s.notifications[:0]
	for _, n := range s.notifications {
		if n.ID == id {
			continue
		}
		kept = append(kept, n)
	}
	s.notifications = kept
}

// ClearNotifications drops every notification and cancels all pending
// timers.
func (s *Store) ClearNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearNotificationsLocked()
}

func (s *Store) clearNotificationsLocked() {
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
	s.notifications = nil
}

// MarkNotificationRead flags the notification with the given id as
// read.
func (s *Store) MarkNotificationRead(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Read = true
			return
		}
	}
}

// Notifications returns a copy of the queue, newest first.
func (s *Store) Notifications() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// UnreadNotifications returns the unread subset, newest first.
func (s *Store) UnreadNotifications() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Notification
	for _, n := range s.notifications {
		if !n.Read {
			out = append(out, n)
		}
	}
	return out
}
