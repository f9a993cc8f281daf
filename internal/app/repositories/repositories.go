package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles every repository behind one constructor so bootstrap
// wires a single value.
type Repositories struct {
	UserRepository         *UserRepository
	TokenRepository        *TokenRepository
	AnnouncementRepository *AnnouncementRepository
	MaterialRepository     *MaterialRepository
	MessageRepository      *MessageRepository
	TimetableRepository    *TimetableRepository
	LeaveRepository        *LeaveRepository
	NotificationRepository *NotificationRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		TokenRepository:        NewTokenRepository(db),
		AnnouncementRepository: NewAnnouncementRepository(db),
		MaterialRepository:     NewMaterialRepository(db),
		MessageRepository:      NewMessageRepository(db),
		TimetableRepository:    NewTimetableRepository(db),
		LeaveRepository:        NewLeaveRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
