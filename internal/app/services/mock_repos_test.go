package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"sort"
	"time"

	"github.com/bkaya/studentportal/internal/app/models"
	"github.com/bkaya/studentportal/internal/app/models/dto"
	"github.com/bkaya/studentportal/internal/pkg/apperrors"
)

// In-memory repository fakes used across the service tests.

type fakeUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*models.User{}, nextID: 1}
}

func (r *fakeUserRepo) add(user *models.User) *models.User {
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	r.users[user.ID] = user
	r.nextID++
	return user
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) (int64, error) {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return 0, apperrors.ErrEmailAlreadyExists
		}
	}
	return r.add(user).ID, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (r *fakeUserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	ids := make([]int64, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	users := make([]models.User, 0, len(ids))
	for _, id := range ids {
		users = append(users, *r.users[id])
	}
	return users, nil
}

func (r *fakeUserRepo) GetByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	all, _ := r.GetAll(ctx)
	var users []models.User
	for _, user := range all {
		if user.Role == role {
			users = append(users, user)
		}
	}
	return users, nil
}

func (r *fakeUserRepo) GetRole(ctx context.Context, id int64) (models.Role, error) {
	user, err := r.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

func (r *fakeUserRepo) Count(ctx context.Context) (int, error) {
	return len(r.users), nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type storedToken struct {
	userID  int64
	expiry  time.Time
	revoked bool
}

type fakeTokenRepo struct {
	tokens map[string]*storedToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: map[string]*storedToken{}}
}

func (r *fakeTokenRepo) CreateToken(ctx context.Context, token string, userID int64, expiryDate time.Time) error {
	r.tokens[token] = &storedToken{userID: userID, expiry: expiryDate}
	return nil
}

func (r *fakeTokenRepo) GetTokenUser(ctx context.Context, token string) (int64, error) {
	stored, ok := r.tokens[token]
	if !ok {
		return 0, apperrors.ErrTokenNotFound
	}
	if stored.revoked {
		return 0, apperrors.ErrTokenRevoked
	}
	if stored.expiry.Before(time.Now()) {
		return 0, apperrors.ErrTokenExpired
	}
	return stored.userID, nil
}

func (r *fakeTokenRepo) RevokeToken(ctx context.Context, token string) error {
	stored, ok := r.tokens[token]
	if !ok {
		return apperrors.ErrTokenNotFound
	}
	stored.revoked = true
	return nil
}

func (r *fakeTokenRepo) RevokeAllUserTokens(ctx context.Context, userID int64) error {
	for _, stored := range r.tokens {
		if stored.userID == userID {
			stored.revoked = true
		}
	}
	return nil
}

type fakeAnnouncementRepo struct {
	announcements []models.Announcement
	nextID        int64
}

func newFakeAnnouncementRepo() *fakeAnnouncementRepo {
	return &fakeAnnouncementRepo{nextID: 1}
}

func (r *fakeAnnouncementRepo) Create(ctx context.Context, a *models.Announcement) (int64, error) {
	a.ID = r.nextID
	a.CreatedAt = time.Now()
	r.nextID++
	r.announcements = append([]models.Announcement{*a}, r.announcements...)
	return a.ID, nil
}

func (r *fakeAnnouncementRepo) GetAll(ctx context.Context) ([]models.Announcement, error) {
	return r.announcements, nil
}

func (r *fakeAnnouncementRepo) GetRecent(ctx context.Context, limit uint64) ([]models.Announcement, error) {
	if uint64(len(r.announcements)) <= limit {
		return r.announcements, nil
	}
	return r.announcements[:limit], nil
}

type fakeMaterialRepo struct {
	materials []models.StudyMaterial
	nextID    int64
	failNext  bool
}

func newFakeMaterialRepo() *fakeMaterialRepo {
	return &fakeMaterialRepo{nextID: 1}
}

func (r *fakeMaterialRepo) Create(ctx context.Context, m *models.StudyMaterial) (int64, error) {
	if r.failNext {
		r.failNext = false
		return 0, fmt.Errorf("insert failed")
	}
	m.ID = r.nextID
	m.UploadedAt = time.Now()
	r.nextID++
	r.materials = append([]models.StudyMaterial{*m}, r.materials...)
	return m.ID, nil
}

func (r *fakeMaterialRepo) GetByID(ctx context.Context, id int64) (*models.StudyMaterial, error) {
	for i := range r.materials {
		if r.materials[i].ID == id {
			return &r.materials[i], nil
		}
	}
	return nil, apperrors.ErrMaterialNotFound
}

func (r *fakeMaterialRepo) GetAll(ctx context.Context) ([]models.StudyMaterial, error) {
	return r.materials, nil
}

func (r *fakeMaterialRepo) GetRecent(ctx context.Context, limit uint64) ([]models.StudyMaterial, error) {
	if uint64(len(r.materials)) <= limit {
		return r.materials, nil
	}
	return r.materials[:limit], nil
}

func (r *fakeMaterialRepo) GetRecentByUploader(ctx context.Context, uploaderID int64, limit uint64) ([]models.StudyMaterial, error) {
	var out []models.StudyMaterial
	for _, m := range r.materials {
		if m.UploadedBy == uploaderID && uint64(len(out)) < limit {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMaterialRepo) GetSubjects(ctx context.Context) ([]string, error) {
	seen := map[string]bool{}
	var subjects []string
	for _, m := range r.materials {
		if m.Subject != "" && !seen[m.Subject] {
			seen[m.Subject] = true
			subjects = append(subjects, m.Subject)
		}
	}
	sort.Strings(subjects)
	return subjects, nil
}

type fakeMessageRepo struct {
	messages []models.Message
	senders  map[int64]string
	nextID   int64
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{senders: map[int64]string{}, nextID: 1}
}

func (r *fakeMessageRepo) Create(ctx context.Context, m *models.Message) (int64, error) {
	m.ID = r.nextID
	m.SentAt = time.Now()
	r.nextID++
	r.messages = append(r.messages, *m)
	return m.ID, nil
}

func (r *fakeMessageRepo) GetConversationsForRecipient(ctx context.Context, recipientID int64) ([]dto.ConversationMessage, error) {
	var out []dto.ConversationMessage
	for i := len(r.messages) - 1; i >= 0; i-- {
		m := r.messages[i]
		if m.RecipientID != recipientID {
			continue
		}
		out = append(out, dto.ConversationMessage{
			ID:         m.ID,
			Content:    m.Content,
			SenderID:   m.SenderID,
			SenderName: r.senders[m.SenderID],
			SentAt:     m.SentAt,
			IsRead:     m.IsRead,
		})
	}
	return out, nil
}

func (r *fakeMessageRepo) CountUnread(ctx context.Context, recipientID int64) (int, error) {
	count := 0
	for _, m := range r.messages {
		if m.RecipientID == recipientID && !m.IsRead {
			count++
		}
	}
	return count, nil
}

type fakeTimetableRepo struct {
	entries []models.TimetableEntry
}

func (r *fakeTimetableRepo) GetAll(ctx context.Context) ([]models.TimetableEntry, error) {
	return r.entries, nil
}

func (r *fakeTimetableRepo) GetByDepartment(ctx context.Context, department string) ([]models.TimetableEntry, error) {
	var out []models.TimetableEntry
	for _, e := range r.entries {
		if e.Department == department {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeLeaveRepo struct {
	applications map[int64]*models.LeaveApplication
	applicants   map[int64]string
	nextID       int64
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{
		applications: map[int64]*models.LeaveApplication{},
		applicants:   map[int64]string{},
		nextID:       1,
	}
}

func (r *fakeLeaveRepo) Create(ctx context.Context, a *models.LeaveApplication) (int64, error) {
	a.ID = r.nextID
	a.Status = models.LeaveStatusPending
	r.applications[a.ID] = a
	r.nextID++
	return a.ID, nil
}

func (r *fakeLeaveRepo) GetByID(ctx context.Context, id int64) (*models.LeaveApplication, error) {
	a, ok := r.applications[id]
	if !ok {
		return nil, apperrors.ErrLeaveNotFound
	}
	return a, nil
}

func (r *fakeLeaveRepo) GetPendingWithApplicant(ctx context.Context) ([]dto.PendingLeave, error) {
	var out []dto.PendingLeave
	for _, a := range r.applications {
		if a.Status != models.LeaveStatusPending {
			continue
		}
		out = append(out, dto.PendingLeave{
			ID:            a.ID,
			ApplicantID:   a.ApplicantID,
			ApplicantName: r.applicants[a.ApplicantID],
			StartDate:     a.StartDate,
			EndDate:       a.EndDate,
			Reason:        a.Reason,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeLeaveRepo) CountPending(ctx context.Context) (int, error) {
	count := 0
	for _, a := range r.applications {
		if a.Status == models.LeaveStatusPending {
			count++
		}
	}
	return count, nil
}

func (r *fakeLeaveRepo) Decide(ctx context.Context, id int64, status models.LeaveStatus, reviewerID int64, reviewedAt time.Time) error {
	a, ok := r.applications[id]
	if !ok {
		return apperrors.ErrLeaveNotFound
	}
	if a.Status != models.LeaveStatusPending {
		return apperrors.ErrLeaveAlreadyDecided
	}
	a.Status = status
	a.ReviewerID = &reviewerID
	a.ReviewedAt = &reviewedAt
	return nil
}

type fakeNotificationRepo struct {
	notifications []models.Notification
	nextID        int64
	failAfter     int // create fails once this many rows exist, 0 disables
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{nextID: 1}
}

func (r *fakeNotificationRepo) Create(ctx context.Context, n *models.Notification) (int64, error) {
	if r.failAfter > 0 && len(r.notifications) >= r.failAfter {
		return 0, fmt.Errorf("insert failed")
	}
	n.ID = r.nextID
	n.CreatedAt = time.Now()
	r.nextID++
	r.notifications = append(r.notifications, *n)
	return n.ID, nil
}

func (r *fakeNotificationRepo) GetAllForUser(ctx context.Context, userID int64) ([]models.Notification, error) {
	var out []models.Notification
	for i := len(r.notifications) - 1; i >= 0; i-- {
		if r.notifications[i].UserID == userID {
			out = append(out, r.notifications[i])
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) MarkRead(ctx context.Context, id int64) error {
	for i := range r.notifications {
		if r.notifications[i].ID == id {
			r.notifications[i].IsRead = true
			return nil
		}
	}
	return apperrors.ErrResourceNotFound
}

func (r *fakeNotificationRepo) CountUnread(ctx context.Context, userID int64) (int, error) {
	count := 0
	for _, n := range r.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

// fakeStorage satisfies filestorage.Storage without touching disk
type fakeStorage struct {
	saved   []string
	deleted []string
}

func (s *fakeStorage) SaveFile(file *multipart.FileHeader) (string, error) {
	s.saved = append(s.saved, file.Filename)
	return file.Filename, nil
}

func (s *fakeStorage) FilePath(filename string) string {
	return "/data/" + filename
}

func (s *fakeStorage) DeleteFile(filename string) error {
	s.deleted = append(s.deleted, filename)
	return nil
}
