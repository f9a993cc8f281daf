package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bkaya/studentportal/internal/app/models"
)

type dashboardFixture struct {
	userRepo     *fakeUserRepo
	leaveRepo    *fakeLeaveRepo
	messageRepo  *fakeMessageRepo
	materialRepo *fakeMaterialRepo
	notifRepo    *fakeNotificationRepo
	svc          DashboardService
}

func newDashboardFixture() *dashboardFixture {
	f := &dashboardFixture{
		userRepo:     newFakeUserRepo(),
		leaveRepo:    newFakeLeaveRepo(),
		messageRepo:  newFakeMessageRepo(),
		materialRepo: newFakeMaterialRepo(),
		notifRepo:    newFakeNotificationRepo(),
	}
	timetableRepo := &fakeTimetableRepo{entries: []models.TimetableEntry{
		{ID: 1, Day: "Monday", TimeSlot: "09:00-10:30", Subject: "Data Structures", Department: "CS"},
		{ID: 2, Day: "Tuesday", TimeSlot: "09:00-10:30", Subject: "Circuit Theory", Department: "EE"},
	}}
	f.svc = NewDashboardService(
		f.userRepo,
		newFakeAnnouncementRepo(),
		f.materialRepo,
		f.messageRepo,
		timetableRepo,
		f.leaveRepo,
		NewNotificationService(f.notifRepo, f.userRepo),
	)
	return f
}

func TestDashboardService_Admin(t *testing.T) {
	ctx := context.Background()
	f := newDashboardFixture()
	admin := f.userRepo.add(&models.User{Name: "Admin", Email: "a@campus.edu", Role: models.RoleAdmin})
	f.userRepo.add(&models.User{Name: "S", Email: "s@campus.edu", Role: models.RoleStudent})
	_, err := f.leaveRepo.Create(ctx, &models.LeaveApplication{ApplicantID: 2, StartDate: time.Now(), EndDate: time.Now()})
	require.NoError(t, err)

	dashboard, err := f.svc.GetDashboard(ctx, admin.ID, models.RoleAdmin)
	require.NoError(t, err)

	assert.Equal(t, "admin", dashboard.Role)
	require.NotNil(t, dashboard.TotalUsers)
	assert.Equal(t, 2, *dashboard.TotalUsers)
	require.NotNil(t, dashboard.PendingLeaves)
	assert.Equal(t, 1, *dashboard.PendingLeaves)
	assert.Nil(t, dashboard.UnreadMessages)
	assert.Empty(t, dashboard.Timetable)
}

func TestDashboardService_Faculty(t *testing.T) {
	ctx := context.Background()
	f := newDashboardFixture()
	faculty := f.userRepo.add(&models.User{Name: "Prof", Email: "p@campus.edu", Role: models.RoleFaculty})
	student := f.userRepo.add(&models.User{Name: "S", Email: "s@campus.edu", Role: models.RoleStudent})

	_, err := f.messageRepo.Create(ctx, &models.Message{SenderID: student.ID, RecipientID: faculty.ID, Content: "hi"})
	require.NoError(t, err)
	_, err = f.materialRepo.Create(ctx, &models.StudyMaterial{Title: "mine", UploadedBy: faculty.ID})
	require.NoError(t, err)
	_, err = f.materialRepo.Create(ctx, &models.StudyMaterial{Title: "other", UploadedBy: 99})
	require.NoError(t, err)

	dashboard, err := f.svc.GetDashboard(ctx, faculty.ID, models.RoleFaculty)
	require.NoError(t, err)

	assert.Equal(t, "faculty", dashboard.Role)
	require.NotNil(t, dashboard.UnreadMessages)
	assert.Equal(t, 1, *dashboard.UnreadMessages)
	require.NotNil(t, dashboard.PendingLeaves)
	assert.Nil(t, dashboard.TotalUsers, "user totals are admin-only")
	require.Len(t, dashboard.RecentMaterials, 1, "faculty see only their own uploads")
	assert.Equal(t, "mine", dashboard.RecentMaterials[0].Title)
}

func TestDashboardService_RecentMaterialsCapped(t *testing.T) {
	ctx := context.Background()
	f := newDashboardFixture()
	faculty := f.userRepo.add(&models.User{Name: "Prof", Email: "p@campus.edu", Role: models.RoleFaculty})
	student := f.userRepo.add(&models.User{Name: "S", Email: "s@campus.edu", Role: models.RoleStudent, Department: "CS"})

	titles := []string{"week1", "week2", "week3", "week4"}
	for _, title := range titles {
		_, err := f.materialRepo.Create(ctx, &models.StudyMaterial{Title: title, UploadedBy: faculty.ID})
		require.NoError(t, err)
	}

	t.Run("faculty see their three newest uploads", func(t *testing.T) {
		dashboard, err := f.svc.GetDashboard(ctx, faculty.ID, models.RoleFaculty)
		require.NoError(t, err)
		require.Len(t, dashboard.RecentMaterials, 3)
		assert.Equal(t, "week4", dashboard.RecentMaterials[0].Title)
		assert.Equal(t, "week2", dashboard.RecentMaterials[2].Title)
	})

	t.Run("students see the three newest system-wide", func(t *testing.T) {
		dashboard, err := f.svc.GetDashboard(ctx, student.ID, models.RoleStudent)
		require.NoError(t, err)
		require.Len(t, dashboard.RecentMaterials, 3)
		assert.Equal(t, "week4", dashboard.RecentMaterials[0].Title)
	})
}

func TestDashboardService_Student(t *testing.T) {
	ctx := context.Background()
	f := newDashboardFixture()
	student := f.userRepo.add(&models.User{Name: "Jane", Email: "j@campus.edu", Role: models.RoleStudent, Department: "CS"})

	notifications := NewNotificationService(f.notifRepo, f.userRepo)
	require.NoError(t, notifications.Notify(ctx, student.ID, "hello", "/dashboard"))

	dashboard, err := f.svc.GetDashboard(ctx, student.ID, models.RoleStudent)
	require.NoError(t, err)

	assert.Equal(t, "student", dashboard.Role)
	assert.Equal(t, 1, dashboard.UnreadNotifications)
	assert.Nil(t, dashboard.TotalUsers)
	assert.Nil(t, dashboard.PendingLeaves)
	require.Len(t, dashboard.Timetable, 1, "only the student's department")
	assert.Equal(t, "Data Structures", dashboard.Timetable[0].Subject)
}
