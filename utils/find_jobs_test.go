package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"sahayak/models"
)

func setupJobsTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Provider{}, &models.ServiceRequest{}, &models.Transaction{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func TestAddressesMatch(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		user     string
		want     bool
	}{
		{"provider area inside user address", "Springfield", "12 Elm Street, Springfield", true},
		{"user address inside provider area", "12 Elm Street, Springfield", "Springfield", true},
		{"case insensitive", "SPRINGFIELD", "12 elm street, springfield", true},
		{"no overlap", "Shelbyville", "12 Elm Street, Springfield", false},
		{"false positive by design", "NY", "Albany", true},
		{"empty provider address matches everything", "", "12 Elm Street", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddressesMatch(tt.provider, tt.user))
		})
	}
}

func TestAddressesMatchIsSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"Springfield", "12 Elm Street, Springfield"},
		{"Shelbyville", "12 Elm Street, Springfield"},
		{"NY", "Albany"},
	}
	for _, p := range pairs {
		assert.Equal(t, AddressesMatch(p[0], p[1]), AddressesMatch(p[1], p[0]),
			"swapping %q and %q changed the result", p[0], p[1])
	}
}

func TestFindJobsMatchesTypeAndLocality(t *testing.T) {
	db := setupJobsTestDB(t)

	alice := models.User{Username: "alice", Password: "pw", Address: "12 Elm Street, Springfield", Phone: "555-0101"}
	require.NoError(t, db.Create(&alice).Error)

	request := models.ServiceRequest{
		Username:    "alice",
		ServiceType: "Plumbing",
		Date:        "2024-05-01",
		Time:        "10:00",
	}
	require.NoError(t, db.Create(&request).Error)

	bob := models.Provider{Username: "bob", Password: "pw", ServiceType: "Plumbing", Address: "Springfield"}
	carol := models.Provider{Username: "carol", Password: "pw", ServiceType: "Plumbing", Address: "Shelbyville"}
	dave := models.Provider{Username: "dave", Password: "pw", ServiceType: "Electrical", Address: "Springfield"}
	require.NoError(t, db.Create(&bob).Error)
	require.NoError(t, db.Create(&carol).Error)
	require.NoError(t, db.Create(&dave).Error)

	// Same trade, overlapping address
	jobs, err := FindJobs(db, &bob)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, request.ID, jobs[0].ID)
	assert.Equal(t, "alice", jobs[0].Client)
	assert.Equal(t, "2024-05-01", jobs[0].Date)
	assert.Equal(t, "10:00", jobs[0].Time)
	assert.Equal(t, "12 Elm Street, Springfield", jobs[0].ClientAddress)
	assert.Equal(t, "555-0101", jobs[0].ClientPhone)

	// Same trade, no address overlap
	jobs, err = FindJobs(db, &carol)
	require.NoError(t, err)
	assert.Empty(t, jobs)

	// Different trade, overlapping address
	jobs, err = FindJobs(db, &dave)
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestFindJobsServiceTypeIsCaseSensitive(t *testing.T) {
	db := setupJobsTestDB(t)

	alice := models.User{Username: "alice", Password: "pw", Address: "Springfield"}
	require.NoError(t, db.Create(&alice).Error)
	require.NoError(t, db.Create(&models.ServiceRequest{
		Username: "alice", ServiceType: "plumbing", Date: "2024-05-01", Time: "10:00",
	}).Error)

	bob := models.Provider{Username: "bob", Password: "pw", ServiceType: "Plumbing", Address: "Springfield"}
	require.NoError(t, db.Create(&bob).Error)

	jobs, err := FindJobs(db, &bob)
	require.NoError(t, err)
	assert.Empty(t, jobs, "service type comparison is exact, not case folded")
}

func TestFindJobsSkipsNonPendingRequests(t *testing.T) {
	db := setupJobsTestDB(t)

	alice := models.User{Username: "alice", Password: "pw", Address: "Springfield"}
	require.NoError(t, db.Create(&alice).Error)

	for _, status := range []models.RequestStatus{
		models.StatusAccepted, models.StatusRejected,
		models.StatusAcceptedUnpaid, models.StatusPaymentSuccess,
	} {
		require.NoError(t, db.Create(&models.ServiceRequest{
			Username: "alice", ServiceType: "Plumbing", Date: "2024-05-01", Time: "10:00", Status: status,
		}).Error)
	}

	bob := models.Provider{Username: "bob", Password: "pw", ServiceType: "Plumbing", Address: "Springfield"}
	require.NoError(t, db.Create(&bob).Error)

	jobs, err := FindJobs(db, &bob)
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestFindJobsSkipsRequestsWithMissingOwner(t *testing.T) {
	db := setupJobsTestDB(t)

	alice := models.User{Username: "alice", Password: "pw", Address: "Springfield"}
	require.NoError(t, db.Create(&alice).Error)

	// A request whose owner row was never created must not fail the
	// whole scan, only drop out of the results.
	require.NoError(t, db.Create(&models.ServiceRequest{
		Username: "ghost", ServiceType: "Plumbing", Date: "2024-05-01", Time: "10:00",
	}).Error)
	require.NoError(t, db.Create(&models.ServiceRequest{
		Username: "alice", ServiceType: "Plumbing", Date: "2024-05-02", Time: "11:00",
	}).Error)

	bob := models.Provider{Username: "bob", Password: "pw", ServiceType: "Plumbing", Address: "Springfield"}
	require.NoError(t, db.Create(&bob).Error)

	jobs, err := FindJobs(db, &bob)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "alice", jobs[0].Client)
}

func TestFindJobsReturnsResultsInIDOrder(t *testing.T) {
	db := setupJobsTestDB(t)

	alice := models.User{Username: "alice", Password: "pw", Address: "Springfield"}
	require.NoError(t, db.Create(&alice).Error)

	var ids []uint
	for i := 0; i < 3; i++ {
		request := models.ServiceRequest{
			Username: "alice", ServiceType: "Plumbing", Date: "2024-05-01", Time: "10:00",
		}
		require.NoError(t, db.Create(&request).Error)
		ids = append(ids, request.ID)
	}

	bob := models.Provider{Username: "bob", Password: "pw", ServiceType: "Plumbing", Address: "Springfield"}
	require.NoError(t, db.Create(&bob).Error)

	jobs, err := FindJobs(db, &bob)
	require.NoError(t, err)
	require.Len(t, jobs, 3)
	for i, job := range jobs {
		assert.Equal(t, ids[i], job.ID)
	}
}
