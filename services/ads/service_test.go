package ads

import (
	"testing"
	"time"

	"ard/config"
	adsRepo "ard/database/repository/ads"
	"ard/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	config.LoadConfig()
	m.Run()
}

func newService() (*DefaultAdService, *adsRepo.MemoryAdRepo) {
	repo := adsRepo.NewMemoryAdRepo()
	return &DefaultAdService{Repo: repo}, repo
}

func validInput() models.Ad {
	return models.Ad{
		UserID:   "seller-1",
		UserName: "Chidi",
		Title:    "Generator repair",
		Category: models.CategoryServices,
		Contact:  models.Contact{Phone: "+2348012345678", Whatsapp: "+2348012345678"},
		Locations: []models.Location{
			{Lat: 6.5244, Lng: 3.3792, City: "Lagos Island", State: "Lagos"},
		},
	}
}

func TestCreateStampsLifetimeAndApproval(t *testing.T) {
	svc, _ := newService()

	before := time.Now().UnixMilli()
	ad, err := svc.Create(validInput())
	require.NoError(t, err)

	assert.NotEmpty(t, ad.ID)
	assert.True(t, ad.IsApproved, "ads go live immediately")
	assert.GreaterOrEqual(t, ad.CreatedAt, before)
	assert.Equal(t, ad.CreatedAt+config.AdTTL().Milliseconds(), ad.ExpiresAt)
	assert.Empty(t, ad.Reviews)
	assert.Zero(t, ad.Insights)
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newService()

	cases := map[string]func(*models.Ad){
		"missing title":    func(a *models.Ad) { a.Title = "" },
		"bad category":     func(a *models.Ad) { a.Category = "Gossip" },
		"all sentinel":     func(a *models.Ad) { a.Category = models.CategoryAll },
		"missing phone":    func(a *models.Ad) { a.Contact.Phone = "" },
		"missing whatsapp": func(a *models.Ad) { a.Contact.Whatsapp = "" },
		"no locations":     func(a *models.Ad) { a.Locations = nil },
	}
	for name, mutate := range cases {
		input := validInput()
		mutate(&input)
		_, err := svc.Create(input)
		assert.Error(t, err, name)
	}

	// The all-locations flag widens matching but never waives the seller's
	// primary location.
	input := validInput()
	input.Locations = nil
	input.IsAllLocations = true
	_, err := svc.Create(input)
	assert.Error(t, err)

	input = validInput()
	input.IsAllLocations = true
	_, err = svc.Create(input)
	assert.NoError(t, err)
}

func TestUpdatePreservesIdentityAndCounters(t *testing.T) {
	svc, _ := newService()
	ad, err := svc.Create(validInput())
	require.NoError(t, err)
	require.NoError(t, svc.Report(ad.ID))
	require.NoError(t, svc.RecordInsight(ad.ID, models.InsightViews))

	edit := validInput()
	edit.ID = "spoofed"
	edit.UserID = "someone-else"
	edit.Title = "Generator repair and servicing"

	updated, err := svc.Update(ad.ID, edit)
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, ad.ID, updated.ID)
	assert.Equal(t, ad.UserID, updated.UserID)
	assert.Equal(t, "Generator repair and servicing", updated.Title)
	assert.Equal(t, ad.CreatedAt, updated.CreatedAt)
	assert.Equal(t, ad.ExpiresAt, updated.ExpiresAt, "editing never extends an ad's life")
	assert.Equal(t, 1, updated.Reports)
	assert.Equal(t, 1, updated.Insights.Views)
}

func TestUpdateUnknownIDReturnsNil(t *testing.T) {
	svc, _ := newService()
	updated, err := svc.Update("nope", validInput())
	assert.NoError(t, err)
	assert.Nil(t, updated)
}

func TestDeleteIsIdempotent(t *testing.T) {
	svc, _ := newService()
	ad, err := svc.Create(validInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ad.ID))
	require.NoError(t, svc.Delete(ad.ID))

	got, err := svc.Get(ad.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListLazilyPurgesExpired(t *testing.T) {
	svc, repo := newService()
	live, err := svc.Create(validInput())
	require.NoError(t, err)
	dead, err := svc.Create(validInput())
	require.NoError(t, err)

	// Force expiry by rewriting the stored record.
	dead.ExpiresAt = time.Now().UnixMilli() - 1
	require.NoError(t, repo.Replace(dead))

	listed, err := svc.List()
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, live.ID, listed[0].ID)

	// The expired record is gone from storage, not just hidden.
	_, err = repo.GetByID(dead.ID)
	assert.ErrorIs(t, err, adsRepo.ErrNotFound)
}

func TestListByUserIncludesExpired(t *testing.T) {
	svc, repo := newService()
	ad, err := svc.Create(validInput())
	require.NoError(t, err)
	ad.ExpiresAt = time.Now().UnixMilli() - 1
	require.NoError(t, repo.Replace(ad))

	owned, err := svc.ListByUser("seller-1")
	require.NoError(t, err)
	assert.Len(t, owned, 1, "owners see expired ads so they can renew them")
}

func TestRenewBumpsBothTimestamps(t *testing.T) {
	svc, repo := newService()
	ad, err := svc.Create(validInput())
	require.NoError(t, err)

	// Age the ad so the bump is observable.
	ad.CreatedAt -= time.Hour.Milliseconds()
	ad.ExpiresAt -= time.Hour.Milliseconds()
	require.NoError(t, repo.Replace(ad))

	before := time.Now().UnixMilli()
	renewed, err := svc.Renew(ad.ID)
	require.NoError(t, err)
	require.NotNil(t, renewed)

	assert.GreaterOrEqual(t, renewed.CreatedAt, before, "renewal reposts the ad to the top of newest")
	assert.Equal(t, renewed.CreatedAt+config.AdTTL().Milliseconds(), renewed.ExpiresAt)
}

func TestRenewUnknownIDReturnsNil(t *testing.T) {
	svc, _ := newService()
	renewed, err := svc.Renew("nope")
	assert.NoError(t, err)
	assert.Nil(t, renewed)
}

func TestModerationFlow(t *testing.T) {
	svc, repo := newService()
	ad, err := svc.Create(validInput())
	require.NoError(t, err)

	require.NoError(t, svc.Report(ad.ID))
	require.NoError(t, svc.Report(ad.ID))
	got, _ := repo.GetByID(ad.ID)
	assert.Equal(t, 2, got.Reports)

	require.NoError(t, svc.DismissReports(ad.ID))
	got, _ = repo.GetByID(ad.ID)
	assert.Zero(t, got.Reports)

	got.IsApproved = false
	require.NoError(t, repo.Replace(got))
	require.NoError(t, svc.Approve(ad.ID))
	got, _ = repo.GetByID(ad.ID)
	assert.True(t, got.IsApproved)
}

func TestModerationUnknownIDIsNoOp(t *testing.T) {
	svc, _ := newService()
	assert.NoError(t, svc.Report("nope"))
	assert.NoError(t, svc.Approve("nope"))
	assert.NoError(t, svc.DismissReports("nope"))
}

func TestAddReviewPrepends(t *testing.T) {
	svc, repo := newService()
	ad, err := svc.Create(validInput())
	require.NoError(t, err)

	first, err := svc.AddReview(ad.ID, models.Review{UserID: "u1", Rating: 5, Comment: "Sharp guy"})
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.NotEmpty(t, first.ID)
	assert.NotZero(t, first.CreatedAt)

	second, err := svc.AddReview(ad.ID, models.Review{UserID: "u2", Rating: 4, Comment: "Solid work"})
	require.NoError(t, err)

	got, _ := repo.GetByID(ad.ID)
	require.Len(t, got.Reviews, 2)
	assert.Equal(t, second.ID, got.Reviews[0].ID, "newest review comes first")
	assert.Equal(t, first.ID, got.Reviews[1].ID)
}

func TestAddReviewValidatesRating(t *testing.T) {
	svc, _ := newService()
	ad, err := svc.Create(validInput())
	require.NoError(t, err)

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.AddReview(ad.ID, models.Review{UserID: "u1", Rating: rating})
		assert.Error(t, err)
	}
}

func TestAddReviewUnknownIDReturnsNil(t *testing.T) {
	svc, _ := newService()
	saved, err := svc.AddReview("nope", models.Review{UserID: "u1", Rating: 3})
	assert.NoError(t, err)
	assert.Nil(t, saved)
}

func TestRecordInsightContactClassification(t *testing.T) {
	svc, repo := newService()
	ad, err := svc.Create(validInput())
	require.NoError(t, err)

	require.NoError(t, svc.RecordInsight(ad.ID, models.InsightViews))
	require.NoError(t, svc.RecordInsight(ad.ID, models.InsightCalls))
	require.NoError(t, svc.RecordInsight(ad.ID, models.InsightWhatsapp))
	require.NoError(t, svc.RecordInsight(ad.ID, models.InsightSocials))
	require.NoError(t, svc.RecordInsight(ad.ID, models.InsightWeb))

	got, _ := repo.GetByID(ad.ID)
	assert.Equal(t, 1, got.Insights.Views)
	assert.Equal(t, 1, got.Insights.Calls)
	assert.Equal(t, 1, got.Insights.Whatsapp)
	assert.Equal(t, 1, got.Insights.Socials)
	assert.Equal(t, 1, got.Insights.Web)
	assert.Equal(t, 4, got.Insights.Contacts, "views never count as a contact")
}

func TestRecordInsightRejectsUnknownKind(t *testing.T) {
	svc, _ := newService()
	ad, err := svc.Create(validInput())
	require.NoError(t, err)

	assert.Error(t, svc.RecordInsight(ad.ID, "shares"))
}

func TestRecordInsightUnknownIDIsNoOp(t *testing.T) {
	svc, _ := newService()
	assert.NoError(t, svc.RecordInsight("nope", models.InsightViews))
}
