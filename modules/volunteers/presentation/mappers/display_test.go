package mappers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevaops/temple-console/modules/volunteers/domain/volunteer"
)

func TestInitials(t *testing.T) {
	assert.Equal(t, "AS", Initials("Anil Sharma"))
	// Middle names are skipped: first and last word only.
	assert.Equal(t, "AK", Initials("Anil Kumar Sharma Kulkarni"))
	assert.Equal(t, "A", Initials("anil"))
	assert.Equal(t, "?", Initials("   "))
}

func TestAvatarColor_Deterministic(t *testing.T) {
	first := AvatarColor("Anil Sharma")
	assert.Equal(t, first, AvatarColor("Anil Sharma"))
	assert.NotEmpty(t, first)
	assert.Equal(t, byte('#'), first[0])
}

func TestTo12Hour(t *testing.T) {
	assert.Equal(t, "6:30 PM", To12Hour("18:30"))
	assert.Equal(t, "12:00 AM", To12Hour("00:00"))
	assert.Equal(t, "12:15 PM", To12Hour("12:15"))
	// Unparseable values pass through untouched.
	assert.Equal(t, "n/a", To12Hour("n/a"))
}

func TestDaysWaiting(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, DaysWaiting(now.Add(-23*time.Hour), now))
	assert.Equal(t, 1, DaysWaiting(now.Add(-25*time.Hour), now))
	assert.Equal(t, 10, DaysWaiting(now.AddDate(0, 0, -10), now))
	assert.Equal(t, 0, DaysWaiting(time.Time{}, now))
	assert.Equal(t, 0, DaysWaiting(now.Add(time.Hour), now))
}

func TestVolunteerToApprovalRow_DocumentBadge(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	v := volunteer.Volunteer{
		ID:                 3,
		Name:               "Meera Iyer",
		Status:             volunteer.StatusPendingApproval,
		RegisteredAt:       now.AddDate(0, 0, -4),
		RequiredDocuments:  []string{"id_proof", "address_proof", "photo"},
		SubmittedDocuments: []string{"id_proof", "photo", "unrelated_extra"},
	}

	row := VolunteerToApprovalRow(v, now)
	require.Equal(t, "2/3", row.DocsBadge)
	assert.False(t, row.DocsComplete)
	assert.Equal(t, "4", row.DaysWaiting)
	assert.Equal(t, "MI", row.Initials)
	assert.Equal(t, "/volunteers/approvals/3/reject", row.RejectTo)

	v.SubmittedDocuments = append(v.SubmittedDocuments, "address_proof")
	row = VolunteerToApprovalRow(v, now)
	assert.Equal(t, "3/3", row.DocsBadge)
	assert.True(t, row.DocsComplete)
}
