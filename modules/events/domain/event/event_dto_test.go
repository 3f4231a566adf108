package event_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevaops/temple-console/modules/events/domain/event"
	"github.com/sevaops/temple-console/pkg/shared"
)

func day(s string) shared.DateOnly {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return shared.DateOnly(t)
}

func validDTO() *event.CreateDTO {
	return &event.CreateDTO{
		Name:     "Ganesh Chaturthi",
		Location: "Main hall",
		FromDate: day("2026-09-14"),
		ToDate:   day("2026-09-15"),
		Status:   "published",
	}
}

func TestCreateDTO_Ok(t *testing.T) {
	errs, ok := validDTO().Ok(context.Background())
	require.True(t, ok, errs)
	assert.Empty(t, errs)
}

func TestCreateDTO_Ok_DateOrder(t *testing.T) {
	dto := validDTO()
	dto.FromDate = day("2026-09-15")
	dto.ToDate = day("2026-09-14")

	errs, ok := dto.Ok(context.Background())
	require.False(t, ok)
	assert.Contains(t, errs, "ToDate")
	assert.NotContains(t, errs, "FromDate")
}

func TestCreateDTO_Ok_RequiredFields(t *testing.T) {
	dto := &event.CreateDTO{Status: "draft"}

	errs, ok := dto.Ok(context.Background())
	require.False(t, ok)
	for _, field := range []string{"Name", "Location", "FromDate", "ToDate"} {
		assert.Contains(t, errs, field)
	}
}

func TestCreateDTO_Ok_SameDayAllowed(t *testing.T) {
	dto := validDTO()
	dto.ToDate = dto.FromDate

	_, ok := dto.Ok(context.Background())
	assert.True(t, ok)
}

func TestCreateDTO_Normalize_TrimsFields(t *testing.T) {
	dto := validDTO()
	dto.Name = "  Ganesh Chaturthi  "
	dto.Location = " Main hall "

	_, ok := dto.Ok(context.Background())
	require.True(t, ok)
	assert.Equal(t, "Ganesh Chaturthi", dto.Name)
	assert.Equal(t, "Main hall", dto.Location)
}
