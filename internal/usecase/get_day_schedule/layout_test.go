package get_day_schedule

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowcare/clinic-booking/internal/domain"
	"github.com/glowcare/clinic-booking/pkg/types"
)

var testDay = time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)

func testWindow() *domain.ScheduleWindow {
	return &domain.ScheduleWindow{
		StartHour:       9,
		EndHour:         19,
		MinutesPerPixel: 1,
		ColumnScope:     domain.ColumnScopeDay,
	}
}

func bk(id int64, day time.Time, start, end string) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		BookingDate: day,
		StartTime:   types.TimeString(start),
		EndTime:     types.TimeString(end),
		Status:      domain.StatusConfirmed,
	}
}

func layoutByID(layouts []domain.BookingLayout) map[int64]domain.BookingLayout {
	m := make(map[int64]domain.BookingLayout, len(layouts))
	for _, l := range layouts {
		m[l.BookingID] = l
	}
	return m
}

func TestComputeDayLayout_OverlappingTriple(t *testing.T) {
	bookings := []*domain.Booking{
		bk(1, testDay, "09:00", "10:00"),
		bk(2, testDay, "09:30", "10:30"),
		bk(3, testDay, "10:00", "11:00"),
	}

	layouts := computeDayLayout(bookings, testDay, testWindow())
	require.Len(t, layouts, 3)

	byID := layoutByID(layouts)

	// A занимает колонку 0, B пересекается с A и уходит в колонку 1,
	// C начинается когда колонка 0 уже свободна
	assert.Equal(t, 0, byID[1].Column)
	assert.Equal(t, 1, byID[2].Column)
	assert.Equal(t, 0, byID[3].Column)

	assert.Equal(t, 0, byID[1].TopMinutes)
	assert.Equal(t, 30, byID[2].TopMinutes)
	assert.Equal(t, 60, byID[3].TopMinutes)

	for _, l := range layouts {
		assert.Equal(t, 60, l.HeightMinutes)
		assert.Equal(t, 2, l.ColumnCount)
	}
}

func TestComputeDayLayout_BackToBackShareColumn(t *testing.T) {
	bookings := []*domain.Booking{
		bk(1, testDay, "09:00", "10:00"),
		bk(2, testDay, "10:00", "11:00"),
	}

	layouts := computeDayLayout(bookings, testDay, testWindow())
	require.Len(t, layouts, 2)

	for _, l := range layouts {
		assert.Equal(t, 0, l.Column)
		assert.Equal(t, 1, l.ColumnCount)
	}
}

func TestComputeDayLayout_EmptyDay(t *testing.T) {
	layouts := computeDayLayout(nil, testDay, testWindow())
	require.NotNil(t, layouts)
	assert.Empty(t, layouts)
}

func TestComputeDayLayout_ZeroDuration(t *testing.T) {
	bookings := []*domain.Booking{
		bk(1, testDay, "09:15", "09:15"),
	}

	layouts := computeDayLayout(bookings, testDay, testWindow())
	require.Len(t, layouts, 1)

	assert.Equal(t, 0, layouts[0].HeightMinutes)
	assert.Equal(t, 0, layouts[0].Column)
	assert.Equal(t, 15, layouts[0].TopMinutes)
	assert.Equal(t, 1, layouts[0].ColumnCount)
}

func TestComputeDayLayout_EndBeforeStartClampedToZeroHeight(t *testing.T) {
	bookings := []*domain.Booking{
		bk(1, testDay, "10:00", "09:30"),
		bk(2, testDay, "10:00", "11:00"),
	}

	layouts := computeDayLayout(bookings, testDay, testWindow())
	require.Len(t, layouts, 2)

	byID := layoutByID(layouts)
	assert.Equal(t, 0, byID[1].HeightMinutes)
	assert.Equal(t, 60, byID[1].TopMinutes)
	// Соседнее корректное бронирование размещается как обычно
	assert.Equal(t, 60, byID[2].HeightMinutes)
}

func TestComputeDayLayout_FiveSimultaneousStarts(t *testing.T) {
	bookings := []*domain.Booking{
		bk(1, testDay, "09:00", "09:10"),
		bk(2, testDay, "09:00", "09:20"),
		bk(3, testDay, "09:00", "09:30"),
		bk(4, testDay, "09:00", "09:40"),
		bk(5, testDay, "09:00", "09:50"),
	}

	layouts := computeDayLayout(bookings, testDay, testWindow())
	require.Len(t, layouts, 5)

	seen := make(map[int]bool)
	for _, l := range layouts {
		assert.False(t, seen[l.Column], "column %d assigned twice", l.Column)
		seen[l.Column] = true
		assert.Equal(t, 5, l.ColumnCount)
	}
}

func TestComputeDayLayout_TieBreakByID(t *testing.T) {
	// При одинаковом времени начала колонки раздаются по возрастанию ID
	bookings := []*domain.Booking{
		bk(7, testDay, "12:00", "13:00"),
		bk(3, testDay, "12:00", "13:00"),
		bk(5, testDay, "12:00", "13:00"),
	}

	layouts := computeDayLayout(bookings, testDay, testWindow())
	require.Len(t, layouts, 3)

	byID := layoutByID(layouts)
	assert.Equal(t, 0, byID[3].Column)
	assert.Equal(t, 1, byID[5].Column)
	assert.Equal(t, 2, byID[7].Column)
}

func TestComputeDayLayout_FiltersOtherDays(t *testing.T) {
	otherDay := testDay.AddDate(0, 0, 1)
	bookings := []*domain.Booking{
		bk(1, testDay, "09:00", "10:00"),
		bk(2, otherDay, "09:00", "10:00"),
	}

	layouts := computeDayLayout(bookings, testDay, testWindow())
	require.Len(t, layouts, 1)
	assert.Equal(t, int64(1), layouts[0].BookingID)
}

func TestComputeDayLayout_DeterministicUnderShuffle(t *testing.T) {
	bookings := []*domain.Booking{
		bk(1, testDay, "09:00", "10:00"),
		bk(2, testDay, "09:30", "10:30"),
		bk(3, testDay, "10:00", "11:00"),
		bk(4, testDay, "10:15", "10:45"),
		bk(5, testDay, "13:00", "14:00"),
		bk(6, testDay, "13:00", "13:30"),
	}

	expected := layoutByID(computeDayLayout(bookings, testDay, testWindow()))

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := make([]*domain.Booking, len(bookings))
		copy(shuffled, bookings)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got := layoutByID(computeDayLayout(shuffled, testDay, testWindow()))
		assert.Equal(t, expected, got, "layout must not depend on input order")
	}
}

func TestComputeDayLayout_NoOverlapInvariant(t *testing.T) {
	bookings := []*domain.Booking{
		bk(1, testDay, "09:00", "11:00"),
		bk(2, testDay, "09:15", "09:45"),
		bk(3, testDay, "09:30", "10:30"),
		bk(4, testDay, "10:00", "12:00"),
		bk(5, testDay, "10:45", "11:15"),
		bk(6, testDay, "12:30", "13:00"),
		bk(7, testDay, "12:45", "13:45"),
	}

	layouts := computeDayLayout(bookings, testDay, testWindow())
	require.Len(t, layouts, len(bookings))

	byID := make(map[int64]*domain.Booking, len(bookings))
	for _, b := range bookings {
		byID[b.ID] = b
	}

	for i := 0; i < len(layouts); i++ {
		for j := i + 1; j < len(layouts); j++ {
			a, b := byID[layouts[i].BookingID], byID[layouts[j].BookingID]
			if a.Overlaps(b) {
				assert.NotEqual(t, layouts[i].Column, layouts[j].Column,
					"overlapping bookings %d and %d share column %d", a.ID, b.ID, layouts[i].Column)
			}
		}
	}

	// Число колонок не может быть меньше максимальной одновременной загрузки
	maxSimultaneous := 0
	for _, a := range bookings {
		open := 0
		for _, b := range bookings {
			if b.StartMinutes() <= a.StartMinutes() && b.EndMinutes() > a.StartMinutes() {
				open++
			}
		}
		if open > maxSimultaneous {
			maxSimultaneous = open
		}
	}
	assert.GreaterOrEqual(t, layouts[0].ColumnCount, maxSimultaneous)
}

func TestComputeDayLayout_DayScopeSharesColumnCountAcrossClusters(t *testing.T) {
	// Два независимых кластера: утренний шириной 2 и одиночное бронирование днем
	bookings := []*domain.Booking{
		bk(1, testDay, "09:00", "10:00"),
		bk(2, testDay, "09:30", "10:30"),
		bk(3, testDay, "12:00", "13:00"),
	}

	layouts := computeDayLayout(bookings, testDay, testWindow())
	byID := layoutByID(layouts)

	for _, l := range layouts {
		assert.Equal(t, 2, l.ColumnCount)
	}
	assert.Equal(t, 0, byID[3].Column)
}

func TestComputeDayLayout_ClusterScopeCountsPerCluster(t *testing.T) {
	window := testWindow()
	window.ColumnScope = domain.ColumnScopeCluster

	bookings := []*domain.Booking{
		bk(1, testDay, "09:00", "10:00"),
		bk(2, testDay, "09:30", "10:30"),
		bk(3, testDay, "12:00", "13:00"),
	}

	layouts := computeDayLayout(bookings, testDay, window)
	byID := layoutByID(layouts)

	assert.Equal(t, 2, byID[1].ColumnCount)
	assert.Equal(t, 2, byID[2].ColumnCount)
	assert.Equal(t, 1, byID[3].ColumnCount)
}

func TestComputeDayLayout_TopRelativeToWindowStart(t *testing.T) {
	window := testWindow()
	window.StartHour = 8

	bookings := []*domain.Booking{
		bk(1, testDay, "09:00", "10:00"),
		// Раньше начала окна - отрицательный top, высота сохраняется
		bk(2, testDay, "07:30", "08:30"),
	}

	layouts := computeDayLayout(bookings, testDay, window)
	byID := layoutByID(layouts)

	assert.Equal(t, 60, byID[1].TopMinutes)
	assert.Equal(t, -30, byID[2].TopMinutes)
	assert.Equal(t, 60, byID[2].HeightMinutes)
}

func TestCurrentTimePosition(t *testing.T) {
	window := testWindow()

	tests := []struct {
		name        string
		now         time.Time
		wantTop     int
		wantVisible bool
	}{
		{
			name:        "inside business hours",
			now:         time.Date(2025, 11, 3, 12, 30, 0, 0, time.UTC),
			wantTop:     210,
			wantVisible: true,
		},
		{
			name:        "exactly at opening",
			now:         time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC),
			wantTop:     0,
			wantVisible: true,
		},
		{
			name:        "exactly at closing is outside the half-open window",
			now:         time.Date(2025, 11, 3, 19, 0, 0, 0, time.UTC),
			wantTop:     600,
			wantVisible: false,
		},
		{
			name:        "before opening",
			now:         time.Date(2025, 11, 3, 7, 45, 0, 0, time.UTC),
			wantTop:     -75,
			wantVisible: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			indicator := currentTimePosition(window, tt.now)
			assert.Equal(t, tt.wantTop, indicator.TopMinutes)
			assert.Equal(t, tt.wantVisible, indicator.Visible)
		})
	}
}
