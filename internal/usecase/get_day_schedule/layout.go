package get_day_schedule

import (
	"sort"
	"time"

	"github.com/glowcare/clinic-booking/internal/domain"
)

// computeDayLayout строит бесколлизионную раскладку бронирований одного дня.
//
// Алгоритм - жадное разбиение интервалов (first-fit по возрастанию времени начала):
// 1. Оставляем только бронирования, дата которых совпадает с day
// 2. Сортируем по времени начала, при равенстве - по ID (детерминированный порядок)
// 3. Ведем список открытых колонок, каждая хранит время окончания последнего
//    размещенного в ней бронирования
// 4. Каждое бронирование кладем в первую освободившуюся колонку
//    (колонка свободна, когда ее время окончания <= времени начала бронирования),
//    иначе открываем новую
//
// Порядок обработки по возрастанию начала обязателен: для интервальных графов
// жадная раскраска по левому концу дает хроматическое число, произвольный
// порядок этой гарантии не имеет.
//
// Пересекающиеся бронирования никогда не попадают в одну колонку.
// Вертикальные координаты считаются в минутах от начала окна расписания
// и не зависят от назначения колонок.
func computeDayLayout(bookings []*domain.Booking, day time.Time, window *domain.ScheduleWindow) []domain.BookingLayout {
	dayBookings := filterDayBookings(bookings, day)
	if len(dayBookings) == 0 {
		return []domain.BookingLayout{}
	}

	sort.SliceStable(dayBookings, func(i, j int) bool {
		if dayBookings[i].StartMinutes() != dayBookings[j].StartMinutes() {
			return dayBookings[i].StartMinutes() < dayBookings[j].StartMinutes()
		}
		return dayBookings[i].ID < dayBookings[j].ID
	})

	windowStart := window.StartMinutes()
	layouts := make([]domain.BookingLayout, 0, len(dayBookings))

	// Колонки текущего кластера пересечений: время окончания последнего
	// бронирования в каждой
	columnEnds := make([]int, 0, 4)
	clusterStart := 0 // Индекс первой записи текущего кластера в layouts
	maxColumns := 0   // Максимальная ширина кластера за день

	finalizeCluster := func(upTo int) {
		if len(columnEnds) > maxColumns {
			maxColumns = len(columnEnds)
		}
		if window.ColumnScope == domain.ColumnScopeCluster {
			for i := clusterStart; i < upTo; i++ {
				layouts[i].ColumnCount = len(columnEnds)
			}
		}
		columnEnds = columnEnds[:0]
		clusterStart = upTo
	}

	for _, b := range dayBookings {
		start := b.StartMinutes()
		end := b.EndMinutes()

		// Вырожденный интервал (конец не позже начала) не роняет раскладку:
		// бронирование получает нулевую высоту, но остается видимым
		height := end - start
		if height < 0 {
			height = 0
			end = start
		}

		// Все колонки освободились - начался новый кластер пересечений
		if len(columnEnds) > 0 && start >= clusterMaxEnd(columnEnds) {
			finalizeCluster(len(layouts))
		}

		column := -1
		for i, colEnd := range columnEnds {
			if colEnd <= start {
				column = i
				break
			}
		}
		if column == -1 {
			columnEnds = append(columnEnds, end)
			column = len(columnEnds) - 1
		} else {
			columnEnds[column] = end
		}

		layouts = append(layouts, domain.BookingLayout{
			BookingID:     b.ID,
			Column:        column,
			TopMinutes:    start - windowStart,
			HeightMinutes: height,
		})
	}

	finalizeCluster(len(layouts))

	// При раскладке на весь день все записи получают одинаковое число колонок -
	// максимальную ширину, достигнутую за день
	if window.ColumnScope != domain.ColumnScopeCluster {
		for i := range layouts {
			layouts[i].ColumnCount = maxColumns
		}
	}

	return layouts
}

// clusterMaxEnd возвращает самое позднее время окончания среди открытых колонок
func clusterMaxEnd(columnEnds []int) int {
	max := columnEnds[0]
	for _, end := range columnEnds[1:] {
		if end > max {
			max = end
		}
	}
	return max
}

// filterDayBookings оставляет бронирования, дата которых совпадает с day
func filterDayBookings(bookings []*domain.Booking, day time.Time) []*domain.Booking {
	result := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if domain.SameDay(b.BookingDate, day) {
			result = append(result, b)
		}
	}
	return result
}

// currentTimePosition вычисляет положение индикатора текущего времени в сетке дня
// Индикатор виден только внутри полуинтервала рабочих часов [start, end)
func currentTimePosition(window *domain.ScheduleWindow, now time.Time) domain.TimeIndicator {
	nowMinutes := now.Hour()*60 + now.Minute()
	return domain.TimeIndicator{
		TopMinutes: nowMinutes - window.StartMinutes(),
		Visible:    window.ContainsMinutes(nowMinutes),
	}
}
