package demo

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/glowcare/clinic-booking/internal/domain"
	"github.com/glowcare/clinic-booking/pkg/ptr"
	"github.com/glowcare/clinic-booking/pkg/types"
)

// Generator детерминированная фабрика демо-данных
// Один и тот же seed всегда дает одинаковый набор клиентов, процедур
// и бронирований - удобно для скриншотов и воспроизводимых багрепортов
type Generator struct {
	rng *rand.Rand
}

// NewGenerator создает генератор с фиксированным seed
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

var firstNames = []string{
	"Анна", "Мария", "Елена", "Ольга", "Наталья",
	"Ирина", "Светлана", "Татьяна", "Юлия", "Екатерина",
	"Дарья", "Алина", "Виктория", "Полина", "Ксения",
}

var lastNames = []string{
	"Иванова", "Петрова", "Смирнова", "Кузнецова", "Попова",
	"Васильева", "Соколова", "Михайлова", "Новикова", "Федорова",
}

var treatmentCatalog = []domain.Treatment{
	{Name: "Чистка лица", Category: "cleansing", Price: 3500, DurationMinutes: 60, CommissionRate: 0.25, Active: true},
	{Name: "Химический пилинг", Category: "peeling", Price: 4200, DurationMinutes: 45, CommissionRate: 0.30, Active: true},
	{Name: "Увлажняющая маска", Category: "care", Price: 2000, DurationMinutes: 30, CommissionRate: 0.20, Active: true},
	{Name: "Массаж лица", Category: "care", Price: 2800, DurationMinutes: 45, CommissionRate: 0.25, Active: true},
	{Name: "Микротоковая терапия", Category: "hardware", Price: 5500, DurationMinutes: 60, CommissionRate: 0.35, Active: true},
	{Name: "Лазерная шлифовка", Category: "hardware", Price: 9000, DurationMinutes: 90, CommissionRate: 0.35, Active: true},
	{Name: "Консультация косметолога", Category: "consultation", Price: 1500, DurationMinutes: 30, CommissionRate: 0.15, Active: true},
	{Name: "Парафинотерапия", Category: "care", Price: 1800, DurationMinutes: 30, CommissionRate: 0.20, Active: false},
}

// Treatments возвращает демо-каталог процедур клиники
func (g *Generator) Treatments() []*domain.Treatment {
	treatments := make([]*domain.Treatment, len(treatmentCatalog))
	for i := range treatmentCatalog {
		t := treatmentCatalog[i]
		treatments[i] = &t
	}
	return treatments
}

// Customer создает одного демо-клиента
// Portal token тоже детерминирован - выводится из seed-генератора
func (g *Generator) Customer() *domain.Customer {
	first := firstNames[g.rng.Intn(len(firstNames))]
	last := lastNames[g.rng.Intn(len(lastNames))]

	var tokenBytes [16]byte
	g.rng.Read(tokenBytes[:])
	token, _ := uuid.FromBytes(tokenBytes[:])

	phone := fmt.Sprintf("+7915%07d", g.rng.Intn(10000000))

	return &domain.Customer{
		FirstName:   first,
		LastName:    last,
		Email:       fmt.Sprintf("%s.%d@example.com", translit(first), g.rng.Intn(100000)),
		Phone:       ptr.Ptr(phone),
		PortalToken: token,
	}
}

// Customers создает n демо-клиентов
func (g *Generator) Customers(n int) []*domain.Customer {
	customers := make([]*domain.Customer, n)
	for i := range customers {
		customers[i] = g.Customer()
	}
	return customers
}

// BookingsForDay создает занятый день мастера: от 4 до 8 записей,
// часть из которых намеренно пересекается, чтобы раскладка дня
// показывала многоколоночные кластеры
func (g *Generator) BookingsForDay(day time.Time, staffID int64, customerIDs []int64, treatments []*domain.Treatment) []*domain.Booking {
	count := 4 + g.rng.Intn(5)
	bookings := make([]*domain.Booking, 0, count)

	for i := 0; i < count; i++ {
		treatment := treatments[g.rng.Intn(len(treatments))]
		if !treatment.Active {
			continue
		}

		// Старты кучкуются с шагом 30 минут в рабочем окне 9:00-18:00
		startMinutes := domain.DefaultStartHour*60 + 30*g.rng.Intn(18)
		start, err := types.NewTimeStringFromMinutes(startMinutes)
		if err != nil {
			continue
		}
		end, err := start.AddMinutes(treatment.DurationMinutes)
		if err != nil {
			continue
		}

		status := domain.StatusConfirmed
		if g.rng.Intn(10) == 0 {
			status = domain.StatusPending
		}

		bookings = append(bookings, &domain.Booking{
			CustomerID:      customerIDs[g.rng.Intn(len(customerIDs))],
			StaffID:         staffID,
			TreatmentID:     treatment.ID,
			BookingDate:     day,
			StartTime:       start,
			EndTime:         end,
			DurationMinutes: treatment.DurationMinutes,
			Status:          status,
			TreatmentName:   treatment.Name,
			TreatmentPrice:  treatment.Price,
		})
	}

	return bookings
}

// translit упрощенная транслитерация имени для email
func translit(name string) string {
	table := map[rune]string{
		'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ж': "zh",
		'з': "z", 'и': "i", 'й': "y", 'к': "k", 'л': "l", 'м': "m", 'н': "n",
		'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u", 'ф': "f",
		'х': "h", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "sch", 'ъ': "", 'ы': "y",
		'ь': "", 'э': "e", 'ю': "yu", 'я': "ya",
	}

	out := make([]byte, 0, len(name))
	for _, r := range name {
		if r >= 'А' && r <= 'Я' {
			r = r - 'А' + 'а'
		}
		if lat, ok := table[r]; ok {
			out = append(out, lat...)
			continue
		}
		out = append(out, string(r)...)
	}
	return string(out)
}
