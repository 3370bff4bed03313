package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caribeazul/CAB-BookingService/pkg/types"
)

// 2026-03-02 понедельник, 2026-03-06 пятница, 2026-03-08 воскресенье
var (
	monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	friday = time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)
	sunday = time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
)

func TestDayTypeFor(t *testing.T) {
	assert.Equal(t, DayTypeMonThu, DayTypeFor(monday))

	// Пятница относится к выходному расписанию
	assert.Equal(t, DayTypeFriSun, DayTypeFor(friday))
	assert.Equal(t, DayTypeFriSun, DayTypeFor(sunday))
}

func TestClosingMinutes(t *testing.T) {
	assert.Equal(t, 17*60, ClosingMinutes(monday))
	assert.Equal(t, 18*60, ClosingMinutes(friday))
}

func TestJetSkiDurations(t *testing.T) {
	fajardo := JetSkiDurations(PickupFajardo)
	require.NotEmpty(t, fajardo)
	assert.Equal(t, 0.25, fajardo[0])
	assert.Equal(t, 0.5, fajardo[1])
	assert.Equal(t, 1.0, fajardo[2])
	assert.Equal(t, 9.0, fajardo[len(fajardo)-1])

	// В Лукильо нет 15-минутной аренды
	luquillo := JetSkiDurations(PickupLuquillo)
	require.NotEmpty(t, luquillo)
	assert.Equal(t, 0.5, luquillo[0])

	// В Сан-Хуане гидроциклы не предлагаются
	assert.Empty(t, JetSkiDurations(PickupSanJuan))
}

func TestBoatDurations(t *testing.T) {
	// Из Сан-Хуана до Икакоса минимум 3 часа
	sanJuan := BoatDurations(PickupSanJuan, DestinationIcacos)
	assert.Equal(t, []float64{3, 4, 5, 6, 7, 8, 9}, sanJuan)

	// Из Фахардо до Икакоса минимум 1 час
	fajardo := BoatDurations(PickupFajardo, DestinationIcacos)
	assert.Len(t, fajardo, 9)
	assert.Equal(t, 1.0, fajardo[0])

	// Кулебра - только от 6 часов
	culebra := BoatDurations(PickupFajardo, DestinationCulebra)
	assert.Equal(t, []float64{6, 7, 8, 9}, culebra)
}

func TestAvailableDurations(t *testing.T) {
	// Комбинированная аренда следует правилам лодки
	combined := AvailableDurations(RentalBoatAndJetSki, PickupFajardo, DestinationCulebra)
	assert.Equal(t, []float64{6, 7, 8, 9}, combined)

	jetSki := AvailableDurations(RentalJetSki, PickupFajardo, "")
	assert.Contains(t, jetSki, 0.25)
}

func TestDurationAvailable(t *testing.T) {
	assert.True(t, DurationAvailable(RentalBoat, PickupSanJuan, DestinationIcacos, 3))
	assert.False(t, DurationAvailable(RentalBoat, PickupSanJuan, DestinationIcacos, 2))
	assert.True(t, DurationAvailable(RentalJetSki, PickupFajardo, "", 0.25))
	assert.False(t, DurationAvailable(RentalJetSki, PickupLuquillo, "", 0.25))
}

func TestAvailableStartTimes(t *testing.T) {
	// Понедельник, 8 часов: единственный старт, при котором аренда
	// завершается к закрытию в 17:00
	starts := AvailableStartTimes(monday, 8)
	assert.Equal(t, []types.TimeString{"09:00"}, starts)

	// Пятница закрывается в 18:00 - помещаются два старта
	starts = AvailableStartTimes(friday, 8)
	assert.Equal(t, []types.TimeString{"09:00", "09:15", "09:30", "09:45", "10:00"}, starts)

	// Часовая аренда в понедельник: шаг 15 минут от 09:00 до 16:00
	starts = AvailableStartTimes(monday, 1)
	require.NotEmpty(t, starts)
	assert.Equal(t, types.TimeString("09:00"), starts[0])
	assert.Equal(t, types.TimeString("16:00"), starts[len(starts)-1])
	assert.Len(t, starts, 29)

	// Девять часов не помещаются в будний день вовсе
	assert.Empty(t, AvailableStartTimes(monday, 9))
}

func TestStartTimeLegal(t *testing.T) {
	assert.True(t, StartTimeLegal(monday, "09:00", 8))
	assert.False(t, StartTimeLegal(monday, "09:15", 8))
	assert.True(t, StartTimeLegal(friday, "10:00", 8))

	// До открытия стартовать нельзя
	assert.False(t, StartTimeLegal(monday, "08:45", 1))

	assert.False(t, StartTimeLegal(monday, "bad", 1))
}
