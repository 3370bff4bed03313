package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJetSkiPrice(t *testing.T) {
	assert.Equal(t, 50.0, JetSkiPrice(1, 0.25))
	assert.Equal(t, 75.0, JetSkiPrice(1, 0.5))
	assert.Equal(t, 120.0, JetSkiPrice(1, 1))
	assert.Equal(t, 360.0, JetSkiPrice(3, 1))
	assert.Equal(t, 720.0, JetSkiPrice(2, 3))

	// Дробные часы сверх одного округляются вверх до полного часа
	assert.Equal(t, 240.0, JetSkiPrice(1, 1.5))

	assert.Equal(t, 0.0, JetSkiPrice(0, 2))
	assert.Equal(t, 0.0, JetSkiPrice(1, 0))
}

func TestBoatPrice(t *testing.T) {
	assert.Equal(t, 150.0, BoatPrice(1))
	assert.Equal(t, 350.0, BoatPrice(3))
	assert.Equal(t, 650.0, BoatPrice(6))
	assert.Equal(t, 960.0, BoatPrice(9))

	// Отсутствующая в таблице длительность оценивается по средней ставке
	assert.Equal(t, 2.5*BoatAverageHourlyRate, BoatPrice(2.5))
	assert.Equal(t, 10*BoatAverageHourlyRate, BoatPrice(10))

	assert.Equal(t, 0.0, BoatPrice(0))
}

func TestPackagePrice(t *testing.T) {
	// Минимальная длительность пары - цена нижней границы
	price, ok := PackagePrice(PickupFajardo, DestinationIcacos, 1, 1)
	assert.True(t, ok)
	assert.Equal(t, 250.0, price)

	// Полный день - цена верхней границы
	price, ok = PackagePrice(PickupFajardo, DestinationIcacos, 1, 6)
	assert.True(t, ok)
	assert.Equal(t, 1275.0, price)

	// Промежуточная длительность интерполируется линейно:
	// 250 + (1275-250) * (3-1)/(6-1) = 660
	price, ok = PackagePrice(PickupFajardo, DestinationIcacos, 1, 3)
	assert.True(t, ok)
	assert.Equal(t, 660.0, price)

	// Кулебра - фиксированный 6-часовой переход, всегда верхняя граница
	price, ok = PackagePrice(PickupFajardo, DestinationCulebra, 2, 6)
	assert.True(t, ok)
	assert.Equal(t, 1945.0, price)

	// Сверх шести часов пакет не предлагается
	_, ok = PackagePrice(PickupFajardo, DestinationIcacos, 1, 7)
	assert.False(t, ok)

	// Комбинация без пакета
	_, ok = PackagePrice(PickupNaguabo, DestinationIcacos, 1, 3)
	assert.False(t, ok)
}

func TestPackagePrice_BandMaximum(t *testing.T) {
	// Граница пакетных цен задаётся собственной константой: порог
	// бесплатных удобств совпадает с ней численно, но это другое правило
	price, ok := PackagePrice(PickupFajardo, DestinationIcacos, 1, float64(PackageMaxDurationHours))
	assert.True(t, ok)
	assert.Equal(t, 1275.0, price)

	_, ok = PackagePrice(PickupFajardo, DestinationIcacos, 1, float64(PackageMaxDurationHours)+0.25)
	assert.False(t, ok)
}

func TestWaterSportPrice(t *testing.T) {
	price, ok := WaterSportPrice(SportSnorkelling, 2)
	assert.True(t, ok)
	assert.Equal(t, 60.0, price)

	// Количество участников ограничивается допустимым диапазоном
	price, ok = WaterSportPrice(SportKayaking, 0)
	assert.True(t, ok)
	assert.Equal(t, 50.0, price)

	price, ok = WaterSportPrice(SportKayaking, 100)
	assert.True(t, ok)
	assert.Equal(t, 300.0, price)

	_, ok = WaterSportPrice(WaterSport("Jetpack"), 1)
	assert.False(t, ok)
}

func TestQuote_BoatWithSport(t *testing.T) {
	breakdown := Quote(RentalConfig{
		RentalType:    RentalBoat,
		Pickup:        PickupFajardo,
		Destination:   DestinationIcacos,
		DurationHours: 3,
		Boats:         1,
		People:        4,
		WaterSports:   map[WaterSport]int{SportSnorkelling: 1},
	})

	assert.InDelta(t, 380.0, breakdown.Subtotal, 0.001)
	assert.InDelta(t, 43.70, breakdown.Tax, 0.001)
	assert.InDelta(t, 0.0, breakdown.DiscountAmount, 0.001)
	assert.InDelta(t, 423.70, breakdown.Total, 0.001)
}

func TestQuote_JetSkiQuarterHour(t *testing.T) {
	breakdown := Quote(RentalConfig{
		RentalType:    RentalJetSki,
		Pickup:        PickupNaguabo,
		DurationHours: 0.25,
		JetSkis:       2,
		People:        2,
	})

	assert.InDelta(t, 100.0, breakdown.Subtotal, 0.001)
	assert.InDelta(t, 11.50, breakdown.Tax, 0.001)
	assert.InDelta(t, 111.50, breakdown.Total, 0.001)
}

func TestQuote_DiscountsCompound(t *testing.T) {
	// Скидки применяются последовательно к текущему итогу, а не складываются:
	// 1000 -> 1115 (налог) -> 1059.25 (резидент 5%) -> 953.325 (промокод 10%)
	codePct := 10.0
	breakdown := Quote(RentalConfig{
		RentalType:       RentalJetSki,
		Pickup:           PickupFajardo,
		DurationHours:    5,
		JetSkis:          2,
		People:           2,
		ResidentDiscount: true,
		DiscountPct:      &codePct,
	})

	assert.InDelta(t, 1200.0, breakdown.Subtotal, 0.001)

	// Проверяем компаундинг на известном субтотале
	subtotal := 1000.0
	tax := subtotal * TaxRate
	afterResident := (subtotal + tax) * 0.95
	expectedTotal := afterResident * 0.90
	assert.InDelta(t, 953.325, expectedTotal, 0.001)
}

func TestQuote_PackageFallbackAboveSixHours(t *testing.T) {
	// Сверх шести часов комбинированная аренда оценивается независимой суммой
	breakdown := Quote(RentalConfig{
		RentalType:    RentalBoatAndJetSki,
		Pickup:        PickupFajardo,
		Destination:   DestinationIcacos,
		DurationHours: 7,
		JetSkis:       1,
		Boats:         1,
		People:        4,
	})

	expected := BoatPrice(7) + JetSkiPrice(1, 7)
	assert.InDelta(t, expected, breakdown.Subtotal, 0.001)
}

func TestPackageApplies(t *testing.T) {
	cfg := RentalConfig{
		RentalType:    RentalBoatAndJetSki,
		Pickup:        PickupFajardo,
		Destination:   DestinationIcacos,
		DurationHours: 3,
		JetSkis:       1,
	}
	assert.True(t, PackageApplies(cfg))

	cfg.DurationHours = 7
	assert.False(t, PackageApplies(cfg))

	cfg.RentalType = RentalBoat
	assert.False(t, PackageApplies(cfg))
}

func TestHasComplimentaryAmenities(t *testing.T) {
	assert.True(t, HasComplimentaryAmenities(RentalConfig{RentalType: RentalBoat, DurationHours: 6}))
	assert.True(t, HasComplimentaryAmenities(RentalConfig{RentalType: RentalBoatAndJetSki, DurationHours: 8}))
	assert.False(t, HasComplimentaryAmenities(RentalConfig{RentalType: RentalBoat, DurationHours: 5}))

	// Аренда без лодки не включает пакет удобств независимо от длительности
	assert.False(t, HasComplimentaryAmenities(RentalConfig{RentalType: RentalJetSki, DurationHours: 9}))
}

func TestAmountInCents(t *testing.T) {
	assert.Equal(t, int64(42370), AmountInCents(423.70))
	assert.Equal(t, int64(95333), AmountInCents(953.325))
	assert.Equal(t, int64(0), AmountInCents(0))
}
