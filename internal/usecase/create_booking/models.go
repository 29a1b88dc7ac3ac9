package create_booking

import (
	"time"

	"github.com/tourmp/TMP-ReservationService/internal/domain"
)

// Request модель запроса на создание бронирования.
// Даты уже распарсены HTTP-слоем; время суток не учитывается.
type Request struct {
	Resource        domain.ResourceRef  // бронируемый ресурс
	CheckIn         time.Time           // дата заезда
	CheckOut        time.Time           // дата выезда (не включается)
	Guests          domain.Guests       // Total пересчитывается, входное значение игнорируется
	GuestContact    domain.GuestContact // контакт гостя, все поля обязательны
	Pricing         domain.Pricing      // стоимость, посчитанная вызывающей стороной
	SpecialRequests *string             // пожелания гостя (опционально)
}
