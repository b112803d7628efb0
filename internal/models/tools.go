package models

import "encoding/json"

// DaysRequest — запрос на подсчёт дней от даты до сегодняшнего дня.
// Today необязателен, формат YYYY-MM-DD.
type DaysRequest struct {
	Date  string `json:"date" validate:"required"`
	Today string `json:"today,omitempty"`
}

// TicketRequest — запрос на розыгрыш билета. Числа принимаются как json.Number,
// чтобы дробные значения превращались в пустой билет, а не в ошибку разбора.
type TicketRequest struct {
	Min      json.Number `json:"min"`
	Max      json.Number `json:"max"`
	Quantity json.Number `json:"quantity"`
}

// PhoneRequest — запрос на нормализацию номера телефона.
type PhoneRequest struct {
	Phone string `json:"phone"`
}

// BirthdaysRequest — запрос на поиск ближайших дней рождения.
// Today необязателен, формат YYYY.MM.DD.
type BirthdaysRequest struct {
	Users []User `json:"users"`
	Today string `json:"today,omitempty"`
}
