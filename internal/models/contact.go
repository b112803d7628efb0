package models

import "time"

// Contact — запись записной книжки. Phone хранится в каноническом виде +380XXXXXXXXX,
// Birthday — строкой в формате YYYY.MM.DD.
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Birthday  string    `json:"birthday"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// User возвращает контакт в виде пользователя для поиска дней рождения.
func (c Contact) User() User {
	return User{Name: c.Name, Birthday: c.Birthday}
}

// DummyContact используется для приёма контакта из JSON-запроса
// до нормализации телефона и проверки даты.
type DummyContact struct {
	Name     string `json:"name" validate:"required,singleline"`
	Birthday string `json:"birthday" validate:"required,dotdate"`
	Phone    string `json:"phone" validate:"required,singleline"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
}
