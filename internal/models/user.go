// Package models содержит доменные структуры ассистента: пользователей с днями рождения,
// контакты записной книжки, поздравления и сообщения-напоминания,
// а также структуры для приёма данных из JSON-запросов.
package models

// User описывает человека, для которого проверяется ближайший день рождения.
// Дата рождения хранится строкой в формате YYYY.MM.DD.
type User struct {
	Name     string `json:"name"`
	Birthday string `json:"birthday"`
}

// Congratulation — пользователь, попавший в окно ближайших дней рождения.
// CongratulationDate совпадает с исходной строкой дня рождения.
type Congratulation struct {
	Name               string `json:"name"`
	CongratulationDate string `json:"congratulation_date"`
}
