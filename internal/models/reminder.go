package models

// Reminder — сообщение о ближайшем дне рождения, которое планировщик
// публикует в брокер, а sender превращает в письмо.
type Reminder struct {
	ContactID          string `json:"contact_id"`
	Name               string `json:"name"`
	CongratulationDate string `json:"congratulation_date"`
	Phone              string `json:"phone"`
	Email              string `json:"email,omitempty"`
	DaysLeft           int    `json:"days_left"`
}
