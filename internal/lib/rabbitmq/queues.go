package rabbitmq

const (
	// Exchange — direct-обменник, в который публикуются напоминания.
	Exchange = "notifications"
	// BirthdayQueue — очередь напоминаний о днях рождения.
	BirthdayQueue = "notification.birthday"
	// BirthdayRoutingKey — ключ маршрутизации напоминаний о днях рождения.
	BirthdayRoutingKey = "birthday"
)

// QueueConfig описывает очередь и ключ, которым она привязана к Exchange.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// GetNotificationQueues возвращает очереди, которые нужно объявить при старте воркеров.
func GetNotificationQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: BirthdayQueue, RoutingKey: BirthdayRoutingKey},
	}
}
