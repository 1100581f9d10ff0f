package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// LeadPayload é o lead cru que trafega na fila de ingestão.
// Upload em massa e CRM sync publicam aqui; o worker enriquece e persiste.
type LeadPayload struct {
	CompanyName     string  `json:"company_name"`
	Email           string  `json:"email,omitempty"`
	JobRole         string  `json:"job_role,omitempty"`
	QuoteValue      float64 `json:"quote_value"`
	ItemCount       int     `json:"item_count"`
	ConversionDays  int     `json:"conversion_days"`
	PastEngagements int     `json:"past_engagements"`
	Source          string  `json:"source,omitempty"` // "upload", "crm"
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{Conn: conn, Ch: ch}
}

func (p *RabbitMQProducer) PublishLead(ctx context.Context, payload LeadPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao converter payload: %v", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent, // Mensagem salva no disco
		},
	)

	if err != nil {
		return fmt.Errorf("falha ao publicar no RabbitMQ: %w", err)
	}

	return nil
}
