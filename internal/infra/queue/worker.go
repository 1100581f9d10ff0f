package queue

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/coresales/internal/entity"
)

// LeadEnricher roda o pipeline de segmentação em cima do lead consumido.
type LeadEnricher interface {
	Execute(ctx context.Context, lead *entity.Lead) error
}

// Worker consome a fila de ingestão: enriquece o lead e faz o upsert.
type Worker struct {
	Channel  *amqp.Channel
	Enricher LeadEnricher
	LeadRepo entity.LeadRepositoryInterface
}

func NewWorker(ch *amqp.Channel, enricher LeadEnricher, leadRepo entity.LeadRepositoryInterface) *Worker {
	return &Worker{
		Channel:  ch,
		Enricher: enricher,
		LeadRepo: leadRepo,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName, // fila
		"",        // consumer
		false,     // auto-ack (manual é mais seguro)
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		log.Fatalf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload LeadPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] JSON inválido: %s", err)
				// Mensagem podre (malformada). Rejeita sem requeue.
				d.Nack(false, false)
				continue
			}

			if err := w.processLead(context.Background(), payload); err != nil {
				log.Printf("❌ [WORKER] Erro processando lead %s: %s", payload.CompanyName, err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker de ingestão rodando na fila '%s'", queueName)
	<-forever
}

func (w *Worker) processLead(ctx context.Context, payload LeadPayload) error {
	email := payload.Email
	if email == "" && payload.CompanyName != "" {
		// Mesma convenção do ingest por CSV: sintetiza um contato
		clean := strings.ToLower(strings.ReplaceAll(payload.CompanyName, " ", ""))
		email = "contact@" + clean + ".com"
	}

	lead := &entity.Lead{
		Email:           email,
		CompanyName:     payload.CompanyName,
		JobRole:         entity.JobRole(payload.JobRole),
		QuoteValue:      payload.QuoteValue,
		ItemCount:       payload.ItemCount,
		ConversionDays:  payload.ConversionDays,
		PastEngagements: payload.PastEngagements,
	}

	if err := w.Enricher.Execute(ctx, lead); err != nil {
		return err
	}

	if err := w.LeadRepo.Upsert(ctx, lead); err != nil {
		return err
	}

	log.Printf("✅ [WORKER] Lead %s segmentado como %s (score %.2f)", lead.CompanyName, lead.Segment, lead.LeadScore)
	return nil
}
