package worker

// email_worker.go
// Processes notification jobs from QueueNotificaciones and delivers them by
// SMTP through a circuit breaker, so a dead relay fast-fails instead of
// blocking the pool.

import (
	"context"
	"encoding/json"

	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/infra"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/service"

	"github.com/rs/zerolog/log"
)

// EmailWorker delivers queued notifications via SMTP.
type EmailWorker struct {
	mailer  *infra.Mailer
	breaker *infra.CircuitBreaker
}

// NewEmailWorker creates an EmailWorker with the provided SMTP mailer.
func NewEmailWorker(mailer *infra.Mailer, breaker *infra.CircuitBreaker) *EmailWorker {
	return &EmailWorker{mailer: mailer, breaker: breaker}
}

// Process sends one notification email.
func (w *EmailWorker) Process(_ context.Context, raw json.RawMessage) {
	var n service.Notificacion
	if err := json.Unmarshal(raw, &n); err != nil {
		log.Error().Err(err).Msg("email_worker: invalid payload")
		return
	}
	if n.Destinatario == "" {
		log.Warn().Msg("email_worker: empty destinatario — skipping")
		return
	}

	err := w.breaker.Execute(func() error {
		return w.mailer.Send(n.Destinatario, n.Asunto, n.Cuerpo)
	})
	if err != nil {
		log.Error().Err(err).Str("to", n.Destinatario).Msg("email_worker: failed to send email")
		return
	}
	log.Info().Str("to", n.Destinatario).Msg("email_worker: notificacion sent successfully")
}
