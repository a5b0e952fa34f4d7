package service

import "context"

// Notificacion is an outbound email handed to the background queue.
type Notificacion struct {
	Destinatario string `json:"destinatario"`
	Asunto       string `json:"asunto"`
	Cuerpo       string `json:"cuerpo"`
}

// Notificador enqueues notifications for asynchronous delivery. Enqueue
// failures never abort the business operation that triggered them.
type Notificador interface {
	Encolar(ctx context.Context, n Notificacion) error
}
