package activity

import (
	"go.uber.org/zap"
)

// Event es una acción del usuario que queremos en el log local:
// cita creada, cita cancelada, favorito añadido, etc.
type Event struct {
	Action   string
	Entity   string
	EntityID int
	Metadata any
}

// Dispatcher registra eventos fuera del camino caliente de la UI.
type Dispatcher struct {
	log   *zap.Logger
	queue chan Event
	done  chan struct{}
}

func NewDispatcher(log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		log:   log,
		queue: make(chan Event, 100), // buffer seguro
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		d.log.Info("activity",
			zap.String("action", ev.Action),
			zap.String("entity", ev.Entity),
			zap.Int("entity_id", ev.EntityID),
			zap.Any("metadata", ev.Metadata),
		)
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// enviado
	default:
		// cola llena → descartamos el evento (nunca frenar la UI)
		d.log.Warn("activity queue llena, evento descartado",
			zap.String("action", ev.Action),
		)
	}
}

// Close drena la cola pendiente antes de salir.
func (d *Dispatcher) Close() {
	close(d.queue)
	<-d.done
}
