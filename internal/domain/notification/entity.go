package notification

import (
	"fmt"
	"time"

	"fleet-workflow/internal/domain/workorder"
	"fleet-workflow/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidChannel = errs.Validation("invalid notification channel")

// Channel is the audience of a notification, one per role.
type Channel string

const (
	ChannelAdmin   Channel = "admin"
	ChannelTecnico Channel = "tecnico"
)

func (c Channel) String() string {
	return string(c)
}

func (c Channel) IsValid() bool {
	return c == ChannelAdmin || c == ChannelTecnico
}

func NewChannel(s string) (Channel, error) {
	c := Channel(s)
	if !c.IsValid() {
		return "", ErrInvalidChannel
	}
	return c, nil
}

const TypeMaintenance = "mantenimiento"

type Notification struct {
	id        uuid.UUID
	channel   Channel
	kind      string
	subjectID uuid.UUID
	title     string
	body      string
	createdAt time.Time
	read      bool
}

type template struct {
	channel Channel
	title   string
	body    string
}

var templates = map[workorder.Status]template{
	workorder.StatusProgramado: {ChannelAdmin, "Mantenimiento programado", "Se ha programado un mantenimiento para el vehículo con placa %s"},
	workorder.StatusPendiente:  {ChannelAdmin, "Mantenimiento Registrado", "Se ha registrado un mantenimiento para el vehículo con placa %s"},
	workorder.StatusRevision:   {ChannelTecnico, "Mantenimiento en Revisión", "Se han solicitado correcciones en el mantenimiento a realizar al vehículo con placa %s"},
	workorder.StatusDenegado:   {ChannelTecnico, "Mantenimiento Denegado", "Se ha denegado el mantenimiento para el vehículo con placa %s"},
	workorder.StatusAprobado:   {ChannelTecnico, "Mantenimiento Aprobado", "Se ha aprobado el mantenimiento para el vehículo con placa %s"},
	workorder.StatusCompletado: {ChannelAdmin, "Mantenimiento Completado", "Se ha completado el mantenimiento para el vehículo con placa %s"},
	workorder.StatusExpirado:   {ChannelAdmin, "Mantenimiento Expirado", "Ha expirado el mantenimiento para el vehículo con placa %s"},
}

// ForTransition builds the notification announcing that an order reached status.
func ForTransition(orderID uuid.UUID, plate string, status workorder.Status, now time.Time) (*Notification, error) {
	tpl, ok := templates[status]
	if !ok {
		return nil, errs.Wrapf(workorder.ErrInvalidStatus, "no notification for status %q", status)
	}
	return &Notification{
		id:        uuid.New(),
		channel:   tpl.channel,
		kind:      TypeMaintenance,
		subjectID: orderID,
		title:     tpl.title,
		body:      fmt.Sprintf(tpl.body, plate),
		createdAt: now,
	}, nil
}

func Reconstruct(id uuid.UUID, channel Channel, kind string, subjectID uuid.UUID, title, body string, createdAt time.Time, read bool) *Notification {
	return &Notification{
		id:        id,
		channel:   channel,
		kind:      kind,
		subjectID: subjectID,
		title:     title,
		body:      body,
		createdAt: createdAt,
		read:      read,
	}
}

func (n *Notification) ID() uuid.UUID        { return n.id }
func (n *Notification) Channel() Channel     { return n.channel }
func (n *Notification) Kind() string         { return n.kind }
func (n *Notification) SubjectID() uuid.UUID { return n.subjectID }
func (n *Notification) Title() string        { return n.title }
func (n *Notification) Body() string         { return n.body }
func (n *Notification) CreatedAt() time.Time { return n.createdAt }
func (n *Notification) Read() bool           { return n.read }
