package workorder

type Status string

const (
	StatusProgramado Status = "programado"
	StatusPendiente  Status = "pendiente"
	StatusRevision   Status = "revision"
	StatusAprobado   Status = "aprobado"
	StatusDenegado   Status = "denegado"
	StatusCompletado Status = "completado"
	StatusExpirado   Status = "expirado"
)

// statusNew stands for an order that does not exist yet.
const statusNew Status = ""

var transitions = map[Status][]Status{
	statusNew:        {StatusProgramado, StatusPendiente},
	StatusProgramado: {StatusPendiente, StatusExpirado},
	StatusPendiente:  {StatusDenegado, StatusRevision, StatusAprobado, StatusExpirado},
	StatusRevision:   {StatusPendiente, StatusExpirado},
	StatusAprobado:   {StatusCompletado, StatusExpirado},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusProgramado, StatusPendiente, StatusRevision, StatusAprobado,
		StatusDenegado, StatusCompletado, StatusExpirado:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	switch s {
	case StatusDenegado, StatusCompletado, StatusExpirado:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether next is a legal edge out of s.
func (s Status) CanTransitionTo(next Status) bool {
	for _, candidate := range transitions[s] {
		if candidate == next {
			return true
		}
	}
	return false
}

// HoldsReservation reports whether an order in this status keeps its
// requested parts reserved in inventory.
func (s Status) HoldsReservation() bool {
	return s == StatusPendiente || s == StatusAprobado
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// NonTerminalStatuses lists every status an order can still leave.
func NonTerminalStatuses() []Status {
	return []Status{StatusProgramado, StatusPendiente, StatusRevision, StatusAprobado}
}

type Kind string

const (
	KindPreventivo Kind = "preventivo"
	KindCorrectivo Kind = "correctivo"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	return k == KindPreventivo || k == KindCorrectivo
}

func NewKind(s string) (Kind, error) {
	kind := Kind(s)
	if !kind.IsValid() {
		return "", ErrInvalidKind
	}
	return kind, nil
}
