package visitor

import (
	"context"
	"errors"
	"strings"
	"sync"

	"ciao/internal/i18n"
)

type Mode int

const (
	ModeCheckIn Mode = iota
	ModeCheckOut
)

func (m Mode) String() string {
	if m == ModeCheckOut {
		return "checkout"
	}
	return "checkin"
}

// ParseMode принимает "checkin" и "checkout".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.ReplaceAll(s, "-", "")) {
	case "checkin", "in":
		return ModeCheckIn, nil
	case "checkout", "out":
		return ModeCheckOut, nil
	}
	return ModeCheckIn, errors.New("mode must be checkin or checkout")
}

// Result - итог одного принятого скана.
type Result struct {
	Mode   Mode
	Record Record
	Err    error
}

// Translator переводит ключи сообщений.
type Translator interface {
	T(key string) string
}

// Alert возвращает заголовок и текст сообщения для оператора.
func (r Result) Alert(t Translator) (title, body string) {
	switch {
	case r.Err == nil && r.Mode == ModeCheckOut:
		return t.T(i18n.Success), t.T(i18n.CheckedOut) + "\n" + r.Record.FullName() + "\n" + r.Record.PhoneNumber
	case r.Err == nil:
		return t.T(i18n.Success), t.T(i18n.DataRead) + "\n" +
			r.Record.FullName() + ", " + r.Record.Address() + "\n" + r.Record.PhoneNumber
	case errors.Is(r.Err, ErrInvalidFormat):
		return t.T(i18n.Error), t.T(i18n.InvalidFormat)
	case errors.Is(r.Err, ErrIncompleteData):
		return t.T(i18n.Error), t.T(i18n.DataIncompleteInvalid)
	case errors.Is(r.Err, ErrNoMatchingCheckIn):
		return t.T(i18n.Error), t.T(i18n.NoMatchingCheckIn)
	default:
		return t.T(i18n.Error), r.Err.Error()
	}
}

// Station охраняет экран сканирования: до подтверждения сообщения оператором
// обрабатывается не больше одного скана, остальные отбрасываются.
type Station struct {
	service Servicer
	mode    Mode

	mu      sync.Mutex
	enabled bool
}

func NewStation(service Servicer, mode Mode) *Station {
	return &Station{
		service: service,
		mode:    mode,
		enabled: true,
	}
}

func (st *Station) Mode() Mode {
	return st.mode
}

// Handle обрабатывает raw, если станция включена. false - скан отброшен.
func (st *Station) Handle(ctx context.Context, raw string) (Result, bool) {
	st.mu.Lock()
	if !st.enabled {
		st.mu.Unlock()
		return Result{}, false
	}
	st.enabled = false
	st.mu.Unlock()

	res := Result{Mode: st.mode}
	if st.mode == ModeCheckOut {
		res.Record, res.Err = st.service.CheckOut(ctx, raw)
	} else {
		res.Record, res.Err = st.service.CheckIn(ctx, raw)
	}
	return res, true
}

// Acknowledge снова включает сканирование после закрытия сообщения.
func (st *Station) Acknowledge() {
	st.setEnabled(true)
}

// Focus включает сканирование, когда экран становится активным.
func (st *Station) Focus() {
	st.setEnabled(true)
}

// Blur выключает сканирование при потере фокуса. Текущий скан завершается.
func (st *Station) Blur() {
	st.setEnabled(false)
}

func (st *Station) Enabled() bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.enabled
}

func (st *Station) setEnabled(v bool) {
	st.mu.Lock()
	st.enabled = v
	st.mu.Unlock()
}
