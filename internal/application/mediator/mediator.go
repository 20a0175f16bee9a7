package mediator

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrNoHandler no existe handler registrado para el tipo de petición.
var ErrNoHandler = errors.New("no hay handler registrado para la petición")

// Violation incumplimiento de una regla de validación sobre un campo.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError agrupa las violaciones de un comando; se devuelve antes de
// invocar el handler, por lo que ningún efecto llega al almacén.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return "validación fallida: " + strings.Join(parts, "; ")
}

// HandlerFunc handler sin tipar; usar Register para la variante tipada.
type HandlerFunc func(ctx context.Context, req any) (any, error)

// ValidatorFunc produce la lista de violaciones de una petición; vacía = válida.
type ValidatorFunc func(req any) []Violation

// Mediator enruta cada petición tipada a exactamente un handler, ejecutando
// antes sus validadores. El registro ocurre en el arranque; Send es seguro
// para uso concurrente una vez registrado todo.
type Mediator struct {
	handlers   map[reflect.Type]HandlerFunc
	validators map[reflect.Type][]ValidatorFunc
}

// New crea un mediador vacío.
func New() *Mediator {
	return &Mediator{
		handlers:   make(map[reflect.Type]HandlerFunc),
		validators: make(map[reflect.Type][]ValidatorFunc),
	}
}

// Send valida y despacha la petición. Si algún validador reporta violaciones
// devuelve *ValidationError sin invocar el handler; si el tipo no está
// registrado devuelve ErrNoHandler.
func (m *Mediator) Send(ctx context.Context, req any) (any, error) {
	t := reflect.TypeOf(req)
	h, ok := m.handlers[t]
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNoHandler, req)
	}
	var violations []Violation
	for _, v := range m.validators[t] {
		violations = append(violations, v(req)...)
	}
	if len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}
	return h(ctx, req)
}

// Register registra el único handler para el tipo Req. Registrar dos handlers
// para el mismo tipo es un error de cableado y provoca panic en el arranque.
func Register[Req any, Res any](m *Mediator, h func(ctx context.Context, req Req) (Res, error)) {
	t := reflect.TypeOf(*new(Req))
	if _, dup := m.handlers[t]; dup {
		panic(fmt.Sprintf("mediator: handler duplicado para %v", t))
	}
	m.handlers[t] = func(ctx context.Context, req any) (any, error) {
		return h(ctx, req.(Req))
	}
}

// Validate añade un validador para el tipo Req; se ejecutan en orden de registro.
func Validate[Req any](m *Mediator, v func(req Req) []Violation) {
	t := reflect.TypeOf(*new(Req))
	m.validators[t] = append(m.validators[t], func(req any) []Violation {
		return v(req.(Req))
	})
}

// Send variante tipada: despacha y convierte el resultado a Res.
func Send[Res any](ctx context.Context, m *Mediator, req any) (Res, error) {
	var zero Res
	out, err := m.Send(ctx, req)
	if err != nil {
		return zero, err
	}
	res, ok := out.(Res)
	if !ok {
		return zero, fmt.Errorf("mediator: el handler de %T devolvió %T, se esperaba %T", req, out, zero)
	}
	return res, nil
}
