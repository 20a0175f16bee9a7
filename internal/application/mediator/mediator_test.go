package mediator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/mediator"
)

type pingRequest struct {
	Msg string
}

type pongResponse struct {
	Msg string
}

// Caso 1: una petición registrada se despacha a su único handler.
func TestSend_DespachaAlHandlerRegistrado(t *testing.T) {
	m := mediator.New()
	mediator.Register(m, func(ctx context.Context, req pingRequest) (pongResponse, error) {
		return pongResponse{Msg: req.Msg + " pong"}, nil
	})

	out, err := mediator.Send[pongResponse](context.Background(), m, pingRequest{Msg: "ping"})
	require.NoError(t, err)
	assert.Equal(t, "ping pong", out.Msg)
}

// Caso 2: una petición sin handler devuelve ErrNoHandler.
func TestSend_SinHandlerRegistrado(t *testing.T) {
	m := mediator.New()

	_, err := m.Send(context.Background(), pingRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, mediator.ErrNoHandler)
}

// Caso 3: los validadores corren antes que el handler y cortocircuitan;
// el handler no debe ejecutarse si hay violaciones.
func TestSend_ValidacionCortocircuita(t *testing.T) {
	m := mediator.New()
	handlerCalls := 0
	mediator.Register(m, func(ctx context.Context, req pingRequest) (pongResponse, error) {
		handlerCalls++
		return pongResponse{}, nil
	})
	mediator.Validate(m, func(req pingRequest) []mediator.Violation {
		if req.Msg == "" {
			return []mediator.Violation{{Field: "msg", Message: "es requerido"}}
		}
		return nil
	})

	_, err := m.Send(context.Background(), pingRequest{})
	require.Error(t, err)

	var vErr *mediator.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Len(t, vErr.Violations, 1)
	assert.Equal(t, "msg", vErr.Violations[0].Field)
	assert.Zero(t, handlerCalls, "el handler no debe invocarse con violaciones")
}

// Caso 4: varios validadores acumulan violaciones.
func TestSend_AcumulaViolacionesDeVariosValidadores(t *testing.T) {
	m := mediator.New()
	mediator.Register(m, func(ctx context.Context, req pingRequest) (pongResponse, error) {
		return pongResponse{}, nil
	})
	mediator.Validate(m, func(req pingRequest) []mediator.Violation {
		return []mediator.Violation{{Field: "a", Message: "regla a"}}
	})
	mediator.Validate(m, func(req pingRequest) []mediator.Violation {
		return []mediator.Violation{{Field: "b", Message: "regla b"}}
	})

	_, err := m.Send(context.Background(), pingRequest{Msg: "x"})
	var vErr *mediator.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Violations, 2)
}

// Caso 5: registrar dos handlers para el mismo tipo es un error de cableado.
func TestRegister_DuplicadoProvocaPanic(t *testing.T) {
	m := mediator.New()
	mediator.Register(m, func(ctx context.Context, req pingRequest) (pongResponse, error) {
		return pongResponse{}, nil
	})

	assert.Panics(t, func() {
		mediator.Register(m, func(ctx context.Context, req pingRequest) (pongResponse, error) {
			return pongResponse{}, nil
		})
	})
}

// Caso 6: el error del handler se propaga tipado hasta el llamador.
func TestSend_PropagaErrorDelHandler(t *testing.T) {
	m := mediator.New()
	sentinel := errors.New("falla del handler")
	mediator.Register(m, func(ctx context.Context, req pingRequest) (pongResponse, error) {
		return pongResponse{}, sentinel
	})

	_, err := mediator.Send[pongResponse](context.Background(), m, pingRequest{Msg: "x"})
	assert.ErrorIs(t, err, sentinel)
}
