package entity_test

import (
	"testing"

	"artisan-market/internal/data/entity"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_ForwardStepsAllowed(t *testing.T) {
	steps := []struct {
		from entity.OrderStatus
		to   entity.OrderStatus
	}{
		{entity.OrderStatusPending, entity.OrderStatusProcessing},
		{entity.OrderStatusProcessing, entity.OrderStatusShipped},
		{entity.OrderStatusShipped, entity.OrderStatusDelivered},
	}

	for _, step := range steps {
		assert.True(t, step.from.CanTransitionTo(step.to),
			"%s -> %s should be allowed", step.from, step.to)
	}
}

func TestOrderStatus_SkippingAndBackwardRejected(t *testing.T) {
	cases := []struct {
		from entity.OrderStatus
		to   entity.OrderStatus
	}{
		{entity.OrderStatusPending, entity.OrderStatusShipped},
		{entity.OrderStatusPending, entity.OrderStatusDelivered},
		{entity.OrderStatusProcessing, entity.OrderStatusDelivered},
		{entity.OrderStatusShipped, entity.OrderStatusProcessing},
		{entity.OrderStatusDelivered, entity.OrderStatusShipped},
		{entity.OrderStatusProcessing, entity.OrderStatusPending},
	}

	for _, c := range cases {
		assert.False(t, c.from.CanTransitionTo(c.to),
			"%s -> %s should be rejected", c.from, c.to)
	}
}

func TestOrderStatus_NoOpRejected(t *testing.T) {
	for _, s := range []entity.OrderStatus{
		entity.OrderStatusPending,
		entity.OrderStatusProcessing,
		entity.OrderStatusShipped,
	} {
		assert.False(t, s.CanTransitionTo(s), "%s -> %s should be rejected", s, s)
	}
}

func TestOrderStatus_CancellableUntilTerminal(t *testing.T) {
	assert.True(t, entity.OrderStatusPending.CanTransitionTo(entity.OrderStatusCancelled))
	assert.True(t, entity.OrderStatusProcessing.CanTransitionTo(entity.OrderStatusCancelled))
	assert.True(t, entity.OrderStatusShipped.CanTransitionTo(entity.OrderStatusCancelled))

	assert.False(t, entity.OrderStatusDelivered.CanTransitionTo(entity.OrderStatusCancelled))
	assert.False(t, entity.OrderStatusCancelled.CanTransitionTo(entity.OrderStatusCancelled))
}

func TestOrderStatus_TerminalStatesFrozen(t *testing.T) {
	all := []entity.OrderStatus{
		entity.OrderStatusPending,
		entity.OrderStatusProcessing,
		entity.OrderStatusShipped,
		entity.OrderStatusDelivered,
		entity.OrderStatusCancelled,
	}

	for _, terminal := range []entity.OrderStatus{entity.OrderStatusDelivered, entity.OrderStatusCancelled} {
		assert.True(t, terminal.IsTerminal())
		for _, next := range all {
			assert.False(t, terminal.CanTransitionTo(next),
				"%s -> %s should be rejected", terminal, next)
		}
	}
}

func TestValidOrderStatus(t *testing.T) {
	assert.True(t, entity.ValidOrderStatus("pending"))
	assert.True(t, entity.ValidOrderStatus("cancelled"))
	assert.False(t, entity.ValidOrderStatus("returned"))
	assert.False(t, entity.ValidOrderStatus(""))
}
