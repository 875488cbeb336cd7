package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCanTransitionTo(t *testing.T) {
	t.Parallel()

	allowed := map[Status]Status{
		StatusDraft:     StatusPending,
		StatusPending:   StatusProcessed,
		StatusProcessed: StatusPaid,
	}
	all := []Status{StatusDraft, StatusPending, StatusProcessed, StatusPaid}

	for _, from := range all {
		for _, to := range all {
			want := allowed[from] == to
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestStatusPaidIsTerminal(t *testing.T) {
	t.Parallel()

	for _, to := range []Status{StatusDraft, StatusPending, StatusProcessed, StatusPaid} {
		assert.False(t, StatusPaid.CanTransitionTo(to))
	}
}

func TestStatusNoBackwardTransitions(t *testing.T) {
	t.Parallel()

	assert.False(t, StatusPending.CanTransitionTo(StatusDraft))
	assert.False(t, StatusProcessed.CanTransitionTo(StatusPending))
	assert.False(t, StatusProcessed.CanTransitionTo(StatusDraft))
}
