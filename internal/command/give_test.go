package command

import (
	"testing"

	"github.com/dekarrin/quarry/internal/qerrors"
	"github.com/stretchr/testify/assert"
)

func giveDispatcher(t *testing.T) *Dispatcher {
	reg, err := NewRegistry([]Definition{GiveDefinition()})
	if err != nil {
		t.Fatalf("building registry: %v", err)
	}
	return NewDispatcher(reg, 0)
}

func Test_Give_addsToInventory(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		expectID    float64
		expectCount int
	}{
		{
			name:        "amount omitted defaults to 1",
			input:       "/give 5",
			expectID:    5,
			expectCount: 1,
		},
		{
			name:        "explicit amount",
			input:       "/give 5 3",
			expectID:    5,
			expectCount: 3,
		},
		{
			name:        "fractional block ID",
			input:       "/give 5.2 2",
			expectID:    5.2,
			expectCount: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			d := giveDispatcher(t)
			ctx := testContext()

			outcome, err := d.Execute(tc.input, ctx)

			assert.NoError(err)
			assert.True(outcome.WasHandled())
			_, hasValue := outcome.Value()
			assert.False(hasValue)
			assert.Equal(tc.expectCount, ctx.User.Inventory.Count(tc.expectID))
		})
	}
}

func Test_Give_rejectsBadArguments(t *testing.T) {
	testCases := []struct {
		name          string
		input         string
		expectMessage string
	}{
		{
			name:          "non-numeric block ID",
			input:         "/give abc",
			expectMessage: "should be a number",
		},
		{
			name:          "non-integer amount",
			input:         "/give 5 lots",
			expectMessage: "Amount must be an integer",
		},
		{
			name:          "block ID not in the catalog",
			input:         "/give 9999",
			expectMessage: "ID 9999 unknown.",
		},
		{
			name:          "zero amount",
			input:         "/give 5 0",
			expectMessage: "Amount must be at least 1.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			d := giveDispatcher(t)
			ctx := testContext()

			_, err := d.Execute(tc.input, ctx)

			assert.Error(err)
			assert.True(qerrors.IsCommand(err))
			assert.False(qerrors.IsUnknown(err))
			assert.Contains(qerrors.GameMessage(err), tc.expectMessage)
		})
	}
}

func Test_Give_accumulatesAcrossDispatches(t *testing.T) {
	assert := assert.New(t)

	d := giveDispatcher(t)
	ctx := testContext()

	first, err := d.Execute("/give 5 2", ctx)
	assert.NoError(err)
	second, err := d.Execute("/give 5 2", ctx)
	assert.NoError(err)

	// same outcome shape both times, but the side effect is cumulative
	assert.Equal(first, second)
	assert.Equal(4, ctx.User.Inventory.Count(5))
}
