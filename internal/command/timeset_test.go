package command

import (
	"testing"

	"github.com/dekarrin/quarry/internal/qerrors"
	"github.com/stretchr/testify/assert"
)

func timeSetDispatcher(t *testing.T) *Dispatcher {
	reg, err := NewRegistry([]Definition{TimeSetDefinition()})
	if err != nil {
		t.Fatalf("building registry: %v", err)
	}
	return NewDispatcher(reg, 0)
}

func Test_TimeSet_setsTimeOfDay(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect int
	}{
		{name: "lower bound", input: "/time set 0", expect: 0},
		{name: "upper bound", input: "/time set 24", expect: 24},
		{name: "midday", input: "/time set 14", expect: 14},
		{name: "leading zero", input: "/time set 07", expect: 7},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			d := timeSetDispatcher(t)
			ctx := testContext()

			outcome, err := d.Execute(tc.input, ctx)

			assert.NoError(err)
			assert.True(outcome.WasHandled())
			assert.Equal(tc.expect, ctx.Controller.TimeOfDay)
		})
	}
}

func Test_TimeSet_rejectsOutOfRangeHour(t *testing.T) {
	assert := assert.New(t)

	d := timeSetDispatcher(t)
	ctx := testContext()
	ctx.Controller.TimeOfDay = 6

	_, err := d.Execute("/time set 25", ctx)

	assert.Error(err)
	assert.True(qerrors.IsCommand(err))
	assert.Contains(qerrors.GameMessage(err), "between 0 and 24")
	assert.Equal(6, ctx.Controller.TimeOfDay, "a rejected value must not be applied")
}

func Test_TimeSet_nonDigitsDoNotMatchAtAll(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "word instead of number", input: "/time set noon"},
		{name: "negative number", input: "/time set -1"},
		{name: "fractional hour", input: "/time set 6.5"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			d := timeSetDispatcher(t)
			ctx := testContext()

			_, err := d.Execute(tc.input, ctx)

			// the pattern requires digits, so these are unknown commands,
			// not range errors
			assert.Error(err)
			assert.True(qerrors.IsUnknown(err))
			text, ok := qerrors.CommandText(err)
			assert.True(ok)
			assert.Equal(tc.input, text)
		})
	}
}
