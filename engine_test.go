package quarry

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Engine_RunUntilQuit(t *testing.T) {
	testCases := []struct {
		name         string
		input        string
		opts         Options
		expectOut    []string
		notExpectOut []string
	}{
		{
			name:  "chat is echoed with the user name",
			input: "hello everyone\n/quit\n",
			opts:  Options{UserName: "alice"},
			expectOut: []string{
				"<alice> hello everyone",
				"Goodbye",
			},
		},
		{
			name:  "give runs silently",
			input: "/give 5 2\n/quit\n",
			expectOut: []string{
				"Goodbye",
			},
			notExpectOut: []string{
				"Bad command",
			},
		},
		{
			name:  "help output is printed",
			input: "/help\n/quit\n",
			expectOut: []string{
				"give <block_id>",
				"time set <number>",
			},
		},
		{
			name:  "unknown command is reported and session continues",
			input: "/frobnicate\nstill here\n/quit\n",
			expectOut: []string{
				"Bad command: /frobnicate",
				"still here",
				"Goodbye",
			},
		},
		{
			name:  "bad arguments are reported with the original text",
			input: "/give abc\n/quit\n",
			expectOut: []string{
				"ID should be a number",
				"[give abc]",
			},
		},
		{
			name:  "custom sentinel",
			input: "!help\n/help\n!quit\n",
			opts:  Options{Sentinel: '!', UserName: "bob"},
			expectOut: []string{
				"give <block_id>",
				"<bob> /help",
			},
		},
		{
			name:  "end of input ends the session without quit",
			input: "just chatting\n",
			expectOut: []string{
				"Goodbye",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			tc.opts.ForceDirect = true
			out := &bytes.Buffer{}

			eng, err := New(strings.NewReader(tc.input), out, tc.opts)
			assert.NoError(err)

			err = eng.RunUntilQuit()
			assert.NoError(err)
			assert.NoError(eng.Close())

			for _, want := range tc.expectOut {
				assert.Contains(out.String(), want)
			}
			for _, unwanted := range tc.notExpectOut {
				assert.NotContains(out.String(), unwanted)
			}
		})
	}
}
