package qbd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ParseBlocksData(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expectErr bool
		expectLen int
	}{
		{
			name: "well-formed block data",
			input: `
format = "QUARRY"
type = "BLOCKS"

[[block]]
id = 1.0
name = "Stone"

[[block]]
id = 5.2
name = "Birch Planks"
help = "Planks with a lighter grain"
`,
			expectLen: 2,
		},
		{
			name: "wrong format header",
			input: `
format = "TUNA"
type = "BLOCKS"

[[block]]
id = 1.0
name = "Stone"
`,
			expectErr: true,
		},
		{
			name: "wrong type header",
			input: `
format = "QUARRY"
type = "WORLD"

[[block]]
id = 1.0
name = "Stone"
`,
			expectErr: true,
		},
		{
			name: "no blocks at all",
			input: `
format = "QUARRY"
type = "BLOCKS"
`,
			expectErr: true,
		},
		{
			name: "duplicate block ID",
			input: `
format = "QUARRY"
type = "BLOCKS"

[[block]]
id = 1.0
name = "Stone"

[[block]]
id = 1.0
name = "Also Stone"
`,
			expectErr: true,
		},
		{
			name: "block without a name",
			input: `
format = "QUARRY"
type = "BLOCKS"

[[block]]
id = 3.0
`,
			expectErr: true,
		},
		{
			name:      "not TOML at all",
			input:     `{"format": "QUARRY"`,
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			cat, err := ParseBlocksData([]byte(tc.input))

			if tc.expectErr {
				assert.Error(err)
				return
			}

			assert.NoError(err)
			assert.Equal(tc.expectLen, cat.Len())
		})
	}
}

func Test_ParseBlocksData_loadedBlocksAreUsable(t *testing.T) {
	assert := assert.New(t)

	cat, err := ParseBlocksData([]byte(`
format = "QUARRY"
type = "BLOCKS"

[[block]]
id = 7.0
name = "Bedrock"
help = "Cannot be mined"
`))
	assert.NoError(err)

	b, ok := cat.Get(7)
	assert.True(ok)
	assert.Equal("Bedrock", b.Name)
	assert.Equal("Cannot be mined", b.Help)
}
