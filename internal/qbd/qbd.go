// Package qbd has functions for loading block catalogs from QBD (Quarry
// Block Data) files, a TOML-based format that defines the blocks a world
// recognizes and that commands such as give can refer to.
package qbd

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/dekarrin/quarry/internal/game"
)

// CurrentFormat is the value the format header of every QBD file must have.
const CurrentFormat = "QUARRY"

// TypeBlocks is the type header value of a block catalog file.
const TypeBlocks = "BLOCKS"

// FileInfo contains the essential header information all QBD files must
// contain. It can be obtained from a file by reading it into memory and
// calling ParseFileInfo on the bytes.
type FileInfo struct {
	Format string `toml:"format"`
	Type   string `toml:"type"`
}

type blockEntry struct {
	ID   float64 `toml:"id"`
	Name string  `toml:"name"`
	Help string  `toml:"help"`
}

type topLevelBlockData struct {
	Format string       `toml:"format"`
	Type   string       `toml:"type"`
	Blocks []blockEntry `toml:"block"`
}

// ParseFileInfo decodes only the header fields of QBD data so that the file
// type can be checked before a full decode is attempted.
func ParseFileInfo(data []byte) (FileInfo, error) {
	var info FileInfo
	if err := toml.Unmarshal(data, &info); err != nil {
		return info, fmt.Errorf("decode header: %w", err)
	}
	return info, nil
}

// LoadBlocksFile loads a block catalog from the QBD file at the given path.
func LoadBlocksFile(path string) (game.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return game.Catalog{}, fmt.Errorf("read block data file: %w", err)
	}

	cat, err := ParseBlocksData(data)
	if err != nil {
		return cat, fmt.Errorf("%s: %w", path, err)
	}
	return cat, nil
}

// ParseBlocksData decodes a block catalog from QBD data already in memory.
// The data must have a format header of CurrentFormat and a type header of
// TypeBlocks, and every block entry must pass catalog validation (a name, a
// non-negative ID, no duplicate IDs).
func ParseBlocksData(data []byte) (game.Catalog, error) {
	info, err := ParseFileInfo(data)
	if err != nil {
		return game.Catalog{}, err
	}
	if info.Format != CurrentFormat {
		return game.Catalog{}, fmt.Errorf("file format is %q, not %q", info.Format, CurrentFormat)
	}
	if info.Type != TypeBlocks {
		return game.Catalog{}, fmt.Errorf("file type is %q, not %q", info.Type, TypeBlocks)
	}

	var tl topLevelBlockData
	if err := toml.Unmarshal(data, &tl); err != nil {
		return game.Catalog{}, fmt.Errorf("decode block data: %w", err)
	}
	if len(tl.Blocks) < 1 {
		return game.Catalog{}, fmt.Errorf("block data does not define any blocks")
	}

	blocks := make([]game.Block, len(tl.Blocks))
	for i, ent := range tl.Blocks {
		blocks[i] = game.Block{
			ID:   ent.ID,
			Name: ent.Name,
			Help: ent.Help,
		}
	}

	cat, err := game.NewCatalog(blocks)
	if err != nil {
		return cat, fmt.Errorf("block data: %w", err)
	}
	return cat, nil
}
