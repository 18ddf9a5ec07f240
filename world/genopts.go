package world

import (
	"encoding/json"
	"fmt"
	"os"

	"chosenoffset.com/tidyroom/apterr"
)

// GenOpts is the generator's input: the only thing a call to Generate
// needs besides the schema catalogue. It loads from and round-trips
// to JSON, falling back to DefaultGenOpts when no file is supplied.
type GenOpts struct {
	Seed       uint64 `json:"seed"`
	MaxRooms   int    `json:"max_rooms"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	MaxObjects int    `json:"max_objects"`
}

// minDimension is the smallest width/height the shell and BSP carver
// can work with: twice the minimum room thickness, same as layout's
// internal floor, plus enough room for the concave notch.
const minDimension = 6

// DefaultGenOpts returns a reasonable starting configuration.
func DefaultGenOpts() GenOpts {
	return GenOpts{
		Seed:       1,
		MaxRooms:   6,
		Width:      30,
		Height:     20,
		MaxObjects: 40,
	}
}

// LoadGenOpts loads options from a JSON file, falling back to
// DefaultGenOpts when the file doesn't exist.
func LoadGenOpts(path string) (GenOpts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultGenOpts(), nil
		}
		return GenOpts{}, fmt.Errorf("world: failed to read gen opts: %w", err)
	}

	opts := DefaultGenOpts()
	if err := json.Unmarshal(data, &opts); err != nil {
		return GenOpts{}, fmt.Errorf("world: failed to parse gen opts: %w", err)
	}
	return opts, opts.Validate()
}

// Validate checks the options satisfy the generator's size and count
// minimums, returning an apterr.Error of kind ConfigError otherwise.
func (o GenOpts) Validate() error {
	if o.Width < minDimension || o.Height < minDimension {
		return apterr.New(apterr.KindConfigError,
			fmt.Sprintf("width and height must each be at least %d: got %dx%d", minDimension, o.Width, o.Height))
	}
	if o.MaxRooms < 1 {
		return apterr.New(apterr.KindConfigError, fmt.Sprintf("max_rooms must be at least 1: got %d", o.MaxRooms))
	}
	if o.MaxObjects < 0 {
		return apterr.New(apterr.KindConfigError, fmt.Sprintf("max_objects must be non-negative: got %d", o.MaxObjects))
	}
	return nil
}
