package replay

import (
	"github.com/younwookim/bedtime/internal/application/system"
	"github.com/younwookim/bedtime/internal/infrastructure/config"
)

// FormatVersion is written into every replay file
const FormatVersion = "1.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	L  bool `json:"l,omitempty"`  // Left
	R  bool `json:"r,omitempty"`  // Right
	JP bool `json:"jp,omitempty"` // JumpPressed
}

// Input converts the frame back into an input state
func (fi FrameInput) Input() system.InputState {
	return system.InputState{
		Left:        fi.L,
		Right:       fi.R,
		JumpPressed: fi.JP,
	}
}

// ReplayData contains all data needed to replay a run: the layout seed,
// the config it was played with and per-frame input
type ReplayData struct {
	Version   string             `json:"version"`
	Seed      int64              `json:"seed"`
	Config    *config.GameConfig `json:"config,omitempty"`
	StartTime string             `json:"startTime"`
	Frames    []FrameInput       `json:"frames"`
}
