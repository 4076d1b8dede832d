package network

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/YuliaD2609/DesktopPotato/component"
	"github.com/YuliaD2609/DesktopPotato/service"
)

// FrameType identifies a JSON frame on the bridge
type FrameType string

const (
	// Server to client
	FrameWelcome  FrameType = "welcome"
	FrameCommands FrameType = "commands"

	// Client to server
	FrameCursor   FrameType = "cursor"
	FrameWorkArea FrameType = "workarea"
	FrameControl  FrameType = "control"
)

// Op names a presenter operation inside a commands frame
type Op string

const (
	OpCreate   Op = "create"
	OpPosition Op = "position"
	OpSize     Op = "size"
	OpSprite   Op = "sprite"
	OpFacing   Op = "facing"
	OpVisible  Op = "visible"
	OpDestroy  Op = "destroy"
)

var errBadFrame = errors.New("malformed frame")

// Command is one presenter call
type Command struct {
	Op      Op                  `json:"op"`
	Handle  service.Handle      `json:"handle"`
	X       int                 `json:"x,omitempty"`
	Y       int                 `json:"y,omitempty"`
	Size    int                 `json:"size,omitempty"`
	Sprite  component.SpriteKey `json:"sprite,omitempty"`
	Facing  string              `json:"facing,omitempty"`
	Visible *bool               `json:"visible,omitempty"`
}

// WelcomeFrame greets a new client with its id
type WelcomeFrame struct {
	Type   FrameType `json:"type"`
	Client string    `json:"client"`
}

// CommandsFrame batches the presenter calls of one tick
type CommandsFrame struct {
	Type     FrameType `json:"type"`
	Seq      uint64    `json:"seq"`
	Commands []Command `json:"commands"`
}

// CursorFrame reports the pointer in screen pixels
type CursorFrame struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// WorkAreaFrame reports the usable screen rectangle
type WorkAreaFrame struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Action is a control verb sent by a client
type Action string

const (
	ActionStart  Action = "start"
	ActionStop   Action = "stop"
	ActionToggle Action = "toggle"
	ActionCount  Action = "count"
	ActionSize   Action = "size"
)

// Control is a decoded control frame
type Control struct {
	Client string `json:"-"`
	Action Action `json:"action"`
	Value  int    `json:"value,omitempty"`
}

// inbound holds the discriminator of a client frame
type inbound struct {
	Type FrameType `json:"type"`
}

// decodeInbound parses a client frame into one of the typed frames
func decodeInbound(b []byte) (any, error) {
	var base inbound
	if err := json.Unmarshal(b, &base); err != nil {
		return nil, fmt.Errorf("%w: %v", errBadFrame, err)
	}

	switch base.Type {
	case FrameCursor:
		var f CursorFrame
		if err := json.Unmarshal(b, &f); err != nil {
			return nil, fmt.Errorf("%w: %v", errBadFrame, err)
		}
		return f, nil
	case FrameWorkArea:
		var f WorkAreaFrame
		if err := json.Unmarshal(b, &f); err != nil {
			return nil, fmt.Errorf("%w: %v", errBadFrame, err)
		}
		if f.Width <= 0 || f.Height <= 0 {
			return nil, fmt.Errorf("%w: empty work area", errBadFrame)
		}
		return f, nil
	case FrameControl:
		var f Control
		if err := json.Unmarshal(b, &f); err != nil {
			return nil, fmt.Errorf("%w: %v", errBadFrame, err)
		}
		switch f.Action {
		case ActionStart, ActionStop, ActionToggle, ActionCount, ActionSize:
			return f, nil
		}
		return nil, fmt.Errorf("%w: unknown action %q", errBadFrame, f.Action)
	default:
		return nil, fmt.Errorf("%w: unknown type %q", errBadFrame, base.Type)
	}
}
