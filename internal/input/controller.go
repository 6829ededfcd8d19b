package input

import (
	"fmt"
	"regexp"
	"strings"
)

// Button is an abstract gamepad button. Values match the standard layout indices.
type Button uint8

const (
	ButtonA Button = iota
	ButtonB
	ButtonX
	ButtonY
	ButtonL1
	ButtonR1
	ButtonL2
	ButtonR2
	buttonCount
)

var buttonNames = [...]string{"A", "B", "X", "Y", "L1", "R1", "L2", "R2"}

func (b Button) String() string {
	if b < buttonCount {
		return buttonNames[b]
	}
	return "unknown"
}

// Action is the semantic meaning a controller assigns to a button.
type Action uint8

const (
	ActionNone Action = iota
	ActionConfirm
	ActionCancel
	ActionMenu
	ActionTriangle
	ActionL1
	ActionL2
	ActionR1
	ActionR2
)

var actionByName = map[string]Action{
	"confirm":  ActionConfirm,
	"cancel":   ActionCancel,
	"menu":     ActionMenu,
	"triangle": ActionTriangle,
	"l1":       ActionL1,
	"l2":       ActionL2,
	"r1":       ActionR1,
	"r2":       ActionR2,
}

// ParseAction looks up an action by its config name.
func ParseAction(name string) (Action, bool) {
	a, ok := actionByName[strings.ToLower(name)]
	return a, ok
}

var actionNames = [...]string{"none", "confirm", "cancel", "menu", "triangle", "l1", "l2", "r1", "r2"}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "none"
}

// ControllerMapping assigns an action to each of the eight mapped buttons.
type ControllerMapping struct {
	Name                       string
	A, B, X, Y, L1, L2, R1, R2 Action
}

// For returns the action bound to b.
func (m ControllerMapping) For(b Button) Action {
	switch b {
	case ButtonA:
		return m.A
	case ButtonB:
		return m.B
	case ButtonX:
		return m.X
	case ButtonY:
		return m.Y
	case ButtonL1:
		return m.L1
	case ButtonL2:
		return m.L2
	case ButtonR1:
		return m.R1
	case ButtonR2:
		return m.R2
	}
	return ActionNone
}

// MappingTable maps lowercase hex vendor ids to controller mappings.
type MappingTable map[string]ControllerMapping

// DefaultMappings returns the built-in table.
func DefaultMappings() MappingTable {
	return MappingTable{
		"0079": {
			Name: "DragonRise",
			A:    ActionTriangle, B: ActionCancel, X: ActionConfirm, Y: ActionMenu,
			L1: ActionL1, L2: ActionL2, R1: ActionR1, R2: ActionR2,
		},
		"054c": {
			Name: "Sony",
			A:    ActionConfirm, B: ActionCancel, X: ActionMenu, Y: ActionTriangle,
			L1: ActionL1, L2: ActionL2, R1: ActionR1, R2: ActionR2,
		},
	}
}

// With returns a copy of t with an entry added or replaced.
func (t MappingTable) With(vendor string, m ControllerMapping) MappingTable {
	out := make(MappingTable, len(t)+1)
	for k, v := range t {
		out[k] = v
	}
	out[strings.ToLower(vendor)] = m
	return out
}

// Resolve finds the mapping for a raw controller identity string.
// Lookup uses the vendor id only.
func (t MappingTable) Resolve(identity string) (ControllerMapping, bool) {
	id := ParseIdentity(identity)
	if id.Vendor == "" {
		return ControllerMapping{}, false
	}
	m, ok := t[id.Vendor]
	return m, ok
}

// Identity is the parsed form of a controller identity string.
type Identity struct {
	Vendor  string
	Product string
}

var nonWord = regexp.MustCompile(`\W+`)

// ParseIdentity extracts the tokens following "Vendor:" and "Product:".
// Non-word characters are stripped and the ids are lowercased.
func ParseIdentity(identity string) Identity {
	var id Identity
	tokens := strings.Fields(identity)
	for i := 0; i < len(tokens)-1; i++ {
		switch tokens[i] {
		case "Vendor:":
			id.Vendor = cleanID(tokens[i+1])
		case "Product:":
			id.Product = cleanID(tokens[i+1])
		}
	}
	return id
}

func cleanID(tok string) string {
	return strings.ToLower(nonWord.ReplaceAllString(tok, ""))
}

// IdentityFromSDL builds an identity string from a device name and an SDL
// joystick GUID, which stores vendor and product as little-endian words.
func IdentityFromSDL(name, guid string) string {
	if len(guid) < 20 {
		return name
	}
	vendor := guid[10:12] + guid[8:10]
	product := guid[18:20] + guid[16:18]
	return fmt.Sprintf("%s (Vendor: %s Product: %s)", name, vendor, product)
}

// Controller is an attached gamepad and its resolved mapping.
type Controller struct {
	Raw     string
	ID      Identity
	Mapping ControllerMapping
	Known   bool
}

// NewController resolves raw against table.
func NewController(raw string, table MappingTable) *Controller {
	m, ok := table.Resolve(raw)
	return &Controller{
		Raw:     raw,
		ID:      ParseIdentity(raw),
		Mapping: m,
		Known:   ok,
	}
}
