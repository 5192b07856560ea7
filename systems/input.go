package systems

import (
	"fmt"
	"os"

	"github.com/automoto/rocketeer/components"
	cfg "github.com/automoto/rocketeer/config"
	"github.com/automoto/rocketeer/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"gopkg.in/yaml.v3"
)

// InputFrame is the held input state of a single tick.
type InputFrame struct {
	Actions [cfg.ActionCount]bool
	Axes    [cfg.AxisCount]float64
}

// InputSource is polled once per tick by the input system.
type InputSource interface {
	Poll(tick int) InputFrame
}

// StaticInput reports the same frame every tick. Tests change Frame between steps.
type StaticInput struct {
	Frame InputFrame
}

func (s *StaticInput) Poll(int) InputFrame {
	return s.Frame
}

// Hold marks an action as held.
func (s *StaticInput) Hold(id cfg.ActionID, held bool) {
	s.Frame.Actions[id] = held
}

// SetAxis sets an axis value.
func (s *StaticInput) SetAxis(id cfg.AxisID, v float64) {
	s.Frame.Axes[id] = v
}

type scriptAxes struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type scriptEntry struct {
	From    int        `yaml:"from"`
	To      *int       `yaml:"to"`
	Actions []string   `yaml:"actions"`
	Move    scriptAxes `yaml:"move"`
	Look    scriptAxes `yaml:"look"`
}

type scriptFile struct {
	Frames []scriptEntry `yaml:"frames"`
}

type scriptedRange struct {
	from, to int
	frame    InputFrame
}

// ScriptedInput replays tick ranges from a YAML script. Overlapping ranges
// combine: actions held by any range are held, axes are summed and clamped.
type ScriptedInput struct {
	ranges []scriptedRange
	length int
}

// LoadScript reads an input script from disk.
func LoadScript(path string) (*ScriptedInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input script: %w", err)
	}
	return ParseScript(data)
}

// ParseScript builds a ScriptedInput from YAML. A frame without "to" covers
// only its "from" tick.
func ParseScript(data []byte) (*ScriptedInput, error) {
	var file scriptFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse input script: %w", err)
	}

	s := &ScriptedInput{}
	for i, entry := range file.Frames {
		to := entry.From
		if entry.To != nil {
			to = *entry.To
		}
		if entry.From < 0 || to < entry.From {
			return nil, fmt.Errorf("frame %d: invalid tick range [%d, %d]", i, entry.From, to)
		}

		r := scriptedRange{from: entry.From, to: to}
		for _, name := range entry.Actions {
			id, ok := cfg.ActionByName(name)
			if !ok {
				return nil, fmt.Errorf("frame %d: unknown action %q", i, name)
			}
			r.frame.Actions[id] = true
		}
		r.frame.Axes[cfg.AxisMoveX] = entry.Move.X
		r.frame.Axes[cfg.AxisMoveY] = entry.Move.Y
		r.frame.Axes[cfg.AxisLookX] = entry.Look.X
		r.frame.Axes[cfg.AxisLookY] = entry.Look.Y

		s.ranges = append(s.ranges, r)
		if to+1 > s.length {
			s.length = to + 1
		}
	}
	return s, nil
}

// Len is the number of ticks the script covers.
func (s *ScriptedInput) Len() int {
	return s.length
}

func (s *ScriptedInput) Poll(tick int) InputFrame {
	var out InputFrame
	for _, r := range s.ranges {
		if tick < r.from || tick > r.to {
			continue
		}
		for i, held := range r.frame.Actions {
			out.Actions[i] = out.Actions[i] || held
		}
		for i, v := range r.frame.Axes {
			out.Axes[i] += v
		}
	}
	for i := range out.Axes {
		out.Axes[i] = gamemath.ClampAxis(out.Axes[i])
	}
	return out
}

// InputSystem copies the polled frame into every player's input component.
// Must run BEFORE UpdateBehaviors in the system order.
type InputSystem struct {
	Source InputSource
}

func (s *InputSystem) Update(ecs *ecs.ECS) {
	frame := s.Source.Poll(GetClock(ecs).Tick)

	components.PlayerInput.Each(ecs.World, func(e *donburi.Entry) {
		input := components.PlayerInput.Get(e)

		// Swap buffers: current becomes previous
		input.PreviousInput = input.CurrentInput
		input.CurrentInput = frame.Actions
		for i, v := range frame.Axes {
			input.Axes[i] = gamemath.ClampAxis(v)
		}
	})
}

// GetPlayerAction returns the temporal state of an action for a player entry.
func GetPlayerAction(e *donburi.Entry, id cfg.ActionID) components.ActionState {
	if !e.HasComponent(components.PlayerInput) {
		return components.ActionState{}
	}
	return components.PlayerInput.Get(e).Action(id)
}
