package systems

import (
	"sort"

	"github.com/yohamta/donburi/ecs"
)

// timeEpsilon absorbs the drift of summing fixed tick lengths.
const timeEpsilon = 1e-9

type continuation struct {
	deadline float64
	seq      int
	fn       func()
}

// Scheduler holds timed continuations keyed on simulated time. A continuation
// resumes on the first tick whose start time reaches its deadline.
type Scheduler struct {
	pending []continuation
	seq     int
}

// At schedules fn to run once the clock reaches deadline.
func (s *Scheduler) At(deadline float64, fn func()) {
	s.seq++
	s.pending = append(s.pending, continuation{deadline: deadline, seq: s.seq, fn: fn})
}

// Len returns the number of continuations still waiting.
func (s *Scheduler) Len() int {
	return len(s.pending)
}

// Run resumes every continuation due at now, earliest deadline first, and
// returns how many ran. Continuations scheduled while running are considered
// in the same pass.
func (s *Scheduler) Run(now float64) int {
	ran := 0
	for {
		due := s.takeDue(now)
		if len(due) == 0 {
			return ran
		}
		for _, c := range due {
			c.fn()
			ran++
		}
	}
}

func (s *Scheduler) takeDue(now float64) []continuation {
	var due []continuation
	kept := s.pending[:0]
	for _, c := range s.pending {
		if c.deadline <= now+timeEpsilon {
			due = append(due, c)
		} else {
			kept = append(kept, c)
		}
	}
	s.pending = kept

	sort.Slice(due, func(i, j int) bool {
		if due[i].deadline != due[j].deadline {
			return due[i].deadline < due[j].deadline
		}
		return due[i].seq < due[j].seq
	})
	return due
}

// Update is the ECS system. It runs at the start of a tick, before behaviors.
func (s *Scheduler) Update(ecs *ecs.ECS) {
	s.Run(GetClock(ecs).Now)
}
