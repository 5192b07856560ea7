package core

import (
	"context"
	"log"
	"sync"
	"time"
)

// Stepper advances a simulation by one fixed tick.
type Stepper interface {
	Step(dt float64)
}

// GameLoop drives a Stepper at a fixed tick rate.
type GameLoop struct {
	scene    Stepper
	tickRate int
	limit    int
	ticks    int
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewGameLoop creates a loop. A limit of zero runs until stopped.
func NewGameLoop(scene Stepper, tickRate, limit int) *GameLoop {
	return &GameLoop{
		scene:    scene,
		tickRate: tickRate,
		limit:    limit,
		stopChan: make(chan struct{}),
	}
}

// DeltaTime is the simulated length of one tick in seconds.
func (g *GameLoop) DeltaTime() float64 {
	return 1 / float64(g.tickRate)
}

// Ticks returns how many ticks the loop has run.
func (g *GameLoop) Ticks() int {
	return g.ticks
}

// Run ticks in real time until ctx is cancelled, Stop is called or the tick
// limit is reached. It returns ctx.Err() when cancelled.
func (g *GameLoop) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("[loop] started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-ctx.Done():
			log.Printf("[loop] cancelled after %d ticks", g.ticks)
			return ctx.Err()
		case <-g.stopChan:
			log.Printf("[loop] stopped after %d ticks", g.ticks)
			return nil
		case <-ticker.C:
			g.tick()
			if g.limit > 0 && g.ticks >= g.limit {
				log.Printf("[loop] finished %d ticks", g.ticks)
				return nil
			}
		}
	}
}

// RunTicks steps n ticks immediately, without waiting on the clock.
func (g *GameLoop) RunTicks(n int) {
	for i := 0; i < n; i++ {
		g.tick()
	}
}

// Stop ends Run. Calling it more than once is safe.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() {
		close(g.stopChan)
	})
}

func (g *GameLoop) tick() {
	g.scene.Step(g.DeltaTime())
	g.ticks++
}
