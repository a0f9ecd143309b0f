package store

import (
	"context"
	"log"
	"sync"
	"time"

	"snake-classic/game/manager"
	"snake-classic/game/types"
)

const saveTimeout = 2 * time.Second

// Persister writes high-score improvements to a store off the game thread.
// Signals coalesce: only the latest pending value is written.
type Persister struct {
	store   HighScoreStore
	pending chan int
	quit    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
}

func NewPersister(store HighScoreStore) *Persister {
	return &Persister{
		store:   store,
		pending: make(chan int, 1),
		quit:    make(chan struct{}),
	}
}

// Start launches the writer goroutine
func (p *Persister) Start(ctx context.Context) {
	p.wg.Add(1)
	go p.run(ctx)
}

// Close flushes any pending value and waits for the writer to exit
func (p *Persister) Close() {
	p.once.Do(func() { close(p.quit) })
	p.wg.Wait()
}

// OnHighScore never blocks; a queued older value is replaced
func (p *Persister) OnHighScore(highScore int) {
	for {
		select {
		case p.pending <- highScore:
			return
		default:
		}
		select {
		case old := <-p.pending:
			if old > highScore {
				highScore = old
			}
		default:
		}
	}
}

func (p *Persister) OnFoodEaten(int) {}

func (p *Persister) OnGameOver(manager.GameRecord, types.CollisionType) {}

func (p *Persister) run(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case v := <-p.pending:
			p.save(ctx, v)
		case <-ctx.Done():
			p.flush(context.Background())
			return
		case <-p.quit:
			p.flush(ctx)
			return
		}
	}
}

func (p *Persister) flush(ctx context.Context) {
	select {
	case v := <-p.pending:
		p.save(ctx, v)
	default:
	}
}

func (p *Persister) save(ctx context.Context, v int) {
	ctx, cancel := context.WithTimeout(ctx, saveTimeout)
	defer cancel()
	if err := p.store.Save(ctx, v); err != nil {
		log.Printf("[STORE] [ERROR] persisting high score %d: %v", v, err)
		return
	}
	log.Printf("[STORE] [INFO] high score %d saved", v)
}
