//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package input moves terminal events from the goroutine that reads them
// to the loop that processes them, in the order they were read.
package input

import (
	"context"
	"sync"

	"github.com/timburks/ted/pkg/types"
)

// A Queue is an unbounded FIFO of events. Push never blocks.
type Queue struct {
	mu     sync.Mutex
	events []types.Event
	ready  chan struct{} // holds a token while events is not empty
}

func NewQueue() *Queue {
	return &Queue{ready: make(chan struct{}, 1)}
}

// Push appends an event.
func (q *Queue) Push(e types.Event) {
	q.mu.Lock()
	q.events = append(q.events, e)
	q.mu.Unlock()
	select {
	case q.ready <- struct{}{}:
	default:
	}
}

// Len returns the number of waiting events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// Next waits for the oldest event and removes it from the queue.
func (q *Queue) Next(ctx context.Context) (types.Event, error) {
	for {
		q.mu.Lock()
		if len(q.events) > 0 {
			e := q.events[0]
			q.events[0] = types.Event{}
			q.events = q.events[1:]
			if len(q.events) > 0 {
				// keep the token for the next caller
				select {
				case q.ready <- struct{}{}:
				default:
				}
			}
			q.mu.Unlock()
			return e, nil
		}
		q.mu.Unlock()
		select {
		case <-q.ready:
		case <-ctx.Done():
			return types.Event{}, ctx.Err()
		}
	}
}

// A Source produces events. PollEvent blocks until one is available.
type Source interface {
	PollEvent() types.Event
}

// Pump reads events from src and pushes them onto q until ctx is done or
// src reports a quit event.
func Pump(ctx context.Context, src Source, q *Queue) {
	for ctx.Err() == nil {
		e := src.PollEvent()
		q.Push(e)
		if e.Type == types.EventQuit {
			return
		}
	}
}
