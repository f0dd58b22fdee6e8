// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package console

import (
	"bufio"
	"errors"
	"io"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// DefaultFeedCapacity is the bounded capacity used by FeedFrom.
const DefaultFeedCapacity = 16

// ErrFeedClosed is returned by Push after Close.
var ErrFeedClosed = errors.New("console: feed closed")

// Feed is a non-blocking LineReader backed by a bounded lock-free
// single-producer single-consumer queue.
//
// One goroutine pushes lines, one goroutine reads them. ReadLine returns
// iox.ErrWouldBlock while the queue is empty, and io.EOF (or the error
// passed to CloseWithError) once the feed is closed and drained.
type Feed struct {
	q      lfq.SPSC[string]
	closed atomix.Uint32
	err    error
}

// NewFeed creates a feed holding at most capacity pending lines.
func NewFeed(capacity int) *Feed {
	f := &Feed{}
	f.q.Init(capacity)
	return f
}

// Push enqueues line.
// Non-blocking: returns iox.ErrWouldBlock if the queue is full.
func (f *Feed) Push(line string) error {
	if f.closed.Load() != 0 {
		return ErrFeedClosed
	}
	return f.q.Enqueue(&line)
}

// Close marks the end of input. Lines pushed before Close are still read.
// Must be called by the producer.
func (f *Feed) Close() {
	f.closed.Add(1)
}

// CloseWithError is Close, with err reported instead of io.EOF.
// Must be called by the producer.
func (f *Feed) CloseWithError(err error) {
	f.err = err
	f.closed.Add(1)
}

// ReadLine implements LineReader.
func (f *Feed) ReadLine() (string, error) {
	line, err := f.q.Dequeue()
	if err == nil {
		return line, nil
	}
	if f.closed.Load() == 0 {
		return "", iox.ErrWouldBlock
	}
	// A push may land between the failed dequeue and the close check.
	if line, err = f.q.Dequeue(); err == nil {
		return line, nil
	}
	if f.err != nil {
		return "", f.err
	}
	return "", io.EOF
}

// FeedFrom starts a producer goroutine copying the lines of r into a new
// feed. The feed is closed when r is exhausted; a read error other than
// io.EOF is reported by ReadLine after the buffered lines.
func FeedFrom(r io.Reader) *Feed {
	f := NewFeed(DefaultFeedCapacity)
	go f.pump(r)
	return f
}

func (f *Feed) pump(r io.Reader) {
	sc := bufio.NewScanner(r)
	var bo iox.Backoff
	for sc.Scan() {
		line := sc.Text()
		for {
			err := f.Push(line)
			if err == nil {
				break
			}
			bo.Wait()
		}
		bo.Reset()
	}
	if err := sc.Err(); err != nil {
		f.CloseWithError(err)
		return
	}
	f.Close()
}
