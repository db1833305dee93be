// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package progress

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/onsi/gomega/gleak"
)

// drain receives all lines until the channel gets closed.
func drain(ch <-chan string) []string {
	lines := []string{}
	for line := range ch {
		lines = append(lines, line)
	}
	return lines
}

var _ = Describe("progress stream", func() {

	BeforeEach(func() {
		goodgos := Goroutines()
		DeferCleanup(func() {
			Eventually(Goroutines).WithTimeout(2 * time.Second).WithPolling(100 * time.Millisecond).
				ShouldNot(HaveLeaked(goodgos))
		})
	})

	It("delivers lines in order and closes after draining", func(ctx context.Context) {
		s, ch := New(ctx)
		s.Line("foo")
		s.Linef("bar %d", 42)
		s.Line("")
		s.Close()
		s.Line("too late")
		s.Close()
		Expect(drain(ch)).To(Equal([]string{"foo", "bar 42", ""}))
	})

	It("never blocks producers on a slow consumer", func(ctx context.Context) {
		s, ch := New(ctx)
		done := make(chan struct{})
		go func() {
			defer close(done)
			for i := 0; i < 10000; i++ {
				s.Linef("%d", i)
			}
			s.Close()
		}()
		Eventually(done).Within(2 * time.Second).Should(BeClosed())
		Expect(drain(ch)).To(HaveLen(10000))
	})

	It("keeps text blocks together", func(ctx context.Context) {
		s, ch := New(ctx)
		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				s.Text(fmt.Sprintf("%d-a\r\n%d-b\n%d-c", i, i, i))
			}(i)
		}
		wg.Wait()
		s.Close()
		lines := drain(ch)
		Expect(lines).To(HaveLen(30))
		for idx := 0; idx < len(lines); idx += 3 {
			prefix := strings.TrimSuffix(lines[idx], "-a")
			Expect(lines[idx+1]).To(Equal(prefix + "-b"))
			Expect(lines[idx+2]).To(Equal(prefix + "-c"))
		}
	})

	It("emits an empty text as a single empty line", func(ctx context.Context) {
		s, ch := New(ctx)
		s.Text("")
		s.Close()
		Expect(drain(ch)).To(Equal([]string{""}))
	})

	It("closes the channel when the context is done", func(ctx context.Context) {
		ctx, cancel := context.WithCancel(ctx)
		s, ch := New(ctx)
		s.Line("never received")
		cancel()
		Eventually(ch).Should(BeClosed())
		s.Close()
	})

})
