// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

//go:build linux

package dnsworker

import (
	"context"
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/namspill"
)

var _ = Describe("DNS worker pool in network namespaces", func() {

	BeforeEach(func() {
		DeferCleanup(func() {
			Expect(Tasks()).To(BeUniformlyNamespaced())
		})
	})

	It("runs tasks in a different network namespace", NodeTimeout(30*time.Second), func(ctx context.Context) {
		if os.Getuid() != 0 {
			Skip("needs root")
		}
		pool := New(1, InNetworkNamespace("/proc/self/ns/net"))
		done := make(chan error, 1)
		pool.Submit(ctx, func(err error) { done <- err })
		pool.StopWait()
		Expect(done).To(Receive(BeNil()))
	})

})
