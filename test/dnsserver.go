// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package test

import (
	"net"
	"net/netip"

	"github.com/miekg/dns"

	gi "github.com/onsi/ginkgo/v2"
	g "github.com/onsi/gomega"
	s "github.com/thediveo/success"
)

// Answer returns a handler answering A queries with the specified IPv4
// addresses. Without any addresses, the handler returns an empty (but
// successful) answer.
func Answer(addrs ...string) dns.HandlerFunc {
	return func(w dns.ResponseWriter, r *dns.Msg) {
		m := new(dns.Msg)
		m.SetReply(r)
		for _, addr := range addrs {
			m.Answer = append(m.Answer, &dns.A{
				Hdr: dns.RR_Header{
					Name:   r.Question[0].Name,
					Rrtype: dns.TypeA,
					Class:  dns.ClassINET,
					Ttl:    60,
				},
				A: net.ParseIP(addr),
			})
		}
		_ = w.WriteMsg(m)
	}
}

// Truncated returns a handler answering A queries with the specified IPv4
// addresses, but with the truncation bit set.
func Truncated(addrs ...string) dns.HandlerFunc {
	answer := Answer(addrs...)
	return func(w dns.ResponseWriter, r *dns.Msg) {
		answer(truncating{w}, r)
	}
}

// truncating sets the truncation bit of all messages written.
type truncating struct {
	dns.ResponseWriter
}

func (t truncating) WriteMsg(m *dns.Msg) error {
	m.Truncated = true
	return t.ResponseWriter.WriteMsg(m)
}

// Refuse returns a handler answering with rcode REFUSED.
func Refuse() dns.HandlerFunc {
	return func(w dns.ResponseWriter, r *dns.Msg) {
		m := new(dns.Msg)
		m.SetRcode(r, dns.RcodeRefused)
		_ = w.WriteMsg(m)
	}
}

// Blackhole returns a handler never answering.
func Blackhole() dns.HandlerFunc {
	return func(dns.ResponseWriter, *dns.Msg) {}
}

// Nameserver starts a DNS server on the loopback interface serving UDP and TCP
// on the same port, using the specified individual handlers. A nil handler
// leaves that transport without any listener. The server gets shut down
// automatically at the end of the current spec.
func Nameserver(udp, tcp dns.Handler) netip.AddrPort {
	gi.GinkgoHelper()

	for retries := 0; ; retries++ {
		listener := s.Successful(net.Listen("tcp", "127.0.0.1:0"))
		addr := netip.MustParseAddrPort(listener.Addr().String())
		pc, err := net.ListenPacket("udp", addr.String())
		if err != nil {
			// the TCP port number might be taken on the UDP side.
			_ = listener.Close()
			g.Expect(retries).To(g.BeNumerically("<", 10), "cannot find a free UDP+TCP port")
			continue
		}
		if tcp != nil {
			serve(&dns.Server{Listener: listener, Handler: tcp})
		} else {
			_ = listener.Close()
		}
		if udp != nil {
			serve(&dns.Server{PacketConn: pc, Handler: udp})
		} else {
			_ = pc.Close()
		}
		return addr
	}
}

// serve activates the specified server and waits for it to become ready.
func serve(server *dns.Server) {
	started := make(chan struct{})
	server.NotifyStartedFunc = func() { close(started) }
	go func() {
		_ = server.ActivateAndServe()
	}()
	<-started
	gi.DeferCleanup(func() { _ = server.Shutdown() })
}

// Recording returns a handler sending the query name of each query received
// to the specified channel before passing the query on to the specified
// handler. Query names get dropped when the channel is full.
func Recording(qnames chan<- string, handler dns.HandlerFunc) dns.HandlerFunc {
	return func(w dns.ResponseWriter, r *dns.Msg) {
		if len(r.Question) > 0 {
			select {
			case qnames <- r.Question[0].Name:
			default:
			}
		}
		handler(w, r)
	}
}
