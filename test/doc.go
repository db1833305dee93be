/*
Package test provides a throw-away DNS server harness for digrank's unit
tests: nameservers listening on the loopback interface, with both UDP and TCP
on the same port and individually scripted answers. A [Recorder] captures
progress lines for later inspection.
*/
package test
