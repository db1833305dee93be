/*
Package netns runs functions inside a different network namespace, referenced
by a filesystem path such as "/proc/666/ns/net".

Network namespaces exist on Linux only. On other platforms, [Execute] always
fails with [ErrUnsupported] and [Supported] is false, so that callers can
reject namespace-related settings early.
*/
package netns
