/*
Package mobynet locates the network namespaces of Docker containers, so that
domains can be dug and their addresses probed from the perspective of a
container instead of the host.
*/
package mobynet
