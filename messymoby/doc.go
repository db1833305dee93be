/*
Package messymoby helps tests with running throw-away Docker containers and
cleaning up after them.
*/
package messymoby
