/*
Package hostenv determines the host environment aspects digrank depends on: the
ping utility family of the host OS and the locale the ping utility talks in.

Both are determined only once, at start, and then get passed around explicitly.
*/
package hostenv
