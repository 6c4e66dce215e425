// Package admission gates inbound requests with a fixed-window counter per
// client key. It is the first stop for every request before any other
// component is touched.
package admission
