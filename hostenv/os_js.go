//go:build js

package hostenv

// hostFlags marks wasm builds as generic web hosts.
var hostFlags = Flags{Web: true}
