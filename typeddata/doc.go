// Package typeddata embeds native Go structs inside VM objects.
//
// A Registry[T] is the process-wide singleton binding the native type T to
// its VM data-type descriptor. Declare one per wrapped type, at package
// level so its address is stable for the VM's entire life:
//
//	type Server struct {
//	    Host string
//	    Port int64
//	}
//
//	var serverData = typeddata.New[Server]("Server",
//	    typeddata.WithFree(func(s *Server) { s.Close() }))
//
// Wrap hands ownership of a value to the VM collector: the struct is boxed
// on the native heap and the descriptor's free hook runs exactly once when
// the owning VM object is reclaimed. Get retrieves the box; the registry's
// descriptor address is the type tag, so a value wrapped through one
// registry can never be retrieved through another.
//
// The mark hook defaults to none: a wrapped struct is assumed to hold no VM
// values reachable only through itself. Use WithMark when it does.
//
// Registries are immutable after construction; the VM serialises object
// access, so no locking is imposed here.
package typeddata
