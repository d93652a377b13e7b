package typeddata_test

import (
	"testing"

	"github.com/gorb-lang/gorb/object"
	"github.com/gorb-lang/gorb/thunk"
	"github.com/gorb-lang/gorb/typeddata"
)

// End-to-end: a wrapped native struct behind a VM class with a custom
// constructor and accessor methods, reclaimed by the collector.

type wrappedServer struct {
	host string
	port int64
}

var wrappedServerFreed int

var wrappedServerData = typeddata.New[wrappedServer]("test.wrapped_server",
	typeddata.WithFree[wrappedServer](func(s *wrappedServer) {
		wrappedServerFreed++
	}))

func mustWrappedServer(self object.AnyObject) *wrappedServer {
	srv, err := wrappedServerData.Get(self)
	if err != nil {
		panic(err)
	}
	return srv
}

func TestWrappedServerLifecycle(t *testing.T) {
	vm := bindVM(t)
	wrappedServerFreed = 0

	class := object.NewClass("WrappedServer", nil)
	class.Define(func(c *object.Definer) {
		c.DefSelf("new", thunk.Safe2[object.Class, object.RString, object.Fixnum](
			"new", "host", "port",
			func(self object.Class, host thunk.Arg[object.RString], port thunk.Arg[object.Fixnum]) object.Object {
				return wrappedServerData.Wrap(self, wrappedServer{
					host: thunk.Must(host).ToString(),
					port: thunk.Must(port).ToI64(),
				})
			},
		))
		c.Def("host", thunk.Safe0[object.AnyObject](
			"host",
			func(self object.AnyObject) object.Object {
				return object.NewString(mustWrappedServer(self).host)
			},
		))
		c.Def("port", thunk.Safe0[object.AnyObject](
			"port",
			func(self object.AnyObject) object.Object {
				return object.NewFixnum(mustWrappedServer(self).port)
			},
		))
	})

	inst, err := class.New(object.NewString("127.0.0.1"), object.NewFixnum(3000))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	host, err := inst.Send("host")
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	hs, err := object.TryConvert[object.RString](host)
	if err != nil || hs.ToString() != "127.0.0.1" {
		t.Fatalf("host = %v, %v", hs, err)
	}

	port, err := inst.Send("port")
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	pn, err := object.TryConvert[object.Fixnum](port)
	if err != nil || pn.ToI64() != 3000 {
		t.Fatalf("port = %v, %v", pn, err)
	}

	// Drop every root: the destructor runs exactly once.
	vm.GC()
	if wrappedServerFreed != 1 {
		t.Fatalf("destructor ran %d times, want 1", wrappedServerFreed)
	}
	vm.GC()
	if wrappedServerFreed != 1 {
		t.Fatalf("destructor ran again: %d", wrappedServerFreed)
	}
}
