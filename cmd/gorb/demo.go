package main

import (
	"go.uber.org/zap"

	"github.com/gorb-lang/gorb/abi"
	"github.com/gorb-lang/gorb/object"
	"github.com/gorb-lang/gorb/thunk"
	"github.com/gorb-lang/gorb/typeddata"
)

// The demo surface: a plain class with safe thunks, an unchecked predicate
// reopened onto the built-in String class, and a wrapped native struct.

type Greeter struct {
	object.Base
}

func (Greeter) RubyClassName() string { return "Greeter" }

type server struct {
	host    string
	port    int64
	started bool
}

var serverData = typeddata.New[server]("cmd.server",
	typeddata.WithFree[server](func(s *server) {
		abi.Logger().Debug("server reclaimed",
			zap.String("host", s.host),
			zap.Int64("port", s.port))
	}))

func registerDemo() {
	object.NewClass("Greeter", nil).Define(func(c *object.Definer) {
		c.Def("anonymous_greeting", thunk.Safe0[Greeter](
			"anonymous_greeting",
			func(self Greeter) object.Object {
				return object.NewString("Hello stranger!")
			},
		))
		c.Def("friendly_greeting", thunk.Safe1[Greeter, object.RString](
			"friendly_greeting", "name",
			func(self Greeter, name thunk.Arg[object.RString]) object.Object {
				n := name.Or(object.NewString("Anonymous"))
				return object.NewString("Hello dear " + n.ToString() + "!")
			},
		))
	})

	object.NewClass("String", nil).Define(func(c *object.Definer) {
		c.Def("string_length_equals?", thunk.Unsafe1[object.RString, object.Fixnum](
			"string_length_equals?",
			func(self object.RString, n object.Fixnum) object.Object {
				return object.NewBoolean(int64(len(self.ToString())) == n.ToI64())
			},
		))
	})

	serverClass := object.NewClass("RubyServer", nil)
	serverClass.Define(func(c *object.Definer) {
		c.DefSelf("new", thunk.Safe1[object.Class, object.Hash](
			"new", "options",
			func(self object.Class, options thunk.Arg[object.Hash]) object.Object {
				opts := options.Or(object.NewHash())

				srv := server{host: "0.0.0.0", port: 8080}
				if host, err := object.TryConvert[object.RString](opts.At(object.NewSymbol("host"))); err == nil {
					srv.host = host.ToString()
				}
				if port, err := object.TryConvert[object.Fixnum](opts.At(object.NewSymbol("port"))); err == nil {
					srv.port = port.ToI64()
				}
				return serverData.Wrap(serverClass, srv)
			},
		))
		c.Def("host", thunk.Safe0[object.AnyObject](
			"host",
			func(self object.AnyObject) object.Object {
				srv := mustServer(self)
				return object.NewString(srv.host)
			},
		))
		c.Def("port", thunk.Safe0[object.AnyObject](
			"port",
			func(self object.AnyObject) object.Object {
				srv := mustServer(self)
				return object.NewFixnum(srv.port)
			},
		))
		c.Def("start", thunk.Safe0[object.AnyObject](
			"start",
			func(self object.AnyObject) object.Object {
				srv := mustServer(self)
				srv.started = true
				return object.NewBoolean(true)
			},
		))
		c.Def("started?", thunk.Safe0[object.AnyObject](
			"started?",
			func(self object.AnyObject) object.Object {
				return object.NewBoolean(mustServer(self).started)
			},
		))
	})
}

// mustServer unwraps the native struct; a foreign receiver panics into the
// thunk's rescue and surfaces as a TypeError.
func mustServer(self object.AnyObject) *server {
	srv, err := serverData.Get(self)
	if err != nil {
		panic(err)
	}
	return srv
}
