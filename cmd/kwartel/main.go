package main

import (
	"flag"
	stdlog "log"
	"runtime"

	"github.com/fosdem/kwartel/lib/api"
	"github.com/fosdem/kwartel/lib/config"
	"github.com/fosdem/kwartel/lib/log"
	"github.com/fosdem/kwartel/lib/viewer"
)

func init() {
	// The OpenGL stuff must be in one thread
	runtime.LockOSThread()
}

func main() {
	debugPtr := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	log.Setup(*debugPtr)

	cfg := config.Default()
	if flag.NArg() > 0 {
		var err error
		cfg, err = config.Parse(flag.Arg(0))
		if err != nil {
			stdlog.Fatal(err)
		}
	}

	v := viewer.New(cfg)
	api.ServeInBackground(v, cfg.Api)

	err := v.Run()
	if err != nil {
		stdlog.Fatalf("viewer died: %s", err)
	}
}
