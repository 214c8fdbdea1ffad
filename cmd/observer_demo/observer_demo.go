package main

import (
	"flag"
	"math/rand"
	"time"

	"github.com/selectdb/observer_demo/pkg/demo"
	"github.com/selectdb/observer_demo/pkg/subject"
	"github.com/selectdb/observer_demo/pkg/trace"
	"github.com/selectdb/observer_demo/pkg/utils"
	"github.com/selectdb/observer_demo/pkg/version"
	"github.com/selectdb/observer_demo/pkg/xmetrics"

	log "github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

var (
	showVersion   bool
	seed          int64
	sinkType      string
	enableMetrics bool
)

func init() {
	flag.BoolVar(&showVersion, "version", false, "The program's version")
	flag.Int64Var(&seed, "seed", 0, "seed of the state generator, 0 seeds from the clock")
	flag.StringVar(&sinkType, "sink", "logrus", "trace sink: logrus or zap")
	flag.BoolVar(&enableMetrics, "metrics", false, "attach a metrics observer and install the prometheus sink")
	flag.Parse()

	utils.InitLog()
}

func newSink() (trace.Sink, func()) {
	switch sinkType {
	case "logrus":
		return trace.NewLogrusSink(nil), func() {}
	case "zap":
		logger, err := zap.NewDevelopment()
		if err != nil {
			log.Fatalf("new zap logger failed: %+v", err)
		}
		sink := trace.NewZapSink(logger)
		return sink, func() { _ = sink.Sync() }
	default:
		log.Fatalf("unknown sink type: %s", sinkType)
		return nil, nil
	}
}

func main() {
	if showVersion {
		printVersion()
	}

	log.Infof("observer demo start, version: %s", version.GetVersion())

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Debugf("state generator seed: %d", seed)
	r := rand.New(rand.NewSource(seed))

	if enableMetrics {
		if err := xmetrics.InitGlobal("observer-demo"); err != nil {
			log.Fatalf("init metrics failed: %+v", err)
		}
	}

	sink, flush := newSink()
	defer flush()

	err := demo.Run(demo.Config{
		Name: subject.DefaultName,
		Sink: sink,
		Generate: func() int {
			return r.Intn(subject.MaxState)
		},
		Metrics: enableMetrics,
	})
	if err != nil {
		log.Fatalf("run demo failed: %+v", err)
	}
}
