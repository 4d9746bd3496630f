package main

import (
	"flag"
	"log"
	"os"

	pyroscope "github.com/grafana/pyroscope-go"
	"github.com/yanun0323/logs"
	"github.com/yanun0323/pkg/sys"

	"main/internal/algoexec"
	"main/internal/algostream"
	"main/internal/booking"
	"main/internal/datagen"
	"main/internal/execution"
	"main/internal/feed"
	"main/internal/flow"
	"main/internal/gui"
	"main/internal/hist"
	"main/internal/inquiry"
	"main/internal/marketdata"
	"main/internal/model"
	"main/internal/obs"
	"main/internal/ops"
	"main/internal/position"
	"main/internal/pricing"
	"main/internal/refdata"
	"main/internal/risk"
	"main/internal/streaming"
	"main/pkg/conn"
)

func main() {
	configPath := flag.String("config", "", "Path to JSON config")
	regen := flag.Bool("gen", false, "Regenerate feed files before replay")
	flag.Parse()

	loaded, err := ops.Load(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %+v", err)
	}

	if loaded.Profiler.Enabled {
		profiler, err := startProfiler(loaded.Profiler)
		if err != nil {
			log.Fatalf("pyroscope start failed: %v", err)
		}
		defer func() {
			_ = profiler.Stop()
		}()
	}

	done := make(chan error, 1)
	go func() {
		done <- run(loaded, *regen)
	}()

	select {
	case err := <-done:
		if err != nil {
			log.Fatalf("run failed: %+v", err)
		}
	case <-sys.Shutdown():
		logs.Warn("interrupted, shutting down")
	}
}

func run(loaded ops.Loaded, regen bool) error {
	if err := os.MkdirAll(loaded.DataDir, 0o755); err != nil {
		return err
	}

	ref := refdata.New()

	if regen || feedsMissing(loaded.Feeds) {
		logs.Infof("generating feed files in %s, steps: %d, seed: %d",
			loaded.DataDir, loaded.Steps, loaded.Seed)
		if err := generate(loaded, ref.Bonds()); err != nil {
			return err
		}
	}

	metrics := obs.NewMetrics()

	// Quote side: pricing feed -> algo streaming -> streaming -> archive,
	// with the display sampling pricing directly.
	pricingSvc := pricing.New()
	streamEngine := algostream.New()
	streamingSvc := streaming.New(nil)

	guiSvc, err := gui.New(loaded.Out.GUI)
	if err != nil {
		return err
	}
	defer guiSvc.Close()

	// Execution side: depth feed -> algo execution -> execution ->
	// booking -> position -> risk, archives hanging off each stage.
	marketSvc := marketdata.New()
	execEngine := algoexec.New()
	execSvc := execution.New(nil)
	bookingSvc := booking.New()
	positionSvc := position.New()
	riskSvc := risk.New(ref)

	inquirySvc := inquiry.New()
	inquirySvc.SetConnector(inquiry.NewQuoter(inquirySvc))

	posSink, err := hist.NewFileSink(loaded.Out.Positions, hist.FormatPosition)
	if err != nil {
		return err
	}
	defer posSink.Close()
	riskSink, err := hist.NewFileSink(loaded.Out.Risk, hist.FormatRisk)
	if err != nil {
		return err
	}
	defer riskSink.Close()
	execSink, err := hist.NewFileSink(loaded.Out.Executions, hist.FormatExecution)
	if err != nil {
		return err
	}
	defer execSink.Close()
	streamSink, err := hist.NewFileSink(loaded.Out.Streaming, hist.FormatStream)
	if err != nil {
		return err
	}
	defer streamSink.Close()
	inqSink, err := hist.NewFileSink(loaded.Out.Inquiries, hist.FormatInquiry)
	if err != nil {
		return err
	}
	defer inqSink.Close()

	var dbStore *hist.DBStore
	if loaded.Postgres != nil {
		db, err := conn.OpenPostgres(*loaded.Postgres, nil)
		if err != nil {
			return err
		}
		defer conn.ClosePostgres(db)
		dbStore, err = hist.NewDBStore(db)
		if err != nil {
			return err
		}
		logs.Info("postgres archive enabled")
	}

	pricingSvc.AddListener(flow.ListenerFuncs[model.Quote]{OnAdd: func(q model.Quote) error {
		metrics.Inc(obs.StageQuote)
		return streamEngine.OnQuote(q)
	}})
	pricingSvc.AddListener(flow.ListenerFuncs[model.Quote]{OnAdd: guiSvc.OnQuote})
	streamEngine.AddListener(flow.ListenerFuncs[model.AlgoStream]{OnAdd: streamingSvc.OnAlgoStream})
	streamingSvc.AddListener(flow.ListenerFuncs[model.PriceStream]{OnAdd: func(model.PriceStream) error {
		metrics.Inc(obs.StageStream)
		return nil
	}})
	streamingSvc.AddListener(streamSink)

	marketSvc.AddListener(flow.ListenerFuncs[model.OrderBook]{OnAdd: func(top model.OrderBook) error {
		metrics.Inc(obs.StageBook)
		return execEngine.OnBook(top)
	}})
	execEngine.AddListener(flow.ListenerFuncs[model.AlgoExecution]{OnAdd: execSvc.OnAlgoExecution})
	execSvc.AddListener(flow.ListenerFuncs[model.ExecutionOrder]{OnAdd: func(model.ExecutionOrder) error {
		metrics.Inc(obs.StageExecution)
		return nil
	}})
	execSvc.AddListener(execSink)
	execSvc.AddListener(flow.ListenerFuncs[model.ExecutionOrder]{OnAdd: bookingSvc.OnExecution})

	bookingSvc.AddListener(flow.ListenerFuncs[model.Trade]{OnAdd: func(t model.Trade) error {
		metrics.Inc(obs.StageTrade)
		return positionSvc.AddTrade(t)
	}})
	positionSvc.AddListener(posSink)
	positionSvc.AddListener(flow.ListenerFuncs[*model.Position]{OnAdd: func(pos *model.Position) error {
		metrics.Inc(obs.StagePosition)
		return riskSvc.AddPosition(pos)
	}})
	riskSvc.AddListener(flow.ListenerFuncs[model.PV01]{OnAdd: func(model.PV01) error {
		metrics.Inc(obs.StageRisk)
		return nil
	}})
	riskSvc.AddListener(riskSink)

	inquirySvc.AddListener(flow.ListenerFuncs[model.Inquiry]{OnAdd: func(model.Inquiry) error {
		metrics.Inc(obs.StageInquiry)
		return nil
	}})
	inquirySvc.AddListener(inqSink)

	if dbStore != nil {
		streamingSvc.AddListener(hist.DBSink(dbStore, "streaming",
			func(ps model.PriceStream) string { return ps.Bond.ID() }))
		execSvc.AddListener(hist.DBSink(dbStore, "executions",
			func(o model.ExecutionOrder) string { return o.OrderID }))
		bookingSvc.AddListener(hist.DBSink(dbStore, "trades",
			func(t model.Trade) string { return t.TradeID }))
		riskSvc.AddListener(hist.DBSink(dbStore, "risk",
			func(r model.PV01) string { return r.Bond.ID() }))
		inquirySvc.AddListener(hist.DBSink(dbStore, "inquiries",
			func(inq model.Inquiry) string { return inq.InquiryID }))
	}

	logs.Info("replaying price feed")
	prices := feed.NewReader(loaded.Feeds.Prices, true, feed.QuoteParser(ref.Lookup))
	if err := prices.Each(pricingSvc.OnMessage); err != nil {
		return err
	}

	logs.Info("replaying market data feed")
	depth := feed.NewReader(loaded.Feeds.Depth, true, feed.DepthParser(ref.Lookup))
	err = depth.Each(func(d feed.DepthUpdate) error {
		return marketSvc.IngestDepth(d.Bond, d.Bids, d.Asks)
	})
	if err != nil {
		return err
	}

	logs.Info("replaying trade feed")
	trades := feed.NewReader(loaded.Feeds.Trades, true, feed.TradeParser(ref.Lookup))
	if err := trades.Each(bookingSvc.OnMessage); err != nil {
		return err
	}

	logs.Info("replaying inquiry feed")
	inquiries := feed.NewReader(loaded.Feeds.Inquiries, true, feed.InquiryParser(ref.Lookup))
	if err := inquiries.Each(inquirySvc.OnMessage); err != nil {
		return err
	}

	for _, sector := range ref.Sectors() {
		bucket := riskSvc.BucketedRisk(sector)
		logs.Infof("sector %s, pv01: %.4f, qty: %d", sector.Name, bucket.Total, bucket.Quantity)
	}
	for _, stage := range obs.Stages() {
		logs.Infof("processed %s: %d", stage, metrics.Count(stage))
	}
	return nil
}

func generate(loaded ops.Loaded, bonds []model.Bond) error {
	gen := datagen.New(loaded.Seed)
	if err := gen.WritePrices(loaded.Feeds.Prices, bonds, loaded.Steps); err != nil {
		return err
	}
	if err := gen.WriteDepth(loaded.Feeds.Depth, bonds, loaded.Steps); err != nil {
		return err
	}
	if err := gen.WriteTrades(loaded.Feeds.Trades, bonds); err != nil {
		return err
	}
	return gen.WriteInquiries(loaded.Feeds.Inquiries, bonds)
}

func feedsMissing(feeds ops.FeedPaths) bool {
	for _, path := range []string{feeds.Prices, feeds.Depth, feeds.Trades, feeds.Inquiries} {
		if _, err := os.Stat(path); err != nil {
			return true
		}
	}
	return false
}

func startProfiler(cfg ops.ProfilerConfig) (*pyroscope.Profiler, error) {
	appName := cfg.AppName
	if appName == "" {
		appName = "tradingsystem"
	}
	server := cfg.ServerAddress
	if server == "" {
		server = "http://localhost:4040"
	}
	return pyroscope.Start(pyroscope.Config{
		ApplicationName: appName,
		ServerAddress:   server,
		ProfileTypes: []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileAllocObjects,
			pyroscope.ProfileAllocSpace,
			pyroscope.ProfileInuseObjects,
			pyroscope.ProfileInuseSpace,
		},
	})
}
