package main

import (
	"flag"
	"log"
	"os"

	"github.com/yanun0323/logs"

	"main/internal/datagen"
	"main/internal/ops"
	"main/internal/refdata"
)

func main() {
	configPath := flag.String("config", "", "Path to JSON config")
	dir := flag.String("dir", "", "Output directory (overrides config)")
	steps := flag.Int("steps", 0, "Rows per bond in price and depth feeds (overrides config)")
	seed := flag.Int64("seed", 0, "Random seed (overrides config)")
	flag.Parse()

	loaded, err := ops.Load(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %+v", err)
	}
	if *dir != "" {
		loaded = loaded.WithDataDir(*dir)
	}
	if *steps > 0 {
		loaded.Steps = *steps
	}
	if *seed != 0 {
		loaded.Seed = *seed
	}

	if err := os.MkdirAll(loaded.DataDir, 0o755); err != nil {
		log.Fatalf("create output dir failed: %v", err)
	}

	ref := refdata.New()
	gen := datagen.New(loaded.Seed)

	outputs := []struct {
		name  string
		write func() error
	}{
		{"prices", func() error { return gen.WritePrices(loaded.Feeds.Prices, ref.Bonds(), loaded.Steps) }},
		{"depth", func() error { return gen.WriteDepth(loaded.Feeds.Depth, ref.Bonds(), loaded.Steps) }},
		{"trades", func() error { return gen.WriteTrades(loaded.Feeds.Trades, ref.Bonds()) }},
		{"inquiries", func() error { return gen.WriteInquiries(loaded.Feeds.Inquiries, ref.Bonds()) }},
	}
	for _, out := range outputs {
		if err := out.write(); err != nil {
			log.Fatalf("generate %s failed: %+v", out.name, err)
		}
		logs.Infof("generated %s feed", out.name)
	}
}
