package main

import (
	"encoding/json"
	"flag"
	stdlog "log"
	"os"
	"sort"

	"github.com/Antonboom/deriv-rise-fall-bot/internal/botconfig"
)

var family = flag.String("family", "", "Dump only this asset family, e.g. volatility_indices")

func init() {
	flag.Parse()
}

func main() {
	var families []botconfig.AssetFamily
	for _, f := range botconfig.AssetFamilies() {
		if *family != "" && f.ID != *family {
			continue
		}
		sort.Slice(f.Assets, func(i, j int) bool {
			return f.Assets[i].Name < f.Assets[j].Name
		})
		families = append(families, f)
	}
	if len(families) == 0 {
		stdlog.Panicf("unknown asset family %q", *family)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	mustNil(enc.Encode(families))
}

func mustNil(err error) {
	if err != nil {
		stdlog.Panic(err)
	}
}
