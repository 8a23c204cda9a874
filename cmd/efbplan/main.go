// cmd/efbplan/main.go

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pearson-efb/flightplan/pkg/fms"
	"github.com/pearson-efb/flightplan/pkg/log"
)

func main() {
	ndFile := flag.String("nd", "", "path to an ARINC-424 navigation data file")
	route := flag.String("route", "", "route string, e.g. \"29020KT N0107 A0250 EDDH EDHF\"")
	logLevel := flag.String("loglevel", "info", "logging level: debug, info, warn, error")
	logDir := flag.String("logdir", "", "directory for the log file")
	flag.Parse()

	if *route == "" {
		fmt.Printf("usage: efbplan -nd <arinc424-file> -route \"<route string>\"\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	lg := log.New(false, *logLevel, *logDir)

	f := fms.New()

	if *ndFile != "" {
		data, err := os.ReadFile(*ndFile)
		if err != nil {
			fmt.Printf("%v\n", err)
			os.Exit(1)
		}
		f.NDRead(data, fms.Arinc424)
		if f.Errors().HaveErrors() {
			f.Errors().PrintErrors(lg)
		}
		lg.Infof("read %s", *ndFile)
	}

	if err := f.Decode(*route); err != nil {
		lg.Errorf("decode %q: %v", *route, err)
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}

	printRoute(f)
}

func printRoute(f *fms.FMS) {
	r := f.Route()
	fmt.Printf("route: %d leg(s)\n", len(r.Legs))
	for i, leg := range r.Legs {
		fmt.Printf("  %2d. %-6s -> %-6s  %7.1fnm  mc %6.1f", i+1, leg.From.Ident, leg.To.Ident, leg.Dist().NM(), leg.MC().Degrees())
		if mh, ok := leg.MH(); ok {
			fmt.Printf("  mh %6.1f", mh.Degrees())
		}
		if gs, ok := leg.GS(); ok {
			fmt.Printf("  gs %5.0fkt", gs.Knots())
		}
		if ete, ok := leg.ETE(); ok {
			fmt.Printf("  ete %s", ete)
		}
		fmt.Println()
	}
	fmt.Printf("total distance: %.1fnm, total ete: %s\n", r.TotalDistance().NM(), r.TotalETE())
}
