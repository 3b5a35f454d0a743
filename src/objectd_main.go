package aprsobj

/*------------------------------------------------------------------
 *
 * Purpose:	Main program for objectd, which looks after the
 *		objects and items this station owns.
 *
 * Description:	On startup the object log is read back and the
 *		objects in it adopted.  Objects from the configuration
 *		file that aren't in the log yet are created and sent.
 *		From then on the scheduler is run every check interval
 *		and each packet it produces is written to stdout in
 *		monitor format for a TNC utility to pick up.
 *
 *		--list shows what we own and exits without sending.
 *
 *		--serial or --pty send the packets somewhere other
 *		than stdout.
 *
 *------------------------------------------------------------------*/

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"
	"golang.org/x/sys/unix"
)

func ObjectdMain() error {
	var flags = pflag.NewFlagSet(os.Args[0], pflag.ContinueOnError)
	var configPath = flags.StringP("config", "c", "", "Configuration file.  Default is to search the usual places.")
	var list = flags.BoolP("list", "l", false, "List owned objects and exit.")
	var once = flags.BoolP("once", "o", false, "Run the scheduler once and exit.")
	var metricsAddr = flags.StringP("metrics-addr", "m", "", "Serve Prometheus metrics here, e.g. :9101.")
	var dest = flags.StringP("dest", "d", "APRS", "Destination address for transmitted packets.")
	var path = flags.StringP("path", "p", "WIDE2-2", "Digipeater path for transmitted packets.")
	var serial = flags.StringP("serial", "s", "", "Write packets to this serial port instead of stdout.")
	var baud = flags.IntP("baud", "b", 9600, "Serial port speed.")
	var usePTY = flags.Bool("pty", false, "Write packets to a pseudo terminal instead of stdout.")
	var dnsSD = flags.Bool("dns-sd", false, "Announce the metrics endpoint with DNS-SD.")
	var dnsSDName = flags.String("dns-sd-name", "", "DNS-SD service name.  Default is \"aprsobj on <hostname>\".")
	var verbose = flags.BoolP("verbose", "v", false, "Debug logging, and more detail with --version.")
	var version = flags.BoolP("version", "V", false, "Print version and exit.")
	var help = flags.Bool("help", false, "Display help text.")

	flags.Usage = func() {
		fmt.Printf("%s - Keep APRS objects and items on the air.\n", os.Args[0])
		fmt.Printf("\n")
		fmt.Printf("Usage: %s [options]\n", os.Args[0])
		fmt.Printf("\n")
		flags.PrintDefaults()
		fmt.Printf("\n")
		fmt.Printf("Without --config, these are tried in order:\n")
		for _, location := range ConfigSearchLocations {
			fmt.Printf("\t%s\n", location)
		}
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		fmt.Printf("%s\n", err)
		return err
	}

	if *help {
		flags.Usage()
		return nil
	}

	if *version {
		PrintVersion("objectd", *verbose)
		return nil
	}

	if *verbose {
		Logger().SetLevel(log.DebugLevel)
	}

	var cfg, cfgErr = LoadConfig(*configPath)
	if cfgErr != nil {
		dw_printf(DW_COLOR_ERROR, "%s\n", cfgErr)
		return cfgErr
	}

	if cfg.Callsign == "" {
		dw_printf(DW_COLOR_ERROR, "Set callsign in the configuration file.\n")
		return ErrNoCallsign
	}

	var metrics, metricsErr = NewMetrics(nil)
	if metricsErr != nil {
		return fmt.Errorf("metrics: %w", metricsErr)
	}

	var out io.Writer = os.Stdout
	if !*list {
		switch {
		case *serial != "" && *usePTY:
			return errors.New("choose one of --serial and --pty")
		case *serial != "":
			var port, err = OpenSerialOutput(*serial, *baud)
			if err != nil {
				return err
			}
			defer port.Close()
			out = port
		case *usePTY:
			var master, slave, err = OpenPTYOutput()
			if err != nil {
				return err
			}
			defer master.Close()
			defer slave.Close()
			out = master
		}
	}

	var store = NewStore()
	var sched = NewScheduler(cfg, store, &TextTransmitter{
		W:           out,
		Source:      cfg.Callsign,
		Destination: *dest,
		Path:        *path,
	})
	sched.Metrics = metrics
	sched.Log = NewObjectLog(cfg.BaseDir)

	var now = time.Now()

	var loaded, skipped, reloadErr = sched.Log.Reload(cfg.Callsign, func(o *Object) {
		sched.Adopt(o, now)
	})
	if reloadErr != nil {
		dw_printf(DW_COLOR_ERROR, "%s\n", reloadErr)
	}
	dw_printf(DW_COLOR_INFO, "Reloaded %d from %s, %d skipped.\n", loaded, sched.Log.Path, skipped)

	for _, oc := range cfg.Objects {
		var o, err = oc.ToObject()
		if err != nil {
			dw_printf(DW_COLOR_ERROR, "%s\n", err)
			continue
		}

		if _, exists := store.Get(o.CallSign); exists {
			continue
		}

		if *list {
			sched.Adopt(o, now)
		} else {
			sched.Set(o, now)
		}
	}

	if *list {
		listObjects(cfg, store, now)
		return nil
	}

	if *once {
		sched.CheckAndTransmit(now)
		return nil
	}

	var ctx, stop = signal.NotifyContext(context.Background(), os.Interrupt, unix.SIGTERM)
	defer stop()

	if *metricsAddr != "" {
		var mux = http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())

		var srv = &http.Server{Addr: *metricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				dw_printf(DW_COLOR_ERROR, "Metrics server: %s\n", err)
			}
		}()
		defer srv.Shutdown(context.Background()) //nolint:errcheck

		dw_printf(DW_COLOR_INFO, "Metrics on %s/metrics\n", *metricsAddr)

		if *dnsSD {
			if err := AnnounceMetrics(ctx, *dnsSDName, *metricsAddr); err != nil {
				dw_printf(DW_COLOR_ERROR, "%s\n", err)
			}
		}
	}

	runScheduler(ctx, sched, cfg.ObjectCheckRate)

	return nil
}

// runScheduler sweeps every interval until ctx is done.
func runScheduler(ctx context.Context, sched *Scheduler, interval time.Duration) {
	var ticker = time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			dw_printf(DW_COLOR_INFO, "Stopping.\n")
			return
		case t := <-ticker.C:
			sched.CheckAndTransmit(t)
		}
	}
}

func listObjects(cfg *Config, store *Store, now time.Time) {
	var objects = store.List()

	fmt.Printf("%s owns %s object%s.\n", cfg.Callsign, humanize.Comma(int64(len(objects))), IfThenElse(len(objects) == 1, "", "s"))

	for _, o := range objects {
		var next = o.LastTransmitTime.Add(o.TransmitTimeIncrement)

		fmt.Printf("%-9s  %-6s  %-6s  %s  %s  next %s\n",
			o.CallSign,
			IfThenElse(o.IsItem(), "item", "object"),
			IfThenElse(o.IsActive(), "live", "killed"),
			APRSString(o.Lat, o.Lon),
			GridString(o.Lat.Latitude(), o.Lon.Longitude(), cfg.ZoneMode, cfg.DatumID),
			humanize.RelTime(next, now, "ago", "from now"))
	}
}
