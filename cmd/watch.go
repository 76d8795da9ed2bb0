package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/etnz/classfolio"
	"github.com/google/subcommands"
	"github.com/robfig/cron/v3"
)

type watchCmd struct {
	now bool
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "update prices on a schedule, until interrupted" }
func (*watchCmd) Usage() string {
	return `cpt watch [-now]

  Runs the price update on the settings' schedule (every business day after
  the market close by default), and logs the returns after each update.
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.now, "now", false, "also run an update immediately")
}

// watcher runs the scheduled updates.
type watcher struct {
	settings  *Settings
	dashboard *classfolio.Dashboard
}

// run updates the prices, then logs the returns if they changed.
func (w *watcher) run(ctx context.Context) {
	log.Println("[INFO] running price update")
	if _, err := updatePrices(ctx, w.settings); err != nil {
		log.Printf("[ERROR] price update: %v", err)
		return
	}
	docs, err := classfolio.Load(ctx, os.DirFS(w.settings.Data.Dir))
	if err != nil {
		log.Printf("[ERROR] reload documents: %v", err)
		return
	}
	p, err := w.dashboard.Performance(docs.Config, docs.Prices)
	if err != nil {
		log.Printf("[ERROR] performance: %v", err)
		return
	}
	if !p.HasData() {
		log.Println("[INFO] no performance data yet")
		return
	}
	for _, id := range p.Alignment.IDs {
		if ret, ok := p.Alignment.Returns[id]; ok {
			log.Printf("[INFO] %s %s as of %v", id, ret.SignedString(), p.Alignment.LastDataDate)
		}
	}
}

func (c *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := AppSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		return subcommands.ExitFailure
	}
	if s.Data.URL != "" {
		fmt.Fprintf(os.Stderr, "Error: %v\n", errReadOnly)
		return subcommands.ExitUsageError
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w := &watcher{settings: s, dashboard: classfolio.NewDashboard(s.Options())}
	sched := cron.New(cron.WithSeconds())
	if _, err := sched.AddFunc(s.Schedule.UpdateCron, func() { w.run(ctx) }); err != nil {
		fmt.Fprintf(os.Stderr, "Error scheduling %q: %v\n", s.Schedule.UpdateCron, err)
		return subcommands.ExitFailure
	}
	if c.now {
		w.run(ctx)
	}
	sched.Start()
	if schedule, err := cronParser.Parse(s.Schedule.UpdateCron); err == nil {
		log.Printf("[INFO] scheduler started, next update at %v", schedule.Next(time.Now()).Format(time.RFC1123))
	}

	<-ctx.Done()
	<-sched.Stop().Done()
	log.Println("[INFO] scheduler stopped")
	return subcommands.ExitSuccess
}
