// Command recur runs the recurring-shift extension once and exits. It is the
// cron-friendly alternative to the in-process scheduler: run it daily and it
// only does work on the last day of the month, or pass -force to extend
// regardless of the date.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"time"

	"github.com/joho/godotenv"

	"tutorbill/internal/db"
	"tutorbill/internal/domain/shift"
	"tutorbill/internal/platform/config"
	"tutorbill/internal/platform/jobs"
)

func main() {
	force := flag.Bool("force", false, "extend even when today is not the last day of the month")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "err", err)
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config invalid: %v", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if !*force && !shift.IsLastDayOfMonth(time.Now()) {
		log.Println("not the last day of the month, nothing to do")
		return
	}

	store := shift.NewStore(pool)
	result, err := jobs.New(pool, cfg).RunNow(ctx, jobs.JobRecurringExtension, func(ctx context.Context) (any, error) {
		return shift.ExtendRecurring(ctx, store)
	})
	if err != nil {
		log.Fatalf("recurring extension failed: %v", err)
	}

	if summary, ok := result.(shift.ExtendResult); ok {
		log.Printf("recurring extension done: %d created, %d skipped", summary.Created, summary.Skipped)
	} else {
		log.Println("recurring extension done")
	}
}
