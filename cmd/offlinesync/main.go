// Command offlinesync manages the client-side offline change queue.
//
//	offlinesync enqueue -plan <id> -file changes.json
//	offlinesync submit  -plan <id> -file changes.json
//	offlinesync list
//	offlinesync replay
//	offlinesync clear
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"floorplan-service/internal/domain/floorplan"
	"floorplan-service/internal/offline"
	"floorplan-service/internal/pkg/clock"
	"floorplan-service/internal/pkg/config"
	"floorplan-service/internal/pkg/idgen"

	"github.com/google/uuid"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.LoadOfflineConfig()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1], os.Args[2:], cfg, logger, os.Stdout); err != nil {
		logger.Error("offlinesync failed", "command", os.Args[1], "error", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: offlinesync <enqueue|submit|list|replay|clear> [flags]")
}

func run(ctx context.Context, cmd string, args []string, cfg config.OfflineConfig, logger *slog.Logger, out io.Writer) error {
	ids := idgen.NewUUIDGenerator()
	queue, err := offline.OpenSQLiteQueue(cfg.QueuePath, clock.NewRealClock(), ids)
	if err != nil {
		return err
	}
	defer func() { _ = queue.Close() }()

	client := offline.NewHTTPSyncClient(cfg.ServerURL, cfg.Token, cfg.Timeout)

	switch cmd {
	case "enqueue", "submit":
		planID, changes, err := parseChangeArgs(cmd, args)
		if err != nil {
			return err
		}
		if cmd == "enqueue" {
			e, err := queue.Enqueue(ctx, planID, changes)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "queued %s (%d changes)\n", e.ID, len(e.Changes))
			return nil
		}
		res, err := offline.NewWriter(queue, client, ids, logger).Submit(ctx, planID, changes)
		if err != nil {
			return err
		}
		if res.Queued {
			fmt.Fprintf(out, "server unreachable or queue not empty; queued %s\n", res.Entry.ID)
			return nil
		}
		fmt.Fprintf(out, "%s: version %d, applied %d, skipped %d\n",
			res.Result.Message, res.Result.Version, res.Result.Applied, res.Result.Skipped)
		return nil

	case "list":
		entries, err := queue.List(ctx)
		if err != nil {
			return err
		}
		return printEntries(out, entries)

	case "replay":
		report, err := offline.NewReplayer(queue, client, logger).Replay(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "acked %d, rejected %d, remaining %d\n", report.Acked, report.Rejected, report.Remaining)
		if report.Err != nil {
			return fmt.Errorf("replay stopped at %s: %w", report.StoppedAt, report.Err)
		}
		return nil

	case "clear":
		return queue.Clear(ctx)

	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func parseChangeArgs(cmd string, args []string) (uuid.UUID, []floorplan.Change, error) {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	plan := fs.String("plan", "", "floor plan id")
	file := fs.String("file", "-", "JSON array of changes, - for stdin")
	if err := fs.Parse(args); err != nil {
		return uuid.Nil, nil, err
	}

	planID, err := uuid.Parse(*plan)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("-plan must be a UUID: %w", err)
	}

	var r io.Reader = os.Stdin
	if *file != "-" {
		f, err := os.Open(*file)
		if err != nil {
			return uuid.Nil, nil, err
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	var changes []floorplan.Change
	if err := json.NewDecoder(r).Decode(&changes); err != nil {
		return uuid.Nil, nil, fmt.Errorf("failed to read changes: %w", err)
	}
	if len(changes) == 0 {
		return uuid.Nil, nil, errors.New("no changes given")
	}
	return planID, changes, nil
}

func printEntries(out io.Writer, entries []offline.Entry) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPLAN\tCHANGES\tSTATUS\tATTEMPTS\tCREATED\tREASON")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%d\t%s\t%s\n",
			e.ID, e.PlanID, len(e.Changes), e.Status, e.Attempts, e.CreatedAt.Format("2006-01-02 15:04:05"), e.Reason)
	}
	return tw.Flush()
}
