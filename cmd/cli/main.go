package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/amirasaad/bankdash/infra/initializer"
	"github.com/amirasaad/bankdash/pkg/app"
	"github.com/amirasaad/bankdash/pkg/config"
	"github.com/amirasaad/bankdash/pkg/domain"
	"github.com/amirasaad/bankdash/pkg/service/analytics"
	"github.com/fatih/color"
)

const usage = `Usage: cli <command> [arguments]
Commands:
  seed          populate the store if it is empty, drop cached aggregates
                and print row counts
  summary       print dashboard statistics
  alerts [n]    print the top n fraud alerts (default 10, at most 50)
  risk          print transaction metrics per customer risk level`

var (
	header = color.New(color.FgCyan, color.Bold)
	warn   = color.New(color.FgYellow)
	danger = color.New(color.FgRed, color.Bold)
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		return
	}

	cfg, err := config.Load(".env")
	if err != nil {
		danger.Println("Failed to load configuration:", err)
		os.Exit(1)
	}
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		danger.Println("Failed to initialize:", err)
		os.Exit(1)
	}
	a := app.New(deps, cfg)
	defer a.Shutdown(context.Background()) //nolint:errcheck

	if err := dispatch(context.Background(), os.Stdout, a.AnalyticsService, os.Args[1:]); err != nil {
		danger.Println("Error:", err)
		a.Shutdown(context.Background()) //nolint:errcheck
		os.Exit(1)
	}
}

func dispatch(ctx context.Context, w io.Writer, svc *analytics.Service, args []string) error {
	switch args[0] {
	case "seed":
		counts, err := svc.Counts(ctx)
		if err != nil {
			return err
		}
		if err := svc.Invalidate(ctx); err != nil {
			warn.Fprintln(w, "Failed to clear cached aggregates:", err)
		}
		header.Fprintln(w, "Dataset")
		fmt.Fprintf(w, "  customers:    %d\n", counts.Customers)
		fmt.Fprintf(w, "  transactions: %d\n", counts.Transactions)
	case "summary":
		stats, err := svc.DashboardStats(ctx)
		if err != nil {
			return err
		}
		header.Fprintln(w, "Dashboard")
		fmt.Fprintf(w, "  total transactions: %d\n", stats.TotalTransactions)
		fmt.Fprintf(w, "  debit volume:       %.2f\n", stats.TotalVolume)
		fmt.Fprintf(w, "  active customers:   %d\n", stats.ActiveCustomers)
		fmt.Fprintf(w, "  avg transaction:    %.2f\n", stats.AvgTransaction)
		warn.Fprintf(w, "  fraud alerts:       %d\n", stats.FraudAlerts)
		danger.Fprintf(w, "  high risk accounts: %d\n", stats.HighRiskAccounts)
	case "alerts":
		n := 10
		if len(args) > 1 {
			v, err := strconv.Atoi(args[1])
			if err != nil || v < 0 {
				return fmt.Errorf("%w: %q", domain.ErrInvalidLimit, args[1])
			}
			n = v
		}
		alerts, err := svc.FraudAlerts(ctx)
		if err != nil {
			return err
		}
		header.Fprintf(w, "Fraud alerts (score > %.0f)\n", domain.FraudAlertThreshold)
		for _, a := range alerts[:min(n, len(alerts))] {
			danger.Fprintf(w, "  %6.2f", a.FraudScore)
			fmt.Fprintf(w, "  %s  %s  %10.2f  %s\n", a.TransactionID, a.CustomerID, a.Amount, a.Reason)
		}
	case "risk":
		out, err := svc.RiskAssessment(ctx)
		if err != nil {
			return err
		}
		header.Fprintln(w, "Risk assessment")
		for _, m := range out.RiskMetrics {
			fmt.Fprintf(w, "  %-6s  txns=%-6d  avg_fraud=%6.2f  total=%12.2f\n",
				m.RiskLevel, m.TransactionCount, m.AvgFraudScore, m.TotalAmount)
		}
	default:
		fmt.Fprintln(w, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
	return nil
}
