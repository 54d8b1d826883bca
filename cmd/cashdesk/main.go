package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"cashdesk/internal/api"
	"cashdesk/internal/config"
	"cashdesk/internal/domain"
	"cashdesk/internal/gateway"
	"cashdesk/internal/usecase"
)

const usage = `usage: cashdesk <command> [flags]

commands:
  migrate       create or update the database schema
  import        load a CSV export into the database (-data DIR)
  statement     student statement (-student ID -year ID)
  installments  installment statuses of a student (-student ID)
  receipt       payment receipt (-payment ID)
  session       session totals and closing summary (-id ID)
  open          open a session (-register ID -user ID -amount N)
  pay           record a payment (-cashier ID -student ID -installment ID -amount N -methods 1:5000,2:3000)
  expense       record an expense (-cashier ID -amount N -label TEXT)
  close         close a session (-id ID -amount N)
  serve         start the HTTP API`

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	log := newLogger(cfg.Log)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg, log)
	if err != nil {
		log.Error("startup failed", "error", err)
		os.Exit(1)
	}
	defer a.close()

	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		log.Error("command failed", "command", os.Args[1], "code", domain.CodeOf(err), "error", err)
		a.close()
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	switch command {
	case "migrate":
		return a.store.Migrate(ctx)

	case "import":
		dir := fs.String("data", "", "Directory holding the CSV export (required)")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if *dir == "" {
			return errors.New("-data is required")
		}
		ds, err := gateway.NewCSVRepository().Load(ctx, *dir)
		if err != nil {
			return err
		}
		if err := a.store.Import(ctx, ds); err != nil {
			return err
		}
		a.logger.Info("dataset imported", "dir", *dir,
			"students", len(ds.Students), "sessions", len(ds.Sessions), "payments", len(ds.Payments))
		return nil

	case "statement":
		student := fs.Uint("student", 0, "Student ID (required)")
		year := fs.Uint("year", 0, "Academic year ID (required)")
		level := fs.Uint("level", 0, "Level ID, defaults to the registration's")
		assignment := fs.Uint("assignment", 0, "Assignment type ID, defaults to the registration's")
		if err := fs.Parse(args); err != nil {
			return err
		}
		st, err := a.billing.Statement(ctx, *student, domain.Cohort{
			AcademicYearID:   *year,
			LevelID:          *level,
			AssignmentTypeID: *assignment,
		})
		if err != nil {
			return err
		}
		return printJSON(st)

	case "installments":
		student := fs.Uint("student", 0, "Student ID (required)")
		if err := fs.Parse(args); err != nil {
			return err
		}
		statuses, err := a.billing.InstallmentStatuses(ctx, *student)
		if err != nil {
			return err
		}
		return printJSON(statuses)

	case "receipt":
		payment := fs.Uint("payment", 0, "Payment ID (required)")
		if err := fs.Parse(args); err != nil {
			return err
		}
		details, err := a.billing.Receipt(ctx, *payment)
		if err != nil {
			return err
		}
		if details == nil {
			return domain.NewError(domain.CodeNotFound, fmt.Sprintf("receipt for payment %d", *payment))
		}
		return printJSON(details)

	case "session":
		id := fs.Uint("id", 0, "Session ID (required)")
		if err := fs.Parse(args); err != nil {
			return err
		}
		report, err := a.cashier.SessionReport(ctx, *id)
		if err != nil {
			return err
		}
		return printJSON(report)

	case "open":
		register := fs.Uint("register", 0, "Cash register ID (required)")
		user := fs.Uint("user", 0, "Cashier user ID (required)")
		amount := fs.String("amount", "0", "Opening amount counted in the drawer")
		if err := fs.Parse(args); err != nil {
			return err
		}
		session, err := a.cashier.OpenSession(ctx, usecase.OpenSessionRequest{
			CashRegisterID: *register,
			UserID:         *user,
			OpeningAmount:  *amount,
		})
		if err != nil {
			return err
		}
		return printJSON(session)

	case "pay":
		req := usecase.PaymentRequest{}
		session := fs.Uint("session", 0, "Session ID, defaults to the cashier's active session")
		cashier := fs.Uint("cashier", 0, "Cashier user ID")
		student := fs.Uint("student", 0, "Student ID (required)")
		installment := fs.Uint("installment", 0, "Installment ID (required)")
		fs.StringVar(&req.Amount, "amount", "", "Payment amount (required)")
		methods := fs.String("methods", "", "Comma-separated method:amount pairs, e.g. 1:5000,2:3000")
		if err := fs.Parse(args); err != nil {
			return err
		}
		split, err := parseMethods(*methods)
		if err != nil {
			return err
		}
		req.SessionID, req.CashierID, req.StudentID, req.InstallmentID = *session, *cashier, *student, *installment
		req.Methods = split
		payment, err := a.cashier.RecordPayment(ctx, req)
		if err != nil {
			return err
		}
		return printJSON(payment)

	case "expense":
		req := usecase.ExpenseRequest{}
		session := fs.Uint("session", 0, "Session ID, defaults to the cashier's active session")
		cashier := fs.Uint("cashier", 0, "Cashier user ID")
		expenseType := fs.Uint("type", 0, "Expense type ID")
		fs.StringVar(&req.Label, "label", "", "Label")
		fs.StringVar(&req.Amount, "amount", "", "Expense amount (required)")
		if err := fs.Parse(args); err != nil {
			return err
		}
		req.SessionID, req.CashierID, req.ExpenseTypeID = *session, *cashier, *expenseType
		expense, err := a.cashier.RecordExpense(ctx, req)
		if err != nil {
			return err
		}
		return printJSON(expense)

	case "close":
		id := fs.Uint("id", 0, "Session ID (required)")
		amount := fs.String("amount", "", "Closing amount counted in the drawer (required)")
		if err := fs.Parse(args); err != nil {
			return err
		}
		report, err := a.cashier.CloseSession(ctx, *id, *amount)
		if err != nil {
			return err
		}
		return printJSON(report)

	case "serve":
		return a.serve(ctx)

	default:
		return fmt.Errorf("unknown command %q\n%s", command, usage)
	}
}

// parseMethods reads "id:amount" pairs. Amounts stay raw so the use case
// applies its own parsing rules.
func parseMethods(raw string) ([]usecase.MethodAmount, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var out []usecase.MethodAmount
	for _, pair := range strings.Split(raw, ",") {
		idStr, amount, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok {
			return nil, domain.NewError(domain.CodeInvalidInput, fmt.Sprintf("method %q: expected id:amount", pair))
		}
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			return nil, domain.WrapError(domain.CodeInvalidInput, fmt.Sprintf("method %q", pair), err)
		}
		out = append(out, usecase.MethodAmount{PaymentMethodID: uint(id), Amount: amount})
	}
	return out, nil
}

func (a *app) serve(ctx context.Context) error {
	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Addr:         ":" + a.cfg.Server.Port,
		Handler:      api.NewRouter(a.handler(), a.logger),
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.logger.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	a.logger.Info("server gracefully stopped")
	return nil
}

func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to generate JSON output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}
