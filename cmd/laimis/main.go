package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/s9hmzyt46y-beep/Laimis/internal/cli"
	"github.com/s9hmzyt46y-beep/Laimis/internal/config"
	"github.com/s9hmzyt46y-beep/Laimis/internal/db"
	"github.com/s9hmzyt46y-beep/Laimis/internal/repository"
	"github.com/s9hmzyt46y-beep/Laimis/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.EnsureDBDir(); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	clientRepo := repository.NewSQLiteClientRepo(database)
	invoiceRepo := repository.NewSQLiteInvoiceRepo(database)
	itemRepo := repository.NewSQLiteInvoiceItemRepo(database)
	expenseRepo := repository.NewSQLiteExpenseRepo(database)

	// Wire unit of work for transactional invoice creation
	uow := db.NewSQLiteUnitOfWork(database)

	// Optional use-case logging to stderr
	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Clients:        service.NewClientService(clientRepo),
		Invoices:       service.NewInvoiceService(invoiceRepo, itemRepo, clientRepo, uow, observer),
		Items:          service.NewItemService(itemRepo, invoiceRepo),
		Expenses:       service.NewExpenseService(expenseRepo),
		Reports:        service.NewReportService(invoiceRepo, itemRepo, expenseRepo, observer),
		DefaultVATRate: cfg.VATRate(),
	}

	// Interactive commands (draft, browse) need a real terminal.
	app.IsInteractive = func() bool {
		return !cfg.NoColor &&
			(isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()))
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
